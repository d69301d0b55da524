package extent

import (
	"math"

	"github.com/vdobler/extent/data"
)

// view presents an XY or a category dataset as outer (series or rows)
// and inner (items or columns) coordinates.
type view struct {
	shape string
	outer int
	inner func(i int) int
	key   func(i int) string
	x     func(i, j int) float64 // nil for category datasets
	value func(i, j int) float64 // central value on the requested axis
}

func viewOf(container any, axis Axis) (view, error) {
	switch d := container.(type) {
	case data.XYDataset:
		v := view{
			shape: "xy",
			outer: d.SeriesCount(),
			inner: d.ItemCount,
			key:   d.SeriesKey,
			x:     d.X,
		}
		switch axis {
		case Domain:
			v.value = d.X
		case RangeAxis:
			v.value = d.Y
		case ZAxis:
			z, ok := d.(data.XYZDataset)
			if !ok {
				return view{}, invalid("z-bounds of %T without z-values", container)
			}
			v.value = z.Z
		}
		return v, nil
	case data.CategoryDataset:
		if axis != RangeAxis {
			return view{}, invalid("%s bounds of category dataset %T", axis, container)
		}
		return view{
			shape: "category",
			outer: d.RowCount(),
			inner: func(int) int { return d.ColumnCount() },
			key:   d.RowKey,
			value: d.Value,
		}, nil
	}
	return view{}, invalid("unsupported dataset type %T", container)
}

// folder folds the values of cell (i,j) into an accumulator.
type folder func(a *accumulator, i, j int)

func (c capabilities) folder(path Path, axis Axis, value func(i, j int) float64) folder {
	switch path {
	case IntervalPath:
		start, end := c.interval(axis)
		return func(a *accumulator, i, j int) {
			a.fold(value(i, j), start(i, j), end(i, j))
		}
	case HighLowPath:
		return func(a *accumulator, i, j int) {
			a.foldMin(c.highLow.Low(i, j))
			a.foldMax(c.highLow.High(i, j))
		}
	case StatisticalPath:
		return func(a *accumulator, i, j int) {
			mean := c.stat.Mean(i, j)
			if math.IsNaN(mean) {
				return
			}
			std := math.Abs(c.stat.StdDev(i, j))
			if math.IsNaN(std) {
				std = 0
			}
			a.fold(mean-std, mean+std)
		}
	case MultiValuePath:
		return func(a *accumulator, i, j int) {
			a.fold(c.multi.Values(i, j)...)
		}
	case BoxWhiskerPath:
		return func(a *accumulator, i, j int) {
			lo, hi := c.box.MinRegular(i, j), c.box.MaxRegular(i, j)
			if math.IsNaN(lo) {
				lo = value(i, j)
			}
			if math.IsNaN(hi) {
				hi = value(i, j)
			}
			a.foldMin(lo)
			a.foldMax(hi)
		}
	}
	return func(a *accumulator, i, j int) {
		a.fold(value(i, j))
	}
}

// FindBounds returns the bounds of container along axis. Container must
// be a data.XYDataset or, for the range axis only, a data.CategoryDataset.
//
// With includeInterval set, the richest capability of container selects
// how each item is folded (see SelectPath). Missing values are skipped; if
// nothing is left the result is absent. A nil filter considers the whole
// dataset. A Window in filter requires an XY dataset.
//
// FindBounds always iterates the data; precomputed bounds the dataset
// might offer are ignored.
func FindBounds(container any, axis Axis, includeInterval bool, filter *Filter) (Range, bool, error) {
	if isNil(container) {
		return Range{}, false, invalid("nil dataset")
	}
	v, err := viewOf(container, axis)
	if err != nil {
		return Range{}, false, err
	}
	k := filter.compile()
	if k.window != nil && v.x == nil {
		return Range{}, false, invalid("x window on %s dataset %T", v.shape, container)
	}

	caps := capabilitiesOf(container)
	path := caps.path(axis, includeInterval)
	fold := caps.folder(path, axis, v.value)

	acc := newAccumulator()
	for i := 0; i < v.outer; i++ {
		if !k.series(v.key(i)) {
			continue
		}
		n := v.inner(i)
		for j := 0; j < n; j++ {
			if k.window != nil && !k.x(v.x(i, j)) {
				continue
			}
			fold(&acc, i, j)
		}
	}
	r, ok := acc.result()

	logger.Debug("bounds",
		"shape", v.shape, "axis", axis, "path", path,
		"visible", k.visible != nil, "window", k.window,
		"found", ok, "range", r)
	return r, ok, nil
}
