package extent

import (
	"math"

	"github.com/vdobler/extent/data"
	"gonum.org/v1/plot"
)

// XYRanger makes an XY dataset usable as a gonum plot.DataRanger.
type XYRanger struct {
	data.XYDataset

	// IncludeInterval is passed on to FindDomainBounds and FindRangeBounds.
	IncludeInterval bool
}

var _ plot.DataRanger = XYRanger{}

// DataRange implements plot.DataRanger. Absent bounds are reported as
// (+Inf, -Inf) which leaves the axes of a plot untouched.
func (r XYRanger) DataRange() (xmin, xmax, ymin, ymax float64) {
	x, xok, xerr := FindDomainBounds(r.XYDataset, r.IncludeInterval)
	y, yok, yerr := FindRangeBounds(r.XYDataset, r.IncludeInterval)
	xmin, xmax = unpack(x, xok && xerr == nil)
	ymin, ymax = unpack(y, yok && yerr == nil)
	return xmin, xmax, ymin, ymax
}

// CategoryRanger makes a category dataset usable as a gonum
// plot.DataRanger. Column c is located at x = c, like the bars of a
// plotter.BarChart.
type CategoryRanger struct {
	data.CategoryDataset

	IncludeInterval bool

	// If Stacked is set, the y-range is the one of the rows stacked onto
	// Base.
	Stacked bool
	Base    float64
}

var _ plot.DataRanger = CategoryRanger{}

// DataRange implements plot.DataRanger.
func (r CategoryRanger) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	if !isNil(r.CategoryDataset) && r.ColumnCount() > 0 {
		xmin, xmax = 0, float64(r.ColumnCount()-1)
	}

	var (
		y   Range
		ok  bool
		err error
	)
	if r.Stacked {
		y, ok, err = FindStackedRangeBounds(r.CategoryDataset, r.Base)
	} else {
		y, ok, err = FindCategoryRangeBounds(r.CategoryDataset, r.IncludeInterval)
	}
	ymin, ymax = unpack(y, ok && err == nil)
	return xmin, xmax, ymin, ymax
}

func unpack(r Range, ok bool) (float64, float64) {
	if !ok {
		return math.Inf(1), math.Inf(-1)
	}
	return r.Min, r.Max
}

// LearnDataRange returns the union of the data ranges of all rangers in
// x and in y. A direction is absent if no ranger reports data for it.
func LearnDataRange(rangers ...plot.DataRanger) (x, y Range, xok, yok bool) {
	xa, ya := newAccumulator(), newAccumulator()
	for _, r := range rangers {
		if isNil(r) {
			continue
		}
		xmin, xmax, ymin, ymax := r.DataRange()
		xa.foldMin(xmin)
		xa.foldMax(xmax)
		ya.foldMin(ymin)
		ya.foldMax(ymax)
	}
	x, xok = xa.result()
	y, yok = ya.result()
	return x, y, xok, yok
}
