package extent

import (
	"github.com/vdobler/extent/data"
)

// Axis selects the dimension whose bounds are computed.
type Axis int

const (
	Domain    Axis = iota // the x-values of XY datasets
	RangeAxis             // the y-values of XY datasets and the values of category datasets
	ZAxis                 // the z-values of XYZ datasets
)

// String returns the name of a.
func (a Axis) String() string {
	return []string{"domain", "range", "z"}[int(a)]
}

// Path is the aggregation strategy used to fold the values of a dataset.
type Path int

const (
	PlainPath       Path = iota // the central value only
	IntervalPath                // central value, start and end
	StatisticalPath             // mean -/+ standard deviation
	MultiValuePath              // every value of a multi-value cell
	HighLowPath                 // low for the minimum, high for the maximum
	BoxWhiskerPath              // min/max regular value, falling back to the central value
)

// String returns the name of p.
func (p Path) String() string {
	return []string{"plain", "interval", "statistical", "multi-value", "high-low", "box-whisker"}[int(p)]
}

// capabilities records which of the optional accessor interfaces a
// dataset implements. It is resolved once per call.
type capabilities struct {
	xInterval data.XIntervaler
	yInterval data.YIntervaler
	zInterval data.ZIntervaler
	highLow   data.HighLower
	multi     data.MultiValuer
	stat      data.MeanStdDever
	box       data.Boxer
}

func capabilitiesOf(container any) capabilities {
	var c capabilities
	c.xInterval, _ = container.(data.XIntervaler)
	c.yInterval, _ = container.(data.YIntervaler)
	c.zInterval, _ = container.(data.ZIntervaler)
	c.highLow, _ = container.(data.HighLower)
	c.multi, _ = container.(data.MultiValuer)
	c.stat, _ = container.(data.MeanStdDever)
	c.box, _ = container.(data.Boxer)
	return c
}

// path selects the aggregation path for axis. If several capabilities
// apply on the range axis the first one of box-and-whisker, high/low,
// multi-value, statistical and interval wins.
func (c capabilities) path(axis Axis, includeInterval bool) Path {
	if !includeInterval {
		return PlainPath
	}
	switch axis {
	case Domain:
		if c.xInterval != nil {
			return IntervalPath
		}
	case ZAxis:
		if c.zInterval != nil {
			return IntervalPath
		}
	case RangeAxis:
		switch {
		case c.box != nil:
			return BoxWhiskerPath
		case c.highLow != nil:
			return HighLowPath
		case c.multi != nil:
			return MultiValuePath
		case c.stat != nil:
			return StatisticalPath
		case c.yInterval != nil:
			return IntervalPath
		}
	}
	return PlainPath
}

// interval returns the start and end accessors of the interval path on
// axis.
func (c capabilities) interval(axis Axis) (start, end func(i, j int) float64) {
	switch axis {
	case Domain:
		return c.xInterval.StartX, c.xInterval.EndX
	case ZAxis:
		return c.zInterval.StartZ, c.zInterval.EndZ
	}
	return c.yInterval.StartY, c.yInterval.EndY
}

// SelectPath returns the path FindBounds uses to fold the values of
// container along axis. With includeInterval false this is always
// PlainPath.
func SelectPath(container any, axis Axis, includeInterval bool) Path {
	return capabilitiesOf(container).path(axis, includeInterval)
}
