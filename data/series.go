package data

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// ----------------------------------------------------------------------------
// XYCollection

// XYCollection is a plain XYDataset built from gonum plotter data.
type XYCollection struct {
	order  Order
	keys   keys
	series []plotter.XYs
}

// NewXYCollection returns an empty collection whose series must obey order.
func NewXYCollection(order Order) *XYCollection {
	return &XYCollection{order: order}
}

// Add appends a copy of xy as a new series. NaN coordinates are kept as
// missing values.
func (c *XYCollection) Add(key string, xy plotter.XYer) error {
	if err := checkOrder(c.order, xy.Len(), xOf(xy)); err != nil {
		return err
	}
	if err := c.keys.addUnique(key); err != nil {
		return err
	}
	c.series = append(c.series, copyXYs(xy))
	return nil
}

// xOf returns the x-value accessor of xy.
func xOf(xy plotter.XYer) func(int) float64 {
	return func(i int) float64 {
		x, _ := xy.XY(i)
		return x
	}
}

func copyXYs(xy plotter.XYer) plotter.XYs {
	cpy := make(plotter.XYs, xy.Len())
	for i := range cpy {
		cpy[i].X, cpy[i].Y = xy.XY(i)
	}
	return cpy
}

func (c *XYCollection) SeriesCount() int            { return c.keys.len() }
func (c *XYCollection) SeriesKey(series int) string { return c.keys.key(series) }
func (c *XYCollection) IndexOf(key string) int      { return c.keys.lookup(key) }
func (c *XYCollection) ItemCount(series int) int    { return len(c.series[series]) }
func (c *XYCollection) X(series, item int) float64  { return c.series[series][item].X }
func (c *XYCollection) Y(series, item int) float64  { return c.series[series][item].Y }
func (c *XYCollection) DomainOrder() Order          { return c.order }

// ----------------------------------------------------------------------------
// XYZCollection

// XYZCollection is an XYZDataset built from gonum plotter data.
type XYZCollection struct {
	keys   keys
	series []plotter.XYZs
}

// NewXYZCollection returns an empty collection.
func NewXYZCollection() *XYZCollection {
	return &XYZCollection{}
}

// Add appends a copy of xyz as a new series.
func (c *XYZCollection) Add(key string, xyz plotter.XYZer) error {
	if err := c.keys.addUnique(key); err != nil {
		return err
	}
	cpy := make(plotter.XYZs, xyz.Len())
	for i := range cpy {
		cpy[i].X, cpy[i].Y, cpy[i].Z = xyz.XYZ(i)
	}
	c.series = append(c.series, cpy)
	return nil
}

func (c *XYZCollection) SeriesCount() int            { return c.keys.len() }
func (c *XYZCollection) SeriesKey(series int) string { return c.keys.key(series) }
func (c *XYZCollection) IndexOf(key string) int      { return c.keys.lookup(key) }
func (c *XYZCollection) ItemCount(series int) int    { return len(c.series[series]) }
func (c *XYZCollection) X(series, item int) float64  { return c.series[series][item].X }
func (c *XYZCollection) Y(series, item int) float64  { return c.series[series][item].Y }
func (c *XYZCollection) Z(series, item int) float64  { return c.series[series][item].Z }

// ----------------------------------------------------------------------------
// IntervalXYCollection

// IntervalXYCollection is an XYDataset with x- and y-intervals given as
// gonum error bars: the interval around x is [x-low, x+high] for the
// XErrors (and likewise for y).
type IntervalXYCollection struct {
	order  Order
	keys   keys
	series []intervalSeries
}

type intervalSeries struct {
	xy   plotter.XYs
	xerr plotter.XErrors
	yerr plotter.YErrors
}

// NewIntervalXYCollection returns an empty collection whose series must obey
// order.
func NewIntervalXYCollection(order Order) *IntervalXYCollection {
	return &IntervalXYCollection{order: order}
}

// Add appends a series. A nil xerr or yerr means a zero-width interval.
func (c *IntervalXYCollection) Add(key string, xy plotter.XYer, xerr plotter.XErrorer, yerr plotter.YErrorer) error {
	n := xy.Len()
	if err := checkOrder(c.order, n, xOf(xy)); err != nil {
		return err
	}
	if err := c.keys.addUnique(key); err != nil {
		return err
	}
	s := intervalSeries{
		xy:   copyXYs(xy),
		xerr: make(plotter.XErrors, n),
		yerr: make(plotter.YErrors, n),
	}
	for i := 0; i < n; i++ {
		if xerr != nil {
			s.xerr[i].Low, s.xerr[i].High = xerr.XError(i)
		}
		if yerr != nil {
			s.yerr[i].Low, s.yerr[i].High = yerr.YError(i)
		}
	}
	c.series = append(c.series, s)
	return nil
}

func (c *IntervalXYCollection) SeriesCount() int            { return c.keys.len() }
func (c *IntervalXYCollection) SeriesKey(series int) string { return c.keys.key(series) }
func (c *IntervalXYCollection) IndexOf(key string) int      { return c.keys.lookup(key) }
func (c *IntervalXYCollection) ItemCount(series int) int    { return len(c.series[series].xy) }
func (c *IntervalXYCollection) X(series, item int) float64  { return c.series[series].xy[item].X }
func (c *IntervalXYCollection) Y(series, item int) float64  { return c.series[series].xy[item].Y }
func (c *IntervalXYCollection) DomainOrder() Order          { return c.order }

func (c *IntervalXYCollection) StartX(series, item int) float64 {
	s := c.series[series]
	return s.xy[item].X - s.xerr[item].Low
}

func (c *IntervalXYCollection) EndX(series, item int) float64 {
	s := c.series[series]
	return s.xy[item].X + s.xerr[item].High
}

func (c *IntervalXYCollection) StartY(series, item int) float64 {
	s := c.series[series]
	return s.xy[item].Y - s.yerr[item].Low
}

func (c *IntervalXYCollection) EndY(series, item int) float64 {
	s := c.series[series]
	return s.xy[item].Y + s.yerr[item].High
}

// ----------------------------------------------------------------------------
// OHLCCollection

// OHLC is one open/high/low/close price item at x.
type OHLC struct {
	X                      float64
	Open, High, Low, Close float64
}

// OHLCCollection is a high/low XYDataset. The y-value of an item is its
// close price.
type OHLCCollection struct {
	keys   keys
	series [][]OHLC
}

// NewOHLCCollection returns an empty collection.
func NewOHLCCollection() *OHLCCollection {
	return &OHLCCollection{}
}

// Add appends a copy of items as a new series.
func (c *OHLCCollection) Add(key string, items []OHLC) error {
	if err := c.keys.addUnique(key); err != nil {
		return err
	}
	c.series = append(c.series, append([]OHLC(nil), items...))
	return nil
}

func (c *OHLCCollection) SeriesCount() int               { return c.keys.len() }
func (c *OHLCCollection) SeriesKey(series int) string    { return c.keys.key(series) }
func (c *OHLCCollection) IndexOf(key string) int         { return c.keys.lookup(key) }
func (c *OHLCCollection) ItemCount(series int) int       { return len(c.series[series]) }
func (c *OHLCCollection) X(series, item int) float64     { return c.series[series][item].X }
func (c *OHLCCollection) Y(series, item int) float64     { return c.series[series][item].Close }
func (c *OHLCCollection) High(series, item int) float64  { return c.series[series][item].High }
func (c *OHLCCollection) Low(series, item int) float64   { return c.series[series][item].Low }
func (c *OHLCCollection) Open(series, item int) float64  { return c.series[series][item].Open }
func (c *OHLCCollection) Close(series, item int) float64 { return c.series[series][item].Close }

// ----------------------------------------------------------------------------
// BoxWhiskerXYCollection

// BoxWhiskerXYCollection is an XYDataset of box-and-whisker items. The
// y-value of an item is its mean.
type BoxWhiskerXYCollection struct {
	keys   keys
	series [][]BoxWhisker
}

// NewBoxWhiskerXYCollection returns an empty collection.
func NewBoxWhiskerXYCollection() *BoxWhiskerXYCollection {
	return &BoxWhiskerXYCollection{}
}

// Add appends a copy of items as a new series.
func (c *BoxWhiskerXYCollection) Add(key string, items []BoxWhisker) error {
	if err := c.keys.addUnique(key); err != nil {
		return err
	}
	c.series = append(c.series, append([]BoxWhisker(nil), items...))
	return nil
}

func (c *BoxWhiskerXYCollection) SeriesCount() int            { return c.keys.len() }
func (c *BoxWhiskerXYCollection) SeriesKey(series int) string { return c.keys.key(series) }
func (c *BoxWhiskerXYCollection) IndexOf(key string) int      { return c.keys.lookup(key) }
func (c *BoxWhiskerXYCollection) ItemCount(series int) int    { return len(c.series[series]) }
func (c *BoxWhiskerXYCollection) X(series, item int) float64  { return c.series[series][item].X }
func (c *BoxWhiskerXYCollection) Y(series, item int) float64  { return c.series[series][item].Mean }

func (c *BoxWhiskerXYCollection) MinRegular(series, item int) float64 {
	return c.series[series][item].MinRegular
}

func (c *BoxWhiskerXYCollection) MaxRegular(series, item int) float64 {
	return c.series[series][item].MaxRegular
}

// ----------------------------------------------------------------------------
// TableXY

// TableXY is a TableXYDataset: several series of y-values over one common
// set of x-values.
type TableXY struct {
	order Order
	xs    plotter.Values
	keys  keys
	ys    []plotter.Values
}

// NewTableXY returns an empty table over a copy of the x-values xs.
func NewTableXY(order Order, xs plotter.Valuer) (*TableXY, error) {
	if err := checkOrder(order, xs.Len(), xs.Value); err != nil {
		return nil, err
	}
	return &TableXY{order: order, xs: copyValues(xs)}, nil
}

// Add appends the y-values ys as a new series.
func (t *TableXY) Add(key string, ys plotter.Valuer) error {
	if ys.Len() != len(t.xs) {
		return fmt.Errorf("%w: series %q has %d values, want %d", ErrLength, key, ys.Len(), len(t.xs))
	}
	if err := t.keys.addUnique(key); err != nil {
		return err
	}
	t.ys = append(t.ys, copyValues(ys))
	return nil
}

func copyValues(vs plotter.Valuer) plotter.Values {
	cpy := make(plotter.Values, vs.Len())
	for i := range cpy {
		cpy[i] = vs.Value(i)
	}
	return cpy
}

func (t *TableXY) SeriesCount() int            { return t.keys.len() }
func (t *TableXY) SeriesKey(series int) string { return t.keys.key(series) }
func (t *TableXY) IndexOf(key string) int      { return t.keys.lookup(key) }
func (t *TableXY) ItemCount(series int) int    { return len(t.ys[series]) }
func (t *TableXY) SharedItemCount() int        { return len(t.xs) }
func (t *TableXY) X(series, item int) float64  { return t.xs[item] }
func (t *TableXY) Y(series, item int) float64  { return t.ys[series][item] }
func (t *TableXY) DomainOrder() Order          { return t.order }
