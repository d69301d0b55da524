// Package data contains the read-only data interfaces consumed by package
// extent and prototypical implementations of them.
//
// Two shapes of data exist: XY datasets, addressed by (series, item), and
// category datasets, addressed by (row, column). On top of a shape a
// dataset may implement any number of capability interfaces like
// XIntervaler or HighLower. All capability methods take the same index
// pair as the shape they are attached to.
//
// A missing value is represented as NaN throughout.
package data

// XYDataset is a collection of series of (x,y) items.
type XYDataset interface {
	// SeriesCount returns the number of series.
	SeriesCount() int

	// SeriesKey returns the key of the given series.
	SeriesKey(series int) string

	// IndexOf returns the index of the series with the given key
	// or -1 if there is no such series.
	IndexOf(key string) int

	// ItemCount returns the number of items in the given series.
	ItemCount(series int) int

	// X and Y return the coordinates of an item. NaN means missing.
	X(series, item int) float64
	Y(series, item int) float64
}

// XYZDataset is an XYDataset with an additional z-value per item.
type XYZDataset interface {
	XYDataset
	Z(series, item int) float64
}

// TableXYDataset is an XYDataset where all series share the same x-values
// and thus the same number of items.
type TableXYDataset interface {
	XYDataset

	// SharedItemCount returns the number of items in every series.
	SharedItemCount() int
}

// CategoryDataset is a table of values with keyed rows and columns.
type CategoryDataset interface {
	RowCount() int
	ColumnCount() int
	RowKey(row int) string
	ColumnKey(column int) string

	// RowIndex and ColumnIndex return -1 for unknown keys.
	RowIndex(key string) int
	ColumnIndex(key string) int

	// Value returns the value of a cell. NaN means missing.
	Value(row, column int) float64
}

// XIntervaler wraps the StartX and EndX methods of interval data.
type XIntervaler interface {
	StartX(i, j int) float64
	EndX(i, j int) float64
}

// YIntervaler wraps the StartY and EndY methods of interval data.
// Category datasets use it for the interval around the cell value.
type YIntervaler interface {
	StartY(i, j int) float64
	EndY(i, j int) float64
}

// ZIntervaler wraps the StartZ and EndZ methods of interval data.
type ZIntervaler interface {
	StartZ(i, j int) float64
	EndZ(i, j int) float64
}

// HighLower is implemented by high/low data like financial OHLC prices.
type HighLower interface {
	High(i, j int) float64
	Low(i, j int) float64
}

// MultiValuer is implemented by data holding several values per cell.
type MultiValuer interface {
	Values(i, j int) []float64
}

// MeanStdDever is implemented by statistical data holding a mean and a
// standard deviation per cell.
type MeanStdDever interface {
	Mean(i, j int) float64
	StdDev(i, j int) float64
}

// Boxer is implemented by box-and-whisker data. MinRegular and MaxRegular
// are the smallest and largest non-outlier values; NaN if unknown.
type Boxer interface {
	MinRegular(i, j int) float64
	MaxRegular(i, j int) float64
}

// Order describes the ordering of the x-values inside each series.
type Order int

const (
	Unordered Order = iota
	Ascending
	Descending
)

// String returns the name of o.
func (o Order) String() string {
	return []string{"unordered", "ascending", "descending"}[int(o)]
}

// DomainOrderer is implemented by XY datasets which know the ordering of
// their x-values.
type DomainOrderer interface {
	DomainOrder() Order
}

// DomainOrderOf returns the declared domain order of d or Unordered.
func DomainOrderOf(d XYDataset) Order {
	if o, ok := d.(DomainOrderer); ok {
		return o.DomainOrder()
	}
	return Unordered
}
