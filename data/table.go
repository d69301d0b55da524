package data

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
)

// grid stores cells of type T under row and column keys. Cells never set
// read as fill.
type grid[T any] struct {
	rows, cols keys
	cells      [][]T
	fill       T
}

func (g *grid[T]) RowCount() int               { return g.rows.len() }
func (g *grid[T]) ColumnCount() int            { return g.cols.len() }
func (g *grid[T]) RowKey(row int) string       { return g.rows.key(row) }
func (g *grid[T]) ColumnKey(column int) string { return g.cols.key(column) }
func (g *grid[T]) RowIndex(key string) int     { return g.rows.lookup(key) }
func (g *grid[T]) ColumnIndex(key string) int  { return g.cols.lookup(key) }

// set stores v, adding the row and column keys if unseen.
func (g *grid[T]) set(v T, row, column string) {
	r, c := g.rows.intern(row), g.cols.intern(column)
	for len(g.cells) <= r {
		g.cells = append(g.cells, nil)
	}
	for len(g.cells[r]) <= c {
		g.cells[r] = append(g.cells[r], g.fill)
	}
	g.cells[r][c] = v
}

func (g *grid[T]) get(row, column int) T {
	if row >= len(g.cells) || column >= len(g.cells[row]) {
		if row >= g.rows.len() || column >= g.cols.len() {
			panic(fmt.Sprintf("data: cell (%d,%d) out of range", row, column))
		}
		return g.fill
	}
	return g.cells[row][column]
}

// ----------------------------------------------------------------------------
// Table

// Table is a plain CategoryDataset.
type Table struct {
	grid[float64]
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{grid[float64]{fill: math.NaN()}}
}

// Set stores value in the given cell.
func (t *Table) Set(value float64, row, column string) {
	t.set(value, row, column)
}

// AddRow stores values under row, one per column key.
func (t *Table) AddRow(row string, columns []string, values plotter.Valuer) error {
	if values.Len() != len(columns) {
		return fmt.Errorf("%w: row %q has %d values for %d columns",
			ErrLength, row, values.Len(), len(columns))
	}
	for i, col := range columns {
		t.set(values.Value(i), row, col)
	}
	return nil
}

func (t *Table) Value(row, column int) float64 { return t.get(row, column) }

// ----------------------------------------------------------------------------
// IntervalTable

type intervalCell struct{ value, start, end float64 }

// IntervalTable is a CategoryDataset with a y-interval around each value.
type IntervalTable struct {
	grid[intervalCell]
}

func NewIntervalTable() *IntervalTable {
	nan := math.NaN()
	return &IntervalTable{grid[intervalCell]{fill: intervalCell{nan, nan, nan}}}
}

// Set stores value and its interval [start, end] in the given cell.
func (t *IntervalTable) Set(value, start, end float64, row, column string) {
	t.set(intervalCell{value, start, end}, row, column)
}

func (t *IntervalTable) Value(row, column int) float64  { return t.get(row, column).value }
func (t *IntervalTable) StartY(row, column int) float64 { return t.get(row, column).start }
func (t *IntervalTable) EndY(row, column int) float64   { return t.get(row, column).end }

// ----------------------------------------------------------------------------
// StatisticalTable

type statCell struct{ mean, stdDev float64 }

// StatisticalTable is a CategoryDataset of means and standard deviations.
// The value of a cell is its mean.
type StatisticalTable struct {
	grid[statCell]
}

func NewStatisticalTable() *StatisticalTable {
	nan := math.NaN()
	return &StatisticalTable{grid[statCell]{fill: statCell{nan, nan}}}
}

func (t *StatisticalTable) Set(mean, stdDev float64, row, column string) {
	t.set(statCell{mean, stdDev}, row, column)
}

func (t *StatisticalTable) Value(row, column int) float64  { return t.get(row, column).mean }
func (t *StatisticalTable) Mean(row, column int) float64   { return t.get(row, column).mean }
func (t *StatisticalTable) StdDev(row, column int) float64 { return t.get(row, column).stdDev }

// ----------------------------------------------------------------------------
// MultiValueTable

// MultiValueTable is a CategoryDataset holding a list of values per cell.
// The value of a cell is the mean of its non-missing values.
type MultiValueTable struct {
	grid[[]float64]
}

func NewMultiValueTable() *MultiValueTable {
	return &MultiValueTable{}
}

// Set stores a copy of values in the given cell.
func (t *MultiValueTable) Set(values plotter.Valuer, row, column string) {
	t.set(copyValues(values), row, column)
}

func (t *MultiValueTable) Values(row, column int) []float64 {
	return t.get(row, column)
}

func (t *MultiValueTable) Value(row, column int) float64 {
	sum, n := 0.0, 0
	for _, v := range t.get(row, column) {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// ----------------------------------------------------------------------------
// BoxWhiskerTable

// BoxWhiskerTable is a CategoryDataset of box-and-whisker items.
// The value of a cell is its mean.
type BoxWhiskerTable struct {
	grid[BoxWhisker]
}

func NewBoxWhiskerTable() *BoxWhiskerTable {
	return &BoxWhiskerTable{grid[BoxWhisker]{fill: NaNBoxWhisker(math.NaN())}}
}

func (t *BoxWhiskerTable) Set(b BoxWhisker, row, column string) {
	t.set(b, row, column)
}

func (t *BoxWhiskerTable) Value(row, column int) float64      { return t.get(row, column).Mean }
func (t *BoxWhiskerTable) MinRegular(row, column int) float64 { return t.get(row, column).MinRegular }
func (t *BoxWhiskerTable) MaxRegular(row, column int) float64 { return t.get(row, column).MaxRegular }
