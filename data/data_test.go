package data

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

var nan = math.NaN()

func TestXYCollection(t *testing.T) {
	c := NewXYCollection(Ascending)
	require.NoError(t, c.Add("S1", plotter.XYs{{X: 1, Y: 2}, {X: 2, Y: 5}}))
	require.NoError(t, c.Add("S2", plotter.XYs{{X: 1, Y: 4}, {X: nan, Y: 3}, {X: 3, Y: 1}}))

	assert.Equal(t, 2, c.SeriesCount())
	assert.Equal(t, "S2", c.SeriesKey(1))
	assert.Equal(t, 1, c.IndexOf("S2"))
	assert.Equal(t, -1, c.IndexOf("S3"))
	assert.Equal(t, 3, c.ItemCount(1))
	assert.Equal(t, 5.0, c.Y(0, 1))
	assert.Equal(t, Ascending, DomainOrderOf(c))

	err := c.Add("S1", plotter.XYs{})
	assert.True(t, errors.Is(err, ErrDuplicateKey), "got %v", err)

	err = c.Add("S4", plotter.XYs{{X: 2, Y: 0}, {X: 1, Y: 0}})
	assert.Error(t, err)
	assert.Equal(t, 2, c.SeriesCount())
}

func TestXYCollectionCopiesInput(t *testing.T) {
	xys := plotter.XYs{{X: 1, Y: 2}}
	c := NewXYCollection(Unordered)
	require.NoError(t, c.Add("S", xys))
	xys[0].Y = 99
	assert.Equal(t, 2.0, c.Y(0, 0))
}

func TestDomainOrderOfPlainDataset(t *testing.T) {
	assert.Equal(t, Unordered, DomainOrderOf(NewXYZCollection()))
	assert.Equal(t, "descending", Descending.String())
}

func TestIntervalXYCollection(t *testing.T) {
	c := NewIntervalXYCollection(Unordered)
	err := c.Add("S",
		plotter.XYs{{X: 5, Y: 10}},
		plotter.XErrors{{Low: 0.5, High: 0.5}},
		plotter.YErrors{{Low: 1, High: 3}})
	require.NoError(t, err)
	require.NoError(t, c.Add("T", plotter.XYs{{X: 7, Y: 1}}, nil, nil))

	assert.Equal(t, 4.5, c.StartX(0, 0))
	assert.Equal(t, 5.5, c.EndX(0, 0))
	assert.Equal(t, 9.0, c.StartY(0, 0))
	assert.Equal(t, 13.0, c.EndY(0, 0))
	assert.Equal(t, 7.0, c.StartX(1, 0))
	assert.Equal(t, 7.0, c.EndX(1, 0))
}

func TestOHLCCollection(t *testing.T) {
	c := NewOHLCCollection()
	require.NoError(t, c.Add("P", []OHLC{{X: 1, Open: 2, High: 4, Low: 1, Close: 3}}))
	assert.Equal(t, 3.0, c.Y(0, 0))
	assert.Equal(t, 4.0, c.High(0, 0))
	assert.Equal(t, 1.0, c.Low(0, 0))
	assert.Equal(t, 2.0, c.Open(0, 0))
}

func TestTableXY(t *testing.T) {
	_, err := NewTableXY(Descending, plotter.Values{1, 2})
	assert.Error(t, err)

	tab, err := NewTableXY(Ascending, plotter.Values{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, tab.Add("A", plotter.Values{1, nan, 3}))

	err = tab.Add("B", plotter.Values{1})
	assert.True(t, errors.Is(err, ErrLength), "got %v", err)

	assert.Equal(t, 3, tab.SharedItemCount())
	assert.Equal(t, 2.0, tab.X(0, 1))
	assert.True(t, math.IsNaN(tab.Y(0, 1)))
}

func TestTableGrowsWithMissingValues(t *testing.T) {
	tab := NewTable()
	tab.Set(1, "R0", "C0")
	tab.Set(2, "R1", "C1")

	assert.Equal(t, 2, tab.RowCount())
	assert.Equal(t, 2, tab.ColumnCount())
	assert.Equal(t, 1, tab.ColumnIndex("C1"))
	assert.Equal(t, "R1", tab.RowKey(1))
	assert.True(t, math.IsNaN(tab.Value(0, 1)))
	assert.True(t, math.IsNaN(tab.Value(1, 0)))
	assert.Equal(t, 2.0, tab.Value(1, 1))

	err := tab.AddRow("R2", []string{"C0", "C1"}, plotter.Values{7})
	assert.True(t, errors.Is(err, ErrLength), "got %v", err)
	require.NoError(t, tab.AddRow("R2", []string{"C0", "C1"}, plotter.Values{7, 8}))
	assert.Equal(t, 8.0, tab.Value(2, 1))
}

func TestCellTables(t *testing.T) {
	it := NewIntervalTable()
	it.Set(5, 4, 7, "R", "C")
	assert.Equal(t, 4.0, it.StartY(0, 0))
	assert.Equal(t, 7.0, it.EndY(0, 0))

	st := NewStatisticalTable()
	st.Set(10, 2, "R", "C0")
	st.Set(3, nan, "R", "C2")
	assert.Equal(t, 10.0, st.Value(0, 0))
	assert.Equal(t, 2.0, st.StdDev(0, 0))
	assert.True(t, math.IsNaN(st.StdDev(0, 1)))

	mv := NewMultiValueTable()
	mv.Set(plotter.Values{1, nan, 5}, "R", "C0")
	mv.Set(plotter.Values{nan}, "R", "C1")
	assert.Len(t, mv.Values(0, 0), 3)
	assert.Equal(t, 3.0, mv.Value(0, 0))
	assert.True(t, math.IsNaN(mv.Value(0, 1)))

	bt := NewBoxWhiskerTable()
	bt.Set(BoxWhisker{Mean: 4, MinRegular: 1, MaxRegular: 9}, "R", "C1")
	assert.True(t, math.IsNaN(bt.MinRegular(0, 0)))
	assert.Equal(t, 9.0, bt.MaxRegular(0, 1))
	assert.Equal(t, 4.0, bt.Value(0, 1))
}

func TestNewBoxWhisker(t *testing.T) {
	b, err := NewBoxWhisker(2, plotter.Values{1, 2, 3, 4, 5, 100})
	require.NoError(t, err)
	assert.Equal(t, 2.0, b.X)
	assert.InDelta(t, 115.0/6, b.Mean, 1e-12)
	assert.Equal(t, 1.0, b.MinRegular)
	assert.Equal(t, 5.0, b.MaxRegular)
	assert.Equal(t, []float64{100}, b.Outliers)

	_, err = NewBoxWhisker(0, plotter.Values{})
	assert.Error(t, err)
	_, err = NewBoxWhisker(0, plotter.Values{1, nan})
	assert.Error(t, err)
}

func TestGroupMap(t *testing.T) {
	m := NewGroupMap("G0")
	assert.Equal(t, 1, m.GroupCount())
	assert.Equal(t, 0, m.GroupIndex("R0"))

	m.MapKeyToGroup("R2", "G1")
	m.MapKeyToGroup("R3", "G1")
	m.MapKeyToGroup("R4", "G0")

	tests := []struct {
		key   string
		group string
		index int
	}{
		{"R0", "G0", 0},
		{"R2", "G1", 1},
		{"R3", "G1", 1},
		{"R4", "G0", 0},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.group, m.Group(tc.key))
			assert.Equal(t, tc.index, m.GroupIndex(tc.key))
		})
	}
	assert.Equal(t, []string{"G0", "G1"}, m.Groups())
}

func TestSampleFunction(t *testing.T) {
	c, err := SampleFunction(func(x float64) float64 { return 2 * x }, 0, 4, 5, "f")
	require.NoError(t, err)
	assert.Equal(t, 5, c.ItemCount(0))
	assert.Equal(t, "f", c.SeriesKey(0))
	assert.Equal(t, 2.0, c.X(0, 2))
	assert.Equal(t, 4.0, c.Y(0, 2))
	assert.Equal(t, 4.0, c.X(0, 4))

	for _, n := range []int{-1, 0, 1} {
		_, err := SampleFunction(math.Sqrt, 0, 1, n, "f")
		assert.True(t, errors.Is(err, ErrInvalidArgument), "samples=%d: got %v", n, err)
	}
}
