package extent

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/extent/data"
	"gonum.org/v1/plot/plotter"
)

func xsOnly(xs ...float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i, x := range xs {
		xys[i].X, xys[i].Y = x, 10*x
	}
	return xys
}

func TestFindItemIndicesForX(t *testing.T) {
	tests := []struct {
		order  data.Order
		xs     []float64
		x      float64
		lo, hi int
	}{
		{data.Ascending, nil, 1, -1, -1},
		{data.Ascending, []float64{1}, 1, 0, 0},
		{data.Ascending, []float64{1}, 2, -1, -1},
		{data.Unordered, []float64{1}, nan, -1, -1},

		{data.Ascending, []float64{1, 2, 3, 4}, 0.5, -1, -1},
		{data.Ascending, []float64{1, 2, 3, 4}, 4.5, -1, -1},
		{data.Ascending, []float64{1, 2, 3, 4}, 1, 0, 0},
		{data.Ascending, []float64{1, 2, 3, 4}, 4, 3, 3},
		{data.Ascending, []float64{1, 2, 3, 4}, 2, 1, 1},
		{data.Ascending, []float64{1, 2, 3, 4}, 2.5, 1, 2},
		{data.Ascending, []float64{1, 2, 3, 4}, 3.5, 2, 3},
		{data.Ascending, []float64{1, 2, 3, 4}, nan, -1, -1},
		{data.Ascending, []float64{1, 1, 2}, 1.25, 1, 2},

		{data.Descending, []float64{4, 3, 2, 1}, 5, -1, -1},
		{data.Descending, []float64{4, 3, 2, 1}, 0, -1, -1},
		{data.Descending, []float64{4, 3, 2, 1}, 4, 0, 0},
		{data.Descending, []float64{4, 3, 2, 1}, 1, 3, 3},
		{data.Descending, []float64{4, 3, 2, 1}, 3, 1, 1},
		{data.Descending, []float64{4, 3, 2, 1}, 2.5, 2, 1},
		{data.Descending, []float64{4, 3, 2, 1}, 1.5, 3, 2},
		{data.Descending, []float64{4, 3, 2, 1}, 3.75, 1, 0},

		{data.Unordered, []float64{1, 0, 4}, 2, 1, 2},
		{data.Unordered, []float64{1, 0, 4}, 0.5, 0, 1},
		{data.Unordered, []float64{1, 0, 4}, 0, 1, 1},
		{data.Unordered, []float64{1, 0, 4}, 1, 0, 0},
		{data.Unordered, []float64{1, 0, 4}, -0.5, -1, -1},
		{data.Unordered, []float64{1, 0, 4}, 5, -1, -1},
		{data.Unordered, []float64{3, 1, 2}, 1.5, 0, 1},
		{data.Unordered, []float64{3, 1, 2}, 0.5, -1, -1},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/%v/%g", tc.order, tc.xs, tc.x), func(t *testing.T) {
			d := newXY(t, tc.order, xsOnly(tc.xs...))
			lo, hi, err := FindItemIndicesForX(d, 0, tc.x)
			require.NoError(t, err)
			if lo != tc.lo || hi != tc.hi {
				t.Errorf("got (%d,%d), want (%d,%d)", lo, hi, tc.lo, tc.hi)
			}
		})
	}
}

// TestBracketContainsX checks on all orderings that a found bracket
// really straddles x.
func TestBracketContainsX(t *testing.T) {
	asc := []float64{-3, -1, 0, 2, 2.5, 7, 11, 12, 20}
	desc := make([]float64, len(asc))
	for i, x := range asc {
		desc[len(asc)-1-i] = x
	}
	sets := map[data.Order][]float64{
		data.Ascending:  asc,
		data.Descending: desc,
		data.Unordered:  {5, -2, 9, 1, 14, 3},
	}
	for order, xs := range sets {
		d := newXY(t, order, xsOnly(xs...))
		min, max := xs[0], xs[0]
		for _, x := range xs {
			min, max = math.Min(min, x), math.Max(max, x)
		}
		for x := min - 1; x <= max+1; x += 0.25 {
			lo, hi, err := FindItemIndicesForX(d, 0, x)
			require.NoError(t, err)
			if x < min || x > max {
				assert.Equal(t, -1, lo, "%s x=%g", order, x)
				continue
			}
			require.NotEqual(t, -1, lo, "%s x=%g", order, x)
			x0, x1 := d.X(0, lo), d.X(0, hi)
			assert.True(t, math.Min(x0, x1) <= x && x <= math.Max(x0, x1),
				"%s x=%g: bracket (%d,%d) = [%g,%g]", order, x, lo, hi, x0, x1)
			if lo == hi {
				assert.Equal(t, x, x0)
			}
			if order != data.Unordered {
				assert.True(t, x0 <= x1, "%s x=%g: smaller x not first", order, x)
			}
		}
	}
}

func TestFindItemIndicesForXInvalid(t *testing.T) {
	d := twoSeries(t)
	for _, series := range []int{-1, 2} {
		_, _, err := FindItemIndicesForX(d, series, 1)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "series %d: got %v", series, err)
	}
	_, _, err := FindItemIndicesForX(nil, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
	_, err = FindYValue(nil, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
}

func TestFindYValue(t *testing.T) {
	tests := []struct {
		name  string
		order data.Order
		xys   plotter.XYs
		x     float64
		want  float64
	}{
		{"midpoint", data.Ascending, plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 8}}, 2, 5},
		{"exact", data.Ascending, plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 8}}, 3, 8},
		{"asc-quarter", data.Ascending, plotter.XYs{{X: 1, Y: 5}, {X: 2, Y: 10}}, 1.25, 6.25},
		{"asc-half", data.Ascending, plotter.XYs{{X: 1, Y: 5}, {X: 2, Y: 10}}, 1.5, 7.5},
		{"asc-below", data.Ascending, plotter.XYs{{X: 1, Y: 5}, {X: 2, Y: 10}}, 0.5, nan},
		{"unordered-2", data.Unordered, plotter.XYs{{X: 1, Y: 5}, {X: 0, Y: 10}, {X: 4, Y: 20}}, 2, 15},
		{"unordered-3", data.Unordered, plotter.XYs{{X: 1, Y: 5}, {X: 0, Y: 10}, {X: 4, Y: 20}}, 3, 17.5},
		{"unordered-below", data.Unordered, plotter.XYs{{X: 1, Y: 5}, {X: 0, Y: 10}, {X: 4, Y: 20}}, -0.5, nan},
		{"unordered-above", data.Unordered, plotter.XYs{{X: 1, Y: 5}, {X: 0, Y: 10}, {X: 4, Y: 20}}, 5, nan},
		{"duplicate-x", data.Ascending, plotter.XYs{{X: 1, Y: 5}, {X: 1, Y: 10}, {X: 2, Y: 10}}, 1, 5},
		{"duplicate-between", data.Ascending, plotter.XYs{{X: 1, Y: 5}, {X: 1, Y: 10}, {X: 2, Y: 10}}, 1.25, 10},
		{"descending", data.Descending, plotter.XYs{{X: 3, Y: 8}, {X: 1, Y: 2}}, 2, 5},
		{"empty", data.Ascending, plotter.XYs{}, 2, nan},
		{"nan", data.Ascending, plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 8}}, nan, nan},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newXY(t, tc.order, tc.xys)
			got, err := FindYValue(d, 0, tc.x)
			require.NoError(t, err)
			if math.IsNaN(tc.want) {
				assert.True(t, math.IsNaN(got), "got %g, want NaN", got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindYValueOnSampledFunction(t *testing.T) {
	d, err := data.SampleFunction(func(x float64) float64 { return 3*x - 1 }, -2, 2, 9, "f")
	require.NoError(t, err)
	for _, x := range []float64{-2, -1.3, 0, 0.1, 1.75, 2} {
		got, err := FindYValue(d, 0, x)
		require.NoError(t, err)
		assert.InDelta(t, 3*x-1, got, 1e-12, "x=%g", x)
	}
}
