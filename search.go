package extent

import (
	"math"

	"github.com/vdobler/extent/data"
)

// FindItemIndicesForX returns the indices of the two items in series of d
// whose x-values bracket x. An item with exactly x yields (i, i). If x is
// outside the x-values of the series the result is (-1, -1).
//
// The declared domain order of d selects the search: a binary search for
// ascending or descending data and a linear scan for the first crossing of
// x otherwise. Ordered searches return the index of the smaller x-value
// first.
func FindItemIndicesForX(d data.XYDataset, series int, x float64) (lo, hi int, err error) {
	if isNil(d) {
		return -1, -1, invalid("nil dataset")
	}
	if series < 0 || series >= d.SeriesCount() {
		return -1, -1, invalid("series %d out of range [0, %d)", series, d.SeriesCount())
	}
	if math.IsNaN(x) {
		return -1, -1, nil
	}

	n := d.ItemCount(series)
	xAt := func(i int) float64 { return d.X(series, i) }
	switch {
	case n == 0:
		return -1, -1, nil
	case n == 1:
		if xAt(0) == x {
			return 0, 0, nil
		}
		return -1, -1, nil
	}

	switch data.DomainOrderOf(d) {
	case data.Ascending:
		lo, hi = searchAscending(xAt, n, x)
	case data.Descending:
		lo, hi = searchDescending(xAt, n, x)
	default:
		lo, hi = scan(xAt, n, x)
	}
	return lo, hi, nil
}

func searchAscending(xAt func(int) float64, n int, x float64) (int, int) {
	low, high := 0, n-1
	switch lv, hv := xAt(low), xAt(high); {
	case x < lv || x > hv:
		return -1, -1
	case x == lv:
		return low, low
	case x == hv:
		return high, high
	}
	for high-low > 1 {
		mid := (low + high) / 2
		mv := xAt(mid)
		if mv == x {
			return mid, mid
		}
		if mv < x {
			low = mid
		} else {
			high = mid
		}
	}
	return low, high
}

// searchDescending is searchAscending mirrored: item 0 holds the largest x.
func searchDescending(xAt func(int) float64, n int, x float64) (int, int) {
	big, small := 0, n-1
	switch bv, sv := xAt(big), xAt(small); {
	case x > bv || x < sv:
		return -1, -1
	case x == bv:
		return big, big
	case x == sv:
		return small, small
	}
	for small-big > 1 {
		mid := (big + small) / 2
		mv := xAt(mid)
		if mv == x {
			return mid, mid
		}
		if mv > x {
			big = mid
		} else {
			small = mid
		}
	}
	return small, big
}

// scan returns the first exact match or crossing of x, in either
// direction.
func scan(xAt func(int) float64, n int, x float64) (int, int) {
	prev := xAt(0)
	if prev == x {
		return 0, 0
	}
	for i := 1; i < n; i++ {
		next := xAt(i)
		if next == x {
			return i, i
		}
		if (x > prev && x < next) || (x < prev && x > next) {
			return i - 1, i
		}
		prev = next
	}
	return -1, -1
}

// FindYValue returns the y-value of series in d at x, linearly
// interpolated between the bracketing items. The result is NaN if x is
// outside the series.
func FindYValue(d data.XYDataset, series int, x float64) (float64, error) {
	lo, hi, err := FindItemIndicesForX(d, series, x)
	if err != nil {
		return math.NaN(), err
	}
	if lo == -1 {
		return math.NaN(), nil
	}
	if lo == hi {
		return d.Y(series, lo), nil
	}
	x0, x1 := d.X(series, lo), d.X(series, hi)
	y0, y1 := d.Y(series, lo), d.Y(series, hi)
	return y0 + (y1-y0)*(x-x0)/(x1-x0), nil
}
