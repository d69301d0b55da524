package extent

import (
	"math"

	"github.com/vdobler/extent/data"
)

// Grouper partitions the rows of a category dataset into groups which are
// stacked separately. Group indices run from 0 to GroupCount()-1.
// data.GroupMap is the canonical implementation.
type Grouper interface {
	GroupIndex(key string) int
	GroupCount() int
}

// stack sums the positive and the negative values of one category
// separately, both starting at a base.
type stack struct {
	positive, negative float64
}

func (s *stack) add(v float64) {
	switch {
	case v > 0:
		s.positive += v
	case v < 0:
		s.negative += v
	}
}

// FindStackedRangeBounds returns the range covered by the values of d if
// the rows of each column (category) are stacked on top of base: positive
// values upwards, negative values downwards. Missing values and zeros do
// not contribute. The result is absent if d has no columns.
func FindStackedRangeBounds(d data.CategoryDataset, base float64) (Range, bool, error) {
	if isNil(d) {
		return Range{}, false, invalid("nil dataset")
	}
	acc := newAccumulator()
	rows := d.RowCount()
	for col := 0; col < d.ColumnCount(); col++ {
		s := stack{base, base}
		for row := 0; row < rows; row++ {
			s.add(d.Value(row, col))
		}
		acc.foldMin(s.negative)
		acc.foldMax(s.positive)
	}
	r, ok := acc.result()
	logger.Debug("stacked bounds", "base", base, "found", ok, "range", r)
	return r, ok, nil
}

// FindGroupedStackedRangeBounds works like FindStackedRangeBounds but
// stacks the rows of each group (as determined from the row keys by groups)
// separately. The result is the union of all group stacks and is absent if
// d holds no value at all.
func FindGroupedStackedRangeBounds(d data.CategoryDataset, groups Grouper, base float64) (Range, bool, error) {
	if isNil(d) {
		return Range{}, false, invalid("nil dataset")
	}
	if isNil(groups) {
		return Range{}, false, invalid("nil group map")
	}

	n := groups.GroupCount()
	rows := d.RowCount()
	groupOf := make([]int, rows)
	for row := range groupOf {
		g := groups.GroupIndex(d.RowKey(row))
		if g < 0 || g >= n {
			return Range{}, false, invalid("row %q in group %d, have %d groups", d.RowKey(row), g, n)
		}
		groupOf[row] = g
	}

	bounds := make([]Range, n)
	for g := range bounds {
		bounds[g] = Range{Min: base, Max: base}
	}
	stacks := make([]stack, n)
	seen := false
	for col := 0; col < d.ColumnCount(); col++ {
		for g := range stacks {
			stacks[g] = stack{base, base}
		}
		for row := 0; row < rows; row++ {
			v := d.Value(row, col)
			if math.IsNaN(v) {
				continue
			}
			seen = true
			stacks[groupOf[row]].add(v)
		}
		for g, s := range stacks {
			bounds[g].Min = math.Min(bounds[g].Min, s.negative)
			bounds[g].Max = math.Max(bounds[g].Max, s.positive)
		}
	}
	if !seen {
		return Range{}, false, nil
	}

	var union *Range
	for g := range bounds {
		union = Combine(union, &bounds[g])
	}
	if union == nil {
		return Range{}, false, nil
	}
	return *union, true, nil
}

// FindMinimumStackedRangeValue returns the lowest value reached by
// stacking the negative values of each column of d on 0. It is absent if d
// holds no value at all.
func FindMinimumStackedRangeValue(d data.CategoryDataset) (float64, bool, error) {
	r, ok, err := stackedFromZero(d)
	return r.Min, ok, err
}

// FindMaximumStackedRangeValue is the counterpart of
// FindMinimumStackedRangeValue for positive values.
func FindMaximumStackedRangeValue(d data.CategoryDataset) (float64, bool, error) {
	r, ok, err := stackedFromZero(d)
	return r.Max, ok, err
}

func stackedFromZero(d data.CategoryDataset) (Range, bool, error) {
	if isNil(d) {
		return Range{}, false, invalid("nil dataset")
	}
	r := Range{}
	seen := false
	rows := d.RowCount()
	for col := 0; col < d.ColumnCount(); col++ {
		var s stack
		for row := 0; row < rows; row++ {
			v := d.Value(row, col)
			if math.IsNaN(v) {
				continue
			}
			seen = true
			s.add(v)
		}
		r.Min = math.Min(r.Min, s.negative)
		r.Max = math.Max(r.Max, s.positive)
	}
	return r, seen, nil
}

// FindStackedXYRangeBounds returns the range covered by the y-values of d
// if the series are stacked at each x-value on top of base. The result is
// absent if d has no items.
func FindStackedXYRangeBounds(d data.TableXYDataset, base float64) (Range, bool, error) {
	if isNil(d) {
		return Range{}, false, invalid("nil dataset")
	}
	items := d.SharedItemCount()
	if items == 0 {
		return Range{}, false, nil
	}
	r := Range{Min: base, Max: base}
	series := d.SeriesCount()
	for item := 0; item < items; item++ {
		s := stack{base, base}
		for ser := 0; ser < series; ser++ {
			y := d.Y(ser, item)
			if math.IsNaN(y) {
				continue
			}
			if y > 0 {
				s.positive += y
			} else {
				s.negative += y
			}
		}
		r.Min = math.Min(r.Min, s.negative)
		r.Max = math.Max(r.Max, s.positive)
	}
	return r, true, nil
}

// CalculateStackTotal returns the sum of the non-missing y-values of all
// series of d at item.
func CalculateStackTotal(d data.TableXYDataset, item int) (float64, error) {
	if isNil(d) {
		return 0, invalid("nil dataset")
	}
	if item < 0 || item >= d.SharedItemCount() {
		return 0, invalid("item %d out of range [0, %d)", item, d.SharedItemCount())
	}
	total := 0.0
	for s := 0; s < d.SeriesCount(); s++ {
		if y := d.Y(s, item); !math.IsNaN(y) {
			total += y
		}
	}
	return total, nil
}

// FindCumulativeRangeBounds returns the range covered by the running
// totals along each row of d, starting at 0. It is absent if d holds no
// value at all.
func FindCumulativeRangeBounds(d data.CategoryDataset) (Range, bool, error) {
	if isNil(d) {
		return Range{}, false, invalid("nil dataset")
	}
	r := Range{}
	seen := false
	for row := 0; row < d.RowCount(); row++ {
		total := 0.0
		for col := 0; col < d.ColumnCount(); col++ {
			v := d.Value(row, col)
			if math.IsNaN(v) {
				continue
			}
			seen = true
			total += v
			r.Min = math.Min(r.Min, total)
			r.Max = math.Max(r.Max, total)
		}
	}
	return r, seen, nil
}
