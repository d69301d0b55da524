package extent

import (
	"math"

	"github.com/vdobler/extent/data"
)

// ----------------------------------------------------------------------------
// Domain

// FindDomainBounds returns the bounds of the x-values of d. If d implements
// DomainInfo its bounds are used, otherwise d is iterated.
func FindDomainBounds(d data.XYDataset, includeInterval bool) (Range, bool, error) {
	if isNil(d) {
		return Range{}, false, invalid("nil dataset")
	}
	if info, ok := d.(DomainInfo); ok {
		r, ok := info.DomainBounds(includeInterval)
		return r, ok, nil
	}
	return IterateDomainBounds(d, includeInterval)
}

// IterateDomainBounds iterates all items of d to find the bounds of the
// x-values. With includeInterval set the start and end x-values of
// interval data are included.
func IterateDomainBounds(d data.XYDataset, includeInterval bool) (Range, bool, error) {
	return FindBounds(d, Domain, includeInterval, nil)
}

// FindVisibleDomainBounds is FindDomainBounds restricted to the series
// with the given keys. It consults XYDomainInfo.
func FindVisibleDomainBounds(d data.XYDataset, visible []string, includeInterval bool) (Range, bool, error) {
	if err := checkVisible(d, visible); err != nil {
		return Range{}, false, err
	}
	if info, ok := d.(XYDomainInfo); ok {
		r, ok := info.VisibleDomainBounds(visible, includeInterval)
		return r, ok, nil
	}
	return IterateToFindDomainBounds(d, visible, includeInterval)
}

// IterateToFindDomainBounds is IterateDomainBounds restricted to the
// series with the given keys.
func IterateToFindDomainBounds(d data.XYDataset, visible []string, includeInterval bool) (Range, bool, error) {
	if err := checkVisible(d, visible); err != nil {
		return Range{}, false, err
	}
	return FindBounds(d, Domain, includeInterval, &Filter{Visible: visible})
}

// FindMinimumDomainValue returns the smallest x-value of d including
// intervals.
func FindMinimumDomainValue(d data.XYDataset) (float64, bool, error) {
	r, ok, err := FindDomainBounds(d, true)
	return r.Min, ok, err
}

// FindMaximumDomainValue returns the largest x-value of d including
// intervals.
func FindMaximumDomainValue(d data.XYDataset) (float64, bool, error) {
	r, ok, err := FindDomainBounds(d, true)
	return r.Max, ok, err
}

// ----------------------------------------------------------------------------
// Range of XY datasets

// FindRangeBounds returns the bounds of the y-values of d. If d implements
// RangeInfo its bounds are used, otherwise d is iterated.
func FindRangeBounds(d data.XYDataset, includeInterval bool) (Range, bool, error) {
	if isNil(d) {
		return Range{}, false, invalid("nil dataset")
	}
	if info, ok := d.(RangeInfo); ok {
		r, ok := info.RangeBounds(includeInterval)
		return r, ok, nil
	}
	return IterateRangeBounds(d, includeInterval)
}

// IterateRangeBounds iterates all items of d to find the bounds of the
// y-values.
func IterateRangeBounds(d data.XYDataset, includeInterval bool) (Range, bool, error) {
	return FindBounds(d, RangeAxis, includeInterval, nil)
}

// FindVisibleRangeBounds returns the bounds of the y-values of the series
// with the given keys, considering only items with an x-value in xRange.
// It consults XYRangeInfo.
func FindVisibleRangeBounds(d data.XYDataset, visible []string, xRange Range, includeInterval bool) (Range, bool, error) {
	if err := checkVisible(d, visible); err != nil {
		return Range{}, false, err
	}
	if info, ok := d.(XYRangeInfo); ok {
		r, ok := info.VisibleRangeBounds(visible, xRange, includeInterval)
		return r, ok, nil
	}
	return IterateToFindRangeBounds(d, visible, xRange, includeInterval)
}

func IterateToFindRangeBounds(d data.XYDataset, visible []string, xRange Range, includeInterval bool) (Range, bool, error) {
	if err := checkVisible(d, visible); err != nil {
		return Range{}, false, err
	}
	return FindBounds(d, RangeAxis, includeInterval, &Filter{Visible: visible, Window: &xRange})
}

// FindMinimumRangeValue returns the smallest y-value of d including
// intervals, lows and the like.
func FindMinimumRangeValue(d data.XYDataset) (float64, bool, error) {
	r, ok, err := FindRangeBounds(d, true)
	return r.Min, ok, err
}

// FindMaximumRangeValue returns the largest y-value of d including
// intervals, highs and the like.
func FindMaximumRangeValue(d data.XYDataset) (float64, bool, error) {
	r, ok, err := FindRangeBounds(d, true)
	return r.Max, ok, err
}

// ----------------------------------------------------------------------------
// Range of category datasets

// FindCategoryRangeBounds returns the bounds of the values of d. If d
// implements RangeInfo its bounds are used, otherwise d is iterated.
func FindCategoryRangeBounds(d data.CategoryDataset, includeInterval bool) (Range, bool, error) {
	if isNil(d) {
		return Range{}, false, invalid("nil dataset")
	}
	if info, ok := d.(RangeInfo); ok {
		r, ok := info.RangeBounds(includeInterval)
		return r, ok, nil
	}
	return IterateCategoryRangeBounds(d, includeInterval)
}

func IterateCategoryRangeBounds(d data.CategoryDataset, includeInterval bool) (Range, bool, error) {
	return FindBounds(d, RangeAxis, includeInterval, nil)
}

// FindVisibleCategoryRangeBounds returns the bounds of the values in the
// rows with the given keys. It consults CategoryRangeInfo.
func FindVisibleCategoryRangeBounds(d data.CategoryDataset, visible []string, includeInterval bool) (Range, bool, error) {
	if err := checkVisible(d, visible); err != nil {
		return Range{}, false, err
	}
	if info, ok := d.(CategoryRangeInfo); ok {
		r, ok := info.VisibleCategoryRangeBounds(visible, includeInterval)
		return r, ok, nil
	}
	return IterateToFindCategoryRangeBounds(d, visible, includeInterval)
}

func IterateToFindCategoryRangeBounds(d data.CategoryDataset, visible []string, includeInterval bool) (Range, bool, error) {
	if err := checkVisible(d, visible); err != nil {
		return Range{}, false, err
	}
	return FindBounds(d, RangeAxis, includeInterval, &Filter{Visible: visible})
}

func FindMinimumCategoryRangeValue(d data.CategoryDataset) (float64, bool, error) {
	r, ok, err := FindCategoryRangeBounds(d, true)
	return r.Min, ok, err
}

func FindMaximumCategoryRangeValue(d data.CategoryDataset) (float64, bool, error) {
	r, ok, err := FindCategoryRangeBounds(d, true)
	return r.Max, ok, err
}

// ----------------------------------------------------------------------------
// Z

// FindZBounds returns the bounds of the z-values of d.
func FindZBounds(d data.XYZDataset, includeInterval bool) (Range, bool, error) {
	return IterateZBounds(d, includeInterval)
}

func IterateZBounds(d data.XYZDataset, includeInterval bool) (Range, bool, error) {
	return FindBounds(d, ZAxis, includeInterval, nil)
}

// FindVisibleZBounds returns the bounds of the z-values of the series with
// the given keys, considering only items with an x-value in xRange.
func FindVisibleZBounds(d data.XYZDataset, visible []string, xRange Range, includeInterval bool) (Range, bool, error) {
	if err := checkVisible(d, visible); err != nil {
		return Range{}, false, err
	}
	return FindBounds(d, ZAxis, includeInterval, &Filter{Visible: visible, Window: &xRange})
}

// ----------------------------------------------------------------------------
// Emptiness

// IsEmpty reports whether d is nil or has no items at all.
func IsEmpty(d data.XYDataset) bool {
	if isNil(d) {
		return true
	}
	for s := 0; s < d.SeriesCount(); s++ {
		if d.ItemCount(s) > 0 {
			return false
		}
	}
	return true
}

// IsEmptyCategory reports whether d is nil or has no cell with a value.
func IsEmptyCategory(d data.CategoryDataset) bool {
	if isNil(d) {
		return true
	}
	for r := 0; r < d.RowCount(); r++ {
		for c := 0; c < d.ColumnCount(); c++ {
			if !math.IsNaN(d.Value(r, c)) {
				return false
			}
		}
	}
	return true
}

func checkVisible(d any, visible []string) error {
	if isNil(d) {
		return invalid("nil dataset")
	}
	if visible == nil {
		return invalid("nil list of visible keys")
	}
	return nil
}
