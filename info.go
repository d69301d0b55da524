package extent

// The interfaces below are implemented by datasets which know their bounds
// without iterating all items, e.g. because they keep them up to date on
// every change. The Find functions use them; the Iterate functions never
// do. The returned bool reports whether the bounds are present.

// DomainInfo provides the bounds of the x-values of a dataset.
type DomainInfo interface {
	DomainBounds(includeInterval bool) (Range, bool)
}

// RangeInfo provides the bounds of the y-values (or category values) of a
// dataset.
type RangeInfo interface {
	RangeBounds(includeInterval bool) (Range, bool)
}

// XYDomainInfo provides the x-bounds of a subset of the series.
type XYDomainInfo interface {
	VisibleDomainBounds(visible []string, includeInterval bool) (Range, bool)
}

// XYRangeInfo provides the y-bounds of a subset of the series, considering
// only items with an x-value in xRange.
type XYRangeInfo interface {
	VisibleRangeBounds(visible []string, xRange Range, includeInterval bool) (Range, bool)
}

// CategoryRangeInfo provides the value bounds of a subset of the rows.
type CategoryRangeInfo interface {
	VisibleCategoryRangeBounds(visible []string, includeInterval bool) (Range, bool)
}
