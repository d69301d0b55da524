package extent

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Range

// Range is a closed real interval [Min, Max] with Min <= Max.
//
// Functions of this package never return a degenerate Range to signal "no
// data"; they report absence through an additional bool.
type Range struct {
	Min, Max float64
}

// NewRange returns the range [min, max]. It fails if min > max or if one
// of the bounds is NaN.
func NewRange(min, max float64) (Range, error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return Range{}, invalid("range bound is NaN: [%g, %g]", min, max)
	}
	if min > max {
		return Range{}, invalid("range lower bound %g above upper bound %g", min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Contains reports whether v lies in r. The bounds are included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Intersects reports whether o overlaps r. Touching r only at r.Min does
// not count, touching at r.Max does.
func (r Range) Intersects(o Range) bool {
	if o.Min <= r.Min {
		return o.Max > r.Min
	}
	return o.Min < r.Max && o.Max >= o.Min
}

// Length returns Max - Min.
func (r Range) Length() float64 { return r.Max - r.Min }

// Central returns the midpoint of r.
func (r Range) Central() float64 { return r.Min/2 + r.Max/2 }

// Constrain returns the value in r closest to v.
func (r Range) Constrain(v float64) float64 {
	switch {
	case v > r.Max:
		return r.Max
	case v < r.Min:
		return r.Min
	}
	return v
}

// ExpandToInclude returns the smallest range covering r and v.
// A NaN v leaves r unchanged.
func (r Range) ExpandToInclude(v float64) Range {
	switch {
	case v < r.Min:
		r.Min = v
	case v > r.Max:
		r.Max = v
	}
	return r
}

// Expand widens r by lowerMargin*Length() below and upperMargin*Length()
// above. Negative margins shrink r; if they would invert it the result
// collapses to the centre of the inverted bounds.
func (r Range) Expand(lowerMargin, upperMargin float64) Range {
	l := r.Length()
	lo, hi := r.Min-l*lowerMargin, r.Max+l*upperMargin
	if lo > hi {
		lo = lo/2 + hi/2
		hi = lo
	}
	return Range{Min: lo, Max: hi}
}

// Shift moves r by delta. Unless allowZeroCrossing is set a bound never
// changes its sign but sticks to 0.
func (r Range) Shift(delta float64, allowZeroCrossing bool) Range {
	if allowZeroCrossing {
		return Range{Min: r.Min + delta, Max: r.Max + delta}
	}
	return Range{Min: shiftNoZeroCrossing(r.Min, delta), Max: shiftNoZeroCrossing(r.Max, delta)}
}

func shiftNoZeroCrossing(v, delta float64) float64 {
	switch {
	case v > 0:
		return math.Max(v+delta, 0)
	case v < 0:
		return math.Min(v+delta, 0)
	}
	return v + delta
}

// Scale multiplies both bounds of r by factor which must not be negative.
func (r Range) Scale(factor float64) (Range, error) {
	if factor < 0 || math.IsNaN(factor) {
		return Range{}, invalid("negative scale factor %g", factor)
	}
	return Range{Min: r.Min * factor, Max: r.Max * factor}, nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Combine returns the smallest range covering a and b. A nil argument is
// an absent range; the result is nil only if both are.
func Combine(a, b *Range) *Range {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &Range{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// CombineIgnoringNaN works like Combine but treats NaN bounds as unset.
// The result is nil if no bound is left.
func CombineIgnoringNaN(a, b *Range) *Range {
	lo, hi := math.NaN(), math.NaN()
	for _, r := range []*Range{a, b} {
		if r == nil {
			continue
		}
		lo, hi = minIgnoringNaN(lo, r.Min), maxIgnoringNaN(hi, r.Max)
	}
	if math.IsNaN(lo) && math.IsNaN(hi) {
		return nil
	}
	return &Range{Min: lo, Max: hi}
}

func minIgnoringNaN(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Min(a, b)
}

func maxIgnoringNaN(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Max(a, b)
}

// ----------------------------------------------------------------------------
// accumulator

// accumulator folds values into a running minimum and maximum.
// NaN values are skipped.
type accumulator struct {
	min, max float64
}

func newAccumulator() accumulator {
	return accumulator{min: math.Inf(1), max: math.Inf(-1)}
}

// fold expands a to include x.
func (a *accumulator) fold(x ...float64) {
	for _, v := range x {
		a.foldMin(v)
		a.foldMax(v)
	}
}

func (a *accumulator) foldMin(v float64) {
	if v < a.min {
		a.min = v
	}
}

func (a *accumulator) foldMax(v float64) {
	if v > a.max {
		a.max = v
	}
}

// result returns the folded range; it is absent if nothing was folded.
func (a accumulator) result() (Range, bool) {
	if a.min > a.max {
		return Range{}, false
	}
	return Range{Min: a.min, Max: a.max}, true
}
