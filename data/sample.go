package data

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// SampleFunction evaluates f at samples evenly spaced x-values from start
// to end (both included) and returns the result as a one-series ascending
// XYCollection under key.
func SampleFunction(f func(float64) float64, start, end float64, samples int, key string) (*XYCollection, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil function", ErrInvalidArgument)
	}
	if samples < 2 {
		return nil, fmt.Errorf("%w: %d samples, need at least 2", ErrInvalidArgument, samples)
	}
	if !(start < end) {
		return nil, fmt.Errorf("%w: start %g not below end %g", ErrInvalidArgument, start, end)
	}

	xys := make(plotter.XYs, samples)
	step := (end - start) / float64(samples-1)
	for i := range xys {
		x := start + step*float64(i)
		if i == samples-1 {
			x = end
		}
		xys[i].X, xys[i].Y = x, f(x)
	}

	c := NewXYCollection(Ascending)
	if err := c.Add(key, xys); err != nil {
		return nil, err
	}
	return c, nil
}
