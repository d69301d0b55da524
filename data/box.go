package data

import (
	"errors"
	"math"

	"gonum.org/v1/plot/plotter"
)

// BoxWhisker summarises a sample as used in a box-and-whisker plot.
// MinRegular and MaxRegular are the extreme values not classified as
// outliers; they are NaN if unknown.
type BoxWhisker struct {
	X          float64 // X is the location of the item on an XY dataset.
	Mean       float64
	Median     float64
	Q1, Q3     float64
	MinRegular float64
	MaxRegular float64
	Outliers   []float64
}

// NewBoxWhisker computes the box statistics of values located at x.
// Values must not be empty and must not contain NaN or Inf.
func NewBoxWhisker(x float64, values plotter.Valuer) (BoxWhisker, error) {
	if values.Len() == 0 {
		return BoxWhisker{}, errors.New("data: box statistics of no values")
	}
	bp, err := plotter.NewBoxPlot(0, x, values)
	if err != nil {
		return BoxWhisker{}, err
	}

	sum := 0.0
	for _, v := range bp.Values {
		sum += v
	}
	b := BoxWhisker{
		X:          x,
		Mean:       sum / float64(len(bp.Values)),
		Median:     bp.Median,
		Q1:         bp.Quartile1,
		Q3:         bp.Quartile3,
		MinRegular: bp.AdjLow,
		MaxRegular: bp.AdjHigh,
	}
	for _, i := range bp.Outside {
		b.Outliers = append(b.Outliers, bp.Values[i])
	}
	return b, nil
}

// NaNBoxWhisker returns an item at x with all statistics missing.
func NaNBoxWhisker(x float64) BoxWhisker {
	nan := math.NaN()
	return BoxWhisker{X: x, Mean: nan, Median: nan, Q1: nan, Q3: nan,
		MinRegular: nan, MaxRegular: nan}
}
