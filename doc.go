// Package extent computes the extent of numeric data: the bounds of the
// x-, y- and z-values of the datasets defined in package data, stacked
// bounds and interpolated y-values.
//
// It tries to play well with gonum.org/v1/plot: datasets are built from
// plotter data and XYRanger and CategoryRanger turn a dataset into a
// plot.DataRanger.
//
// Bounds
//
// A bound computation walks all items of a dataset (optionally restricted
// by a Filter to some series and an x-window) and folds their values into
// a minimum and a maximum. Missing values (NaN) are skipped. If nothing
// was folded the result is absent: all functions report this through an
// additional bool and never through a degenerate Range.
//
// How an item is folded depends on the capabilities of the dataset and the
// includeInterval flag. On the range axis the following paths exist, the
// first applicable one wins:
//   - BoxWhiskerPath   min and max regular value
//   - HighLowPath      low for the minimum, high for the maximum
//   - MultiValuePath   all values of a cell
//   - StatisticalPath  mean -/+ standard deviation
//   - IntervalPath     central value, start and end
//   - PlainPath        the central value
// The domain and the z axis know only the interval and the plain path.
// Without includeInterval the plain path is used.
//
// Stacking
//
// Stacked bounds sum the positive and the negative values of a category
// (or of an x-value of a TableXYDataset) separately before folding. Rows
// can be stacked in several groups, see FindGroupedStackedRangeBounds.
//
// Errors
//
// Violated call contracts like a nil dataset are reported as errors
// wrapping ErrInvalidArgument. Degenerate data is never an error.
//
// Debugging
//
// Use SetLogger to receive a debug record for each bound computation.
package extent
