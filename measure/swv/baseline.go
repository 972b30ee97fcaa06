package swv

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Baseline is the straight line current = Intercept + Slope*potential.
type Baseline struct {
	Slope     float64
	Intercept float64
}

// At evaluates the baseline at the given potential.
func (b Baseline) At(potential float64) float64 {
	return b.Intercept + b.Slope*potential
}

// FitBaseline returns the line through the (potential, current) points of
// the two bracketing maxima of w.
func FitBaseline(t Trace, w FeatureWindow) (Baseline, error) {
	if !w.Complete() {
		return Baseline{}, fmt.Errorf("%w: %s", ErrIncompleteBracket, w)
	}
	for _, idx := range []int{w.Before, w.After} {
		if idx < 0 || idx >= t.Len() {
			return Baseline{}, indexError("maximum", idx, t.Len())
		}
	}

	x := []float64{t.Potential[w.Before], t.Potential[w.After]}
	if x[0] == x[1] {
		return Baseline{}, fmt.Errorf("%w: both at %g", ErrDegenerateBaseline, x[0])
	}
	y := []float64{t.Current[w.Before], t.Current[w.After]}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return Baseline{Slope: slope, Intercept: intercept}, nil
}

// ProjectAndDifference evaluates the baseline of w at the minimum's
// potential and returns observed minus projected current. The value is
// negative when the dip lies below the baseline.
func ProjectAndDifference(t Trace, w FeatureWindow) (float64, error) {
	b, err := FitBaseline(t, w)
	if err != nil {
		return 0, err
	}
	return difference(t, w.Minimum, b)
}

func difference(t Trace, minimum int, b Baseline) (float64, error) {
	if minimum < 0 || minimum >= t.Len() {
		return 0, indexError("minimum", minimum, t.Len())
	}
	potential, current := t.At(minimum)
	return current - b.At(potential), nil
}
