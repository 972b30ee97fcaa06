package swv

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-swv/dsp/core"
)

// NoIndex marks an absent bracket in a FeatureWindow.
const NoIndex = -1

// FeatureWindow is the dip chosen for gain computation together with the
// nearest maxima before and after it. Before < Minimum < After whenever
// both brackets are present.
type FeatureWindow struct {
	Minimum int
	Before  int
	After   int
}

// Complete reports whether both brackets are present.
func (w FeatureWindow) Complete() bool {
	return w.Before != NoIndex && w.After != NoIndex
}

// MostRelevantMinimum returns the minimum whose potential is closest to
// target. Ties go to the first candidate in minima order.
func MostRelevantMinimum(t Trace, minima []int, target float64) (int, error) {
	if !core.IsFinite(target) {
		return NoIndex, fmt.Errorf("%w: %v", ErrInvalidTarget, target)
	}
	if len(minima) == 0 {
		return NoIndex, ErrNoMinimumAvailable
	}

	dist := make([]float64, len(minima))
	for i, idx := range minima {
		if idx < 0 || idx >= t.Len() {
			return NoIndex, indexError("minimum", idx, t.Len())
		}
		dist[i] = math.Abs(t.Potential[idx] - target)
	}
	return minima[floats.MinIdx(dist)], nil
}

// NearestMaxima returns the greatest maximum index below minimum and the
// smallest above it. Either is NoIndex when no such maximum exists. The
// maxima slice is not modified.
func NearestMaxima(maxima []int, minimum int) (before, after int) {
	sorted := slices.Clone(maxima)
	slices.Sort(sorted)

	before, after = NoIndex, NoIndex
	for _, m := range sorted {
		if m < minimum {
			before = m
			continue
		}
		if m > minimum {
			after = m
			break
		}
	}
	return before, after
}

// SelectFeature picks the minimum closest to target and brackets it with
// the nearest maxima.
func SelectFeature(t Trace, minima, maxima []int, target float64) (FeatureWindow, error) {
	minimum, err := MostRelevantMinimum(t, minima, target)
	if err != nil {
		return FeatureWindow{Minimum: NoIndex, Before: NoIndex, After: NoIndex}, err
	}

	for _, m := range maxima {
		if m < 0 || m >= t.Len() {
			return FeatureWindow{Minimum: NoIndex, Before: NoIndex, After: NoIndex}, indexError("maximum", m, t.Len())
		}
	}

	before, after := NearestMaxima(maxima, minimum)
	return FeatureWindow{Minimum: minimum, Before: before, After: after}, nil
}

func (w FeatureWindow) String() string {
	return fmt.Sprintf("min=%d before=%s after=%s", w.Minimum, optIndex(w.Before), optIndex(w.After))
}

func optIndex(i int) string {
	if i == NoIndex {
		return "none"
	}
	return fmt.Sprint(i)
}
