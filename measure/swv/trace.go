package swv

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-swv/dsp/core"
)

// DefaultSpacingTolerance is the accepted deviation of any potential step
// from the mean step, relative to the mean step.
const DefaultSpacingTolerance = 0.05

// Trace holds one sweep as two equally long channels sharing one index space.
type Trace struct {
	Potential []float64
	Current   []float64
}

// Len returns the number of samples.
func (t Trace) Len() int {
	return len(t.Potential)
}

// At returns the (potential, current) pair at index i.
func (t Trace) At(i int) (potential, current float64) {
	return t.Potential[i], t.Current[i]
}

// Clone returns a deep copy of t.
func (t Trace) Clone() Trace {
	return Trace{
		Potential: slices.Clone(t.Potential),
		Current:   slices.Clone(t.Current),
	}
}

// Validate checks that both channels have the same length, hold only finite
// values, and that the potential runs strictly monotonic with a regular step.
// A non-positive tolerance selects DefaultSpacingTolerance.
func (t Trace) Validate(spacingTolerance float64) error {
	if len(t.Potential) != len(t.Current) {
		return fmt.Errorf("%w: %d potentials, %d currents", ErrChannelLength, len(t.Potential), len(t.Current))
	}
	if ok, i := core.AllFinite(t.Potential); !ok {
		return fmt.Errorf("%w: potential[%d] = %v", ErrNonFinite, i, t.Potential[i])
	}
	if ok, i := core.AllFinite(t.Current); !ok {
		return fmt.Errorf("%w: current[%d] = %v", ErrNonFinite, i, t.Current[i])
	}

	n := len(t.Potential)
	if n < 2 {
		return nil
	}

	mean := (t.Potential[n-1] - t.Potential[0]) / float64(n-1)
	if mean == 0 {
		return fmt.Errorf("%w: potential does not advance", ErrNonMonotonic)
	}
	if spacingTolerance <= 0 {
		spacingTolerance = DefaultSpacingTolerance
	}

	for i := 1; i < n; i++ {
		step := t.Potential[i] - t.Potential[i-1]
		if step == 0 || math.Signbit(step) != math.Signbit(mean) {
			return fmt.Errorf("%w: step %g at index %d", ErrNonMonotonic, step, i)
		}
	}

	limit := spacingTolerance * math.Abs(mean)
	for i := 1; i < n; i++ {
		step := t.Potential[i] - t.Potential[i-1]
		if math.Abs(step-mean) > limit {
			return fmt.Errorf("%w: step %g at index %d, mean step %g", ErrIrregularSpacing, step, i, mean)
		}
	}
	return nil
}
