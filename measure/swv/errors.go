package swv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-swv/dsp/filter/savgol"
	"github.com/cwbudde/algo-swv/dsp/peaks"
)

// Errors from the lower layers, re-exported so callers can match every
// failure kind against this package.
var (
	ErrInvalidSmoothingParameters = savgol.ErrInvalidSmoothingParameters
	ErrInsufficientSamples        = savgol.ErrInsufficientSamples
	ErrNoExtremumFound            = peaks.ErrNoExtremumFound
	ErrInvalidProminence          = peaks.ErrInvalidProminence
)

var (
	ErrChannelLength    = errors.New("swv: potential and current lengths differ")
	ErrNonFinite        = errors.New("swv: non-finite sample")
	ErrNonMonotonic     = errors.New("swv: potential is not strictly monotonic")
	ErrIrregularSpacing = errors.New("swv: potential spacing is irregular")

	ErrInvalidTarget      = errors.New("swv: target potential must be finite")
	ErrNoMinimumAvailable = errors.New("swv: no minimum available")
	ErrIndexOutOfRange    = errors.New("swv: index out of range")
	ErrIncompleteBracket  = errors.New("swv: minimum is not bracketed by two maxima")
	ErrDegenerateBaseline = errors.New("swv: bracketing maxima share the same potential")
)

// StageError reports the pipeline stage that failed. It unwraps to the
// stage's own error, so errors.Is matches the original kind.
type StageError struct {
	// Stage is the state the pipeline failed to reach.
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("swv: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func indexError(name string, idx, n int) error {
	return fmt.Errorf("%w: %s index %d, trace length %d", ErrIndexOutOfRange, name, idx, n)
}
