package swv

import (
	"fmt"

	"github.com/cwbudde/algo-swv/dsp/filter/savgol"
)

// Smooth applies the same Savitzky-Golay filter to the potential and the
// current channel and returns a new trace of identical length. The
// potential channel is smoothed too so both axes stay aligned sample for
// sample; a linear sweep passes through unchanged for any polyOrder >= 1.
func Smooth(t Trace, windowLength, polyOrder int) (Trace, error) {
	if len(t.Potential) != len(t.Current) {
		return Trace{}, fmt.Errorf("%w: %d potentials, %d currents", ErrChannelLength, len(t.Potential), len(t.Current))
	}

	f, err := savgol.New(windowLength, polyOrder)
	if err != nil {
		return Trace{}, err
	}

	potential, err := f.Apply(t.Potential)
	if err != nil {
		return Trace{}, err
	}
	current, err := f.Apply(t.Current)
	if err != nil {
		return Trace{}, err
	}

	return Trace{Potential: potential, Current: current}, nil
}
