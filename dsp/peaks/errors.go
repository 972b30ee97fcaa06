package peaks

import (
	"errors"
	"fmt"
)

var (
	// ErrNoExtremumFound is returned by Search when every attempt came back empty.
	ErrNoExtremumFound = errors.New("peaks: no extremum found")

	// ErrInvalidProminence is returned for a non-positive or non-finite threshold.
	ErrInvalidProminence = errors.New("peaks: prominence must be finite and > 0")
)

// ExhaustedError reports a Search that ran out of attempts.
// It unwraps to ErrNoExtremumFound.
type ExhaustedError struct {
	Kind       Kind
	Attempts   int
	Prominence float64 // threshold of the last attempt
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%v: %s search gave up after %d attempts (last prominence %g)",
		ErrNoExtremumFound, e.Kind, e.Attempts, e.Prominence)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrNoExtremumFound
}
