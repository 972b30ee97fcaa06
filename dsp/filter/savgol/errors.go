package savgol

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSmoothingParameters is returned for a window that is not a
	// positive odd number or a polynomial order outside [0, window).
	ErrInvalidSmoothingParameters = errors.New("savgol: invalid smoothing parameters")

	// ErrInsufficientSamples is returned when the input is shorter than the window.
	ErrInsufficientSamples = errors.New("savgol: insufficient samples")
)

func validateParams(windowLength, polyOrder int) error {
	if windowLength < 1 || windowLength%2 == 0 {
		return fmt.Errorf("%w: window length must be a positive odd number: %d",
			ErrInvalidSmoothingParameters, windowLength)
	}
	if polyOrder < 0 {
		return fmt.Errorf("%w: polynomial order must be >= 0: %d",
			ErrInvalidSmoothingParameters, polyOrder)
	}
	if polyOrder >= windowLength {
		return fmt.Errorf("%w: polynomial order %d must be less than window length %d",
			ErrInvalidSmoothingParameters, polyOrder, windowLength)
	}
	return nil
}

func validateLength(n, windowLength int) error {
	if n < windowLength {
		return fmt.Errorf("%w: %d samples, window length %d", ErrInsufficientSamples, n, windowLength)
	}
	return nil
}
