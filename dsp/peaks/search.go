package peaks

import "math"

// MaxAttempts bounds the number of Find calls made by Search.
const MaxAttempts = 15

// SearchResult is the outcome of a successful Search.
type SearchResult struct {
	Indices    []int
	Prominence float64 // threshold that produced Indices
	Attempts   int
}

// Search calls Find with initialProminence and halves the threshold after
// every empty result, up to MaxAttempts calls. It returns the first
// non-empty set. When all attempts fail the error is an *ExhaustedError
// wrapping ErrNoExtremumFound.
func Search(x []float64, kind Kind, initialProminence float64) (SearchResult, error) {
	if !(initialProminence > 0) || math.IsInf(initialProminence, 0) {
		return SearchResult{}, ErrInvalidProminence
	}

	prominence := initialProminence
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		if idx := Find(x, kind, prominence); len(idx) > 0 {
			return SearchResult{Indices: idx, Prominence: prominence, Attempts: attempt}, nil
		}
		if attempt < MaxAttempts {
			prominence /= 2
		}
	}

	return SearchResult{}, &ExhaustedError{Kind: kind, Attempts: MaxAttempts, Prominence: prominence}
}
