// Package peaks locates local extrema in sampled data.
//
// [Find] returns the indices of local maxima (or minima, by searching the
// negated data) whose topographic prominence reaches a threshold. The
// prominence of a peak is its height above the higher of the two lowest
// points reached when walking away from it on either side until a higher
// sample or the data boundary is met. Flat tops count as one peak located
// at the middle of the plateau.
//
// [Search] wraps Find in a bounded loop that halves the prominence
// threshold until a usable set is found, for signals whose feature
// amplitude is not known in advance.
//
// Both functions are pure: the input slice is never modified.
package peaks
