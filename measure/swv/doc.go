// Package swv extracts the gain of a square-wave voltammetry trace.
//
// A trace is an ordered sequence of (potential, current) samples from one
// sweep. The gain is the depth of the redox dip below the straight baseline
// through the two local current maxima that flank it. [Analyzer] runs the
// complete chain:
//
//	validate -> smooth -> find minima -> find maxima -> select -> project
//
// Smoothing uses a Savitzky-Golay filter on both channels, extremum search
// relaxes its prominence threshold adaptively (see dsp/peaks), the dip
// closest to a target potential is chosen and bracketed by the nearest
// maxima on either side, and the baseline through those maxima is evaluated
// at the dip.
//
// All indices in results refer to the single index space shared by the
// input trace and its smoothed copy. Every function is pure; an Analyzer
// carries configuration only and may be used from several goroutines.
package swv
