// Package residual summarises the difference between a raw trace and its
// smoothed version. A good smoother leaves a residual that is small, centred
// on zero and crosses zero often; a window that is too wide shows up as a
// large, slowly varying residual around the features it flattened.
package residual

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats holds residual statistics of raw - smoothed.
type Stats struct {
	Length        int
	Mean          float64 // smoother bias
	RMS           float64
	StdDev        float64 // population standard deviation
	Peak          float64 // max |residual|
	PeakPos       int
	ZeroCrossings int
}

// Calculate computes the statistics of raw - smoothed. Both slices must have
// the same length.
func Calculate(raw, smoothed []float64) (Stats, error) {
	if len(raw) != len(smoothed) {
		return Stats{}, fmt.Errorf("residual: length mismatch: raw %d, smoothed %d", len(raw), len(smoothed))
	}
	n := len(raw)
	if n == 0 {
		return Stats{PeakPos: -1}, nil
	}

	r := make([]float64, n)
	floats.SubTo(r, raw, smoothed)

	mean := floats.Sum(r) / float64(n)
	rms := floats.Norm(r, 2) / math.Sqrt(float64(n))

	abs := make([]float64, n)
	for i, v := range r {
		abs[i] = math.Abs(v)
	}
	pos := floats.MaxIdx(abs)

	return Stats{
		Length:        n,
		Mean:          mean,
		RMS:           rms,
		StdDev:        math.Sqrt(math.Max(rms*rms-mean*mean, 0)),
		Peak:          abs[pos],
		PeakPos:       pos,
		ZeroCrossings: zeroCrossings(r),
	}, nil
}

func zeroCrossings(x []float64) int {
	var count int
	for i := 1; i < len(x); i++ {
		if x[i-1]*x[i] < 0 {
			count++
		}
	}
	return count
}

// SNR returns 20*log10(|amplitude| / RMS). It is +Inf for a zero residual
// and -Inf for a zero amplitude.
func (s Stats) SNR(amplitude float64) float64 {
	a := math.Abs(amplitude)
	switch {
	case a == 0:
		return math.Inf(-1)
	case s.RMS == 0:
		return math.Inf(1)
	}
	return 20 * math.Log10(a/s.RMS)
}
