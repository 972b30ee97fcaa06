package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-swv/dsp/core"
)

// Linspace returns n evenly spaced values over [start, stop], endpoints included.
func Linspace(start, stop float64, n int) []float64 {
	return core.Linspace(start, stop, n)
}

// Gaussian evaluates amplitude * exp(-(x-center)^2 / (2 sigma^2)) at every x.
func Gaussian(x []float64, center, sigma, amplitude float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - center) / sigma
		out[i] = amplitude * math.Exp(-0.5*d*d)
	}
	return out
}

// Sum adds the given equally long signals element-wise into a new slice.
func Sum(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
