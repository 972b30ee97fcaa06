package fir

import "slices"

// Filter implements a direct-form FIR filter using a circular-buffer delay line.
type Filter struct {
	coeffs []float64
	delay  []float64
	pos    int
}

// New creates a FIR filter with a copy of coeffs as impulse response.
func New(coeffs []float64) *Filter {
	return &Filter{
		coeffs: slices.Clone(coeffs),
		delay:  make([]float64, len(coeffs)),
	}
}

// ProcessSample filters one input sample using direct convolution
// with a circular delay line.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	f.delay[f.pos] = x
	var y float64
	n := len(f.coeffs)
	p := f.pos
	for k := range n {
		y += f.coeffs[k] * f.delay[p]
		p--
		if p < 0 {
			p = n - 1
		}
	}
	f.pos++
	if f.pos >= n {
		f.pos = 0
	}
	return y
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// ProcessCentered runs src through the filter and compensates the group
// delay of an odd-length linear-phase kernel, so that
//
//	dst[i] = sum_{k=0}^{N-1} h[N-1-k] * src[i-D+k],  D = (N-1)/2
//
// for every i in [D, len(src)-D). Samples closer than D to either end are
// left untouched; the caller decides how edges are treated. The delay line
// is reset before and after the call. It reports false when the kernel
// length is even or src is shorter than the kernel.
func (f *Filter) ProcessCentered(dst, src []float64) bool {
	n := len(f.coeffs)
	if n%2 == 0 || len(src) < n || len(dst) < len(src) {
		return false
	}
	d := (n - 1) / 2

	f.Reset()
	for i, x := range src {
		y := f.ProcessSample(x)
		if i >= n-1 {
			dst[i-d] = y
		}
	}
	f.Reset()
	return true
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	clear(f.delay)
	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// GroupDelay returns the delay in samples of a linear-phase kernel of this length.
func (f *Filter) GroupDelay() float64 {
	return float64(f.Order()) / 2
}

// Coefficients returns a copy of the impulse response.
func (f *Filter) Coefficients() []float64 {
	return slices.Clone(f.coeffs)
}
