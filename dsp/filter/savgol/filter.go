package savgol

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-swv/dsp/filter/fir"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Filter is a designed Savitzky-Golay smoother. It is immutable after New
// and safe for concurrent use.
type Filter struct {
	windowLength int
	polyOrder    int

	// proj holds the rows of the windowLength x windowLength least-squares
	// projection matrix. Row i maps a window of samples to the fitted
	// polynomial evaluated at window position i.
	proj [][]float64
}

// New designs a smoother for the given odd window length and polynomial order.
func New(windowLength, polyOrder int) (*Filter, error) {
	if err := validateParams(windowLength, polyOrder); err != nil {
		return nil, err
	}

	return &Filter{
		windowLength: windowLength,
		polyOrder:    polyOrder,
		proj:         projection(windowLength, polyOrder),
	}, nil
}

// projection computes H = Q1 * Q1^T where Q1 spans the columns of the
// Vandermonde matrix of the centred, unit-scaled window positions.
func projection(windowLength, polyOrder int) [][]float64 {
	half := windowLength / 2
	cols := polyOrder + 1

	scale := 1.0
	if half > 0 {
		scale = 1 / float64(half)
	}

	a := mat.NewDense(windowLength, cols, nil)
	for i := range windowLength {
		t := float64(i-half) * scale
		v := 1.0
		for j := range cols {
			a.Set(i, j, v)
			v *= t
		}
	}

	var qr mat.QR
	qr.Factorize(a)

	var q mat.Dense
	qr.QTo(&q)
	q1 := q.Slice(0, windowLength, 0, cols)

	var h mat.Dense
	h.Mul(q1, q1.T())

	rows := make([][]float64, windowLength)
	for i := range rows {
		rows[i] = mat.Row(nil, i, &h)
	}
	return rows
}

// WindowLength returns the smoothing window length in samples.
func (f *Filter) WindowLength() int { return f.windowLength }

// PolyOrder returns the fitted polynomial order.
func (f *Filter) PolyOrder() int { return f.polyOrder }

// Coefficients returns a copy of the interior smoothing kernel.
func (f *Filter) Coefficients() []float64 {
	return slices.Clone(f.proj[f.windowLength/2])
}

// Apply returns the smoothed copy of src. src is not modified.
func (f *Filter) Apply(src []float64) ([]float64, error) {
	dst := make([]float64, len(src))
	if err := f.ApplyTo(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// ApplyTo writes the smoothed src into dst. dst must be at least as long
// as src and must not alias it.
func (f *Filter) ApplyTo(dst, src []float64) error {
	n := len(src)
	w := f.windowLength
	if err := validateLength(n, w); err != nil {
		return err
	}
	if len(dst) < n {
		return fmt.Errorf("savgol: destination length %d < source length %d", len(dst), n)
	}

	centre := f.proj[w/2]
	kernel := make([]float64, w)
	for k := range w {
		kernel[k] = centre[w-1-k]
	}
	fir.New(kernel).ProcessCentered(dst, src)

	half := w / 2
	tmp := make([]float64, w)
	head := src[:w]
	tail := src[n-w:]
	for i := range half {
		dst[i] = dot(tmp, f.proj[i], head)
		r := w - half + i
		dst[n-half+i] = dot(tmp, f.proj[r], tail)
	}
	return nil
}

func dot(tmp, a, b []float64) float64 {
	vecmath.MulBlock(tmp, a, b)
	return floats.Sum(tmp)
}

// Smooth is a one-shot helper that designs a filter and applies it to src.
func Smooth(src []float64, windowLength, polyOrder int) ([]float64, error) {
	f, err := New(windowLength, polyOrder)
	if err != nil {
		return nil, err
	}
	return f.Apply(src)
}
