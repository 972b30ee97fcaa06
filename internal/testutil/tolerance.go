package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-swv/dsp/core"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair differs by at most eps. eps == 0 demands exact equality.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps || math.IsNaN(d) {
			t.Fatalf("[%d]: got %v, want %v (|diff| %g > %g)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireNearlyEqual fails t unless got and want agree within eps in the
// mixed absolute/relative sense of core.NearlyEqual.
func RequireNearlyEqual(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if !core.NearlyEqual(got, want, eps) {
		t.Fatalf("%s = %v, want %v (eps %g)", name, got, want, eps)
	}
}

// RequireFinite fails t at the first NaN or Inf in data.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	if ok, i := core.AllFinite(data); !ok {
		t.Fatalf("[%d]: non-finite value %v", i, data[i])
	}
}

// MaxAbsDiff returns the largest element-wise distance between a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("testutil: length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}
