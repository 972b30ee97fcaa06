package testutil

import (
	"slices"
	"testing"
)

// RequireIndices fails t unless got and want hold the same indices in the same order.
func RequireIndices(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("indices = %v, want %v", got, want)
	}
}
