package filter

import (
	"testing"

	"github.com/gogpu/hangulgen/internal/image"
)

// Test helper functions shared across filter tests.

// constantField creates a w x h field filled with v.
func constantField(t *testing.T, w, h int, v float32) *image.Field {
	t.Helper()
	f, err := image.NewField(w, h)
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}
	for i := range f.Data() {
		f.Data()[i] = v
	}
	return f
}

// sum32 returns the sum of a float32 slice.
func sum32(vals []float32) float64 {
	var s float64
	for _, v := range vals {
		s += float64(v)
	}
	return s
}

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
