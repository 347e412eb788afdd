package filter

import "testing"

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		name     string
		sigma    float64
		truncate float64
		wantSize int
	}{
		{"zero sigma", 0, DefaultTruncate, 1},
		{"negative sigma", -2, DefaultTruncate, 1},
		{"sigma 1", 1, DefaultTruncate, 9},
		{"sigma 5", 5, DefaultTruncate, 41},
		{"sigma 6", 6, DefaultTruncate, 49},
		{"sigma 5 truncate 3", 5, 3, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := GaussianKernel(tt.sigma, tt.truncate)
			if len(k) != tt.wantSize {
				t.Fatalf("len = %d, want %d", len(k), tt.wantSize)
			}
			if s := sum32(k); absf(s-1) > 1e-5 {
				t.Errorf("sum = %v, want 1", s)
			}

			// Symmetric and peaked at the center.
			c := len(k) / 2
			for i := 0; i < c; i++ {
				if k[i] != k[len(k)-1-i] {
					t.Errorf("k[%d] = %v != k[%d] = %v", i, k[i], len(k)-1-i, k[len(k)-1-i])
				}
				if k[i] > k[i+1] {
					t.Errorf("kernel not increasing towards center at %d", i)
				}
			}
		})
	}
}

func TestKernelRadius(t *testing.T) {
	tests := []struct {
		sigma, truncate float64
		want            int
	}{
		{0, 4, 0},
		{5, 4, 20},
		{6, 4, 24},
		{1.2, 4, 5},
		{0.1, 4, 0},
	}
	for _, tt := range tests {
		if got := KernelRadius(tt.sigma, tt.truncate); got != tt.want {
			t.Errorf("KernelRadius(%v, %v) = %d, want %d", tt.sigma, tt.truncate, got, tt.want)
		}
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a := CachedGaussianKernel(5, DefaultTruncate)
	b := CachedGaussianKernel(5, DefaultTruncate)
	if &a[0] != &b[0] {
		t.Error("expected the cached kernel to be reused")
	}

	c := CachedGaussianKernel(5, 3)
	if len(c) == len(a) {
		t.Error("different truncation must not share a cache entry")
	}
}

func TestKernelCacheEviction(t *testing.T) {
	c := newKernelCache(4)
	for i := 1; i <= 10; i++ {
		c.get(float64(i), DefaultTruncate)
		if len(c.cache) > 4 {
			t.Fatalf("cache grew to %d entries, max 4", len(c.cache))
		}
	}
}
