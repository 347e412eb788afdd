package filter

import (
	"math"
	"sync"
)

// DefaultTruncate is the number of standard deviations a Gaussian kernel
// extends on each side of its center.
const DefaultTruncate = 4.0

// GaussianKernel generates a 1D Gaussian kernel with standard deviation
// sigma. The kernel is normalized so all values sum to 1.0.
//
// The half width is int(truncate*sigma + 0.5), giving a kernel of size
// 2*halfWidth + 1.
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma, truncate float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := KernelRadius(sigma, truncate)
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// Gaussian formula: G(x) = exp(-x²/(2σ²)) / (σ√(2π))
	// The constant is dropped since we normalize the sum to 1
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)
	vals := make([]float64, size)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		vals[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += vals[i]
	}

	for i, v := range vals {
		kernel[i] = float32(v / sum)
	}

	return kernel
}

// KernelRadius returns the half width of a Gaussian kernel.
func KernelRadius(sigma, truncate float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(truncate*sigma + 0.5)
}

// kernelKey identifies a cached kernel. Values are quantized to 0.01.
type kernelKey struct {
	sigma    int
	truncate int
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[kernelKey][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[kernelKey][]float32),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(sigma, truncate float64) []float32 {
	key := kernelKey{sigma: int(sigma * 100), truncate: int(truncate * 100)}

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(sigma, truncate)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel.
// The distortion engine draws sigma from a handful of integers, so the
// cache stays small.
func CachedGaussianKernel(sigma, truncate float64) []float32 {
	return defaultKernelCache.get(sigma, truncate)
}
