package filter

import (
	"github.com/gogpu/hangulgen/internal/image"
)

// Boundary selects how samples outside a field are produced.
type Boundary uint8

const (
	// BoundaryConstant treats samples outside the field as zero.
	BoundaryConstant Boundary = iota

	// BoundaryNearest repeats the nearest edge value (edge extension).
	BoundaryNearest
)

// String returns a string representation of the boundary mode.
func (b Boundary) String() string {
	switch b {
	case BoundaryConstant:
		return "Constant"
	case BoundaryNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// BlurFilter applies separable Gaussian blur to a scalar field.
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*(rx+ry)) complexity instead of O(w*h*rx*ry).
type BlurFilter struct {
	// SigmaX is the horizontal standard deviation in pixels.
	SigmaX float64

	// SigmaY is the vertical standard deviation in pixels.
	SigmaY float64

	// Truncate is the kernel half width in standard deviations.
	Truncate float64

	// Boundary selects the handling of samples outside the field.
	Boundary Boundary
}

// NewBlurFilter creates a blur filter with equal sigma in both directions,
// DefaultTruncate and BoundaryConstant.
func NewBlurFilter(sigma float64) *BlurFilter {
	return NewBlurFilterXY(sigma, sigma)
}

// NewBlurFilterXY creates a blur filter with different X and Y sigmas.
func NewBlurFilterXY(sigmaX, sigmaY float64) *BlurFilter {
	return &BlurFilter{
		SigmaX:   sigmaX,
		SigmaY:   sigmaY,
		Truncate: DefaultTruncate,
		Boundary: BoundaryConstant,
	}
}

// Apply blurs src and returns a new field of the same size.
// The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: convolve each row with 1D kernel
//  2. Vertical pass: convolve each column with 1D kernel
func (f *BlurFilter) Apply(src *image.Field) *image.Field {
	tmp := src.Clone()
	if f.SigmaX > 0 {
		blurHorizontal(src, tmp, CachedGaussianKernel(f.SigmaX, f.Truncate), f.Boundary)
	}

	dst := tmp.Clone()
	if f.SigmaY > 0 {
		blurVertical(tmp, dst, CachedGaussianKernel(f.SigmaY, f.Truncate), f.Boundary)
	}
	return dst
}

// blurHorizontal applies 1D horizontal convolution from src into dst.
func blurHorizontal(src, dst *image.Field, kernel []float32, boundary Boundary) {
	halfKernel := len(kernel) / 2
	width, height := src.Bounds()
	srcData := src.Data()
	dstData := dst.Data()

	for y := 0; y < height; y++ {
		row := srcData[y*width : (y+1)*width]

		for x := 0; x < width; x++ {
			var sum float32

			for k, weight := range kernel {
				kx, ok := resolve(x+k-halfKernel, width, boundary)
				if !ok {
					continue
				}
				sum += row[kx] * weight
			}

			dstData[y*width+x] = sum
		}
	}
}

// blurVertical applies 1D vertical convolution from src into dst.
func blurVertical(src, dst *image.Field, kernel []float32, boundary Boundary) {
	halfKernel := len(kernel) / 2
	width, height := src.Bounds()
	srcData := src.Data()
	dstData := dst.Data()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32

			for k, weight := range kernel {
				ky, ok := resolve(y+k-halfKernel, height, boundary)
				if !ok {
					continue
				}
				sum += srcData[ky*width+x] * weight
			}

			dstData[y*width+x] = sum
		}
	}
}

// resolve maps a sample index to a valid index in [0, n).
// It reports false when the sample contributes zero.
func resolve(i, n int, boundary Boundary) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	if boundary == BoundaryConstant {
		return 0, false
	}
	// Clamp to source bounds (edge extension)
	if i < 0 {
		return 0, true
	}
	return n - 1, true
}
