// Package image provides the scalar fields and grayscale sampling used by
// the distortion engine, plus JPEG output.
package image

import (
	"errors"
	"math/rand/v2"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")
)

// Field is a dense row-major grid of float32 values, one per pixel.
// Displacement fields and their blurred intermediates are Fields.
type Field struct {
	data   []float32
	width  int
	height int
}

// NewField creates a zero-filled field with the given dimensions.
func NewField(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Field{
		data:   make([]float32, width*height),
		width:  width,
		height: height,
	}, nil
}

// NewUniformField creates a field whose entries are drawn uniformly from
// [-1, 1) using rng.
func NewUniformField(width, height int, rng *rand.Rand) (*Field, error) {
	f, err := NewField(width, height)
	if err != nil {
		return nil, err
	}
	for i := range f.data {
		f.data[i] = float32(rng.Float64()*2 - 1)
	}
	return f, nil
}

// Bounds returns the field dimensions.
func (f *Field) Bounds() (width, height int) {
	return f.width, f.height
}

// Width returns the field width.
func (f *Field) Width() int { return f.width }

// Height returns the field height.
func (f *Field) Height() int { return f.height }

// Data returns the underlying row-major values.
func (f *Field) Data() []float32 { return f.data }

// At returns the value at (x, y). Out-of-range coordinates return 0.
func (f *Field) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return f.data[y*f.width+x]
}

// Set stores v at (x, y). Out-of-range coordinates are ignored.
func (f *Field) Set(x, y int, v float32) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.data[y*f.width+x] = v
}

// Scale multiplies every value by k in place.
func (f *Field) Scale(k float32) {
	for i := range f.data {
		f.data[i] *= k
	}
}

// SameSize reports whether f and o have identical dimensions.
func (f *Field) SameSize(o *Field) bool {
	return f.width == o.width && f.height == o.height
}

// Clone creates a deep copy of the field.
func (f *Field) Clone() *Field {
	data := make([]float32, len(f.data))
	copy(data, f.data)
	return &Field{data: data, width: f.width, height: f.height}
}
