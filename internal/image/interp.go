package image

import (
	"image"
	"math"
)

// SampleBilinear performs bilinear interpolation on a grayscale image at
// pixel coordinates (x, y) relative to img.Bounds().Min, where integer
// coordinates are pixel centers.
// Coordinates outside the image are clamped to the edge.
func SampleBilinear(img *image.Gray, x, y float64) float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	x1 := x0 + 1
	y1 := y0 + 1

	// Clamp coordinates to image bounds
	x0 = clamp(x0, 0, w-1)
	y0 = clamp(y0, 0, h-1)
	x1 = clamp(x1, 0, w-1)
	y1 = clamp(y1, 0, h-1)

	v00 := float64(img.Pix[y0*img.Stride+x0])
	v10 := float64(img.Pix[y0*img.Stride+x1])
	v01 := float64(img.Pix[y1*img.Stride+x0])
	v11 := float64(img.Pix[y1*img.Stride+x1])

	return lerp2D(v00, v10, v01, v11, tx, ty)
}

// Remap builds a new image the size of src where each output pixel (x, y)
// is src sampled bilinearly at (x+dx(x,y), y+dy(x,y)). Sampled values are
// rounded to the nearest integer and clamped to [0, 255].
//
// dx and dy must match the dimensions of src; a mismatch panics.
func Remap(src *image.Gray, dx, dy *Field) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if dx.Width() != w || dx.Height() != h || !dx.SameSize(dy) {
		panic("image: displacement field does not match image size")
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))

	dxData := dx.Data()
	dyData := dy.Data()
	for y := range h {
		for x := range w {
			i := y*w + x
			v := SampleBilinear(src, float64(x)+float64(dxData[i]), float64(y)+float64(dyData[i]))
			dst.Pix[y*dst.Stride+x] = uint8(clampFloat(math.Round(v), 0, 255))
		}
	}
	return dst
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// clampFloat clamps a float64 value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
