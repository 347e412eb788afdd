package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders text to a destination image.
// Position (x, y) is the top-left layout origin, the same frame Face.Bounds
// reports in. Glyphs that fall outside dst are clipped.
func Draw(dst draw.Image, text string, face Face, x, y float64, col color.Color) error {
	if text == "" || face == nil {
		return nil
	}

	sf, ok := face.(*sourceFace)
	if !ok {
		return ErrUnsupportedFace
	}

	otFace, err := sf.source.newFace(sf.size)
	if err != nil {
		return err
	}
	defer func() {
		_ = otFace.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y) + otFace.Metrics().Ascent,
		},
	}
	d.DrawString(text)

	return nil
}

// RenderCentered draws text in white on a black width x height grayscale
// canvas. The origin is ((width-w)/2, (height-h)/2) where w and h are the
// right and bottom edges of the ink box from Face.Bounds. The origin may be
// negative when the glyph is larger than the canvas.
//
// A rune the font has no glyph for renders as the font's .notdef box.
func RenderCentered(text string, face Face, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidCanvas
	}

	canvas := image.NewGray(image.Rect(0, 0, width, height))

	b := face.Bounds(text)
	x := (float64(width) - b.MaxX) / 2
	y := (float64(height) - b.MaxY) / 2

	if err := Draw(canvas, text, face, x, y, color.Gray{Y: 255}); err != nil {
		return nil, err
	}
	return canvas, nil
}
