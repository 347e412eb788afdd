package text

import (
	"golang.org/x/image/font"
)

// Face represents a font face at a specific size.
// This is a lightweight object that can be created from a FontSource.
type Face interface {
	// Bounds returns the ink box of text relative to the top-left layout
	// origin: X from the initial pen position, Y from the top of the
	// ascender. An empty string has an empty box at the origin.
	Bounds(text string) Rect

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
}

// Bounds implements Face.Bounds.
func (f *sourceFace) Bounds(text string) Rect {
	if text == "" {
		return Rect{}
	}

	otFace, err := f.source.newFace(f.size)
	if err != nil {
		return Rect{}
	}
	defer func() {
		_ = otFace.Close()
	}()

	b, _ := font.BoundString(otFace, text)
	ascent := fixedToFloat64(otFace.Metrics().Ascent)

	return Rect{
		MinX: fixedToFloat64(b.Min.X),
		MinY: fixedToFloat64(b.Min.Y) + ascent,
		MaxX: fixedToFloat64(b.Max.X),
		MaxY: fixedToFloat64(b.Max.Y) + ascent,
	}
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// private implements the Face interface.
func (f *sourceFace) private() {}
