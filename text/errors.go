package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidCanvas is returned when a canvas dimension is not positive.
	ErrInvalidCanvas = errors.New("text: invalid canvas size")

	// ErrUnsupportedFace is returned when a Face was not created by
	// FontSource.Face.
	ErrUnsupportedFace = errors.New("text: face cannot be rasterized")
)

// MissingGlyphError reports runes a font has no cmap entry for.
// Rendering still succeeds with the font's .notdef glyph; callers decide
// whether this is worth surfacing.
type MissingGlyphError struct {
	Font  string
	Runes []rune
}

func (e *MissingGlyphError) Error() string {
	return "text: font " + e.Font + " has no glyph for " + string(e.Runes)
}
