package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Coverage answers cmap queries for a FontSource using go-text/typesetting.
// It reads the cmap separately from the rasterizer, so a font whose cmap the
// rasterizer silently maps to .notdef is still reported.
type Coverage struct {
	name string
	font *font.Font
}

// NewCoverage parses the font data of source for cmap lookups.
func NewCoverage(source *FontSource) (*Coverage, error) {
	source.copyCheck()
	if len(source.data) == 0 {
		return nil, ErrEmptyFontData
	}

	face, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to read cmap of %s: %w", source.name, err)
	}

	return &Coverage{name: source.name, font: face.Font}, nil
}

// Has reports whether the font maps r to a glyph.
func (c *Coverage) Has(r rune) bool {
	_, ok := c.font.NominalGlyph(r)
	return ok
}

// Check returns a *MissingGlyphError listing the runes of text the font
// cannot map, or nil when every rune is covered.
func (c *Coverage) Check(text string) error {
	var missing []rune
	for _, r := range text {
		if !c.Has(r) {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingGlyphError{Font: c.name, Runes: missing}
}
