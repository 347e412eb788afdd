package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource is a parsed TTF or OTF font. Faces of any size are cut from
// one source.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr points to the FontSource itself (Ebitengine copy check).
	addr *FontSource

	data []byte
	font *opentype.Font
	name string
}

// NewFontSource parses font data (TTF or OTF).
// The data slice is copied and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	var config sourceConfig
	for _, opt := range opts {
		opt(&config)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data: append([]byte(nil), data...),
		font: f,
		name: config.name,
	}
	s.addr = s
	if s.name == "" {
		s.name = s.Family()
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
// The source is named after the path unless WithName overrides it.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	opts = append([]SourceOption{WithName(path)}, opts...)
	s, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return s, nil
}

// Face returns a Face of s at size pixels per em.
// Panics if s is nil (e.g. when the NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64) Face {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSourceFromFile")
	}
	s.copyCheck()
	return &sourceFace{source: s, size: size}
}

// Name returns the name the source is reported under in errors and logs.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Family returns the family name from the font's name table, falling back
// to the full name. It is empty when the table has neither.
func (s *FontSource) Family() string {
	s.copyCheck()
	if s.font == nil {
		return ""
	}
	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if name, err := s.font.Name(&buf, id); err == nil && name != "" {
			return name
		}
	}
	return ""
}

// NumGlyphs returns the number of glyphs in the font, .notdef included.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()
	if s.font == nil {
		return 0
	}
	return s.font.NumGlyphs()
}

// Close releases the font data. Faces of s must not be used afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.data = nil
	s.font = nil
	return nil
}

// newFace opens a rasterizing face at 72 DPI, so one point is one pixel.
// The caller must Close it.
func (s *FontSource) newFace(size float64) (font.Face, error) {
	if s.font == nil {
		return nil, ErrEmptyFontData
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face at %gpx: %w", size, err)
	}
	return face, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
