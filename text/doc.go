// Package text loads font files and rasterizes single labels onto
// grayscale canvases.
//
// The rendering pipeline keeps the separation of concerns used by the
// rest of gogpu:
//
//   - FontSource: heavyweight font resource (parses TTF/OTF files)
//   - Face: lightweight font instance at a specific size
//   - Face rasterization: golang.org/x/image/font/opentype at 72 DPI
//   - Coverage: cmap lookups through go-text/typesetting
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("NanumGothic.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(48)
//	img, err := text.RenderCentered("가", face, 64, 64)
//
// RenderCentered measures the ink box of the label relative to the
// top-left layout origin and places it so that the box's right and
// bottom edges are balanced against the canvas. Labels larger than the
// canvas are clipped, never scaled.
package text
