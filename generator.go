package hangulgen

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/hangulgen/distort"
	intImage "github.com/gogpu/hangulgen/internal/image"
	"github.com/gogpu/hangulgen/text"
)

// Config names the inputs and the output location of a run.
type Config struct {
	// LabelFile is a UTF-8 file with one label per line.
	LabelFile string

	// FontDir is scanned (non-recursively) for font files.
	FontDir string

	// OutputDir receives the image directory and the label index.
	OutputDir string
}

// Validate reports the first missing path.
func (c Config) Validate() error {
	switch {
	case c.LabelFile == "":
		return ErrNoLabelFile
	case c.FontDir == "":
		return ErrNoFontDir
	case c.OutputDir == "":
		return ErrNoOutputDir
	}
	return nil
}

// Result summarizes a finished run.
type Result struct {
	// Images is the number of image files written.
	Images int

	// Labels is the number of labels read.
	Labels int

	// Fonts is the number of fonts used.
	Fonts int

	// MissingGlyphs counts (label, font) pairs rendered with the font's
	// .notdef glyph for at least one rune.
	MissingGlyphs int

	// ImageDir is the directory holding the images.
	ImageDir string

	// IndexPath is the label index file.
	IndexPath string
}

// Generate renders every label with every font, writes a base image plus
// the configured number of distorted variants for each pair, and records
// each image in the label index.
//
// Images are named hangul_<N>.jpeg, N counting from 1 across the whole
// run in generation order: label, then font, then base before variants.
// The index is truncated at the start of the run.
//
// Any error aborts the run and leaves the images and index written so far.
// ctx is checked before each label.
func Generate(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.engine == nil {
		o.engine = distort.New()
	}

	labels, err := LoadLabels(cfg.LabelFile)
	if err != nil {
		return Result{}, err
	}
	fontPaths, err := DiscoverFonts(cfg.FontDir, o.fontExtensions...)
	if err != nil {
		return Result{}, err
	}

	log := Logger()
	if len(fontPaths) == 0 {
		log.Warn("no fonts found, nothing will be generated", "dir", cfg.FontDir)
	}

	fonts, err := loadFonts(fontPaths, o.fontSize)
	if err != nil {
		return Result{}, err
	}
	defer closeFonts(fonts)

	imageDir := filepath.Join(cfg.OutputDir, ImageDirName)
	if err := os.MkdirAll(imageDir, 0o750); err != nil {
		return Result{}, fmt.Errorf("hangulgen: create image directory: %w", err)
	}

	indexPath := filepath.Join(cfg.OutputDir, LabelsFileName)
	index, err := CreateIndex(indexPath)
	if err != nil {
		return Result{}, err
	}

	r := &run{
		opts:     o,
		imageDir: imageDir,
		index:    index,
		fonts:    fonts,
		log:      log,
	}
	r.result = Result{
		Labels:    len(labels),
		Fonts:     len(fonts),
		ImageDir:  imageDir,
		IndexPath: indexPath,
	}

	runErr := r.generate(ctx, labels)
	if err := index.Close(); err != nil && runErr == nil {
		runErr = err
	}
	r.result.Images = r.count
	if runErr != nil {
		return r.result, runErr
	}

	log.Info("finished generating images", "images", r.count, "labels", len(labels), "fonts", len(fonts))
	return r.result, nil
}

// loadedFont is a font ready for rendering at the run's size.
type loadedFont struct {
	path     string
	source   *text.FontSource
	face     text.Face
	coverage *text.Coverage // nil when the cmap could not be read
}

// loadFonts parses every font up front so that a broken file fails the run
// before any output is written.
func loadFonts(paths []string, size float64) ([]loadedFont, error) {
	log := Logger()
	fonts := make([]loadedFont, 0, len(paths))

	for _, path := range paths {
		source, err := text.NewFontSourceFromFile(path)
		if err != nil {
			closeFonts(fonts)
			return nil, fmt.Errorf("hangulgen: load font: %w", err)
		}

		cov, err := text.NewCoverage(source)
		if err != nil {
			log.Debug("glyph coverage unavailable", "font", path, "err", err)
			cov = nil
		}

		fonts = append(fonts, loadedFont{
			path:     path,
			source:   source,
			face:     source.Face(size),
			coverage: cov,
		})
		log.Debug("font loaded", "font", path, "family", source.Family(), "glyphs", source.NumGlyphs())
	}
	return fonts, nil
}

func closeFonts(fonts []loadedFont) {
	for _, f := range fonts {
		_ = f.source.Close()
	}
}

// run is the mutable state of one Generate call.
type run struct {
	opts     options
	imageDir string
	index    *IndexWriter
	fonts    []loadedFont
	log      *slog.Logger

	count    int // images written, also the last file number used
	reported int // count at the last progress line
	result   Result
}

func (r *run) generate(ctx context.Context, labels []string) error {
	for _, label := range labels {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("hangulgen: generation stopped after %d images: %w", r.count, err)
		}
		r.progress()

		for i := range r.fonts {
			if err := r.renderLabel(label, &r.fonts[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderLabel writes the base glyph and its distorted variants.
func (r *run) renderLabel(label string, font *loadedFont) error {
	r.checkCoverage(label, font)

	base, err := text.RenderCentered(label, font.face, r.opts.width, r.opts.height)
	if err != nil {
		return fmt.Errorf("hangulgen: render %q with %s: %w", label, font.path, err)
	}
	if err := r.write(base, label); err != nil {
		return err
	}

	for range r.opts.distortions {
		if err := r.write(r.opts.engine.Distort(base), label); err != nil {
			return err
		}
	}
	return nil
}

// write persists img under the next file number and records it.
func (r *run) write(img image.Image, label string) error {
	r.count++
	path := filepath.Join(r.imageDir, fmt.Sprintf("hangul_%d.jpeg", r.count))

	if err := intImage.SaveJPEG(img, path, r.opts.quality); err != nil {
		return fmt.Errorf("hangulgen: %w", err)
	}
	return r.index.Append(Record{Path: path, Label: label})
}

// checkCoverage logs labels the font would draw as .notdef. Rendering
// proceeds either way.
func (r *run) checkCoverage(label string, font *loadedFont) {
	if font.coverage == nil {
		return
	}
	err := font.coverage.Check(label)
	var missing *text.MissingGlyphError
	if errors.As(err, &missing) {
		r.result.MissingGlyphs++
		r.log.Warn("font has no glyph, rendering fallback box",
			"font", font.path, "label", label, "runes", string(missing.Runes))
	}
}

// progress logs a line once more than progressEvery images were written
// since the last one.
func (r *run) progress() {
	if r.opts.progressEvery <= 0 {
		return
	}
	if r.count-r.reported > r.opts.progressEvery {
		r.reported = r.count
		r.log.Info("images generated", "images", r.count)
	}
}
