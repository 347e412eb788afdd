package hangulgen

import (
	"strings"

	"github.com/gogpu/hangulgen/distort"
	intImage "github.com/gogpu/hangulgen/internal/image"
)

// Defaults for a generation run.
const (
	// DistortionCount is the number of distorted variants per base glyph.
	DistortionCount = 3

	// ImageWidth and ImageHeight are the canvas dimensions in pixels.
	ImageWidth  = 64
	ImageHeight = 64

	// FontSize is the rendering size in pixels per em.
	FontSize = 48

	// ProgressEvery is the approximate number of images between progress
	// log lines.
	ProgressEvery = 5000

	// ImageDirName is the directory under the output directory holding the
	// generated images.
	ImageDirName = "hangul-images"

	// LabelsFileName is the label index written to the output directory.
	LabelsFileName = "labels-map.csv"

	// DefaultJPEGQuality is the encoder quality of the written images.
	DefaultJPEGQuality = intImage.DefaultJPEGQuality
)

// DefaultFontExtensions lists the font file extensions discovered by
// default.
var DefaultFontExtensions = []string{".ttf"}

// Option configures a Generate run.
//
// Example:
//
//	res, err := hangulgen.Generate(ctx, cfg,
//	    hangulgen.WithDistortionCount(5),
//	    hangulgen.WithFontExtensions(".ttf", ".otf"),
//	)
type Option func(*options)

// options holds optional configuration for Generate.
type options struct {
	distortions    int
	width, height  int
	fontSize       float64
	quality        int
	progressEvery  int
	fontExtensions []string
	engine         *distort.Engine
}

// defaultOptions returns the default run options.
func defaultOptions() options {
	return options{
		distortions:    DistortionCount,
		width:          ImageWidth,
		height:         ImageHeight,
		fontSize:       FontSize,
		quality:        DefaultJPEGQuality,
		progressEvery:  ProgressEvery,
		fontExtensions: DefaultFontExtensions,
		engine:         nil, // Will be created if nil
	}
}

// WithDistortionCount sets the number of distorted variants written after
// each base glyph. Negative values are treated as zero.
func WithDistortionCount(n int) Option {
	return func(o *options) {
		o.distortions = max(n, 0)
	}
}

// WithCanvasSize sets the output image dimensions.
func WithCanvasSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithFontSize sets the rendering size in pixels per em.
func WithFontSize(size float64) Option {
	return func(o *options) {
		o.fontSize = size
	}
}

// WithJPEGQuality sets the JPEG encoder quality (1-100).
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.quality = q
	}
}

// WithProgressEvery sets how many images pass between progress log lines.
// Zero disables progress logging.
func WithProgressEvery(n int) Option {
	return func(o *options) {
		o.progressEvery = n
	}
}

// WithFontExtensions sets the file extensions DiscoverFonts accepts.
// Extensions are matched case-insensitively; a missing leading dot is added.
func WithFontExtensions(exts ...string) Option {
	return func(o *options) {
		o.fontExtensions = normalizeExtensions(exts)
	}
}

// WithEngine sets the distortion engine. Use it to inject a seeded
// random source:
//
//	engine := distort.New(distort.WithRand(rand.New(rand.NewPCG(1, 2))))
//	hangulgen.Generate(ctx, cfg, hangulgen.WithEngine(engine))
func WithEngine(e *distort.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, strings.ToLower(ext))
	}
	return out
}
