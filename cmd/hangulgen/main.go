// Command hangulgen renders a labeled Hangul glyph dataset for OCR
// training: every label in a label file is drawn with every font in a
// directory, then elastically distorted a few times.
//
// Usage:
//
//	hangulgen [--label-file FILE] [--font-dir DIR] [--output-dir DIR]
//
// Images go to <output-dir>/hangul-images/hangul_<N>.jpeg and the label
// index to <output-dir>/labels-map.csv.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/gogpu/hangulgen"
	"github.com/gogpu/hangulgen/distort"
)

// Default data paths. They are relative to the working directory, so run
// from the repository root or pass the flags.
const (
	defaultLabelFile = "labels/2350-common-hangul.txt"
	defaultFontsDir  = "fonts"
	defaultOutputDir = "image-data"
)

func main() {
	var (
		labelFile   = flag.String("label-file", defaultLabelFile, "file containing newline delimited labels")
		fontDir     = flag.String("font-dir", defaultFontsDir, "directory of ttf fonts to use")
		outputDir   = flag.String("output-dir", defaultOutputDir, "output directory to store generated images and label CSV file")
		distortions = flag.Int("distortions", hangulgen.DistortionCount, "distorted variants per font and label")
		quality     = flag.Int("quality", hangulgen.DefaultJPEGQuality, "JPEG quality (1-100)")
		seed        = flag.Uint64("seed", 0, "seed for the distortion random source (0 = unseeded)")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	hangulgen.SetLogger(logger)

	opts := []hangulgen.Option{
		hangulgen.WithDistortionCount(*distortions),
		hangulgen.WithJPEGQuality(*quality),
	}
	if *seed != 0 {
		rng := rand.New(rand.NewPCG(*seed, *seed))
		opts = append(opts, hangulgen.WithEngine(distort.New(distort.WithRand(rng))))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := hangulgen.Generate(ctx, hangulgen.Config{
		LabelFile: *labelFile,
		FontDir:   *fontDir,
		OutputDir: *outputDir,
	}, opts...)
	if err != nil {
		logger.Error("generation failed", "images", res.Images, "err", err)
		stop()
		os.Exit(1)
	}

	fmt.Printf("Finished generating %d images.\n", res.Images)
}
