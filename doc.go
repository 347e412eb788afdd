// Package hangulgen synthesizes labeled Hangul glyph images for training
// optical character recognition models.
//
// # Overview
//
// Generate is a single sequential batch pipeline:
//
//  1. LoadLabels reads the label file, one label per line.
//  2. DiscoverFonts lists the font files of a directory.
//  3. For every label and every font, text.RenderCentered draws the label
//     centered on a 64x64 grayscale canvas at 48 pixels per em.
//  4. distort.Engine writes DistortionCount elastically warped copies of
//     each rendered glyph.
//
// Every image is written as hangul_<N>.jpeg, N counting up from 1 across
// the whole run, and recorded as "<path>,<label>" in labels-map.csv.
// A run with L labels and F fonts writes L*F*(1+DistortionCount) images.
//
// # Quick Start
//
//	res, err := hangulgen.Generate(ctx, hangulgen.Config{
//	    LabelFile: "labels/2350-common-hangul.txt",
//	    FontDir:   "fonts",
//	    OutputDir: "image-data",
//	})
//
// # Failure model
//
// There is no partial-failure recovery. The first error aborts the run and
// leaves whatever was already written; rerun from scratch after fixing
// the input. Labels a font has no glyph for are not errors: the font's
// .notdef box is drawn and a warning is logged.
package hangulgen
