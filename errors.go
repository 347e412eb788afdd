package hangulgen

import "errors"

// Configuration errors.
var (
	// ErrNoLabelFile is returned when Config.LabelFile is empty.
	ErrNoLabelFile = errors.New("hangulgen: label file not set")

	// ErrNoFontDir is returned when Config.FontDir is empty.
	ErrNoFontDir = errors.New("hangulgen: font directory not set")

	// ErrNoOutputDir is returned when Config.OutputDir is empty.
	ErrNoOutputDir = errors.New("hangulgen: output directory not set")

	// ErrInvalidLabelEncoding is returned when the label file is not UTF-8.
	ErrInvalidLabelEncoding = errors.New("hangulgen: label file is not valid UTF-8")
)
