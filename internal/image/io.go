package image

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is the encoder quality used when none is configured.
const DefaultJPEGQuality = 75

// SaveJPEG saves img as a JPEG file with the given quality (1-100).
// A *image.Gray is written as a single-channel JPEG.
func SaveJPEG(img image.Image, path string, quality int) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(clampQuality(quality))); err != nil {
		return fmt.Errorf("image: save JPEG %s: %w", path, err)
	}
	return nil
}

func clampQuality(q int) int {
	return clamp(q, 1, 100)
}
