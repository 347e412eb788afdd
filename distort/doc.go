// Package distort implements elastic distortion of grayscale glyph images.
//
// An elastic distortion warps an image through a smooth random
// displacement field: two fields of uniform noise in [-1, 1) are smoothed
// with a Gaussian of standard deviation Sigma, scaled by Alpha, and used as
// per-pixel sampling offsets into the source. Samples are read with
// bilinear interpolation, clamped at the image edge.
//
// Randomness is intentional. An Engine without WithRand draws a freshly
// seeded source on every call, so two distortions of the same glyph differ.
// Tests inject a seeded *rand.Rand to make runs repeatable.
package distort
