package distort

import "math/rand/v2"

// Default parameter ranges, inclusive on both ends.
const (
	DefaultAlphaMin = 30
	DefaultAlphaMax = 36
	DefaultSigmaMin = 5
	DefaultSigmaMax = 6
)

// Option configures an Engine.
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	rng                *rand.Rand
	alphaMin, alphaMax int
	sigmaMin, sigmaMax int
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		alphaMin: DefaultAlphaMin,
		alphaMax: DefaultAlphaMax,
		sigmaMin: DefaultSigmaMin,
		sigmaMax: DefaultSigmaMax,
	}
}

// WithRand makes the engine draw every random value from rng.
// The engine is then as deterministic as rng; it must not be shared
// between goroutines.
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) {
		o.rng = rng
	}
}

// WithAlphaRange sets the inclusive range RandomParams draws Alpha from.
// Reversed bounds are swapped.
func WithAlphaRange(lo, hi int) Option {
	return func(o *engineOptions) {
		o.alphaMin, o.alphaMax = ordered(lo, hi)
	}
}

// WithSigmaRange sets the inclusive range RandomParams draws Sigma from.
// Reversed bounds are swapped.
func WithSigmaRange(lo, hi int) Option {
	return func(o *engineOptions) {
		o.sigmaMin, o.sigmaMax = ordered(lo, hi)
	}
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
