package distort

import (
	"image"
	"math/rand/v2"

	"github.com/gogpu/hangulgen/internal/filter"
	intImage "github.com/gogpu/hangulgen/internal/image"
)

// Params controls a single elastic distortion.
type Params struct {
	// Alpha scales the smoothed displacement, in pixels.
	Alpha float64

	// Sigma is the standard deviation of the Gaussian smoothing, in pixels.
	Sigma float64
}

// Engine produces elastically distorted copies of grayscale images.
type Engine struct {
	opts engineOptions
}

// New creates an Engine.
//
//	e := distort.New() // fresh source per call
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	e := distort.New(distort.WithRand(rng)) // repeatable
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// RandomParams draws Alpha and Sigma as integers, uniformly from the
// engine's inclusive ranges.
func (e *Engine) RandomParams() Params {
	return e.randomParams(e.source())
}

// Distort applies a distortion with freshly drawn parameters.
func (e *Engine) Distort(src *image.Gray) *image.Gray {
	rng := e.source()
	return e.apply(src, e.randomParams(rng), rng)
}

// Apply distorts src with the given parameters and returns a new image of
// the same size. Alpha == 0 returns an exact copy.
func (e *Engine) Apply(src *image.Gray, p Params) *image.Gray {
	return e.apply(src, p, e.source())
}

func (e *Engine) apply(src *image.Gray, p Params, rng *rand.Rand) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return image.NewGray(image.Rect(0, 0, w, h))
	}

	dx := displacement(w, h, p, rng)
	dy := displacement(w, h, p, rng)

	return intImage.Remap(src, dx, dy)
}

// displacement builds one smoothed, scaled noise field.
func displacement(w, h int, p Params, rng *rand.Rand) *intImage.Field {
	noise, err := intImage.NewUniformField(w, h, rng)
	if err != nil {
		// w and h were checked by the caller.
		panic(err)
	}

	field := filter.NewBlurFilter(p.Sigma).Apply(noise)
	field.Scale(float32(p.Alpha))
	return field
}

func (e *Engine) randomParams(rng *rand.Rand) Params {
	return Params{
		Alpha: float64(between(rng, e.opts.alphaMin, e.opts.alphaMax)),
		Sigma: float64(between(rng, e.opts.sigmaMin, e.opts.sigmaMax)),
	}
}

// source returns the injected generator, or a freshly seeded one.
func (e *Engine) source() *rand.Rand {
	if e.opts.rng != nil {
		return e.opts.rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
