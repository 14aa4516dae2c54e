package heightfield

import (
	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/paulmach/orb"
)

// Noise shaping constants for the continental regime. Frequencies are
// expressed as feature counts across the short map side, so behavior
// is independent of map scale.
const (
	// distortFeatures controls how many coast-distortion ripples fit
	// across min(width,height).
	distortFeatures = 8.0

	// distortAmplitude is the maximum normalized-distance shift applied
	// to a cell's blob distance, in radius units.
	distortAmplitude = 0.35

	// reliefFeatures controls the low-frequency relief undulation.
	reliefFeatures = 2.0

	// reliefFloor is the lower bound of the relief multiplier range
	// [reliefFloor, 1.0].
	reliefFloor = 0.5

	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// noiseField bundles the two continental-mode generators: simplex noise
// distorting blob distances (ragged coasts) and low-frequency perlin
// relief scaling the combined height (large-scale undulation).
type noiseField struct {
	distort     opensimplex.Noise
	relief      *perlin.Perlin
	distortFreq float64
	reliefFreq  float64
}

// newNoiseField forks two independent substreams off the base seed and
// sizes the noise frequencies for a width×height map.
func newNoiseField(baseSeed int64, width, height float64) *noiseField {
	short := width
	if height < short {
		short = height
	}
	return &noiseField{
		distort:     opensimplex.NewNormalized(deriveSeed(baseSeed, streamDistort)),
		relief:      perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, deriveSeed(baseSeed, streamRelief)),
		distortFreq: distortFeatures / short,
		reliefFreq:  reliefFeatures / short,
	}
}

// distortedDistance shifts a normalized blob distance by smooth noise
// of the cell position, clamped at 0. Values above 1 remain above 1 so
// callers still treat the cell as outside the blob.
func (nf *noiseField) distortedDistance(d float64, at orb.Point) float64 {
	n := nf.distort.Eval2(at[0]*nf.distortFreq, at[1]*nf.distortFreq)
	d += (n - 0.5) * distortAmplitude
	if d < 0 {
		d = 0
	}
	return d
}

// reliefFactor maps low-frequency perlin noise at the cell position
// into the multiplier range [reliefFloor, 1.0].
func (nf *noiseField) reliefFactor(at orb.Point) float64 {
	n := nf.relief.Noise2D(at[0]*nf.reliefFreq, at[1]*nf.reliefFreq)
	if n > 1 {
		n = 1
	} else if n < -1 {
		n = -1
	}
	mid := (1 + reliefFloor) / 2
	return mid + (1-mid)*n
}
