package heightfield

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/ncuskey/FWG4/mesh"
)

// Blob geometry constants.
const (
	// radiusJitterMin/Max bound the per-blob uniform radius factor.
	radiusJitterMin = 0.6
	radiusJitterMax = 1.2

	// centerJitter displaces a placed blob center by up to ±30% of its
	// radius before clamping back into the safe zone.
	centerJitter = 0.3

	// continentalRadiusScale widens blobs in continental mode.
	continentalRadiusScale = 2.0

	// continentalMinFalloff forces the exponential decay regime; power
	// curves below it belong to island mode.
	continentalMinFalloff = 2.0

	// safeZoneFraction caps blob reach at just under half the short map
	// side, so a margin that consumes the band is detectable.
	safeZoneFraction = 0.49

	// baseRadiusDivisor derives the default BaseRadius from the short
	// map side.
	baseRadiusDivisor = 4.0
)

// blob is one placed height source.
type blob struct {
	center orb.Point
	radius float64
	peak   float64
}

// Synthesize writes an additive blob height field into the mesh cells
// and returns observed field statistics.
//
// Each blob contributes peak·curve(d) to cells within its radius, where
// d is the centroid distance normalized by the radius; a cell keeps the
// maximum contribution across blobs. Touched cells are then modulated
// by a per-cell 1±Sharpness factor and, in continental mode, by a
// low-frequency relief multiplier; continental mode also perturbs d
// with simplex noise for ragged coasts.
//
// Blob centers stay inside the safe zone inset by radius+WaterMargin
// from every map edge, so synthesized land never reaches the border.
// Cells outside every blob keep height 0.
//
// Returns ErrNilMesh, ErrInvalidParams, or ErrNoInterior when the
// margin leaves no room to place centers. An empty mesh yields zero
// Stats and no error.
//
// Complexity: O(cells·blobs) time, O(blobs) memory.
func Synthesize(m *mesh.Mesh, p Params) (Stats, error) {
	if m == nil {
		return Stats{}, ErrNilMesh
	}
	if err := p.validate(); err != nil {
		return Stats{}, err
	}
	if m.Len() == 0 {
		return Stats{}, nil
	}

	w, h := m.Width(), m.Height()
	short := math.Min(w, h)

	base := p.BaseRadius
	if base == 0 {
		base = short / baseRadiusDivisor
	}
	falloff := p.Falloff
	sharpness := p.Sharpness
	var nf *noiseField
	if p.Continental {
		base *= continentalRadiusScale
		sharpness /= 2
		if falloff < continentalMinFalloff {
			falloff = continentalMinFalloff
		}
		nf = newNoiseField(normalizeSeed(p.Seed), w, h)
	}

	// The widest possible blob (radiusJitterMax·base) plus the margin
	// must still leave an interior band for centers.
	limit := safeZoneFraction * short
	if p.WaterMargin >= limit {
		return Stats{}, fmt.Errorf("%w: margin %g on %gx%g map", ErrNoInterior, p.WaterMargin, w, h)
	}
	if maxReach := base * radiusJitterMax; maxReach > limit-p.WaterMargin {
		base = (limit - p.WaterMargin) / radiusJitterMax
	}

	rng := rngFromSeed(deriveSeed(normalizeSeed(p.Seed), streamBlobs))
	blobs := placeBlobs(rng, p, base, w, h)

	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, c := range m.Cells() {
		height := 0.0
		for _, b := range blobs {
			d2 := planar.DistanceSquared(c.Centroid, b.center)
			if d2 > b.radius*b.radius {
				continue
			}
			d := math.Sqrt(d2) / b.radius
			if nf != nil {
				if d = nf.distortedDistance(d, c.Centroid); d > 1 {
					continue
				}
			}
			if v := b.peak * curve(d, falloff); v > height {
				height = v
			}
		}
		if height > 0 {
			if sharpness > 0 {
				height *= 1 + (rng.Float64()*2-1)*sharpness
			}
			if nf != nil {
				height *= nf.reliefFactor(c.Centroid)
			}
			st.Touched++
		}
		c.Height = height
		st.Min = math.Min(st.Min, height)
		st.Max = math.Max(st.Max, height)
	}

	return st, nil
}

// placeBlobs draws blob radii, peaks and centers in a fixed order so a
// given seed always yields the same layout. Centers are drawn uniformly
// inside the safe zone, then jittered and clamped back into it.
func placeBlobs(rng *rand.Rand, p Params, base, w, h float64) []blob {
	blobs := make([]blob, 0, p.BlobCount)
	for i := 0; i < p.BlobCount; i++ {
		radius := base * (radiusJitterMin + rng.Float64()*(radiusJitterMax-radiusJitterMin))
		peak := p.MainPeakHeight
		if i > 0 {
			peak = p.SecondaryPeakMin + rng.Float64()*(p.SecondaryPeakMax-p.SecondaryPeakMin)
		}

		inset := radius + p.WaterMargin
		cx := inset + rng.Float64()*(w-2*inset)
		cy := inset + rng.Float64()*(h-2*inset)
		cx = clamp(cx+(rng.Float64()*2-1)*centerJitter*radius, inset, w-inset)
		cy = clamp(cy+(rng.Float64()*2-1)*centerJitter*radius, inset, h-inset)

		blobs = append(blobs, blob{center: orb.Point{cx, cy}, radius: radius, peak: peak})
	}
	return blobs
}

// curve evaluates the radial decay at normalized distance d ∈ [0,1]:
// the island power curve falloff^(10·d) below continentalMinFalloff,
// the exponential exp(-d·falloff/2) at or above it. Both start at 1
// for d=0.
func curve(d, falloff float64) float64 {
	if falloff < continentalMinFalloff {
		return math.Pow(falloff, 10*d)
	}
	return math.Exp(-d * falloff / 2)
}

// normalizeSeed applies the seed==0 policy before substream derivation.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
