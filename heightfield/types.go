// Package heightfield defines tunable parameters and error definitions
// for blob-based terrain synthesis over a mesh.
package heightfield

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for terrain synthesis.
var (
	// ErrNilMesh is returned if a nil mesh pointer is passed.
	ErrNilMesh = errors.New("heightfield: mesh is nil")

	// ErrInvalidParams is returned when a Params field is out of range.
	// The wrapping message names the offending field.
	ErrInvalidParams = errors.New("heightfield: invalid params")

	// ErrNoInterior is returned when WaterMargin consumes the whole map
	// and leaves no interior band to place blob centers in.
	ErrNoInterior = errors.New("heightfield: water margin leaves no interior")
)

// Params controls blob synthesis. The zero value is not usable; start
// from DefaultParams or ContinentalParams and override fields.
type Params struct {
	// BlobCount is the number of height blobs. The first blob is the
	// main landmass peak; the rest draw secondary peaks. Zero blobs
	// yield a flat all-zero field.
	BlobCount int

	// MainPeakHeight is the peak height of the first blob.
	MainPeakHeight float64

	// SecondaryPeakMin and SecondaryPeakMax bound the uniform draw for
	// every blob after the first.
	SecondaryPeakMin float64
	SecondaryPeakMax float64

	// Falloff shapes the radial decay. Below 2.0 the island power
	// curve falloff^(10·d) applies; at or above 2.0 (always in
	// continental mode) the exponential exp(-d·falloff/2) applies.
	Falloff float64

	// Sharpness is the per-cell height modulation amplitude in [0,1).
	// Each touched cell scales its combined height by 1±Sharpness.
	Sharpness float64

	// Continental switches to the continental regime: doubled blob
	// radius, halved sharpness, forced exponential falloff, plus
	// noise-distorted distances and low-frequency relief modulation.
	Continental bool

	// WaterMargin is the border band (map units) kept clear of blob
	// centers, so coasts never touch the map edge at synthesis time.
	WaterMargin float64

	// BaseRadius is the nominal blob radius before the per-blob
	// [0.6,1.2] jitter. Zero derives min(width,height)/4.
	BaseRadius float64

	// Seed drives all randomness. Zero selects a fixed default stream,
	// so unseeded runs are still reproducible.
	Seed int64
}

// DefaultParams returns the island preset: several blobs with a steep
// power falloff, producing one major landmass with satellites.
func DefaultParams() Params {
	return Params{
		BlobCount:        6,
		MainPeakHeight:   0.9,
		SecondaryPeakMin: 0.25,
		SecondaryPeakMax: 0.65,
		Falloff:          0.82,
		Sharpness:        0.2,
		WaterMargin:      32,
	}
}

// ContinentalParams returns the continental preset: fewer, wider blobs
// with exponential falloff, noise-distorted coasts and relief
// modulation.
func ContinentalParams() Params {
	return Params{
		BlobCount:        3,
		MainPeakHeight:   0.8,
		SecondaryPeakMin: 0.4,
		SecondaryPeakMax: 0.6,
		Falloff:          3.0,
		Sharpness:        0.15,
		Continental:      true,
		WaterMargin:      40,
	}
}

// validate reports the first out-of-range field, wrapped in
// ErrInvalidParams.
func (p Params) validate() error {
	switch {
	case p.BlobCount < 0:
		return fmt.Errorf("%w: BlobCount %d", ErrInvalidParams, p.BlobCount)
	case p.MainPeakHeight < 0 || math.IsNaN(p.MainPeakHeight):
		return fmt.Errorf("%w: MainPeakHeight %v", ErrInvalidParams, p.MainPeakHeight)
	case p.SecondaryPeakMin < 0 || p.SecondaryPeakMax < p.SecondaryPeakMin:
		return fmt.Errorf("%w: secondary peak range [%v,%v]", ErrInvalidParams, p.SecondaryPeakMin, p.SecondaryPeakMax)
	case !(p.Falloff > 0):
		return fmt.Errorf("%w: Falloff %v", ErrInvalidParams, p.Falloff)
	case !(p.Sharpness >= 0 && p.Sharpness < 1):
		return fmt.Errorf("%w: Sharpness %v", ErrInvalidParams, p.Sharpness)
	case p.WaterMargin < 0 || math.IsNaN(p.WaterMargin):
		return fmt.Errorf("%w: WaterMargin %v", ErrInvalidParams, p.WaterMargin)
	case p.BaseRadius < 0 || math.IsNaN(p.BaseRadius):
		return fmt.Errorf("%w: BaseRadius %v", ErrInvalidParams, p.BaseRadius)
	}
	return nil
}

// Stats reports the observed field after synthesis:
//   - Min, Max: height extremes over all cells (0 for an empty mesh).
//   - Touched: cells that received a positive height.
type Stats struct {
	Min     float64
	Max     float64
	Touched int
}
