// Package features provides tunable options and error definitions for
// land/water classification and region flood fill over a mesh.
package features

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Sentinel errors for classification.
var (
	// ErrNilMesh is returned if a nil mesh pointer is passed.
	ErrNilMesh = errors.New("features: mesh is nil")

	// ErrBadMargin is returned by CarveBorderWater for a negative or
	// NaN margin.
	ErrBadMargin = errors.New("features: water margin must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("features: invalid option supplied")
)

// Kind labels a connected region of same-type cells.
type Kind int

const (
	// Ocean is border-connected water. At most one ocean exists per map
	// and it never carries boundary geometry.
	Ocean Kind = iota

	// Lake is water not connected to the map border.
	Lake

	// Island is any connected land region.
	Island
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Ocean:
		return "ocean"
	case Lake:
		return "lake"
	case Island:
		return "island"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Feature is one classified region.
type Feature struct {
	// ID is the 1-based feature identifier, assigned in discovery
	// order: the ocean first (when present), then lakes and islands as
	// their seed cells appear in mesh order.
	ID int

	// Kind is the region type.
	Kind Kind

	// TouchesBorder reports whether any member cell lies within the
	// border tolerance of a map edge. Always true for the ocean,
	// always false for lakes.
	TouchesBorder bool

	// Cells lists member cell IDs in ascending order.
	Cells []int

	// Boundary is the assembled outline, filled in by
	// coastline.AssembleBoundaries. Nil for the ocean and for features
	// whose boundaries were never assembled.
	Boundary orb.LineString
}

// WaterlineReport summarizes ClassifyLandWater:
//   - EffectiveSeaLevel: the threshold actually applied after the
//     continental quantile adaptation.
//   - LandCells, WaterCells: resulting partition sizes.
//   - Degenerate: no positive heights existed, so the adaptive rule had
//     nothing to work with and the raw target was applied as-is.
type WaterlineReport struct {
	EffectiveSeaLevel float64
	LandCells         int
	WaterCells        int
	Degenerate        bool
}

// Option configures Classify via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Classify is invoked.
type Option func(*Options)

// Options holds parameters for region classification.
type Options struct {
	// BorderTolerance is the centroid distance from a map edge within
	// which a cell counts as border-adjacent. Zero derives the mean
	// cell spacing √(width·height/n).
	BorderTolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the derived border tolerance.
func DefaultOptions() Options {
	return Options{}
}

// WithBorderTolerance overrides the border proximity tolerance.
//
//	t > 0: use t map units
//	t == 0: derive the mean cell spacing
//	t < 0 or NaN: invalid option → ErrOptionViolation
func WithBorderTolerance(t float64) Option {
	return func(o *Options) {
		if t < 0 || math.IsNaN(t) {
			o.err = fmt.Errorf("%w: BorderTolerance %v", ErrOptionViolation, t)
			return
		}
		o.BorderTolerance = t
	}
}
