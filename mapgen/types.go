// Package mapgen defines the pipeline configuration and result types.
package mapgen

import (
	"errors"

	"github.com/ncuskey/FWG4/coastline"
	"github.com/ncuskey/FWG4/features"
	"github.com/ncuskey/FWG4/heightfield"
)

// ErrNilMesh is returned if a nil mesh pointer is passed to Generate.
var ErrNilMesh = errors.New("mapgen: mesh is nil")

// Config drives one Generate run.
type Config struct {
	// Terrain parameterizes height synthesis, including the seed and
	// the water margin shared with border carving.
	Terrain heightfield.Params

	// SeaLevel is the target land/water threshold. Continental runs
	// may adapt it downward (see features.ClassifyLandWater).
	SeaLevel float64

	// BorderTolerance overrides the border proximity tolerance for
	// feature classification; 0 derives the mean cell spacing.
	BorderTolerance float64

	// Precision is the coastline vertex-identity rounding in decimal
	// places; 0 selects coastline.DefaultPrecision.
	Precision int

	// SimplifyTolerance reduces assembled outlines with
	// Douglas-Peucker when positive; 0 keeps full geometry.
	SimplifyTolerance float64
}

// DefaultConfig returns the island preset with a 0.2 sea level and
// full-precision outlines.
func DefaultConfig() Config {
	return Config{
		Terrain:   heightfield.DefaultParams(),
		SeaLevel:  0.2,
		Precision: coastline.DefaultPrecision,
	}
}

// Result bundles everything one pipeline run produced.
type Result struct {
	// Heights reports the synthesized field extremes.
	Heights heightfield.Stats

	// Waterline reports the applied sea level and partition sizes.
	Waterline features.WaterlineReport

	// Carved counts land cells flipped to water by border carving.
	Carved int

	// EdgeCount is the number of boundary edges extracted before
	// carving.
	EdgeCount int

	// Features lists classified regions with assembled boundaries.
	Features []features.Feature

	// Outlines lists one walked boundary per non-ocean feature, in
	// feature order.
	Outlines []coastline.Outline
}
