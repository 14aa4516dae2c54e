package features

import (
	"fmt"
	"math"
	"sort"

	"github.com/ncuskey/FWG4/mesh"
)

// Continental sea-level adaptation constants. The adaptive rule keeps a
// continental map from drowning when most synthesized heights fall
// below the requested threshold: the effective level never exceeds 80%
// of the 25th percentile of positive heights.
const (
	adaptiveQuantile = 0.25
	adaptiveScale    = 0.8
)

// ClassifyLandWater partitions cells into land and water against a sea
// level threshold.
//
// Cells with Height > the effective level become land; all others
// become water with Height reset to 0. In continental mode the
// effective level is min(seaLevel, p25(positive heights)·0.8); when no
// positive heights exist, the raw target applies and the report is
// flagged Degenerate.
//
// Complexity: O(n log n) time in continental mode (quantile sort),
// O(n) otherwise.
func ClassifyLandWater(m *mesh.Mesh, seaLevel float64, continental bool) (WaterlineReport, error) {
	if m == nil {
		return WaterlineReport{}, ErrNilMesh
	}

	rep := WaterlineReport{EffectiveSeaLevel: seaLevel}
	if continental {
		var positive []float64
		for _, c := range m.Cells() {
			if c.Height > 0 {
				positive = append(positive, c.Height)
			}
		}
		if len(positive) == 0 {
			rep.Degenerate = true
		} else {
			sort.Float64s(positive)
			q := positive[int(float64(len(positive)-1)*adaptiveQuantile)]
			if adapted := q * adaptiveScale; adapted < rep.EffectiveSeaLevel {
				rep.EffectiveSeaLevel = adapted
			}
		}
	}

	for _, c := range m.Cells() {
		if c.Height > rep.EffectiveSeaLevel {
			c.Land = true
			rep.LandCells++
		} else {
			c.Land = false
			c.Height = 0
			rep.WaterCells++
		}
	}

	return rep, nil
}

// CarveBorderWater forces every cell whose centroid lies within margin
// of a map edge to water with height 0, and returns how many land
// cells were flipped. Run it after boundary extraction so coastlines
// clipped by the border band survive as open chains.
//
// Complexity: O(n).
func CarveBorderWater(m *mesh.Mesh, margin float64) (int, error) {
	if m == nil {
		return 0, ErrNilMesh
	}
	if margin < 0 || math.IsNaN(margin) {
		return 0, fmt.Errorf("%w: %v", ErrBadMargin, margin)
	}

	carved := 0
	w, h := m.Width(), m.Height()
	for _, c := range m.Cells() {
		x, y := c.Centroid[0], c.Centroid[1]
		if x < margin || y < margin || x > w-margin || y > h-margin {
			if c.Land {
				carved++
			}
			c.Land = false
			c.Height = 0
		}
	}

	return carved, nil
}
