package features_test

import (
	"math"
	"testing"

	"github.com/ncuskey/FWG4/features"
	"github.com/ncuskey/FWG4/mesh"
)

// row builds a 1×n strip mesh (10×10 cells) with the given heights.
func row(t *testing.T, heights ...float64) *mesh.Mesh {
	t.Helper()
	m, err := mesh.BuildGrid(float64(len(heights)*10), 10, len(heights), 1)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}
	for i, c := range m.Cells() {
		c.Height = heights[i]
	}
	return m
}

func TestClassifyLandWater_FixedThreshold(t *testing.T) {
	m := row(t, 0.1, 0.3, 0.5, 0.2)

	rep, err := features.ClassifyLandWater(m, 0.25, false)
	if err != nil {
		t.Fatalf("ClassifyLandWater failed: %v", err)
	}
	if rep.EffectiveSeaLevel != 0.25 {
		t.Errorf("EffectiveSeaLevel = %g; want 0.25", rep.EffectiveSeaLevel)
	}
	if rep.LandCells != 2 || rep.WaterCells != 2 {
		t.Errorf("partition = %d land/%d water; want 2/2", rep.LandCells, rep.WaterCells)
	}
	if rep.Degenerate {
		t.Error("fixed threshold must never report Degenerate")
	}

	cells := m.Cells()
	wantLand := []bool{false, true, true, false}
	for i, c := range cells {
		if c.Land != wantLand[i] {
			t.Errorf("cell %d Land = %v; want %v", i, c.Land, wantLand[i])
		}
		if !c.Land && c.Height != 0 {
			t.Errorf("water cell %d kept height %g", i, c.Height)
		}
	}
	if cells[2].Height != 0.5 {
		t.Errorf("land cell kept height %g; want 0.5", cells[2].Height)
	}
}

// TestClassifyLandWater_AdaptiveLowers checks the continental rule:
// effective level = min(target, p25·0.8). Positive heights sorted are
// [0.1 0.2 0.4 0.8 1.0], p25 = 0.2, so 0.5 adapts down to 0.16.
func TestClassifyLandWater_AdaptiveLowers(t *testing.T) {
	m := row(t, 0.1, 0.2, 0.4, 0.8, 1.0, 0)

	rep, err := features.ClassifyLandWater(m, 0.5, true)
	if err != nil {
		t.Fatalf("ClassifyLandWater failed: %v", err)
	}
	if want := 0.2 * 0.8; math.Abs(rep.EffectiveSeaLevel-want) > 1e-12 {
		t.Errorf("EffectiveSeaLevel = %g; want %g", rep.EffectiveSeaLevel, want)
	}
	if rep.LandCells != 4 {
		t.Errorf("LandCells = %d; want 4", rep.LandCells)
	}
}

// TestClassifyLandWater_AdaptiveNeverRaises: a target below the
// quantile stays as-is.
func TestClassifyLandWater_AdaptiveNeverRaises(t *testing.T) {
	m := row(t, 0.1, 0.2, 0.4, 0.8, 1.0, 0)

	rep, err := features.ClassifyLandWater(m, 0.05, true)
	if err != nil {
		t.Fatalf("ClassifyLandWater failed: %v", err)
	}
	if rep.EffectiveSeaLevel != 0.05 {
		t.Errorf("EffectiveSeaLevel = %g; want 0.05", rep.EffectiveSeaLevel)
	}
}

// TestClassifyLandWater_DegenerateFlat: a flat zero field in
// continental mode keeps the raw target and raises the Degenerate flag.
func TestClassifyLandWater_DegenerateFlat(t *testing.T) {
	m := row(t, 0, 0, 0, 0)

	rep, err := features.ClassifyLandWater(m, 0.2, true)
	if err != nil {
		t.Fatalf("ClassifyLandWater failed: %v", err)
	}
	if !rep.Degenerate {
		t.Error("expected Degenerate for an all-zero field")
	}
	if rep.EffectiveSeaLevel != 0.2 {
		t.Errorf("EffectiveSeaLevel = %g; want raw 0.2", rep.EffectiveSeaLevel)
	}
	if rep.LandCells != 0 || rep.WaterCells != 4 {
		t.Errorf("partition = %d/%d; want 0/4", rep.LandCells, rep.WaterCells)
	}
}

func TestClassifyLandWater_NilMesh(t *testing.T) {
	if _, err := features.ClassifyLandWater(nil, 0.2, false); err != features.ErrNilMesh {
		t.Errorf("got %v; want ErrNilMesh", err)
	}
}

// TestCarveBorderWater flips the border ring of an all-land 5×5 map and
// leaves the 3×3 interior alone.
func TestCarveBorderWater(t *testing.T) {
	m := meshFromPattern(t, [][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	})

	carved, err := features.CarveBorderWater(m, 10)
	if err != nil {
		t.Fatalf("CarveBorderWater failed: %v", err)
	}
	if carved != 16 {
		t.Errorf("carved = %d; want 16", carved)
	}

	land := 0
	for _, c := range m.Cells() {
		if c.Land {
			land++
			x, y := c.Centroid[0], c.Centroid[1]
			if x < 10 || y < 10 || x > m.Width()-10 || y > m.Height()-10 {
				t.Errorf("land cell %d survived inside the border band", c.ID)
			}
		} else if c.Height != 0 {
			t.Errorf("carved cell %d kept height %g", c.ID, c.Height)
		}
	}
	if land != 9 {
		t.Errorf("land cells after carve = %d; want 9", land)
	}
}

// TestCarveBorderWater_CountsOnlyFlips: already-water border cells do
// not inflate the carved count.
func TestCarveBorderWater_CountsOnlyFlips(t *testing.T) {
	m := meshFromPattern(t, [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
	})

	carved, err := features.CarveBorderWater(m, 10)
	if err != nil {
		t.Fatalf("CarveBorderWater failed: %v", err)
	}
	// The band covers everything but the center cell; of the land cells
	// only the two bottom ones sit in it.
	if carved != 2 {
		t.Errorf("carved = %d; want 2", carved)
	}
	if center, _ := m.Cell(4); !center.Land {
		t.Error("interior land cell should survive the carve")
	}
}

func TestCarveBorderWater_BadMargin(t *testing.T) {
	m := row(t, 0.5)
	for _, margin := range []float64{-1, math.NaN()} {
		if _, err := features.CarveBorderWater(m, margin); err == nil {
			t.Errorf("margin %v: expected ErrBadMargin", margin)
		}
	}
	if _, err := features.CarveBorderWater(nil, 1); err != features.ErrNilMesh {
		t.Errorf("nil mesh: got %v; want ErrNilMesh", err)
	}
}
