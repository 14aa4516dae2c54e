package features_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncuskey/FWG4/features"
	"github.com/ncuskey/FWG4/mesh"
)

// meshFromPattern builds a grid mesh from a land/water pattern
// (1 = land, 0 = water). Cells are 10×10, IDs row-major.
func meshFromPattern(t *testing.T, pattern [][]int) *mesh.Mesh {
	t.Helper()
	rows, cols := len(pattern), len(pattern[0])
	m, err := mesh.BuildGrid(float64(cols*10), float64(rows*10), cols, rows)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell, err := m.Cell(r*cols + c)
			if err != nil {
				t.Fatalf("Cell(%d): %v", r*cols+c, err)
			}
			if pattern[r][c] == 1 {
				cell.Land = true
				cell.Height = 0.5
			}
		}
	}
	return m
}

// TestClassify_SingleIslandInOcean: one land cell surrounded by
// border-connected water.
//
// Pattern:
//
//	0 0 0
//	0 1 0
//	0 0 0
func TestClassify_SingleIslandInOcean(t *testing.T) {
	m := meshFromPattern(t, [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	feats, err := features.Classify(m)
	require.NoError(t, err)
	require.Len(t, feats, 2)

	ocean, island := feats[0], feats[1]
	assert.Equal(t, 1, ocean.ID)
	assert.Equal(t, features.Ocean, ocean.Kind)
	assert.True(t, ocean.TouchesBorder)
	assert.Len(t, ocean.Cells, 8)

	assert.Equal(t, 2, island.ID)
	assert.Equal(t, features.Island, island.Kind)
	assert.False(t, island.TouchesBorder)
	assert.Equal(t, []int{4}, island.Cells)

	center, _ := m.Cell(4)
	assert.Equal(t, island.ID, center.FeatureID)
}

// TestClassify_DonutLake: a land ring enclosing one water cell.
//
// Pattern:
//
//	0 0 0 0 0
//	0 1 1 1 0
//	0 1 0 1 0
//	0 1 1 1 0
//	0 0 0 0 0
func TestClassify_DonutLake(t *testing.T) {
	m := meshFromPattern(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	})

	feats, err := features.Classify(m)
	require.NoError(t, err)
	require.Len(t, feats, 3)

	assert.Equal(t, features.Ocean, feats[0].Kind)
	assert.Len(t, feats[0].Cells, 16)

	lake := feats[1]
	assert.Equal(t, features.Lake, lake.Kind)
	assert.Equal(t, 2, lake.ID)
	assert.Equal(t, []int{12}, lake.Cells)
	assert.False(t, lake.TouchesBorder)

	island := feats[2]
	assert.Equal(t, features.Island, island.Kind)
	assert.Len(t, island.Cells, 8)

	// Coverage: every cell belongs to exactly one feature.
	covered := 0
	for _, f := range feats {
		covered += len(f.Cells)
	}
	assert.Equal(t, m.Len(), covered)
	for _, c := range m.Cells() {
		assert.NotZerof(t, c.FeatureID, "cell %d unassigned", c.ID)
	}
}

// TestClassify_SealedBorder: land occupies the whole border ring, so
// the interior water is a lake and no ocean exists.
func TestClassify_SealedBorder(t *testing.T) {
	m := meshFromPattern(t, [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})

	feats, err := features.Classify(m)
	require.NoError(t, err)
	require.Len(t, feats, 2)

	assert.Equal(t, features.Lake, feats[0].Kind)
	assert.Equal(t, 1, feats[0].ID)
	assert.Equal(t, []int{4}, feats[0].Cells)

	assert.Equal(t, features.Island, feats[1].Kind)
	assert.True(t, feats[1].TouchesBorder)
	assert.Len(t, feats[1].Cells, 8)
}

// TestClassify_TwoIslands: separate landmasses get separate features in
// seed order.
func TestClassify_TwoIslands(t *testing.T) {
	m := meshFromPattern(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 0, 0, 0},
	})

	feats, err := features.Classify(m)
	require.NoError(t, err)
	require.Len(t, feats, 3)

	assert.Equal(t, features.Ocean, feats[0].Kind)
	assert.Equal(t, []int{6}, feats[1].Cells)
	assert.Equal(t, []int{8}, feats[2].Cells)
	assert.Equal(t, features.Island, feats[1].Kind)
	assert.Equal(t, features.Island, feats[2].Kind)
}

// TestClassify_BorderIsland: land reaching the border band flips
// TouchesBorder on the island.
func TestClassify_BorderIsland(t *testing.T) {
	m := meshFromPattern(t, [][]int{
		{1, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
	})

	feats, err := features.Classify(m)
	require.NoError(t, err)
	require.Len(t, feats, 2)

	assert.Equal(t, features.Island, feats[1].Kind)
	assert.True(t, feats[1].TouchesBorder)
}

func TestClassify_Deterministic(t *testing.T) {
	pattern := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	a, err := features.Classify(meshFromPattern(t, pattern))
	require.NoError(t, err)
	b, err := features.Classify(meshFromPattern(t, pattern))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestClassify_EmptyMesh(t *testing.T) {
	m, err := mesh.New(10, 10, nil)
	require.NoError(t, err)

	feats, err := features.Classify(m)
	assert.NoError(t, err)
	assert.Empty(t, feats)
}

func TestClassify_NilMesh(t *testing.T) {
	_, err := features.Classify(nil)
	assert.ErrorIs(t, err, features.ErrNilMesh)
}

func TestClassify_InvalidOption(t *testing.T) {
	m := meshFromPattern(t, [][]int{{0, 1}})
	_, err := features.Classify(m, features.WithBorderTolerance(-3))
	assert.ErrorIs(t, err, features.ErrOptionViolation)
}

// TestClassify_BorderToleranceOverride: a tolerance too small to reach
// any centroid turns all water into lakes.
func TestClassify_BorderToleranceOverride(t *testing.T) {
	m := meshFromPattern(t, [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	feats, err := features.Classify(m, features.WithBorderTolerance(1))
	require.NoError(t, err)
	require.Len(t, feats, 2)
	assert.Equal(t, features.Lake, feats[0].Kind, "no centroid within 1 unit of an edge, so no ocean")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "ocean", features.Ocean.String())
	assert.Equal(t, "lake", features.Lake.String())
	assert.Equal(t, "island", features.Island.String())
}
