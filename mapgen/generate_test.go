package mapgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncuskey/FWG4/coastline"
	"github.com/ncuskey/FWG4/features"
	"github.com/ncuskey/FWG4/heightfield"
	"github.com/ncuskey/FWG4/mapgen"
	"github.com/ncuskey/FWG4/mesh"
)

// pipelineMesh builds the jittered grid used by the integration tests.
func pipelineMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.BuildJitteredGrid(400, 300, 40, 30, 0.35, 5)
	require.NoError(t, err)
	return m
}

func seededConfig() mapgen.Config {
	cfg := mapgen.DefaultConfig()
	cfg.Terrain.Seed = 77
	return cfg
}

func TestGenerate_NilMesh(t *testing.T) {
	_, err := mapgen.Generate(nil, mapgen.DefaultConfig())
	assert.ErrorIs(t, err, mapgen.ErrNilMesh)
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := seededConfig()

	a, err := mapgen.Generate(pipelineMesh(t), cfg)
	require.NoError(t, err)
	b, err := mapgen.Generate(pipelineMesh(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Rerunning on the same mesh resets state and reproduces the map.
	m := pipelineMesh(t)
	c, err := mapgen.Generate(m, cfg)
	require.NoError(t, err)
	d, err := mapgen.Generate(m, cfg)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

// TestGenerate_Invariants checks the cross-stage guarantees on a real
// jittered map: full feature coverage, a dry-free border band, one
// outline per non-ocean feature, closed loops actually closed.
func TestGenerate_Invariants(t *testing.T) {
	m := pipelineMesh(t)
	cfg := seededConfig()

	res, err := mapgen.Generate(m, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, res.Features)
	require.Positive(t, res.Waterline.LandCells, "seed 77 should produce land")
	require.Positive(t, res.EdgeCount)

	// Every cell belongs to exactly one feature.
	covered := 0
	oceans := 0
	for _, f := range res.Features {
		covered += len(f.Cells)
		if f.Kind == features.Ocean {
			oceans++
		}
	}
	assert.Equal(t, m.Len(), covered)
	assert.Equal(t, 1, oceans)

	// Border band carved: no land centroid within the margin.
	margin := cfg.Terrain.WaterMargin
	for _, c := range m.Cells() {
		if !c.Land {
			continue
		}
		x, y := c.Centroid[0], c.Centroid[1]
		assert.Falsef(t, x < margin || y < margin || x > m.Width()-margin || y > m.Height()-margin,
			"land cell %d at %v inside the border band", c.ID, c.Centroid)
		assert.NotZerof(t, c.FeatureID, "land cell %d unassigned", c.ID)
	}

	// One outline per non-ocean feature, in feature order, with the
	// boundary mirrored onto the feature.
	assert.Len(t, res.Outlines, len(res.Features)-oceans)
	i := 0
	for _, f := range res.Features {
		if f.Kind == features.Ocean {
			assert.Nil(t, f.Boundary)
			continue
		}
		out := res.Outlines[i]
		i++
		assert.Equal(t, f.ID, out.FeatureID)
		assert.Equal(t, f.Boundary, out.Points)
		if out.Closed && len(out.Points) > 0 {
			assert.Equal(t, out.Points[0], out.Points[len(out.Points)-1])
		}
	}
}

func TestGenerate_SimplifySync(t *testing.T) {
	cfg := seededConfig()
	full, err := mapgen.Generate(pipelineMesh(t), cfg)
	require.NoError(t, err)

	cfg.SimplifyTolerance = 2
	reduced, err := mapgen.Generate(pipelineMesh(t), cfg)
	require.NoError(t, err)

	require.Equal(t, len(full.Outlines), len(reduced.Outlines))
	shrunk := false
	for i, out := range reduced.Outlines {
		assert.LessOrEqual(t, len(out.Points), len(full.Outlines[i].Points))
		if len(out.Points) < len(full.Outlines[i].Points) {
			shrunk = true
		}
		if out.Closed && len(out.Points) > 0 {
			assert.Equal(t, out.Points[0], out.Points[len(out.Points)-1], "simplification broke closure")
		}
	}
	assert.True(t, shrunk, "tolerance 2 should drop some points")

	// Feature boundaries track the simplified outlines.
	byID := make(map[int]coastline.Outline, len(reduced.Outlines))
	for _, out := range reduced.Outlines {
		byID[out.FeatureID] = out
	}
	for _, f := range reduced.Features {
		if f.Kind == features.Ocean {
			continue
		}
		assert.Equal(t, byID[f.ID].Points, f.Boundary)
	}
}

// TestGenerate_FlatContinental: zero blobs in continental mode produce
// the degenerate all-water map: one ocean, no outlines, nothing carved.
func TestGenerate_FlatContinental(t *testing.T) {
	cfg := mapgen.DefaultConfig()
	cfg.Terrain = heightfield.ContinentalParams()
	cfg.Terrain.BlobCount = 0
	cfg.Terrain.Seed = 3

	res, err := mapgen.Generate(pipelineMesh(t), cfg)
	require.NoError(t, err)

	assert.True(t, res.Waterline.Degenerate)
	assert.Equal(t, cfg.SeaLevel, res.Waterline.EffectiveSeaLevel)
	assert.Zero(t, res.Waterline.LandCells)
	assert.Zero(t, res.EdgeCount)
	assert.Zero(t, res.Carved)

	require.Len(t, res.Features, 1)
	assert.Equal(t, features.Ocean, res.Features[0].Kind)
	assert.Empty(t, res.Outlines)
}

func TestGenerate_PropagatesStageErrors(t *testing.T) {
	cfg := mapgen.DefaultConfig()
	cfg.Terrain.BlobCount = -1

	_, err := mapgen.Generate(pipelineMesh(t), cfg)
	assert.ErrorIs(t, err, heightfield.ErrInvalidParams)
}
