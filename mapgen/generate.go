package mapgen

import (
	"fmt"

	"github.com/ncuskey/FWG4/coastline"
	"github.com/ncuskey/FWG4/features"
	"github.com/ncuskey/FWG4/heightfield"
	"github.com/ncuskey/FWG4/mesh"
)

// Generate runs the full pipeline over the mesh:
//
//	reset state → synthesize heights → classify land/water →
//	classify features → extract boundary edges → carve border water →
//	assemble boundaries → optional simplification
//
// Edges are extracted before carving on purpose: carving drowns the
// border band, and extracting afterwards would erase the coastlines of
// islands clipped by it. The carve still guarantees water at every map
// edge in the final cell state.
//
// The mesh is mutated in place (heights, land flags, feature IDs) and
// reset first, so a mesh can be reused across runs. Same mesh, same
// Config ⇒ identical Result.
//
// Complexity: O(n log n + E log E) time over cells and boundary edges.
func Generate(m *mesh.Mesh, cfg Config) (*Result, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	m.ResetState()

	res := &Result{}
	var err error

	if res.Heights, err = heightfield.Synthesize(m, cfg.Terrain); err != nil {
		return nil, fmt.Errorf("mapgen: synthesize: %w", err)
	}

	if res.Waterline, err = features.ClassifyLandWater(m, cfg.SeaLevel, cfg.Terrain.Continental); err != nil {
		return nil, fmt.Errorf("mapgen: waterline: %w", err)
	}

	var fopts []features.Option
	if cfg.BorderTolerance > 0 {
		fopts = append(fopts, features.WithBorderTolerance(cfg.BorderTolerance))
	}
	if res.Features, err = features.Classify(m, fopts...); err != nil {
		return nil, fmt.Errorf("mapgen: classify: %w", err)
	}

	prec := cfg.Precision
	if prec == 0 {
		prec = coastline.DefaultPrecision
	}
	copts := []coastline.Option{coastline.WithPrecision(prec)}

	edges, err := coastline.ExtractEdges(m, copts...)
	if err != nil {
		return nil, fmt.Errorf("mapgen: extract: %w", err)
	}
	res.EdgeCount = len(edges)

	if res.Carved, err = features.CarveBorderWater(m, cfg.Terrain.WaterMargin); err != nil {
		return nil, fmt.Errorf("mapgen: carve: %w", err)
	}

	if res.Outlines, err = coastline.AssembleBoundaries(edges, res.Features, copts...); err != nil {
		return nil, fmt.Errorf("mapgen: assemble: %w", err)
	}

	if cfg.SimplifyTolerance > 0 {
		byID := make(map[int]int, len(res.Features))
		for i := range res.Features {
			byID[res.Features[i].ID] = i
		}
		for i := range res.Outlines {
			simplified := coastline.Simplify(res.Outlines[i], cfg.SimplifyTolerance)
			res.Outlines[i] = simplified
			if j, ok := byID[simplified.FeatureID]; ok {
				res.Features[j].Boundary = simplified.Points
			}
		}
	}

	return res, nil
}
