package coastline

import (
	"github.com/paulmach/orb"

	"github.com/ncuskey/FWG4/mesh"
)

// ExtractEdges returns every boundary edge of a classified mesh:
// segments of land-cell polygons that face water or the map border.
//
// Boundary-ness is discovered by unique-edge counting. Every polygon
// edge of every land cell is keyed on the rounded vertex lattice; an
// edge shared by two land cells is keyed twice, an edge on the land
// perimeter exactly once. The count==1 edges are the coastline. No
// geometry is recomputed: emitted edges carry the land cell's actual
// vertices, so noisy meshes keep their noisy coasts.
//
// Provenance per edge: a segment whose endpoints both lie on the same
// map side (within half a lattice step) is flagged BorderCell; other
// edges resolve their water neighbor by matching the edge key against
// neighboring water-cell polygons, falling back to UnknownCell.
//
// Edges are emitted in mesh order (ascending cell ID, polygon ring
// order), so the same mesh always yields the same slice.
//
// Complexity: O(Σ|polygon| + E·d) time, O(Σ|polygon|) memory, where d
// is the neighbor count of a land cell.
func ExtractEdges(m *mesh.Mesh, opts ...Option) ([]Edge, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	scale := scaleFor(o.Precision)

	// Pass 1: count canonical edge keys over land-cell rings.
	counts := make(map[edgeKey]int)
	for _, c := range m.Cells() {
		if !c.Land {
			continue
		}
		ring := c.Polygon
		for i := range ring {
			counts[edgeKeyOf(ring[i], ring[(i+1)%len(ring)], scale)]++
		}
	}

	// Pass 2: emit unique edges with provenance.
	borderTol := 0.5 / scale
	var edges []Edge
	for _, c := range m.Cells() {
		if !c.Land {
			continue
		}
		ring := c.Polygon
		for i := range ring {
			p, q := ring[i], ring[(i+1)%len(ring)]
			if counts[edgeKeyOf(p, q, scale)] != 1 {
				continue
			}
			e := Edge{
				Start:     p,
				End:       q,
				LandCell:  c.ID,
				WaterCell: UnknownCell,
				FeatureID: c.FeatureID,
			}
			if onSameSide(p, q, m.Width(), m.Height(), borderTol) {
				e.WaterCell = BorderCell
			} else if wid, ok := waterNeighbor(m, c, p, q, scale); ok {
				e.WaterCell = wid
			}
			edges = append(edges, e)
		}
	}

	return edges, nil
}

// onSameSide reports whether both endpoints lie on one side of the map
// rectangle (x=0, x=w, y=0 or y=h) within tol. Only such segments are
// border edges; a segment cutting across a corner still counts as
// coast.
func onSameSide(p, q orb.Point, w, h, tol float64) bool {
	near := func(v, side float64) bool {
		d := v - side
		return d >= -tol && d <= tol
	}
	switch {
	case near(p[0], 0) && near(q[0], 0):
		return true
	case near(p[0], w) && near(q[0], w):
		return true
	case near(p[1], 0) && near(q[1], 0):
		return true
	case near(p[1], h) && near(q[1], h):
		return true
	}
	return false
}

// waterNeighbor scans the land cell's water neighbors for one whose
// polygon contains the same rounded edge. Neighbors are visited in
// ascending-ID order, so resolution is deterministic even if several
// water cells would match.
func waterNeighbor(m *mesh.Mesh, c *mesh.Cell, p, q orb.Point, scale float64) (int, bool) {
	want := edgeKeyOf(p, q, scale)
	for _, nid := range c.Neighbors {
		nb, err := m.Cell(nid)
		if err != nil || nb.Land {
			continue
		}
		ring := nb.Polygon
		for i := range ring {
			if edgeKeyOf(ring[i], ring[(i+1)%len(ring)], scale) == want {
				return nb.ID, true
			}
		}
	}
	return 0, false
}
