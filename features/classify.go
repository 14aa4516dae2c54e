package features

import (
	"sort"

	"github.com/ncuskey/FWG4/mesh"
)

// Classify partitions the land/water-classified mesh into features and
// stamps every cell's FeatureID.
//
// Discovery order is fixed:
//  1. Ocean — all water cells within the border tolerance of a map
//     edge seed one shared flood fill. Maps without border water (all
//     land, or land sealing the border) have no ocean.
//  2. Lakes — each remaining water component, by lowest member cell ID.
//  3. Islands — each land component, by lowest member cell ID.
//
// Feature IDs are 1-based in that order, so a given classified mesh
// always yields the same features. Returns ErrOptionViolation for
// invalid options; an empty mesh yields no features and no error.
//
// Complexity: O(n + Σ|neighbors|) time, O(n) memory.
func Classify(m *mesh.Mesh, opts ...Option) ([]Feature, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if m.Len() == 0 {
		return nil, nil
	}

	tol := o.BorderTolerance
	if tol == 0 {
		tol = m.CellSpacing()
	}

	for _, c := range m.Cells() {
		c.FeatureID = 0
	}

	var feats []Feature
	nextID := 1

	// 1) Ocean: one feature grown from every border-adjacent water cell.
	var oceanSeeds []*mesh.Cell
	for _, c := range m.Cells() {
		if !c.Land && nearBorder(m, c, tol) {
			oceanSeeds = append(oceanSeeds, c)
		}
	}
	if len(oceanSeeds) > 0 {
		feats = append(feats, Feature{
			ID:            nextID,
			Kind:          Ocean,
			TouchesBorder: true,
			Cells:         flood(m, oceanSeeds, nextID, false),
		})
		nextID++
	}

	// 2) Lakes: water never reached by the ocean fill.
	for _, c := range m.Cells() {
		if c.Land || c.FeatureID != 0 {
			continue
		}
		feats = append(feats, Feature{
			ID:    nextID,
			Kind:  Lake,
			Cells: flood(m, []*mesh.Cell{c}, nextID, false),
		})
		nextID++
	}

	// 3) Islands: land components.
	for _, c := range m.Cells() {
		if !c.Land || c.FeatureID != 0 {
			continue
		}
		f := Feature{
			ID:    nextID,
			Kind:  Island,
			Cells: flood(m, []*mesh.Cell{c}, nextID, true),
		}
		for _, id := range f.Cells {
			member, err := m.Cell(id)
			if err == nil && nearBorder(m, member, tol) {
				f.TouchesBorder = true
				break
			}
		}
		feats = append(feats, f)
		nextID++
	}

	return feats, nil
}

// flood stamps featureID on every same-type cell reachable from the
// seeds and returns the member IDs in ascending order. FeatureID
// doubles as the visited marker, so each cell is claimed exactly once
// across all fills.
func flood(m *mesh.Mesh, seeds []*mesh.Cell, featureID int, land bool) []int {
	queue := make([]*mesh.Cell, 0, len(seeds))
	for _, s := range seeds {
		if s.FeatureID == 0 {
			s.FeatureID = featureID
			queue = append(queue, s)
		}
	}

	members := make([]int, 0, len(queue))
	for qi := 0; qi < len(queue); qi++ {
		c := queue[qi]
		members = append(members, c.ID)
		for _, nid := range c.Neighbors {
			nb, err := m.Cell(nid)
			if err != nil || nb.Land != land || nb.FeatureID != 0 {
				continue
			}
			nb.FeatureID = featureID
			queue = append(queue, nb)
		}
	}

	sort.Ints(members)
	return members
}

// nearBorder reports whether the cell centroid lies within tol of any
// map edge.
func nearBorder(m *mesh.Mesh, c *mesh.Cell, tol float64) bool {
	x, y := c.Centroid[0], c.Centroid[1]
	return x <= tol || y <= tol || x >= m.Width()-tol || y >= m.Height()-tol
}
