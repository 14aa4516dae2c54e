package mesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// Mesh is an index-addressable collection of cells over a rectangular
// map area. Cells are held in ascending-ID order inside a flat slice
// with an ID→index map alongside, so flood fills and lookups run in
// O(1) without threading shared visited sets through callers.
type Mesh struct {
	width  float64
	height float64
	cells  []*Cell
	byID   map[int]int
}

// New validates the cells and assembles a Mesh over a width×height map
// rectangle.
//
// Validation rules:
//   - width and height must be positive finite numbers;
//   - cell IDs must be unique;
//   - every polygon needs at least three vertices;
//   - every listed neighbor must exist and list the cell back.
//
// New copies the cell slice (not the cells) and sorts it by ID, and
// sorts each cell's Neighbors ascending, so all iteration over the mesh
// is deterministic regardless of input order. An empty cell slice is
// allowed and yields an empty mesh.
//
// Complexity: O(n log n + Σ|neighbors|) time, O(n) extra memory.
func New(width, height float64, cells []*Cell) (*Mesh, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrBadDimensions, width, height)
	}

	ordered := make([]*Cell, len(cells))
	copy(ordered, cells)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	byID := make(map[int]int, len(ordered))
	for i, c := range ordered {
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCell, c.ID)
		}
		byID[c.ID] = i
		if len(c.Polygon) < 3 {
			return nil, fmt.Errorf("%w: cell %d has %d", ErrShortPolygon, c.ID, len(c.Polygon))
		}
		sort.Ints(c.Neighbors)
	}

	for _, c := range ordered {
		for _, nid := range c.Neighbors {
			j, ok := byID[nid]
			if !ok {
				return nil, fmt.Errorf("%w: %d → %d", ErrUnknownNeighbor, c.ID, nid)
			}
			if !containsInt(ordered[j].Neighbors, c.ID) {
				return nil, fmt.Errorf("%w: %d → %d", ErrAsymmetricNeighbor, c.ID, nid)
			}
		}
	}

	return &Mesh{width: width, height: height, cells: ordered, byID: byID}, nil
}

// Width returns the map rectangle width.
func (m *Mesh) Width() float64 { return m.width }

// Height returns the map rectangle height.
func (m *Mesh) Height() float64 { return m.height }

// Len returns the number of cells.
func (m *Mesh) Len() int { return len(m.cells) }

// Cells returns the live cell slice in ascending-ID order. Callers may
// mutate per-pass state (Height, Land, FeatureID) through it but must
// not reorder the slice or alter topology.
func (m *Mesh) Cells() []*Cell { return m.cells }

// Cell returns the cell with the given ID, or ErrCellNotFound.
//
// Complexity: O(1).
func (m *Mesh) Cell(id int) (*Cell, error) {
	i, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrCellNotFound, id)
	}
	return m.cells[i], nil
}

// CellAt returns the cell at slice position i in ascending-ID order.
// It panics when i is out of range, like any slice index.
func (m *Mesh) CellAt(i int) *Cell { return m.cells[i] }

// Index returns the slice position of the cell with the given ID.
//
// Complexity: O(1).
func (m *Mesh) Index(id int) (int, bool) {
	i, ok := m.byID[id]
	return i, ok
}

// ResetState zeroes the mutable per-pass state (Height, Land,
// FeatureID) on every cell, leaving topology untouched. Call it before
// rerunning the pipeline on a reused mesh.
//
// Complexity: O(n).
func (m *Mesh) ResetState() {
	for _, c := range m.cells {
		c.Height = 0
		c.Land = false
		c.FeatureID = 0
	}
}

// Contains reports whether the point lies inside the map rectangle.
func (m *Mesh) Contains(p orb.Point) bool {
	return p[0] >= 0 && p[0] <= m.width && p[1] >= 0 && p[1] <= m.height
}

// containsInt reports membership in an ascending-sorted id slice.
func containsInt(sorted []int, id int) bool {
	i := sort.SearchInts(sorted, id)
	return i < len(sorted) && sorted[i] == id
}
