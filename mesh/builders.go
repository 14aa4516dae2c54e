package mesh

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// defaultBuilderSeed is the fixed "zero" seed used when callers pass
// seed==0, keeping unseeded builds reproducible.
const defaultBuilderSeed int64 = 1

// BuildGrid constructs a cols×rows mesh of axis-aligned rectangular
// cells exactly tiling a width×height map. Cell IDs are row-major
// (id = r·cols + c), neighbors are 4-connected.
//
// Complexity: O(cols·rows) time and memory.
func BuildGrid(width, height float64, cols, rows int) (*Mesh, error) {
	return BuildJitteredGrid(width, height, cols, rows, 0, 0)
}

// BuildJitteredGrid constructs a cols×rows quad mesh whose interior
// lattice vertices are displaced by up to ±jitter of a cell side,
// producing an irregular polygonal mesh that still exactly tiles the
// map rectangle (border vertices stay pinned). Neighboring cells share
// displaced vertices bit-for-bit, so shared edges agree exactly.
//
// jitter must lie in [0, 0.5); at 0.5 adjacent vertices could cross
// and fold a cell polygon over its neighbor. seed==0 selects a fixed
// default stream, so unseeded builds are still deterministic.
//
// Complexity: O(cols·rows) time and memory.
func BuildJitteredGrid(width, height float64, cols, rows int, jitter float64, seed int64) (*Mesh, error) {
	if cols < 1 || rows < 1 {
		return nil, ErrBadGridSize
	}
	if !(jitter >= 0 && jitter < 0.5) {
		return nil, ErrJitterRange
	}

	cw := width / float64(cols)
	ch := height / float64(rows)
	rng := builderRNG(seed)

	// Shared vertex lattice, (cols+1)×(rows+1), row-major.
	lattice := make([]orb.Point, (cols+1)*(rows+1))
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			x := float64(c) * cw
			y := float64(r) * ch
			if jitter > 0 && c > 0 && c < cols && r > 0 && r < rows {
				x += (rng.Float64()*2 - 1) * jitter * cw
				y += (rng.Float64()*2 - 1) * jitter * ch
			}
			lattice[r*(cols+1)+c] = orb.Point{x, y}
		}
	}

	at := func(r, c int) orb.Point { return lattice[r*(cols+1)+c] }

	cells := make([]*Cell, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			quad := orb.Ring{at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)}
			cx := (quad[0][0] + quad[1][0] + quad[2][0] + quad[3][0]) / 4
			cy := (quad[0][1] + quad[1][1] + quad[2][1] + quad[3][1]) / 4

			id := r*cols + c
			var nbs []int
			if c > 0 {
				nbs = append(nbs, id-1)
			}
			if c < cols-1 {
				nbs = append(nbs, id+1)
			}
			if r > 0 {
				nbs = append(nbs, id-cols)
			}
			if r < rows-1 {
				nbs = append(nbs, id+cols)
			}

			cells = append(cells, &Cell{
				ID:        id,
				Centroid:  orb.Point{cx, cy},
				Polygon:   quad,
				Neighbors: nbs,
			})
		}
	}

	return New(width, height, cells)
}

// builderRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultBuilderSeed; otherwise the seed verbatim.
func builderRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultBuilderSeed
	}
	return rand.New(rand.NewSource(s))
}

// CellSpacing returns the mean centroid spacing √(width·height/n), a
// scale-free estimate of "one cell" used as the default border
// proximity tolerance. Returns 0 for an empty mesh.
func (m *Mesh) CellSpacing() float64 {
	if len(m.cells) == 0 {
		return 0
	}
	return math.Sqrt(m.width * m.height / float64(len(m.cells)))
}
