package coastline

import (
	"math"

	"github.com/paulmach/orb"
)

// vertexKey is a vertex identity on the rounded integer lattice. Two
// float vertices within half a lattice step of the same lattice point
// share a key, which is what lets edge counting survive mesh noise.
// Noise larger than the half step splits keys and surfaces as spurious
// boundary edges; see the package doc for the failure mode.
type vertexKey struct {
	x, y int64
}

// keyOf rounds a point onto the lattice at the given scale (10^precision).
func keyOf(p orb.Point, scale float64) vertexKey {
	return vertexKey{
		x: int64(math.Round(p[0] * scale)),
		y: int64(math.Round(p[1] * scale)),
	}
}

// keyLess orders keys by y, then x. The same ordering picks canonical
// edge endpoints and deterministic walk starts.
func keyLess(a, b vertexKey) bool {
	if a.y != b.y {
		return a.y < b.y
	}
	return a.x < b.x
}

// edgeKey is an undirected edge identity: canonically ordered endpoint
// keys, so (p,q) and (q,p) collide as required for unique-edge
// counting.
type edgeKey struct {
	a, b vertexKey
}

// edgeKeyOf builds the canonical key for the segment p-q.
func edgeKeyOf(p, q orb.Point, scale float64) edgeKey {
	ka, kb := keyOf(p, scale), keyOf(q, scale)
	if keyLess(kb, ka) {
		ka, kb = kb, ka
	}
	return edgeKey{a: ka, b: kb}
}

// scaleFor converts a decimal precision into the lattice scale.
func scaleFor(precision int) float64 {
	return math.Pow(10, float64(precision))
}
