// Package mesh defines the polygonal cell mesh every generation stage
// operates on, plus deterministic fixture builders for tests and demos.
package mesh

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for mesh construction and lookups.
var (
	// ErrNilMesh is returned when a nil *Mesh is passed to an operation.
	ErrNilMesh = errors.New("mesh: mesh is nil")

	// ErrBadDimensions is returned when map width or height is not a
	// positive finite number.
	ErrBadDimensions = errors.New("mesh: width and height must be positive")

	// ErrDuplicateCell is returned when two cells share the same ID.
	ErrDuplicateCell = errors.New("mesh: duplicate cell id")

	// ErrShortPolygon is returned when a cell polygon has fewer than
	// three vertices.
	ErrShortPolygon = errors.New("mesh: cell polygon needs at least 3 vertices")

	// ErrUnknownNeighbor is returned when a cell lists a neighbor ID
	// that does not exist in the mesh.
	ErrUnknownNeighbor = errors.New("mesh: neighbor id not present in mesh")

	// ErrAsymmetricNeighbor is returned when u lists v as a neighbor
	// but v does not list u.
	ErrAsymmetricNeighbor = errors.New("mesh: neighbor relation is not symmetric")

	// ErrCellNotFound is returned by lookups for an absent cell ID.
	ErrCellNotFound = errors.New("mesh: cell not found")

	// ErrJitterRange is returned by BuildJitteredGrid when the jitter
	// fraction would let cell polygons fold over each other.
	ErrJitterRange = errors.New("mesh: jitter must be in [0, 0.5)")

	// ErrBadGridSize is returned by the builders for non-positive
	// column or row counts.
	ErrBadGridSize = errors.New("mesh: cols and rows must be positive")
)

// Cell is one polygon of the map mesh.
//
// ID, Centroid, Polygon and Neighbors describe immutable topology fixed
// at construction time. Height, Land and FeatureID are mutable per-pass
// state written by the generation stages; ResetState clears them.
type Cell struct {
	// ID uniquely identifies the cell within its mesh.
	ID int

	// Centroid is the representative point used for distance tests,
	// border proximity and blob placement.
	Centroid orb.Point

	// Polygon is the cell boundary as an ordered vertex ring. The ring
	// is stored open (first vertex not repeated); edge i runs from
	// vertex i to vertex (i+1) mod len.
	Polygon orb.Ring

	// Neighbors lists adjacent cell IDs in ascending order.
	Neighbors []int

	// Height is the synthesized elevation, 0 for untouched or water cells.
	Height float64

	// Land reports whether the cell is above the effective sea level.
	Land bool

	// FeatureID is the ID of the classified region the cell belongs to,
	// or 0 while unassigned.
	FeatureID int
}
