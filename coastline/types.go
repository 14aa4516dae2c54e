// Package coastline provides tunable options and error definitions for
// boundary-edge extraction and outline assembly.
package coastline

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// Sentinel errors for coastline operations.
var (
	// ErrNilMesh is returned if a nil mesh pointer is passed.
	ErrNilMesh = errors.New("coastline: mesh is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coastline: invalid option supplied")
)

// Sentinel neighbor IDs recorded on Edge.WaterCell.
const (
	// BorderCell marks an edge lying along the outer map rectangle;
	// no water cell exists on its far side.
	BorderCell = -1

	// UnknownCell marks an edge whose water neighbor could not be
	// resolved under the rounding tolerance. The edge is still part of
	// the coastline.
	UnknownCell = -2
)

// Edge is one boundary segment of a land cell: the far side is either
// water or the map border. Start and End are the exact vertices stored
// in the land cell's polygon; identity rounding applies only to keys,
// never to emitted geometry.
type Edge struct {
	Start orb.Point
	End   orb.Point

	// LandCell is the owning land cell ID.
	LandCell int

	// WaterCell is the resolved water neighbor ID, or BorderCell /
	// UnknownCell.
	WaterCell int

	// FeatureID is the land cell's feature at extraction time.
	FeatureID int
}

// IsBorder reports whether the edge lies along the outer map rectangle.
func (e Edge) IsBorder() bool { return e.WaterCell == BorderCell }

// WarningCode identifies a non-fatal assembly diagnostic.
type WarningCode int

const (
	// WarnNoEdges: the feature had no walkable coastline edges.
	WarnNoEdges WarningCode = iota

	// WarnDegree: the edge graph had an unexpected number of chain
	// endpoints (not 0 and not 2); the walk is best-effort.
	WarnDegree

	// WarnWalkBound: the walk hit its safety bound and was truncated.
	WarnWalkBound

	// WarnIncomplete: the walk ended before covering every deduplicated
	// edge (branching topology).
	WarnIncomplete
)

// String returns a short code name.
func (c WarningCode) String() string {
	switch c {
	case WarnNoEdges:
		return "no-edges"
	case WarnDegree:
		return "degree"
	case WarnWalkBound:
		return "walk-bound"
	case WarnIncomplete:
		return "incomplete"
	default:
		return fmt.Sprintf("warning(%d)", int(c))
	}
}

// Warning is one structural diagnostic attached to an Outline.
type Warning struct {
	Code   WarningCode
	Detail string
}

// Outline is the assembled boundary of one feature.
type Outline struct {
	// FeatureID names the owning feature: the lake for lake shorelines,
	// the island otherwise.
	FeatureID int

	// Points is the ordered boundary. A closed outline repeats its
	// first point last, so a loop of E edges has E+1 points.
	Points orb.LineString

	// Closed reports loop topology (no chain endpoints found).
	Closed bool

	// Warnings lists structural problems hit during assembly; an empty
	// slice means a clean walk.
	Warnings []Warning
}

// DefaultPrecision is the decimal-place rounding used for vertex
// identity; two map units of 0.01 collapse to the same key.
const DefaultPrecision = 2

// maxPrecision bounds rounding so the int64 lattice cannot overflow on
// sane map coordinates.
const maxPrecision = 9

// Option configures extraction and assembly via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the operation is invoked.
type Option func(*Options)

// Options holds parameters shared by ExtractEdges and
// AssembleBoundaries.
type Options struct {
	// Precision is the number of decimal places kept when rounding
	// vertex coordinates into identity keys.
	Precision int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultPrecision.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

// WithPrecision sets the vertex-identity rounding precision.
//
//	0 ≤ p ≤ 9: round to p decimal places
//	otherwise: invalid option → ErrOptionViolation
func WithPrecision(p int) Option {
	return func(o *Options) {
		if p < 0 || p > maxPrecision {
			o.err = fmt.Errorf("%w: Precision %d", ErrOptionViolation, p)
			return
		}
		o.Precision = p
	}
}

// applyOptions folds opts over defaults and surfaces recorded errors.
func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
