package coastline

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// minClosedPoints is the smallest closed outline worth keeping: a
// triangle plus the repeated closing point.
const minClosedPoints = 4

// Simplify returns the outline reduced with Douglas-Peucker at the
// given tolerance (map units). The original outline is returned
// unchanged when tolerance is non-positive, the outline is too short
// to reduce, or reduction would degenerate a closed loop below a
// triangle.
//
// Douglas-Peucker keeps the first and last points of the line, so a
// closed outline stays closed (first == last) after reduction.
//
// Complexity: O(n log n) average via the simplifier.
func Simplify(out Outline, tolerance float64) Outline {
	if tolerance <= 0 || len(out.Points) < 3 {
		return out
	}

	reduced := simplify.DouglasPeucker(tolerance).Simplify(out.Points.Clone())
	points, ok := reduced.(orb.LineString)
	if !ok || len(points) < 2 {
		return out
	}
	if out.Closed && len(points) < minClosedPoints {
		return out
	}

	out.Points = points
	return out
}
