package coastline

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"

	"github.com/ncuskey/FWG4/features"
)

// AssembleBoundaries groups walkable edges by owning feature and walks
// each group into one ordered outline per non-ocean feature, setting
// the feature's Boundary along the way.
//
// Ownership follows the water side: a coast edge whose resolved water
// neighbor belongs to a Lake is the lake's shoreline; every other edge
// belongs to the land cell's feature. Border edges are never walkable,
// so coastlines clipped by the map border come out as open chains.
//
// Topology is decided by chain endpoints (vertices of degree 1): none
// means a closed loop that repeats its first point last, exactly two
// means an open chain walked end to end. Any other count is recorded
// as WarnDegree and walked best-effort. Walk starts are deterministic:
// the lowest endpoint (min y, then x) for chains, the lowest vertex
// for loops.
//
// Complexity: O(E log E) time per feature (adjacency sorting), O(E)
// memory.
func AssembleBoundaries(edges []Edge, feats []features.Feature, opts ...Option) ([]Outline, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	scale := scaleFor(o.Precision)

	kind := make(map[int]features.Kind, len(feats))
	cellFeature := make(map[int]int)
	for _, f := range feats {
		kind[f.ID] = f.Kind
		for _, id := range f.Cells {
			cellFeature[id] = f.ID
		}
	}

	grouped := make(map[int][]Edge)
	for _, e := range edges {
		if e.IsBorder() {
			continue
		}
		owner := e.FeatureID
		if e.WaterCell >= 0 {
			if wf, ok := cellFeature[e.WaterCell]; ok && kind[wf] == features.Lake {
				owner = wf
			}
		}
		grouped[owner] = append(grouped[owner], e)
	}

	outlines := make([]Outline, 0, len(feats))
	for i := range feats {
		f := &feats[i]
		if f.Kind == features.Ocean {
			continue
		}
		out := assembleOne(f.ID, grouped[f.ID], scale)
		f.Boundary = out.Points
		outlines = append(outlines, out)
	}

	return outlines, nil
}

// boundaryVertex is one node of a per-feature edge graph: the first
// actual coordinate seen for its rounded key, plus rounded neighbors.
type boundaryVertex struct {
	at  orb.Point
	adj []vertexKey
}

// assembleOne deduplicates a feature's edges, classifies the topology
// and walks the outline.
func assembleOne(featureID int, edges []Edge, scale float64) Outline {
	out := Outline{FeatureID: featureID}

	seen := make(map[edgeKey]struct{}, len(edges))
	verts := make(map[vertexKey]*boundaryVertex)
	ensure := func(k vertexKey, p orb.Point) *boundaryVertex {
		v, ok := verts[k]
		if !ok {
			v = &boundaryVertex{at: p}
			verts[k] = v
		}
		return v
	}

	unique := 0
	for _, e := range edges {
		ek := edgeKeyOf(e.Start, e.End, scale)
		if ek.a == ek.b {
			continue // collapses to a point under rounding
		}
		if _, dup := seen[ek]; dup {
			continue
		}
		seen[ek] = struct{}{}
		unique++

		ka, kb := keyOf(e.Start, scale), keyOf(e.End, scale)
		va, vb := ensure(ka, e.Start), ensure(kb, e.End)
		va.adj = append(va.adj, kb)
		vb.adj = append(vb.adj, ka)
	}

	if unique == 0 {
		out.Warnings = append(out.Warnings, Warning{WarnNoEdges, "no walkable coastline edges"})
		return out
	}

	var ends []vertexKey
	for k, v := range verts {
		sort.Slice(v.adj, func(i, j int) bool { return keyLess(v.adj[i], v.adj[j]) })
		if len(v.adj) == 1 {
			ends = append(ends, k)
		}
	}
	sort.Slice(ends, func(i, j int) bool { return keyLess(ends[i], ends[j]) })

	out.Closed = len(ends) == 0
	if len(ends) != 0 && len(ends) != 2 {
		out.Warnings = append(out.Warnings, Warning{
			Code:   WarnDegree,
			Detail: fmt.Sprintf("%d chain endpoints (want 0 or 2)", len(ends)),
		})
	}

	start := minVertex(verts)
	if len(ends) > 0 {
		start = ends[0]
	}

	points, truncated := walk(verts, start, unique, out.Closed)
	out.Points = points
	switch {
	case truncated:
		out.Warnings = append(out.Warnings, Warning{
			Code:   WarnWalkBound,
			Detail: fmt.Sprintf("walk stopped after %d steps", unique+2),
		})
	case len(points)-1 < unique:
		out.Warnings = append(out.Warnings, Warning{
			Code:   WarnIncomplete,
			Detail: fmt.Sprintf("walked %d of %d edges", len(points)-1, unique),
		})
	}

	return out
}

// walk traverses the edge graph from start, always taking the lowest
// eligible neighbor, and returns the ordered points plus whether the
// safety bound truncated it. A closed loop re-emits the start point
// last, so E edges yield E+1 points.
func walk(verts map[vertexKey]*boundaryVertex, start vertexKey, unique int, closed bool) (orb.LineString, bool) {
	bound := unique + 2
	points := make(orb.LineString, 0, unique+1)
	visited := make(map[vertexKey]bool, len(verts))

	cur := start
	var prev vertexKey
	hasPrev := false
	for steps := 0; ; steps++ {
		if steps > bound {
			return points, true
		}
		v := verts[cur]
		points = append(points, v.at)
		visited[cur] = true

		next, ok := nextHop(v, prev, hasPrev, visited, start, closed)
		if !ok {
			return points, false
		}
		if closed && next == start {
			points = append(points, verts[start].at)
			return points, false
		}
		prev, hasPrev, cur = cur, true, next
	}
}

// nextHop picks the first eligible neighbor in sorted order: never the
// vertex we just came from, never a visited vertex except the start of
// a closed loop (which closes it).
func nextHop(v *boundaryVertex, prev vertexKey, hasPrev bool, visited map[vertexKey]bool, start vertexKey, closed bool) (vertexKey, bool) {
	for _, k := range v.adj {
		if hasPrev && k == prev {
			continue
		}
		if visited[k] {
			if closed && k == start {
				return k, true
			}
			continue
		}
		return k, true
	}
	return vertexKey{}, false
}

// minVertex returns the lowest key (min y, then x) in the graph.
func minVertex(verts map[vertexKey]*boundaryVertex) vertexKey {
	var best vertexKey
	first := true
	for k := range verts {
		if first || keyLess(k, best) {
			best = k
			first = false
		}
	}
	return best
}
