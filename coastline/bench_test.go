package coastline_test

import (
	"math"
	"testing"

	"github.com/ncuskey/FWG4/coastline"
	"github.com/ncuskey/FWG4/features"
	"github.com/ncuskey/FWG4/mesh"
)

// circleMesh builds a cols×rows grid with a circular island of the
// given radius (cells) around the map center, classified and ready for
// extraction.
func circleMesh(b *testing.B, cols, rows int, radius float64) (*mesh.Mesh, []features.Feature) {
	b.Helper()
	m, err := mesh.BuildGrid(float64(cols*10), float64(rows*10), cols, rows)
	if err != nil {
		b.Fatalf("setup BuildGrid failed: %v", err)
	}
	cx, cy := m.Width()/2, m.Height()/2
	for _, c := range m.Cells() {
		if math.Hypot(c.Centroid[0]-cx, c.Centroid[1]-cy) < radius*10 {
			c.Land = true
			c.Height = 0.5
		}
	}
	feats, err := features.Classify(m)
	if err != nil {
		b.Fatalf("setup Classify failed: %v", err)
	}
	return m, feats
}

// BenchmarkExtractEdges measures unique-edge counting on a 200×200
// grid with a radius-60 island (~11k coastline candidate cells).
// Complexity: O(Σ|polygon| + E·d)
func BenchmarkExtractEdges(b *testing.B) {
	m, _ := circleMesh(b, 200, 200, 60)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coastline.ExtractEdges(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAssembleBoundaries measures dedupe + walk on the same
// island's extracted edges.
// Complexity: O(E log E)
func BenchmarkAssembleBoundaries(b *testing.B) {
	m, feats := circleMesh(b, 200, 200, 60)
	edges, err := coastline.ExtractEdges(m)
	if err != nil {
		b.Fatalf("setup ExtractEdges failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coastline.AssembleBoundaries(edges, feats); err != nil {
			b.Fatal(err)
		}
	}
}
