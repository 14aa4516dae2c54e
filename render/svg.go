// Package render draws a generated map as SVG: water background, land
// cells, lake cells and coastline strokes.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/paulmach/orb"

	"github.com/ncuskey/FWG4/coastline"
	"github.com/ncuskey/FWG4/features"
	"github.com/ncuskey/FWG4/mesh"
)

// ErrNilMesh is returned if a nil mesh pointer is passed.
var ErrNilMesh = errors.New("render: mesh is nil")

// Style holds the fill and stroke settings for one rendered map.
type Style struct {
	// Ocean fills the map background.
	Ocean string

	// Land fills land-cell polygons.
	Land string

	// Lake fills lake-cell polygons.
	Lake string

	// Coast is the outline stroke color.
	Coast string

	// CoastWidth is the outline stroke width in pixels.
	CoastWidth float64

	// Shade varies the land fill with relative cell height instead of
	// the flat Land color. Off by default.
	Shade bool
}

// DefaultStyle returns a readable sea/sand/water palette.
func DefaultStyle() Style {
	return Style{
		Ocean:      "rgb(70,110,160)",
		Land:       "rgb(200,190,150)",
		Lake:       "rgb(100,140,180)",
		Coast:      "rgb(60,50,40)",
		CoastWidth: 1.5,
	}
}

// SVG renders the classified mesh and its outlines to w. Cells are
// drawn as filled polygons (land first, then lake cells on top), then
// every outline as an unfilled polyline. Write errors on w are
// collected and returned after the document is finished.
//
// Complexity: O(Σ|polygon| + Σ|outline|).
func SVG(w io.Writer, m *mesh.Mesh, feats []features.Feature, outlines []coastline.Outline, style Style) error {
	if m == nil {
		return ErrNilMesh
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width := int(math.Ceil(m.Width()))
	height := int(math.Ceil(m.Height()))

	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fill(style.Ocean))

	var maxHeight float64
	if style.Shade {
		for _, c := range m.Cells() {
			if c.Land && c.Height > maxHeight {
				maxHeight = c.Height
			}
		}
	}

	for _, c := range m.Cells() {
		if !c.Land {
			continue
		}
		land := fill(style.Land)
		if style.Shade && maxHeight > 0 {
			land = shadeFill(c.Height / maxHeight)
		}
		xs, ys := ringToInts(c.Polygon)
		canvas.Polygon(xs, ys, land)
	}

	for _, f := range feats {
		if f.Kind != features.Lake {
			continue
		}
		for _, id := range f.Cells {
			c, err := m.Cell(id)
			if err != nil {
				continue
			}
			xs, ys := ringToInts(c.Polygon)
			canvas.Polygon(xs, ys, fill(style.Lake))
		}
	}

	for _, out := range outlines {
		if len(out.Points) < 2 {
			continue
		}
		xs, ys := lineToInts(out.Points)
		canvas.Polyline(xs, ys, stroke(style.Coast, style.CoastWidth))
	}

	canvas.End()
	return ew.err
}

func fill(color string) string {
	return fmt.Sprintf("fill:%s", color)
}

// Hypsometric ramp endpoints for Shade, lowland to highland.
var (
	shadeLow  = [3]int{172, 190, 138}
	shadeHigh = [3]int{236, 229, 206}
)

// shadeFill interpolates the ramp at t in [0,1].
func shadeFill(t float64) string {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	r := shadeLow[0] + int(math.Round(t*float64(shadeHigh[0]-shadeLow[0])))
	g := shadeLow[1] + int(math.Round(t*float64(shadeHigh[1]-shadeLow[1])))
	b := shadeLow[2] + int(math.Round(t*float64(shadeHigh[2]-shadeLow[2])))
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", r, g, b)
}

func stroke(color string, width float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", color, width)
}

func ringToInts(ring orb.Ring) ([]int, []int) {
	xs := make([]int, len(ring))
	ys := make([]int, len(ring))
	for i, p := range ring {
		xs[i] = int(math.Round(p[0]))
		ys[i] = int(math.Round(p[1]))
	}
	return xs, ys
}

func lineToInts(ls orb.LineString) ([]int, []int) {
	xs := make([]int, len(ls))
	ys := make([]int, len(ls))
	for i, p := range ls {
		xs[i] = int(math.Round(p[0]))
		ys[i] = int(math.Round(p[1]))
	}
	return xs, ys
}

// errWriter passes writes through and remembers the first error, since
// the SVG canvas itself never reports them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
