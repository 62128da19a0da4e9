// Package orbit traces circular orbits as closed chains of straight chords
// drawn with raster.Line.
package orbit

import (
	"image"
	"image/color"
	"math"

	"github.com/san-kum/solarsim/internal/raster"
)

// Segments is the number of chords used for every orbit.
const Segments = 180

// Path holds the unit circle sampled at Segments+1 evenly spaced angles.
// Vertex Segments sits at 2π and closes the loop onto vertex 0.
type Path struct {
	cos []float64
	sin []float64
	n   int
}

// Default is shared by every orbit drawn with Draw.
var Default = NewPath(Segments)

// NewPath precomputes the unit vertices for an n-chord polygon.
func NewPath(n int) *Path {
	if n < 1 {
		n = 1
	}
	p := &Path{
		cos: make([]float64, n+1),
		sin: make([]float64, n+1),
		n:   n,
	}

	step := 2 * math.Pi / float64(n)
	for i := 0; i <= n; i++ {
		theta := float64(i) * step
		p.cos[i] = math.Cos(theta)
		p.sin[i] = math.Sin(theta)
	}
	return p
}

// Segments returns the number of chords in the path.
func (p *Path) Segments() int { return p.n }

// Vertex returns vertex i of an orbit of radius r around (cx, cy).
func (p *Path) Vertex(cx, cy, r, i int) image.Point {
	return image.Pt(
		cx+int(math.Round(float64(r)*p.cos[i])),
		cy+int(math.Round(float64(r)*p.sin[i])),
	)
}

// Vertices returns all n+1 vertices, first and last coinciding.
func (p *Path) Vertices(cx, cy, r int) []image.Point {
	pts := make([]image.Point, p.n+1)
	for i := range pts {
		pts[i] = p.Vertex(cx, cy, r, i)
	}
	return pts
}

// Draw connects consecutive vertices with raster.Line.
func (p *Path) Draw(pl raster.Plotter, cx, cy, r int, c color.RGBA) {
	prev := p.Vertex(cx, cy, r, 0)
	for i := 1; i <= p.n; i++ {
		cur := p.Vertex(cx, cy, r, i)
		raster.Line(pl, prev.X, prev.Y, cur.X, cur.Y, c)
		prev = cur
	}
}

// Draw traces an orbit of radius r with the default 180-chord path.
func Draw(pl raster.Plotter, cx, cy, r int, c color.RGBA) {
	Default.Draw(pl, cx, cy, r, c)
}
