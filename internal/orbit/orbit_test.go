package orbit

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/solarsim/internal/raster"
)

var gray = color.RGBA{85, 85, 85, 255}

func TestVerticesClosed(t *testing.T) {
	for _, r := range []int{0, 1, 100, 150, 460} {
		pts := Default.Vertices(540, 384, r)
		if len(pts) != Segments+1 {
			t.Fatalf("expected %d vertices, got %d", Segments+1, len(pts))
		}
		first, last := pts[0], pts[len(pts)-1]
		d := last.Sub(first)
		if absInt(d.X) > 1 || absInt(d.Y) > 1 {
			t.Errorf("r=%d: loop not closed, first %v last %v", r, first, last)
		}
	}
}

func TestVerticesOnCircle(t *testing.T) {
	cx, cy, r := 10, -20, 200
	for i, pt := range Default.Vertices(cx, cy, r) {
		dist := math.Hypot(float64(pt.X-cx), float64(pt.Y-cy))
		if math.Abs(dist-float64(r)) > 1 {
			t.Errorf("vertex %d at %v is %.3f from center", i, pt, dist)
		}
	}
}

func TestFirstVertex(t *testing.T) {
	got := Default.Vertex(540, 384, 100, 0)
	if got != image.Pt(640, 384) {
		t.Errorf("expected (640,384), got %v", got)
	}
}

func TestDrawChords(t *testing.T) {
	cx, cy, r := 0, 0, 120
	lit := make(map[image.Point]bool)
	calls := 0
	Draw(raster.PlotFunc(func(x, y int, c color.RGBA) {
		lit[image.Pt(x, y)] = true
		calls++
	}), cx, cy, r, gray)

	pts := Default.Vertices(cx, cy, r)
	for i, pt := range pts {
		if !lit[pt] {
			t.Errorf("vertex %d %v not plotted", i, pt)
		}
	}

	want := 0
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1])
		want += max(absInt(d.X), absInt(d.Y)) + 1
	}
	if calls != want {
		t.Errorf("expected %d plots over %d chords, got %d", want, Segments, calls)
	}
}

func TestDrawConnected(t *testing.T) {
	lit := make(map[image.Point]bool)
	Draw(raster.PlotFunc(func(x, y int, c color.RGBA) {
		lit[image.Pt(x, y)] = true
	}), 0, 0, 75, gray)

	for pt := range lit {
		neighbours := 0
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if (dx != 0 || dy != 0) && lit[pt.Add(image.Pt(dx, dy))] {
					neighbours++
				}
			}
		}
		if neighbours < 2 {
			t.Errorf("%v has %d neighbours, loop is open", pt, neighbours)
		}
	}
}

func TestNewPathMinimum(t *testing.T) {
	p := NewPath(0)
	if p.Segments() != 1 {
		t.Errorf("expected 1 segment, got %d", p.Segments())
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
