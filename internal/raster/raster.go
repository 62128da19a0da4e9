package raster

import (
	"image"
	"image/color"
	"math"
)

// Plotter is the only capability the primitives need from a surface.
type Plotter interface {
	SetPixel(x, y int, c color.RGBA)
}

// PlotFunc adapts a function to the Plotter interface.
type PlotFunc func(x, y int, c color.RGBA)

func (f PlotFunc) SetPixel(x, y int, c color.RGBA) { f(x, y, c) }

// Line draws from (x0, y0) to (x1, y1) inclusive by stepping the major axis
// one pixel at a time and rounding the minor axis.
func Line(p Plotter, x0, y0, x1, y1 int, c color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(absInt(dx), absInt(dy))
	if steps == 0 {
		p.SetPixel(x0, y0, c)
		return
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	x, y := float64(x0), float64(y0)

	for i := 0; i <= steps; i++ {
		p.SetPixel(int(math.Round(x)), int(math.Round(y)), c)
		x += xInc
		y += yInc
	}
}

// Circle draws the outline of a circle with the midpoint algorithm. Only the
// octant from 90 to 45 degrees is computed; the rest comes from Reflect8.
func Circle(p Plotter, cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	if r == 0 {
		p.SetPixel(cx, cy, c)
		return
	}

	x, y := 0, r
	d := 1 - r

	plot8(p, cx, cy, x, y, c)
	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
		plot8(p, cx, cy, x, y, c)
	}
}

// Disk fills a circle row by row. Each row spans [cx-dx, cx+dx] where dx is
// the half-chord returned by Span.
func Disk(p Plotter, cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	for yy := -r; yy <= r; yy++ {
		dx, _ := Span(r, yy)
		for xx := -dx; xx <= dx; xx++ {
			p.SetPixel(cx+xx, cy+yy, c)
		}
	}
}

// Span returns floor(sqrt(r*r - yy*yy)) for the row yy of a disk of radius r.
// ok is false when the row lies outside the disk.
func Span(r, yy int) (dx int, ok bool) {
	if r < 0 || absInt(yy) > r {
		return 0, false
	}
	// r*r - yy*yy is never negative here; the clamp guards the float path.
	rem := max(0, r*r-yy*yy)
	return int(math.Floor(math.Sqrt(float64(rem)))), true
}

// Reflect8 returns the eight points symmetric to offset (x, y) around (cx, cy).
func Reflect8(cx, cy, x, y int) [8]image.Point {
	return [8]image.Point{
		{cx + x, cy + y},
		{cx - x, cy + y},
		{cx + x, cy - y},
		{cx - x, cy - y},
		{cx + y, cy + x},
		{cx - y, cy + x},
		{cx + y, cy - x},
		{cx - y, cy - x},
	}
}

func plot8(p Plotter, cx, cy, x, y int, c color.RGBA) {
	for _, pt := range Reflect8(cx, cy, x, y) {
		p.SetPixel(pt.X, pt.Y, c)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
