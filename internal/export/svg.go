package export

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
)

// PageToSVG converts a rendered page to SVG. Each horizontal run of
// same-colored pixels becomes one rect; pixels matching bg are left to the
// background rect.
func PageToSVG(img *image.RGBA, scale float64, bg color.RGBA) string {
	if img == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}
	b := img.Bounds()
	width := float64(b.Dx()) * scale
	height := float64(b.Dy()) * scale

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, hex(bg)))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		x := b.Min.X
		for x < b.Max.X {
			c := img.RGBAAt(x, y)
			start := x
			for x < b.Max.X && img.RGBAAt(x, y) == c {
				x++
			}
			if c == bg || c.A == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>
`, float64(start-b.Min.X)*scale, float64(y-b.Min.Y)*scale, float64(x-start)*scale, scale, hex(c)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TraceToSVG draws a polyline through pixel positions on a width x height
// canvas, e.g. the path of one body over many ticks.
func TraceToSVG(points []image.Point, width, height int, bg color.RGBA, stroke string) string {
	if len(points) < 2 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, hex(bg), stroke))

	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%d,%d", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%d,%d", p.X, p.Y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SaveSVG writes the SVG rendering of a page to path.
func SaveSVG(path, svg string) error {
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
