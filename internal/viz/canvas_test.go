package viz

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/solarsim/internal/compositor"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

var _ compositor.Canvas = (*Canvas)(nil)

func TestCanvasExtents(t *testing.T) {
	c := NewCanvas(10, 5)
	w, h := c.Extents()
	if w != 20 || h != 20 {
		t.Errorf("expected 20x20, got %dx%d", w, h)
	}
}

func TestCanvasSetDots(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SelectDrawBuffer(0)
	c.SelectVisibleBuffer(0)
	c.Clear(black)

	// Every dot of the first cell.
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.SetPixel(x, y, red)
		}
	}
	if got := c.Cell(0, 0); got != 0x28FF {
		t.Errorf("expected full cell, got %U", got)
	}
	if got := c.Cell(1, 0); got != blank {
		t.Errorf("expected blank cell, got %U", got)
	}
}

func TestCanvasBackgroundClearsDot(t *testing.T) {
	c := NewCanvas(1, 1)
	c.SelectDrawBuffer(0)
	c.SelectVisibleBuffer(0)
	c.Clear(black)

	c.SetPixel(0, 0, red)
	c.SetPixel(1, 3, red)
	c.SetPixel(0, 0, black)
	if got := c.Cell(0, 0); got != blank|0x80 {
		t.Errorf("expected only dot 8, got %U", got)
	}
}

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SelectDrawBuffer(0)
	c.SelectVisibleBuffer(0)
	c.Clear(black)
	c.SetPixel(-1, 0, red)
	c.SetPixel(0, -1, red)
	c.SetPixel(4, 0, red)
	c.SetPixel(0, 8, red)
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r > blank }) {
		t.Errorf("expected nothing drawn, got\n%s", c.String())
	}
}

func TestCanvasPages(t *testing.T) {
	c := NewCanvas(1, 1)
	c.SelectDrawBuffer(0)
	c.Clear(black)
	c.SetPixel(0, 0, red)

	c.SelectVisibleBuffer(1)
	if got := c.Cell(0, 0); got != blank {
		t.Errorf("expected page 1 blank, got %U", got)
	}
	c.SelectVisibleBuffer(0)
	if got := c.Cell(0, 0); got != blank|0x1 {
		t.Errorf("expected dot 1 on page 0, got %U", got)
	}

	c.SelectDrawBuffer(0)
	c.Clear(black)
	if got := c.Cell(0, 0); got != blank {
		t.Errorf("expected page 0 cleared, got %U", got)
	}
}

func TestCanvasLabel(t *testing.T) {
	c := NewCanvas(6, 2)
	c.SelectDrawBuffer(0)
	c.SelectVisibleBuffer(0)
	c.Clear(black)
	c.SetPixel(2, 4, red)
	c.DrawLabel(2, 4, "Solar System", red)

	lines := strings.Split(c.String(), "\n")
	if got := []rune(lines[1])[1:]; string(got) != "Solar" {
		t.Errorf("expected label cut to 'Solar', got %q", string(got))
	}
	if got := c.Cell(0, 1); got != blank {
		t.Errorf("expected blank before label, got %U", got)
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(3, 1)
	c.SelectDrawBuffer(0)
	c.SelectVisibleBuffer(0)
	c.Clear(black)
	c.SetPixel(0, 0, red)
	c.SetPixel(2, 0, red)

	out := c.Render()
	if !strings.Contains(out, string(rune(blank|0x1))) {
		t.Errorf("expected rendered dots, got %q", out)
	}
	if len(c.styles) == 0 {
		t.Error("expected styles to be cached")
	}
}

func TestCanvasPollKey(t *testing.T) {
	c := NewCanvas(1, 1)
	if _, ok := c.PollKey(); ok {
		t.Error("expected no key")
	}
	c.Press(compositor.KeyEscape)
	if k, ok := c.PollKey(); !ok || k != compositor.KeyEscape {
		t.Errorf("expected escape, got %v %v", k, ok)
	}
}
