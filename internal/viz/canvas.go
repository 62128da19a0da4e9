package viz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/solarsim/internal/compositor"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank rune = 0x2800

type page struct {
	grid   [][]rune
	colors [][]color.RGBA
	labels [][]rune
	lcolor [][]color.RGBA
}

func newPage(w, h int) *page {
	p := &page{
		grid:   make([][]rune, h),
		colors: make([][]color.RGBA, h),
		labels: make([][]rune, h),
		lcolor: make([][]color.RGBA, h),
	}
	for i := 0; i < h; i++ {
		p.grid[i] = make([]rune, w)
		p.colors[i] = make([]color.RGBA, w)
		p.labels[i] = make([]rune, w)
		p.lcolor[i] = make([]color.RGBA, w)
	}
	p.reset()
	return p
}

func (p *page) reset() {
	for i := range p.grid {
		for j := range p.grid[i] {
			p.grid[i][j] = blank
			p.colors[i][j] = color.RGBA{}
			p.labels[i][j] = 0
		}
	}
}

// Canvas is a pair of braille pages sized in terminal cells.
type Canvas struct {
	Width, Height int

	pages      [2]*page
	draw       int
	visible    int
	background color.RGBA
	keys       []compositor.Key
	styles     map[color.RGBA]lipgloss.Style
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Canvas{
		Width:   w,
		Height:  h,
		pages:   [2]*page{newPage(w, h), newPage(w, h)},
		visible: 1,
		styles:  make(map[color.RGBA]lipgloss.Style),
	}
}

// Extents reports the canvas size in dots.
func (c *Canvas) Extents() (w, h int) { return c.Width * 2, c.Height * 4 }

// SetPixel lights the dot at (x, y). Writing the background color clears it.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if col == c.background {
		c.Unset(x, y)
		return
	}
	c.Set(x, y, col)
}

// Set lights a dot in the draw page and recolors its cell.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	row, cell, bit, ok := c.locate(x, y)
	if !ok {
		return
	}
	p := c.pages[c.draw]
	p.grid[row][cell] |= bit
	p.colors[row][cell] = col
}

// Unset clears a dot in the draw page.
func (c *Canvas) Unset(x, y int) {
	row, cell, bit, ok := c.locate(x, y)
	if !ok {
		return
	}
	p := c.pages[c.draw]
	p.grid[row][cell] &^= bit
	if p.grid[row][cell] < blank {
		p.grid[row][cell] = blank
	}
}

func (c *Canvas) locate(x, y int) (row, col int, bit rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, rune(pixelMap[y%4][x%2]), true
}

func (c *Canvas) SelectDrawBuffer(i int)    { c.draw = i & 1 }
func (c *Canvas) SelectVisibleBuffer(i int) { c.visible = i & 1 }

// VisibleIndex reports the page currently shown.
func (c *Canvas) VisibleIndex() int { return c.visible }

// Clear blanks the draw page and remembers bg as the background color.
func (c *Canvas) Clear(bg color.RGBA) {
	c.background = bg
	c.pages[c.draw].reset()
}

// DrawLabel overlays text on the cells covering dot (x, y). Text past the
// right edge is cut.
func (c *Canvas) DrawLabel(x, y int, text string, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	row, cell := y/4, x/2
	if row >= c.Height {
		return
	}
	p := c.pages[c.draw]
	for _, r := range text {
		if cell >= c.Width {
			break
		}
		p.labels[row][cell] = r
		p.lcolor[row][cell] = col
		cell++
	}
}

// Sleep is a no-op; the Bubble Tea tick paces frames.
func (c *Canvas) Sleep(time.Duration) {}

// Press queues a key for the next PollKey.
func (c *Canvas) Press(k compositor.Key) { c.keys = append(c.keys, k) }

func (c *Canvas) PollKey() (compositor.Key, bool) {
	if len(c.keys) == 0 {
		return compositor.KeyNone, false
	}
	k := c.keys[0]
	c.keys = c.keys[1:]
	return k, true
}

// Cell returns the rune shown at a cell of the visible page, label text
// taking precedence over dots.
func (c *Canvas) Cell(col, row int) rune {
	p := c.pages[c.visible]
	if l := p.labels[row][col]; l != 0 {
		return l
	}
	return p.grid[row][col]
}

// String renders the visible page without colors.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			b.WriteRune(c.Cell(col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render draws the visible page with each run of same-colored cells styled
// once.
func (c *Canvas) Render() string {
	p := c.pages[c.visible]
	var b, run strings.Builder
	for row := 0; row < c.Height; row++ {
		var cur color.RGBA
		for col := 0; col < c.Width; col++ {
			r, fg := p.grid[row][col], p.colors[row][col]
			if l := p.labels[row][col]; l != 0 {
				r, fg = l, p.lcolor[row][col]
			} else if r == blank {
				fg = color.RGBA{}
			}
			if fg != cur && run.Len() > 0 {
				b.WriteString(c.style(cur).Render(run.String()))
				run.Reset()
			}
			cur = fg
			run.WriteRune(r)
		}
		b.WriteString(c.style(cur).Render(run.String()))
		run.Reset()
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) style(col color.RGBA) lipgloss.Style {
	if s, ok := c.styles[col]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if col.A != 0 {
		s = s.Foreground(lipgloss.Color(hexColor(col)))
	}
	c.styles[col] = s
	return s
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
