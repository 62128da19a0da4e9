// Package canvas provides an in-memory two-page RGBA surface.
//
// Pages is the reference implementation of compositor.Canvas. It is used
// headless for recording and snapshots, and embedded by the window and
// framebuffer backends, which only add presentation and input on top.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/san-kum/solarsim/internal/compositor"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// LabelSize is the point size of label text.
const LabelSize = 14

type Pages struct {
	Title string

	pages   [2]*image.RGBA
	draw    int
	visible int
	face    font.Face
	keys    []compositor.Key

	// Slept accumulates every pacing delay requested; Pages never blocks.
	Slept  time.Duration
	Sleeps int
}

// New allocates both pages at w x h.
func New(w, h int) *Pages {
	r := image.Rect(0, 0, w, h)
	return &Pages{
		pages:   [2]*image.RGBA{image.NewRGBA(r), image.NewRGBA(r)},
		visible: 1,
		face:    LabelFace(),
	}
}

// LabelFace parses the embedded Go Regular font, falling back to the fixed
// 7x13 face.
func LabelFace() font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(tt, &truetype.Options{Size: LabelSize, DPI: 72, Hinting: font.HintingFull})
}

func (p *Pages) SetPixel(x, y int, c color.RGBA) {
	img := p.pages[p.draw]
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}
	img.SetRGBA(x, y, c)
}

func (p *Pages) Extents() (w, h int) {
	b := p.pages[0].Bounds()
	return b.Dx(), b.Dy()
}

func (p *Pages) SelectDrawBuffer(i int)    { p.draw = i & 1 }
func (p *Pages) SelectVisibleBuffer(i int) { p.visible = i & 1 }

// DrawIndex and VisibleIndex report the page currently written and shown.
func (p *Pages) DrawIndex() int    { return p.draw }
func (p *Pages) VisibleIndex() int { return p.visible }

func (p *Pages) Clear(c color.RGBA) {
	img := p.pages[p.draw]
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// DrawLabel writes text with its top-left corner at (x, y).
func (p *Pages) DrawLabel(x, y int, text string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  p.pages[p.draw],
		Src:  image.NewUniform(c),
		Face: p.face,
	}
	ascent := p.face.Metrics().Ascent.Ceil()
	d.Dot = fixed.P(x, y+ascent)
	d.DrawString(text)
}

func (p *Pages) Sleep(d time.Duration) {
	p.Slept += d
	p.Sleeps++
}

// Press queues a key for the next PollKey.
func (p *Pages) Press(k compositor.Key) { p.keys = append(p.keys, k) }

func (p *Pages) PollKey() (compositor.Key, bool) {
	if len(p.keys) == 0 {
		return compositor.KeyNone, false
	}
	k := p.keys[0]
	p.keys = p.keys[1:]
	return k, true
}

// Page returns page i (0 or 1).
func (p *Pages) Page(i int) *image.RGBA { return p.pages[i&1] }

// Visible returns the page currently selected for display.
func (p *Pages) Visible() *image.RGBA { return p.pages[p.visible] }

func (p *Pages) Close() error { return p.face.Close() }
