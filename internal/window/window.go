// Package window presents the page canvas in an Ebitengine window.
package window

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/san-kum/solarsim/internal/canvas"
	"github.com/san-kum/solarsim/internal/compositor"
)

// Window is a canvas.Pages whose visible page is copied to the screen each
// draw. Ebitengine's tick rate stands in for the pacing sleep.
type Window struct {
	*canvas.Pages

	comp    *compositor.Compositor
	ctx     context.Context
	stopped bool
}

// Open sizes the window. The window itself appears on Run.
func Open(w, h int, title string) *Window {
	p := canvas.New(w, h)
	p.Title = title
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	return &Window{Pages: p}
}

// TPS converts a frame delay into an Ebitengine tick rate.
func TPS(delay time.Duration) int {
	if delay <= 0 {
		return ebiten.SyncWithFPS
	}
	tps := int(time.Second / delay)
	if tps < 1 {
		tps = 1
	}
	return tps
}

// Run drives comp from the game loop until escape, window close or ctx is
// done.
func (w *Window) Run(ctx context.Context, comp *compositor.Compositor, delay time.Duration) error {
	w.comp, w.ctx = comp, ctx
	ebiten.SetTPS(TPS(delay))
	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	return ctx.Err()
}

func (w *Window) Update() error {
	if w.ctx.Err() != nil || w.stopped {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.Press(compositor.KeyEscape)
	}
	if w.comp.Tick() {
		w.stopped = true
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.Visible().Pix)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.Extents()
}
