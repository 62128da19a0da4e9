//go:build raylib

// Package gui presents the page canvas in a raylib window.
//
// raylib and Ebitengine both link their own GLFW, so this backend is only
// compiled with the raylib build tag.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"time"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/solarsim/internal/canvas"
	"github.com/san-kum/solarsim/internal/compositor"
)

// ErrWindowNotReady is returned by Open when raylib could not create the
// window.
var ErrWindowNotReady = errors.New("gui: window not ready")

// Swapped in tests, which cannot open a display.
var (
	initWindow  = rl.InitWindow
	windowReady = rl.IsWindowReady
	closeWindow = rl.CloseWindow
)

// Window is a double-buffered canvas shown through a raylib texture.
type Window struct {
	*canvas.Pages

	tex rl.Texture2D
}

// Open creates the window and a texture matching the page size.
func Open(w, h int, title string) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	initWindow(int32(w), int32(h), title)
	if !windowReady() {
		closeWindow()
		return nil, fmt.Errorf("%w: %dx%d %q", ErrWindowNotReady, w, h, title)
	}
	rl.SetExitKey(0)

	p := canvas.New(w, h)
	p.Title = title
	img := rl.NewImageFromImage(p.Visible())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &Window{Pages: p, tex: tex}, nil
}

// SelectVisibleBuffer uploads the selected page and draws it.
func (w *Window) SelectVisibleBuffer(i int) {
	w.Pages.SelectVisibleBuffer(i)
	rl.UpdateTexture(w.tex, pixels(w.Visible().Pix))

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(w.tex, 0, 0, rl.White)
	rl.EndDrawing()
}

func (w *Window) Sleep(d time.Duration) { time.Sleep(d) }

// PollKey reports escape for the escape key or a window close request.
func (w *Window) PollKey() (compositor.Key, bool) {
	if rl.WindowShouldClose() {
		return compositor.KeyEscape, true
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if k == rl.KeyEscape {
			return compositor.KeyEscape, true
		}
	}
	return compositor.KeyNone, false
}

func (w *Window) Close() error {
	rl.UnloadTexture(w.tex)
	closeWindow()
	return w.Pages.Close()
}

func pixels(pix []uint8) []color.RGBA {
	if len(pix) == 0 {
		return nil
	}
	return unsafe.Slice((*color.RGBA)(unsafe.Pointer(&pix[0])), len(pix)/4)
}
