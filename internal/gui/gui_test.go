//go:build raylib

package gui

import (
	"errors"
	"image/color"
	"testing"
)

func TestPixelsAliasesBuffer(t *testing.T) {
	pix := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	got := pixels(pix)
	if len(got) != 2 {
		t.Fatalf("expected 2 pixels, got %d", len(got))
	}
	if got[1] != (color.RGBA{5, 6, 7, 8}) {
		t.Errorf("expected {5 6 7 8}, got %v", got[1])
	}
	pix[0] = 9
	if got[0].R != 9 {
		t.Error("expected slice to share the page buffer")
	}
	if pixels(nil) != nil {
		t.Error("expected nil for empty buffer")
	}
}

func TestOpenWindowNotReady(t *testing.T) {
	defer func(i func(int32, int32, string), r func() bool, c func()) {
		initWindow, windowReady, closeWindow = i, r, c
	}(initWindow, windowReady, closeWindow)

	var inited, closed bool
	initWindow = func(w, h int32, title string) { inited = true }
	windowReady = func() bool { return false }
	closeWindow = func() { closed = true }

	w, err := Open(320, 200, "solar")
	if !errors.Is(err, ErrWindowNotReady) {
		t.Errorf("expected ErrWindowNotReady, got %v", err)
	}
	if w != nil {
		t.Error("expected no window")
	}
	if !inited || !closed {
		t.Errorf("expected init and cleanup, got init=%v close=%v", inited, closed)
	}
}
