package compositor

import (
	"image/color"
	"time"
)

// Key is a platform-neutral key code.
type Key int

const (
	KeyNone   Key = 0
	KeyEscape Key = 27
)

// Canvas is the platform surface the compositor renders through. It owns two
// pages; the compositor only decides which one is written and which is shown.
type Canvas interface {
	SetPixel(x, y int, c color.RGBA)
	Extents() (w, h int)
	SelectDrawBuffer(i int)
	SelectVisibleBuffer(i int)
	Clear(c color.RGBA)
	DrawLabel(x, y int, text string, c color.RGBA)
	Sleep(d time.Duration)
	// PollKey must not block.
	PollKey() (Key, bool)
}

// Roles assigns the two pages to drawing and display.
type Roles struct {
	Active int
	Visual int
}

// NewRoles starts by drawing page 0 while page 1 is shown.
func NewRoles() Roles { return Roles{Active: 0, Visual: 1} }

// Swap exchanges the roles of the two pages.
func (r *Roles) Swap() { r.Active, r.Visual = r.Visual, r.Active }
