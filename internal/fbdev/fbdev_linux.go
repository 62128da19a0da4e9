//go:build linux

package fbdev

import (
	"fmt"
	"image/draw"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/san-kum/solarsim/internal/canvas"
	"github.com/san-kum/solarsim/internal/compositor"
	xdraw "golang.org/x/image/draw"
)

// DefaultDevice is the framebuffer opened by Open.
const DefaultDevice = "/dev/fb0"

type logger interface {
	Infof(component, format string, args ...interface{})
	Errorf(component, format string, args ...interface{})
}

// Screen draws into canvas.Pages and scales each presented page onto the
// framebuffer with nearest-neighbor sampling.
type Screen struct {
	*canvas.Pages

	dev      *fb.Device
	keys     *Keyboard
	graphics bool
	Logger   logger
}

// Open maps the framebuffer, starts watching input devices and switches the
// console to graphics mode. Keyboard and console failures are logged and
// tolerated; a missing framebuffer is an error.
func Open(w, h int, title string, l logger) (*Screen, error) {
	dev, err := fb.Open(DefaultDevice)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", DefaultDevice, err)
	}
	s := &Screen{Pages: canvas.New(w, h), dev: dev, Logger: l}
	s.Title = title
	b := dev.Bounds()
	s.infof("framebuffer open, bounds=%dx%d, canvas=%dx%d", b.Dx(), b.Dy(), w, h)

	keys, err := OpenKeyboard()
	if err != nil {
		s.errorf("evdev glob failed: %v", err)
	}
	s.keys = keys
	if keys.Devices() == 0 {
		s.infof("no evdev devices found, escape unavailable")
	}

	if err := setConsoleMode(kdGraphics); err != nil {
		s.errorf("graphics mode failed: %v", err)
	} else {
		s.graphics = true
	}
	return s, nil
}

// SelectVisibleBuffer blits the selected page to the device.
func (s *Screen) SelectVisibleBuffer(i int) {
	s.Pages.SelectVisibleBuffer(i)
	page := s.Visible()
	xdraw.NearestNeighbor.Scale(s.dev, s.dev.Bounds(), page, page.Bounds(), draw.Src, nil)
}

func (s *Screen) Sleep(d time.Duration) { time.Sleep(d) }

func (s *Screen) PollKey() (compositor.Key, bool) {
	if s.keys.Escape() {
		return compositor.KeyEscape, true
	}
	return compositor.KeyNone, false
}

// Close restores text mode and releases the device, the input devices and
// the label face. The first failure is returned.
func (s *Screen) Close() error {
	if s.graphics {
		if err := setConsoleMode(kdText); err != nil {
			s.errorf("text mode restore failed: %v", err)
		}
		s.graphics = false
	}
	if s.dev != nil {
		s.dev.Close()
		s.dev = nil
	}
	var first error
	if s.keys != nil {
		first = s.keys.Close()
	}
	if err := s.Pages.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

func (s *Screen) infof(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Infof("fb", format, args...)
	}
}

func (s *Screen) errorf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Errorf("fb", format, args...)
	}
}
