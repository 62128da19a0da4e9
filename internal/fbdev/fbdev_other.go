//go:build !linux

package fbdev

import (
	"errors"

	"github.com/san-kum/solarsim/internal/canvas"
)

// ErrUnsupported is returned by Open outside Linux.
var ErrUnsupported = errors.New("fbdev: framebuffer requires linux")

type logger interface {
	Infof(component, format string, args ...interface{})
	Errorf(component, format string, args ...interface{})
}

type Screen struct {
	*canvas.Pages
}

func Open(w, h int, title string, l logger) (*Screen, error) {
	return nil, ErrUnsupported
}
