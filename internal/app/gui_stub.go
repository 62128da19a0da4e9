//go:build !raylib

package app

import (
	"context"
	"errors"
)

// ErrNoRaylib is returned by GUI in binaries built without the raylib tag.
var ErrNoRaylib = errors.New("app: raylib backend not compiled in (build with -tags raylib)")

const GUIAvailable = false

func (a *App) GUI(ctx context.Context) error {
	return ErrNoRaylib
}
