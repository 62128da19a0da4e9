//go:build raylib

package app

import (
	"context"

	"github.com/san-kum/solarsim/internal/gui"
)

// GUIAvailable reports whether the raylib backend was compiled in.
const GUIAvailable = true

// GUI animates in a raylib window.
func (a *App) GUI(ctx context.Context) error {
	w, err := gui.Open(a.Config.Width, a.Config.Height, a.Config.Title)
	if err != nil {
		a.Logger.Errorf("app", "gui: %v", err)
		return err
	}
	defer w.Close()
	defer a.report()
	return a.Compositor(w, false).Run(ctx)
}
