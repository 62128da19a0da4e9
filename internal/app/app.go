// Package app wires presets, scene, compositor and a backend together.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/san-kum/solarsim/internal/canvas"
	"github.com/san-kum/solarsim/internal/compositor"
	"github.com/san-kum/solarsim/internal/config"
	"github.com/san-kum/solarsim/internal/export"
	"github.com/san-kum/solarsim/internal/fbdev"
	"github.com/san-kum/solarsim/internal/metrics"
	"github.com/san-kum/solarsim/internal/viz"
	"github.com/san-kum/solarsim/internal/window"
)

var (
	ErrUnknownBody   = errors.New("app: unknown body")
	ErrUnknownFormat = errors.New("app: unknown snapshot format")
)

// Terminal cells reserved below the canvas for the status line.
const statusRows = 2

// Options are the command-line overrides applied on top of a preset. Zero
// values keep the preset's setting.
type Options struct {
	Preset  string
	FPS     int
	Flatten float64
	Width   int
	Height  int
}

// Load resolves the preset, applies overrides and validates the result.
func Load(opts Options) (*config.Config, error) {
	name := opts.Preset
	if name == "" {
		name = config.DefaultPreset
	}
	cfg, err := config.GetPreset(name)
	if err != nil {
		return nil, err
	}
	cfg.SetFPS(opts.FPS)
	if opts.Flatten != 0 {
		cfg.Flatten = opts.Flatten
	}
	if opts.Width != 0 {
		cfg.Width = opts.Width
	}
	if opts.Height != 0 {
		cfg.Height = opts.Height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type App struct {
	Config *config.Config
	Logger Logger
	// Fit scales the system to each canvas it is shown on.
	Fit bool
	// Metrics observe every compositor built by the app and are logged when
	// an animation ends.
	Metrics []metrics.Metric
}

func New(cfg *config.Config, fit bool, logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &App{
		Config:  cfg,
		Fit:     fit,
		Logger:  logger,
		Metrics: []metrics.Metric{metrics.NewFrameRate(), metrics.NewPageFlips()},
	}
}

// report logs every metric and resets it for the next run.
func (a *App) report() {
	for _, m := range a.Metrics {
		a.Logger.Infof("metrics", "%s=%.3f", m.Name(), m.Value())
		m.Reset()
	}
}

// CompositorOptions maps preset colors and pacing onto the frame loop.
func CompositorOptions(cfg *config.Config) compositor.Options {
	opts := compositor.DefaultOptions()
	opts.Title = cfg.Title
	opts.Background = cfg.Background.RGBA()
	opts.Label = cfg.Label.RGBA()
	opts.Orbit = cfg.Orbit.RGBA()
	opts.Outline = cfg.Outline.RGBA()
	opts.Delay = cfg.Delay()
	return opts
}

// Compositor builds a scene centered on cv and a compositor drawing it.
func (a *App) Compositor(cv compositor.Canvas, fit bool) *compositor.Compositor {
	w, h := cv.Extents()
	cfg := a.Config
	if fit || a.Fit {
		cfg = cfg.Fit(w, h)
	}
	s := cfg.Scene(w, h)
	comp := compositor.New(cv, s, CompositorOptions(cfg))
	comp.Logger = a.Logger
	for _, m := range a.Metrics {
		comp.AddObserver(m)
	}
	a.Logger.Infof("app", "preset %s on %dx%d, center (%d,%d), %d bodies", a.Config.Name, w, h, s.CX, s.CY, len(s.Bodies))
	return comp
}

// Terminal animates in braille cells sized to the terminal.
func (a *App) Terminal(ctx context.Context) error {
	cols, rows, err := term.GetSize(os.Stdout.Fd())
	if err != nil || cols <= 0 || rows <= 0 {
		a.Logger.Errorf("app", "terminal size unavailable (%v), using 80x24", err)
		cols, rows = 80, 24
	}
	cv := viz.NewCanvas(cols-2, rows-statusRows)
	comp := a.Compositor(cv, true)
	defer a.report()
	return viz.Run(ctx, comp, cv, a.Config.Delay())
}

// Window animates in an Ebitengine window.
func (a *App) Window(ctx context.Context) error {
	w := window.Open(a.Config.Width, a.Config.Height, a.Config.Title)
	defer w.Close()
	defer a.report()
	return w.Run(ctx, a.Compositor(w, false), a.Config.Delay())
}

// Framebuffer animates on /dev/fb0.
func (a *App) Framebuffer(ctx context.Context) error {
	s, err := fbdev.Open(a.Config.Width, a.Config.Height, a.Config.Title, a.Logger)
	if err != nil {
		a.Logger.Errorf("app", "framebuffer: %v", err)
		return err
	}
	defer s.Close()
	defer a.report()
	return a.Compositor(s, false).Run(ctx)
}

// headless renders on an in-memory canvas.
func (a *App) headless() (*canvas.Pages, *compositor.Compositor) {
	p := canvas.New(a.Config.Width, a.Config.Height)
	p.Title = a.Config.Title
	return p, a.Compositor(p, false)
}

// Palette lists the colors a frame of cfg can contain, preset colors first
// and the sixteen named colors after them.
func Palette(cfg *config.Config) color.Palette {
	colors := []color.RGBA{
		cfg.Background.RGBA(), cfg.Orbit.RGBA(), cfg.Outline.RGBA(), cfg.Label.RGBA(), cfg.Sun.Color.RGBA(),
	}
	for _, b := range cfg.Bodies {
		colors = append(colors, b.Color.RGBA())
	}
	for _, name := range config.PaletteNames() {
		colors = append(colors, config.Palette[name])
	}
	return export.Palette(colors...)
}

// Record renders frames*every ticks headless and saves every every-th frame
// to a GIF at path.
func (a *App) Record(ctx context.Context, path string, frames, every int) error {
	if frames < 1 {
		frames = 1
	}
	if every < 1 {
		every = 1
	}
	p, comp := a.headless()
	defer p.Close()

	rec := export.NewRecorder(p, Palette(a.Config), a.Config.Delay()*time.Duration(every))
	rec.Every, rec.Limit = every, frames
	comp.AddObserver(rec)

	for !rec.Full() {
		if err := ctx.Err(); err != nil {
			return err
		}
		comp.Tick()
	}
	a.Logger.Infof("app", "recorded %d frames to %s", rec.Frames(), path)
	a.report()
	return rec.Save(path)
}

// Snapshot renders ticks frames headless and writes the last one as png or
// svg.
func (a *App) Snapshot(path, format string, ticks, scale int) error {
	if ticks < 1 {
		ticks = 1
	}
	p, comp := a.headless()
	defer p.Close()
	for i := 0; i < ticks; i++ {
		comp.Tick()
	}
	page := p.Visible()

	switch strings.ToLower(format) {
	case "png":
		return export.SavePNG(path, page, scale)
	case "svg":
		return export.SaveSVG(path, export.PageToSVG(page, float64(max(scale, 1)), a.Config.Background.RGBA()))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// BodyIndex resolves a body by case-insensitive name or by index.
func (a *App) BodyIndex(body string) (int, error) {
	for i, b := range a.Config.Bodies {
		if strings.EqualFold(b.Name, body) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(body); err == nil && n >= 0 && n < len(a.Config.Bodies) {
		return n, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownBody, body)
}

// Trace follows one body, by name or index, for ticks frames and returns its
// pixel position before each advance.
func (a *App) Trace(body string, ticks int) ([]image.Point, error) {
	cfg := a.Config
	if a.Fit {
		cfg = cfg.Fit(cfg.Width, cfg.Height)
	}
	s := cfg.Scene(cfg.Width, cfg.Height)

	idx, err := a.BodyIndex(body)
	if err != nil {
		return nil, err
	}

	points := make([]image.Point, 0, ticks)
	for i := 0; i < ticks; i++ {
		x, y := s.Pixel(s.Bodies[idx])
		points = append(points, image.Point{x, y})
		s.Advance()
	}
	return points, nil
}
