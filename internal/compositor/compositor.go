package compositor

import (
	"context"
	"image/color"
	"time"

	"github.com/san-kum/solarsim/internal/orbit"
	"github.com/san-kum/solarsim/internal/raster"
	"github.com/san-kum/solarsim/internal/scene"
)

const heartbeatFrames = 300

type logger interface {
	Infof(component, format string, args ...interface{})
	Errorf(component, format string, args ...interface{})
}

// Observer is notified after every presented frame.
type Observer interface {
	OnFrame(frame int, visible int)
}

// Options holds the frame title, its colors and the delay between frames.
type Options struct {
	Title      string
	LabelX     int
	LabelY     int
	Background color.RGBA
	Label      color.RGBA
	Orbit      color.RGBA
	Outline    color.RGBA
	Delay      time.Duration
}

// DefaultOptions matches the classic black-background look at ~33 fps.
func DefaultOptions() Options {
	return Options{
		LabelX:     10,
		LabelY:     10,
		Background: color.RGBA{0, 0, 0, 255},
		Label:      color.RGBA{255, 255, 255, 255},
		Orbit:      color.RGBA{85, 85, 85, 255},
		Outline:    color.RGBA{0, 0, 0, 255},
		Delay:      30 * time.Millisecond,
	}
}

// Compositor draws the scene into the back page and flips pages once per
// frame.
type Compositor struct {
	canvas    Canvas
	scene     *scene.Scene
	opts      Options
	roles     Roles
	observers []Observer
	Logger    logger
}

// New returns a compositor drawing s onto canvas. It starts by drawing page
// 0 while page 1 is shown.
func New(canvas Canvas, s *scene.Scene, opts Options) *Compositor {
	return &Compositor{
		canvas: canvas,
		scene:  s,
		opts:   opts,
		roles:  NewRoles(),
	}
}

func (c *Compositor) AddObserver(o Observer) { c.observers = append(c.observers, o) }

// Roles reports the current page assignment.
func (c *Compositor) Roles() Roles { return c.roles }

func (c *Compositor) Scene() *scene.Scene { return c.scene }

// Tick renders, paces and presents one frame, then polls for cancellation.
// It reports whether the escape key was seen.
func (c *Compositor) Tick() (stop bool) {
	c.compose()

	c.canvas.Sleep(c.opts.Delay)

	c.roles.Swap()
	c.canvas.SelectVisibleBuffer(c.roles.Visual)

	for _, o := range c.observers {
		o.OnFrame(c.scene.Frame, c.roles.Visual)
	}

	if c.Logger != nil && c.scene.Frame%heartbeatFrames == 0 {
		c.Logger.Infof("compositor", "frame %d, visible page %d", c.scene.Frame, c.roles.Visual)
	}

	k, ok := c.canvas.PollKey()
	return ok && k == KeyEscape
}

// Run ticks until the escape key is seen or ctx is done. The context is only
// consulted between frames.
func (c *Compositor) Run(ctx context.Context) error {
	if c.Logger != nil {
		w, h := c.canvas.Extents()
		c.Logger.Infof("compositor", "start %dx%d, %d bodies, delay %v", w, h, len(c.scene.Bodies), c.opts.Delay)
	}
	for {
		select {
		case <-ctx.Done():
			if c.Logger != nil {
				c.Logger.Infof("compositor", "context done after %d frames", c.scene.Frame)
			}
			return ctx.Err()
		default:
		}

		if c.Tick() {
			if c.Logger != nil {
				c.Logger.Infof("compositor", "escape after %d frames", c.scene.Frame)
			}
			return nil
		}
	}
}

// compose draws the full scene into the active page and advances the bodies.
func (c *Compositor) compose() {
	cv, s := c.canvas, c.scene

	cv.SelectDrawBuffer(c.roles.Active)
	cv.Clear(c.opts.Background)

	if c.opts.Title != "" {
		cv.DrawLabel(c.opts.LabelX, c.opts.LabelY, c.opts.Title, c.opts.Label)
	}

	for _, b := range s.Bodies {
		orbit.Draw(cv, s.CX, s.CY, b.OrbitRadius, c.opts.Orbit)
	}

	raster.Disk(cv, s.CX, s.CY, s.Sun.Size, s.Sun.Color)
	raster.Circle(cv, s.CX, s.CY, s.Sun.Size, s.Sun.Color)

	for i := range s.Bodies {
		b := &s.Bodies[i]
		px, py := s.Pixel(*b)
		raster.Disk(cv, px, py, b.Size, b.Color)
		raster.Circle(cv, px, py, b.Size, c.opts.Outline)
		b.Advance()
	}
	s.Frame++
}
