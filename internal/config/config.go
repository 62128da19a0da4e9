package config

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/solarsim/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPreset  = "classic"
	DefaultWidth   = 1080
	DefaultHeight  = 768
	DefaultDelayMS = 30
	// FitMargin is the gap kept between the outermost body and the canvas edge.
	FitMargin = 4
)

// BodySpec is the immutable description of one body.
type BodySpec struct {
	Name   string  `yaml:"name"`
	Radius int     `yaml:"radius,omitempty"`
	Size   int     `yaml:"size"`
	Color  Color   `yaml:"color"`
	Speed  float64 `yaml:"speed,omitempty"`
	Angle  float64 `yaml:"angle,omitempty"`
}

func (b BodySpec) Body() scene.Body {
	return scene.Body{
		Name:        b.Name,
		OrbitRadius: b.Radius,
		Size:        b.Size,
		Color:       b.Color.RGBA(),
		Speed:       b.Speed,
		Angle:       b.Angle,
	}
}

type Config struct {
	Name       string     `yaml:"-"`
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	DelayMS    int        `yaml:"delay_ms"`
	Flatten    float64    `yaml:"flatten"`
	Background Color      `yaml:"background"`
	Orbit      Color      `yaml:"orbit"`
	Outline    Color      `yaml:"outline"`
	Label      Color      `yaml:"label"`
	Sun        BodySpec   `yaml:"sun"`
	Bodies     []BodySpec `yaml:"bodies"`
}

// DefaultConfig returns the classic seven-planet system.
func DefaultConfig() *Config {
	cfg, err := GetPreset(DefaultPreset)
	if err != nil {
		// The embedded table is covered by tests; reaching this is a build defect.
		panic(err)
	}
	return cfg
}

// Delay is the pacing pause at the end of every frame.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// SetFPS converts a frame rate into the per-frame delay.
func (c *Config) SetFPS(fps int) {
	if fps <= 0 {
		return
	}
	c.DelayMS = max(1, 1000/fps)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Bodies = make([]BodySpec, len(c.Bodies))
	copy(cp.Bodies, c.Bodies)
	return &cp
}

// Validate checks the settings once at startup. Nothing is revalidated while
// the animation runs.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidCanvas, c.Width, c.Height)
	}
	if c.DelayMS < 0 {
		return fmt.Errorf("%w: delay %dms", ErrInvalidCanvas, c.DelayMS)
	}
	if c.Flatten <= 0 || math.IsNaN(c.Flatten) || math.IsInf(c.Flatten, 0) {
		return fmt.Errorf("%w: flatten %v", ErrInvalidCanvas, c.Flatten)
	}
	if c.Sun.Size < 0 {
		return fmt.Errorf("%w: sun size %d", ErrInvalidBody, c.Sun.Size)
	}
	for i, b := range c.Bodies {
		if b.Radius < 0 || b.Size < 0 {
			return fmt.Errorf("%w: body %d (%s) radius %d size %d", ErrInvalidBody, i, b.Name, b.Radius, b.Size)
		}
		if b.Speed < 0 || b.Speed >= 360 || math.IsNaN(b.Speed) {
			return fmt.Errorf("%w: body %d (%s) speed %v", ErrInvalidBody, i, b.Name, b.Speed)
		}
		if b.Angle < 0 || b.Angle >= 360 || math.IsNaN(b.Angle) {
			return fmt.Errorf("%w: body %d (%s) angle %v", ErrInvalidBody, i, b.Name, b.Angle)
		}
	}
	return nil
}

// Fit returns a copy whose radii and sizes are scaled so the whole system,
// including the vertical flatten, fits inside a w x h canvas.
func (c *Config) Fit(w, h int) *Config {
	out := c.Clone()
	extentX, extentY := float64(c.Sun.Size), float64(c.Sun.Size)
	for _, b := range c.Bodies {
		extentX = math.Max(extentX, float64(b.Radius+b.Size))
		extentY = math.Max(extentY, float64(b.Radius)*c.Flatten+float64(b.Size))
	}
	if extentX <= 0 || extentY <= 0 {
		return out
	}

	halfW := float64((w-1)/2 - FitMargin)
	halfH := float64((h-1)/2 - FitMargin)
	scale := math.Min(halfW/extentX, halfH/extentY)
	if scale <= 0 {
		return out
	}

	scaleSize := func(n int) int {
		if n == 0 {
			return 0
		}
		return max(1, int(math.Round(float64(n)*scale)))
	}
	out.Sun.Size = scaleSize(c.Sun.Size)
	for i, b := range c.Bodies {
		out.Bodies[i].Radius = int(math.Round(float64(b.Radius) * scale))
		out.Bodies[i].Size = scaleSize(b.Size)
	}
	return out
}

// Scene builds the runtime scene centered on a canvas of the given extents.
func (c *Config) Scene(w, h int) *scene.Scene {
	bodies := make([]scene.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = b.Body()
	}
	s := scene.New((w-1)/2, (h-1)/2, c.Sun.Body(), bodies)
	s.Flatten = c.Flatten
	return s
}

// YAML renders the config in the embedded preset format.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(map[string]*Config{c.Name: c})
}
