// Package scene holds the kinematic state of the solar system.
//
// Orbits are circles with constant angular speed; there is no force model.
package scene

import (
	"image/color"
	"math"
)

// DefaultFlatten squashes orbits vertically to suggest a tilted viewing
// plane. It is a flat scale on y, not a projection.
const DefaultFlatten = 0.9

// Body is a planet, or the sun when OrbitRadius is zero.
type Body struct {
	Name        string
	OrbitRadius int
	Size        int
	Color       color.RGBA
	Speed       float64 // degrees per tick
	Angle       float64 // degrees in [0, 360)
}

// Advance moves the body one tick along its orbit. Speed is assumed to be
// below 360, so a single wrap keeps Angle in range.
func (b *Body) Advance() {
	b.Angle += b.Speed
	if b.Angle >= 360.0 {
		b.Angle -= 360.0
	}
}

// Radians returns the current phase in radians.
func (b Body) Radians() float64 {
	return b.Angle * math.Pi / 180.0
}

// Scene is the sun, the ordered bodies and the frame counter around a fixed
// center. Flatten scales orbits vertically.
type Scene struct {
	CX, CY  int
	Sun     Body
	Bodies  []Body
	Flatten float64
	Frame   int
}

// New builds a scene centered on (cx, cy). The bodies slice is copied.
func New(cx, cy int, sun Body, bodies []Body) *Scene {
	bs := make([]Body, len(bodies))
	copy(bs, bodies)
	return &Scene{
		CX:      cx,
		CY:      cy,
		Sun:     sun,
		Bodies:  bs,
		Flatten: DefaultFlatten,
	}
}

// Advance moves every body one tick and bumps the frame counter.
func (s *Scene) Advance() {
	for i := range s.Bodies {
		s.Bodies[i].Advance()
	}
	s.Frame++
}

// Position returns the continuous screen position of b.
func (s *Scene) Position(b Body) (x, y float64) {
	sin, cos := math.Sincos(b.Radians())
	r := float64(b.OrbitRadius)
	return float64(s.CX) + r*cos, float64(s.CY) + r*sin*s.Flatten
}

// Pixel returns the integer position of b. The orbital offset is truncated
// toward zero before it is added to the center.
func (s *Scene) Pixel(b Body) (x, y int) {
	sin, cos := math.Sincos(b.Radians())
	r := float64(b.OrbitRadius)
	return s.CX + int(r*cos), s.CY + int(r*sin*s.Flatten)
}

// Radii returns the orbit radius of every body in order.
func (s *Scene) Radii() []int {
	rs := make([]int, len(s.Bodies))
	for i, b := range s.Bodies {
		rs[i] = b.OrbitRadius
	}
	return rs
}
