package scene

import (
	"image/color"
	"math"
	"testing"
)

func TestAdvanceWraps(t *testing.T) {
	speeds := []float64{0.1, 0.5, 1.0, 1.8, 7.3, 45, 179.9, 359.99}
	for _, speed := range speeds {
		b := Body{Speed: speed}
		for i := 0; i < 5000; i++ {
			b.Advance()
			if b.Angle < 0 || b.Angle >= 360 {
				t.Fatalf("speed %v tick %d: angle %v out of [0,360)", speed, i, b.Angle)
			}
		}
	}
}

func TestAdvanceExactRevolution(t *testing.T) {
	b := Body{OrbitRadius: 100, Speed: 1.0}
	for i := 0; i < 360; i++ {
		b.Advance()
	}
	if math.Abs(b.Angle) > 1e-9 && math.Abs(b.Angle-360) > 1e-9 {
		t.Errorf("expected angle back at 0 after 360 ticks, got %v", b.Angle)
	}
}

func TestAdvanceWrapValue(t *testing.T) {
	b := Body{Speed: 30, Angle: 350}
	b.Advance()
	if math.Abs(b.Angle-20) > 1e-9 {
		t.Errorf("expected 20, got %v", b.Angle)
	}
}

func TestSceneAdvance(t *testing.T) {
	s := New(0, 0, Body{Size: 35}, []Body{
		{OrbitRadius: 100, Speed: 1.8},
		{OrbitRadius: 150, Speed: 1.5},
	})
	for i := 0; i < 10; i++ {
		s.Advance()
	}

	if s.Frame != 10 {
		t.Errorf("expected frame 10, got %d", s.Frame)
	}
	if math.Abs(s.Bodies[0].Angle-18) > 1e-9 {
		t.Errorf("expected 18, got %v", s.Bodies[0].Angle)
	}
	if math.Abs(s.Bodies[1].Angle-15) > 1e-9 {
		t.Errorf("expected 15, got %v", s.Bodies[1].Angle)
	}
}

func TestNewCopiesBodies(t *testing.T) {
	bodies := []Body{{OrbitRadius: 100, Speed: 1}}
	s := New(0, 0, Body{}, bodies)
	s.Advance()
	if bodies[0].Angle != 0 {
		t.Error("scene mutated the caller's slice")
	}
}

func TestPosition(t *testing.T) {
	s := New(540, 384, Body{}, nil)

	tests := []struct {
		angle float64
		x, y  float64
	}{
		{0, 640, 384},
		{90, 540, 384 + 90},
		{180, 440, 384},
		{270, 540, 384 - 90},
	}

	for _, tt := range tests {
		b := Body{OrbitRadius: 100, Angle: tt.angle}
		x, y := s.Position(b)
		if math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9 {
			t.Errorf("angle %v: expected (%v,%v), got (%v,%v)", tt.angle, tt.x, tt.y, x, y)
		}
	}
}

func TestPositionFlatten(t *testing.T) {
	s := New(0, 0, Body{}, nil)
	s.Flatten = 0.5
	_, y := s.Position(Body{OrbitRadius: 200, Angle: 90})
	if math.Abs(y-100) > 1e-9 {
		t.Errorf("expected 100, got %v", y)
	}
}

func TestPixelTruncates(t *testing.T) {
	s := New(540, 384, Body{}, nil)

	// cos(135°)*100 = -70.71, truncated to -70 rather than floored to -71.
	x, y := s.Pixel(Body{OrbitRadius: 100, Angle: 135})
	if x != 470 {
		t.Errorf("expected x 470, got %d", x)
	}
	// sin(135°)*100*0.9 = 63.64
	if y != 447 {
		t.Errorf("expected y 447, got %d", y)
	}
}

func TestSunPixelIsCenter(t *testing.T) {
	s := New(12, 34, Body{Size: 35, Color: color.RGBA{255, 255, 85, 255}}, nil)
	x, y := s.Pixel(s.Sun)
	if x != 12 || y != 34 {
		t.Errorf("expected (12,34), got (%d,%d)", x, y)
	}
}

func TestRadii(t *testing.T) {
	s := New(0, 0, Body{}, []Body{{OrbitRadius: 100}, {OrbitRadius: 260}})
	rs := s.Radii()
	if len(rs) != 2 || rs[0] != 100 || rs[1] != 260 {
		t.Errorf("unexpected radii %v", rs)
	}
}
