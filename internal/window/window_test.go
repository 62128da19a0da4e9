package window

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTPS(t *testing.T) {
	tests := []struct {
		delay time.Duration
		want  int
	}{
		{30 * time.Millisecond, 33},
		{time.Second / 60, 60},
		{2 * time.Second, 1},
		{0, ebiten.SyncWithFPS},
	}
	for _, tt := range tests {
		if got := TPS(tt.delay); got != tt.want {
			t.Errorf("TPS(%v): expected %d, got %d", tt.delay, tt.want, got)
		}
	}
}
