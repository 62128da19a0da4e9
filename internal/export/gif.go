package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
	"time"

	xdraw "golang.org/x/image/draw"
)

// ErrNoFrames is returned when encoding a recorder that captured nothing.
var ErrNoFrames = errors.New("export: no frames recorded")

// PageSource exposes the two pages of a canvas.
type PageSource interface {
	Page(i int) *image.RGBA
}

// Recorder captures presented frames into a GIF. It satisfies
// compositor.Observer.
type Recorder struct {
	src     PageSource
	palette color.Palette
	delay   int

	// Every keeps one frame out of Every; Limit stops capturing after that
	// many frames. Zero means every frame and no limit.
	Every int
	Limit int

	frames []*image.Paletted
}

// NewRecorder records pages from src, quantized to palette, each shown for
// delay.
func NewRecorder(src PageSource, palette color.Palette, delay time.Duration) *Recorder {
	return &Recorder{src: src, palette: palette, delay: gifDelay(delay)}
}

// gifDelay converts to the GIF unit of 1/100 s, never below 2.
func gifDelay(d time.Duration) int {
	cs := int(d / (10 * time.Millisecond))
	if cs < 2 {
		cs = 2
	}
	return cs
}

// Palette builds a GIF palette from distinct colors, keeping at most 256.
func Palette(colors ...color.RGBA) color.Palette {
	seen := make(map[color.RGBA]bool)
	var p color.Palette
	for _, c := range colors {
		if seen[c] || len(p) == 256 {
			continue
		}
		seen[c] = true
		p = append(p, c)
	}
	if len(p) == 0 {
		p = color.Palette{color.Black}
	}
	return p
}

func (r *Recorder) OnFrame(frame, visible int) {
	if r.Limit > 0 && len(r.frames) >= r.Limit {
		return
	}
	if r.Every > 1 && (frame-1)%r.Every != 0 {
		return
	}
	r.captureFrame(r.src.Page(visible))
}

func (r *Recorder) captureFrame(page *image.RGBA) {
	img := image.NewPaletted(page.Bounds(), r.palette)
	xdraw.Draw(img, img.Bounds(), page, page.Bounds().Min, xdraw.Src)
	r.frames = append(r.frames, img)
}

// Frames reports how many frames have been captured.
func (r *Recorder) Frames() int { return len(r.frames) }

// Full reports whether Limit has been reached.
func (r *Recorder) Full() bool { return r.Limit > 0 && len(r.frames) >= r.Limit }

func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	return gif.EncodeAll(w, &anim)
}

// Save writes the animation to path.
func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
