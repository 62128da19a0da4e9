package metrics

import "time"

// FrameRate is the achieved frames per second between the first and the last
// observed frame.
type FrameRate struct {
	name    string
	now     func() time.Time
	first   time.Time
	last    time.Time
	samples int
}

func NewFrameRate() *FrameRate {
	return &FrameRate{
		name: "frame_rate",
		now:  time.Now,
	}
}

func (f *FrameRate) Name() string { return f.name }

func (f *FrameRate) OnFrame(frame, visible int) {
	t := f.now()
	if f.samples == 0 {
		f.first = t
	}
	f.last = t
	f.samples++
}

func (f *FrameRate) Value() float64 {
	span := f.last.Sub(f.first).Seconds()
	if f.samples < 2 || span <= 0 {
		return 0
	}
	return float64(f.samples-1) / span
}

func (f *FrameRate) Reset() {
	f.first = time.Time{}
	f.last = time.Time{}
	f.samples = 0
}
