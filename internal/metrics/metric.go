// Package metrics measures the frame loop from the outside. Every metric is a
// compositor observer and sees only the frame counter and the visible page.
package metrics

type Metric interface {
	Name() string
	OnFrame(frame, visible int)
	Value() float64
	Reset()
}
