package metrics

// PageFlips is the fraction of frames that presented the other page than the
// frame before. A healthy double-buffered loop stays at 1.
type PageFlips struct {
	name       string
	prev       int
	violations int
	samples    int
}

func NewPageFlips() *PageFlips {
	return &PageFlips{
		name: "page_flips",
	}
}

func (p *PageFlips) Name() string {
	return p.name
}

func (p *PageFlips) OnFrame(frame, visible int) {
	if p.samples > 0 && visible == p.prev {
		p.violations++
	}
	p.prev = visible
	p.samples++
}

func (p *PageFlips) Value() float64 {
	if p.samples < 2 {
		return 1.0
	}
	return 1.0 - float64(p.violations)/float64(p.samples-1)
}

func (p *PageFlips) Reset() {
	p.prev = 0
	p.violations = 0
	p.samples = 0
}
