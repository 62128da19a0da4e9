package compositor_test

import (
	"context"
	"fmt"
	"image/color"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/solarsim/internal/canvas"
	"github.com/san-kum/solarsim/internal/compositor"
	"github.com/san-kum/solarsim/internal/scene"
)

var (
	yellow = color.RGBA{255, 255, 85, 255}
	blue   = color.RGBA{0, 0, 170, 255}
)

// callLog wraps Pages and records every non-pixel call in order.
type callLog struct {
	*canvas.Pages
	calls  []string
	pixels int
}

func (c *callLog) SetPixel(x, y int, col color.RGBA) {
	c.pixels++
	c.Pages.SetPixel(x, y, col)
}
func (c *callLog) SelectDrawBuffer(i int) {
	c.calls = append(c.calls, fmt.Sprintf("draw %d", i))
	c.Pages.SelectDrawBuffer(i)
}
func (c *callLog) SelectVisibleBuffer(i int) {
	c.calls = append(c.calls, fmt.Sprintf("visible %d", i))
	c.Pages.SelectVisibleBuffer(i)
}
func (c *callLog) Clear(col color.RGBA) {
	c.calls = append(c.calls, "clear")
	c.Pages.Clear(col)
}
func (c *callLog) DrawLabel(x, y int, text string, col color.RGBA) {
	c.calls = append(c.calls, "label "+text)
	c.Pages.DrawLabel(x, y, text, col)
}
func (c *callLog) Sleep(d time.Duration) {
	c.calls = append(c.calls, "sleep "+d.String())
	c.Pages.Sleep(d)
}
func (c *callLog) PollKey() (compositor.Key, bool) {
	c.calls = append(c.calls, "poll")
	return c.Pages.PollKey()
}

type frameRecorder struct {
	frames  []int
	visible []int
}

func (f *frameRecorder) OnFrame(frame, visible int) {
	f.frames = append(f.frames, frame)
	f.visible = append(f.visible, visible)
}

func newScene() *scene.Scene {
	return scene.New(100, 80, scene.Body{Size: 10, Color: yellow}, []scene.Body{
		{Name: "a", OrbitRadius: 40, Size: 4, Color: blue, Speed: 1.0},
		{Name: "b", OrbitRadius: 65, Size: 3, Color: blue, Speed: 1.8},
	})
}

var _ = Describe("Roles", func() {
	It("starts with page 0 active and page 1 visible", func() {
		r := compositor.NewRoles()
		Expect(r.Active).To(Equal(0))
		Expect(r.Visual).To(Equal(1))
	})

	It("swaps both indices", func() {
		r := compositor.NewRoles()
		r.Swap()
		Expect(r).To(Equal(compositor.Roles{Active: 1, Visual: 0}))
		r.Swap()
		Expect(r).To(Equal(compositor.NewRoles()))
	})
})

var _ = Describe("Compositor", func() {
	var (
		pages *canvas.Pages
		log   *callLog
		sc    *scene.Scene
		comp  *compositor.Compositor
		opts  compositor.Options
	)

	BeforeEach(func() {
		pages = canvas.New(201, 161)
		log = &callLog{Pages: pages}
		sc = newScene()
		opts = compositor.DefaultOptions()
		opts.Title = "Solar"
		comp = compositor.New(log, sc, opts)
	})

	Describe("New", func() {
		It("draws page 0 while page 1 is shown", func() {
			Expect(comp.Roles()).To(Equal(compositor.NewRoles()))
			Expect(sc.Frame).To(Equal(0))
		})
	})

	Describe("Tick", func() {
		It("runs the frame steps in order", func() {
			Expect(comp.Tick()).To(BeFalse())
			Expect(log.calls).To(Equal([]string{
				"draw 0",
				"clear",
				"label Solar",
				"sleep 30ms",
				"visible 0",
				"poll",
			}))
			Expect(log.pixels).To(BeNumerically(">", 0))
		})

		It("keeps active and visible pages distinct after every tick", func() {
			for i := 0; i < 25; i++ {
				comp.Tick()
				r := comp.Roles()
				Expect(r.Active).NotTo(Equal(r.Visual))
				Expect(pages.VisibleIndex()).To(Equal(r.Visual))
			}
		})

		It("presents the page it just drew", func() {
			for i := 0; i < 6; i++ {
				drawn := comp.Roles().Active
				comp.Tick()
				Expect(pages.VisibleIndex()).To(Equal(drawn))
			}
		})

		It("draws the sun at the scene center", func() {
			comp.Tick()
			Expect(pages.Visible().RGBAAt(sc.CX, sc.CY)).To(Equal(yellow))
		})

		It("draws each body where the scene put it before advancing", func() {
			comp.Tick()
			// Body a was drawn at angle 0: (CX+40, CY), disk interior is blue.
			Expect(pages.Visible().RGBAAt(sc.CX+40, sc.CY)).To(Equal(blue))
			Expect(sc.Bodies[0].Angle).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("leaves the hidden page untouched by the presented frame", func() {
			comp.Tick()
			hidden := pages.Page(comp.Roles().Active)
			Expect(hidden.RGBAAt(sc.CX, sc.CY)).NotTo(Equal(yellow))
		})

		It("counts frames and paces each one", func() {
			for i := 0; i < 12; i++ {
				comp.Tick()
			}
			Expect(sc.Frame).To(Equal(12))
			Expect(pages.Sleeps).To(Equal(12))
			Expect(pages.Slept).To(Equal(12 * 30 * time.Millisecond))
		})

		It("completes one revolution in 360 ticks at one degree per tick", func() {
			for i := 0; i < 360; i++ {
				comp.Tick()
			}
			Expect(sc.Bodies[0].Angle).To(BeNumerically("~", 0, 1e-9))
		})

		It("notifies observers with the presented page", func() {
			rec := &frameRecorder{}
			comp.AddObserver(rec)
			comp.Tick()
			comp.Tick()
			comp.Tick()
			Expect(rec.frames).To(Equal([]int{1, 2, 3}))
			Expect(rec.visible).To(Equal([]int{0, 1, 0}))
		})

		It("ignores keys other than escape", func() {
			pages.Press(compositor.Key('x'))
			Expect(comp.Tick()).To(BeFalse())
		})
	})

	Describe("Run", func() {
		It("finishes the frame in progress before honouring escape", func() {
			pages.Press(compositor.KeyEscape)
			Expect(comp.Run(context.Background())).To(Succeed())
			Expect(sc.Frame).To(Equal(1))
			Expect(log.calls[len(log.calls)-2:]).To(Equal([]string{"visible 0", "poll"}))
		})

		It("stops on escape after several frames", func() {
			rec := &frameRecorder{}
			comp.AddObserver(&pressAfter{pages: pages, at: 5})
			comp.AddObserver(rec)
			Expect(comp.Run(context.Background())).To(Succeed())
			Expect(sc.Frame).To(Equal(5))
			Expect(rec.frames).To(HaveLen(5))
		})

		It("returns the context error without drawing when already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(comp.Run(ctx)).To(MatchError(context.Canceled))
			Expect(sc.Frame).To(Equal(0))
			Expect(log.calls).To(BeEmpty())
		})
	})
})

// pressAfter queues escape once a given frame has been presented.
type pressAfter struct {
	pages *canvas.Pages
	at    int
}

func (p *pressAfter) OnFrame(frame, visible int) {
	if frame == p.at {
		p.pages.Press(compositor.KeyEscape)
	}
}
