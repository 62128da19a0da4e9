package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/solarsim/internal/compositor"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(1)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

// Model drives a compositor from the Bubble Tea event loop. Each TickMsg is
// one compositor tick; key presses are queued on the canvas and picked up by
// the tick's own poll, so a frame is always finished before the program
// quits.
type Model struct {
	comp    *compositor.Compositor
	canvas  *Canvas
	delay   time.Duration
	stopped bool
}

func NewModel(comp *compositor.Compositor, canvas *Canvas, delay time.Duration) Model {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return Model{comp: comp, canvas: canvas, delay: delay}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update queues escape keys and steps the compositor.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "ctrl+c":
			m.canvas.Press(compositor.KeyEscape)
		}
	case TickMsg:
		if m.comp.Tick() {
			m.stopped = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// Stopped reports whether escape ended the animation.
func (m Model) Stopped() bool { return m.stopped }

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(canvasStyle.Render(m.canvas.Render()))
	s.WriteByte('\n')
	sc := m.comp.Scene()
	w, h := m.canvas.Extents()
	status := fmt.Sprintf("frame %s  bodies %s  canvas %s  page %s",
		valueStyle.Render(fmt.Sprint(sc.Frame)),
		valueStyle.Render(fmt.Sprint(len(sc.Bodies))),
		valueStyle.Render(fmt.Sprintf("%dx%d", w, h)),
		valueStyle.Render(fmt.Sprint(m.canvas.VisibleIndex())))
	s.WriteString(statusStyle.Render(status))
	s.WriteString("  " + helpStyle.Render("Esc/Q: quit"))
	return s.String()
}

// Run shows the animation on the alternate screen until escape or until ctx
// is done.
func Run(ctx context.Context, comp *compositor.Compositor, canvas *Canvas, delay time.Duration) error {
	p := tea.NewProgram(NewModel(comp, canvas, delay), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
