package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/wavebeat/internal/animate"
	"gonum.org/v1/gonum/floats"
)

const (
	panelWidth      = 80
	panelHeight     = 8
	historyCapacity = 600
)

type TickMsg time.Time

// Model is a bubbletea program that plays a Driver's frames in two
// stacked panels: the real part on top, the imaginary part below.
type Model struct {
	driver   *animate.Driver
	steps    int
	step     int
	frame    animate.Frame
	re, im   *Canvas
	running  bool
	finished bool
	showHelp bool
	// density holds |psi(x0,t)|^2 at the first grid point, one entry per frame
	density []float64
}

func NewModel(d *animate.Driver) Model {
	m := Model{
		driver:  d,
		steps:   d.Steps(),
		re:      NewCanvas(panelWidth, panelHeight),
		im:      NewCanvas(panelWidth, panelHeight),
		running: true,
		density: make([]float64, 0, historyCapacity),
	}
	if m.steps == 0 {
		m.finished = true
		return m
	}
	m.load(0)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.finished {
		return tea.Quit
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	interval := m.driver.Interval()
	if interval <= 0 {
		interval = time.Second / 60
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space":
			m.running = !m.running
		case "r":
			m.density = m.density[:0]
			m.load(0)
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if m.step+1 >= m.steps {
				m.finished = true
				return m, tea.Quit
			}
			m.load(m.step + 1)
		}
		return m, m.tick()
	}
	return m, nil
}

// load computes frame k and redraws both canvases.
func (m *Model) load(k int) {
	m.step = k
	m.frame = m.driver.Frame(k)
	if len(m.frame.Re) > 0 {
		re, im := m.frame.Re[0], m.frame.Im[0]
		m.density = append(m.density, re*re+im*im)
		if len(m.density) > historyCapacity {
			m.density = m.density[1:]
		}
	}
	m.draw()
}

func (m *Model) draw() {
	lo, hi := panelRange(m.frame)
	for _, p := range []struct {
		c  *Canvas
		ys []float64
	}{{m.re, m.frame.Re}, {m.im, m.frame.Im}} {
		p.c.Clear()
		p.c.DashedHLine(p.c.RowOf(0, lo, hi))
		p.c.Plot(p.ys, lo, hi)
	}
}

// panelRange is the shared y range of both panels: the frame bound when
// known, otherwise the data extent.
func panelRange(f animate.Frame) (float64, float64) {
	if f.Bound > 0 && !math.IsInf(f.Bound, 0) {
		return -f.Bound, f.Bound
	}
	if len(f.Re) == 0 {
		return -1, 1
	}
	lo := math.Min(floats.Min(f.Re), floats.Min(f.Im))
	hi := math.Max(floats.Max(f.Re), floats.Max(f.Im))
	if !(hi > lo) {
		return lo - 1, hi + 1
	}
	return lo, hi
}

func (m Model) Step() int      { return m.step }
func (m Model) Finished() bool { return m.finished }
func (m Model) Running() bool  { return m.running }

func (m Model) View() string {
	theme := CurrentTheme

	var plots strings.Builder
	plots.WriteString(titleStyle().Render(m.frame.Title) + "\n")
	plots.WriteString(panel("Re[ψ(x,t)]", m.re, theme.Real) + "\n")
	plots.WriteString(panel("Im[ψ(x,t)]", m.im, theme.Imag) + "\n")
	xmin, xmax := 0.0, 0.0
	if n := len(m.frame.X); n > 0 {
		xmin, xmax = m.frame.X[0], m.frame.X[n-1]
	}
	plots.WriteString(xAxis(panelWidth+4, xmin, xmax))

	var s strings.Builder
	status := statusRunning.Render("RUNNING")
	switch {
	case m.finished:
		status = statusDone.Render("DONE")
	case !m.running:
		status = statusPaused.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d / %d", m.step+1, m.steps)) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3f", m.frame.Time)) + "\n")
	s.WriteString(labelStyle.Render("Points") + valueStyle.Render(fmt.Sprintf("%d", len(m.frame.X))) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(theme.Name) + "\n")
	if len(m.density) > 1 {
		chart := asciigraph.Plot(m.density,
			asciigraph.Height(5),
			asciigraph.Width(28),
			asciigraph.Caption("|ψ(x0,t)|²"),
		)
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(chart) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause R:Restart\nT:Theme  Q:Quit  ?:Help"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, plots.String(), statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart from t = 0       ║
║  T        - Cycle themes             ║
║  Q / Esc  - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n" + body
	}
	return body
}
