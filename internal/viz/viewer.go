package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/projsim/internal/config"
	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/sim"
)

const (
	canvasTop    = 1 // rows above the canvas
	footerRows   = 6
	panStep      = 8 // dots
	zoomStep     = 1.25
	dragStep     = 0.05
	hoverRadius  = 6 // dots
	maxChangeLog = 4
)

// Viewer is a bubbletea model showing one trajectory with per-sample detail.
type Viewer struct {
	cfg           *config.Config
	traj          sim.Trajectory
	err           error
	view          Viewport
	selected      int
	width, height int
	sized         bool
	canvas        *Canvas
	changes       []config.Change
}

// NewViewer integrates cfg and frames the result.
func NewViewer(cfg *config.Config) (Viewer, error) {
	traj, err := projectile.Integrate(cfg.Projectile())
	if err != nil {
		return Viewer{}, err
	}
	m := Viewer{
		cfg:    cfg,
		traj:   traj,
		width:  80,
		height: 24,
	}
	m.resize(m.width, m.height)
	m.view = Fit(traj, m.canvas.DotWidth(), m.canvas.DotHeight())
	return m, nil
}

// Changes returns every configuration change applied during the session.
func (m Viewer) Changes() []config.Change { return m.changes }

func (m Viewer) Init() tea.Cmd { return nil }

func (m Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		// Only the initial size frames the trajectory; later resizes keep
		// the user's pan and zoom.
		if !m.sized {
			m.view = Fit(m.traj, m.canvas.DotWidth(), m.canvas.DotHeight())
			m.sized = true
		}
	}
	return m, nil
}

func (m Viewer) handleKey(msg tea.KeyMsg) (Viewer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
	case "right", "l":
		if m.selected < len(m.traj)-1 {
			m.selected++
		}
	case "home":
		m.selected = 0
	case "end":
		m.selected = len(m.traj) - 1
	case "+", "=":
		m.view.Zoom(zoomStep)
	case "-", "_":
		m.view.Zoom(1 / zoomStep)
	case "w":
		m.view.Pan(0, -panStep)
	case "s":
		m.view.Pan(0, panStep)
	case "a":
		m.view.Pan(-panStep, 0)
	case "d":
		m.view.Pan(panStep, 0)
	case "f":
		m.view = Fit(m.traj, m.canvas.DotWidth(), m.canvas.DotHeight())
	case "m":
		next := *m.cfg
		if next.Method == projectile.ExplicitEuler {
			next.Method = projectile.SemiImplicitEuler
		} else {
			next.Method = projectile.ExplicitEuler
		}
		m = m.apply(&next)
	case "]":
		next := *m.cfg
		next.Drag += dragStep
		m = m.apply(&next)
	case "[":
		next := *m.cfg
		next.Drag -= dragStep
		m = m.apply(&next)
	}
	return m, nil
}

func (m Viewer) handleMouse(msg tea.MouseMsg) Viewer {
	px := (msg.X)*2 + 1
	py := (msg.Y-canvasTop)*4 + 2
	w, h := m.canvas.DotWidth(), m.canvas.DotHeight()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.view.ZoomAt(zoomStep, px, py, w, h)
		return m
	case tea.MouseButtonWheelDown:
		m.view.ZoomAt(1/zoomStep, px, py, w, h)
		return m
	}

	if py < 0 || py >= h {
		return m
	}

	i := Nearest(m.traj, m.view, px, py, w, h)
	if i < 0 {
		return m
	}
	x, y := m.view.ToDot(m.traj[i].X, m.traj[i].Y, w, h)
	near := absInt(x-px) <= hoverRadius && absInt(y-py) <= hoverRadius
	if msg.Action == tea.MouseActionPress || near {
		m.selected = i
	}
	return m
}

// apply re-integrates with next. Invalid settings leave the current
// trajectory in place and surface the error.
func (m Viewer) apply(next *config.Config) Viewer {
	traj, err := projectile.Integrate(next.Projectile())
	if err != nil {
		m.err = err
		return m
	}

	m.changes = append(m.changes, config.Diff(m.cfg, next)...)
	m.cfg = next
	m.traj = traj
	m.err = nil
	if m.selected >= len(traj) {
		m.selected = len(traj) - 1
	}
	return m
}

func (m *Viewer) resize(width, height int) {
	m.width, m.height = width, height
	rows := height - canvasTop - footerRows
	if rows < 4 {
		rows = 4
	}
	m.canvas = NewCanvas(width, rows)
}

func (m Viewer) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("projsim · %s · %d samples", m.cfg.Method, len(m.traj))))
	b.WriteByte('\n')

	Render(m.canvas, m.view, m.traj, m.selected)
	b.WriteString(TrajectoryStyle.Render(strings.TrimSuffix(m.canvas.String(), "\n")))
	b.WriteByte('\n')

	if m.selected >= 0 && m.selected < len(m.traj) {
		p := m.traj[m.selected]
		b.WriteString(strings.Join([]string{
			Field("sample", fmt.Sprintf("%d/%d", m.selected+1, len(m.traj))),
			Field("t", fmt.Sprintf("%.3f s", p.T)),
			Field("x", fmt.Sprintf("%.3f m", p.X)),
			Field("y", fmt.Sprintf("%.3f m", p.Y)),
			Field("vx", fmt.Sprintf("%.3f m/s", p.VX)),
			Field("vy", fmt.Sprintf("%.3f m/s", p.VY)),
		}, "  "))
	}
	b.WriteByte('\n')

	c := m.cfg
	b.WriteString(strings.Join([]string{
		Field("launch", fmt.Sprintf("(%.2f, %.2f) m", c.Launch.X, c.Launch.Y)),
		Field("v0", fmt.Sprintf("(%.2f, %.2f) m/s", c.Launch.VX, c.Launch.VY)),
		Field("drag", fmt.Sprintf("%.2f", c.Drag)),
		Field("dt", fmt.Sprintf("%.3f", c.Dt)),
		Field("scale", fmt.Sprintf("%.2f dot/m", m.view.Scale)),
	}, "  "))
	b.WriteByte('\n')

	recent := m.changes
	if len(recent) > maxChangeLog {
		recent = recent[len(recent)-maxChangeLog:]
	}
	lines := make([]string, len(recent))
	for i, ch := range recent {
		lines[i] = ch.String()
	}
	b.WriteString(ChangeStyle.Render(strings.Join(lines, " | ")))
	b.WriteByte('\n')

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
	}
	b.WriteByte('\n')

	b.WriteString(KeyHint.Render("←/→ sample  click pick  +/- zoom  wasd pan  f fit  m method  [/] drag  q quit"))
	return b.String()
}

// RunViewer runs the viewer until the user quits and returns the
// configuration changes made during the session.
func RunViewer(cfg *config.Config) ([]config.Change, error) {
	m, err := NewViewer(cfg)
	if err != nil {
		return nil, err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		return nil, err
	}
	if v, ok := final.(Viewer); ok {
		return v.Changes(), nil
	}
	return nil, nil
}
