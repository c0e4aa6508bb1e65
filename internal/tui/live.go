// Package tui hosts the interactive terminal front end: a live view of
// the arena with pointer flick spawning.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/spawn"
	"github.com/san-kum/ballsim/internal/viz"
	"github.com/san-kum/ballsim/internal/world"
)

// maxFrameDt caps the wall-clock step so a stalled terminal cannot
// produce a tunneling-sized jump.
const maxFrameDt = 1.0 / 30.0

const (
	headerRows = 2
	footerRows = 4
	sideMargin = 2
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	world     *world.World
	scheduler *spawn.Scheduler
	gesture   spawn.Gesture
	scene     *viz.Scene
	rng       *rand.Rand
	opts      spawn.Options

	paused    bool
	autoSpawn bool
	simTime   float64
	lastFrame time.Time
	fps       float64

	cursorX, cursorY float64
	history          []float64

	width  int
	height int
}

func newModel(cfg *config.Config) (*model, error) {
	w, err := cfg.World()
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	sched, err := spawn.NewScheduler(cfg.SpawnOptions(), rng)
	if err != nil {
		return nil, err
	}

	m := &model{
		world:     w,
		scheduler: sched,
		rng:       rng,
		opts:      cfg.SpawnOptions(),
		autoSpawn: true,
		history:   make([]float64, 0, 120),
		width:     80,
		height:    24,
	}
	m.scene = viz.NewScene(w.Arena(), m.viewCols(), m.viewRows())
	m.seed(cfg.Spawn.InitialBodies)
	return m, nil
}

func (m *model) viewCols() int {
	c := m.width - sideMargin*2
	if c < 20 {
		c = 20
	}
	return c
}

func (m *model) viewRows() int {
	r := m.height - headerRows - footerRows
	if r < 8 {
		r = 8
	}
	return r
}

func (m *model) seed(n int) {
	for _, req := range m.scheduler.Burst(n, m.world.Arena()) {
		m.world.Spawn(req.X, req.Y, req.R, req.VX, req.VY)
	}
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeArena()
		return m, nil
	case tickMsg:
		m.frame()
		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
		m.lastFrame = time.Time{}
	case "c":
		m.world.Clear()
	case "a":
		m.autoSpawn = !m.autoSpawn
	case "r":
		m.world.Clear()
		m.seed(config.DefaultInitial)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	x, y := m.scene.Unproject(msg.X-sideMargin, msg.Y-headerRows)
	m.cursorX, m.cursorY = x, y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.gesture.Press(x, y, m.simTime)
		}
	case tea.MouseActionRelease:
		r := m.opts.RadiusMin + m.rng.Float64()*(m.opts.RadiusMax-m.opts.RadiusMin)
		if req, ok := m.gesture.Release(x, y, m.simTime, r); ok {
			m.world.Spawn(req.X, req.Y, req.R, req.VX, req.VY)
		}
	}
}

// resizeArena keeps the arena width and rescales its height to the
// terminal's pixel aspect, then rebuilds the projection.
func (m *model) resizeArena() {
	arena := m.world.Arena()
	aspect := float64(m.viewRows()*4) / float64(m.viewCols()*2)
	m.world.Resize(arena.Width, arena.Width*aspect)
	m.scene = viz.NewScene(m.world.Arena(), m.viewCols(), m.viewRows())
}

func (m *model) frame() {
	now := time.Now()
	var dt float64
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
		if dt > 0 {
			m.fps = 1.0 / dt
		}
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
	}
	m.lastFrame = now

	if m.paused || dt <= 0 {
		return
	}

	m.simTime += dt
	if m.autoSpawn {
		for _, req := range m.scheduler.Poll(m.simTime, m.world.Arena()) {
			m.world.Spawn(req.X, req.Y, req.R, req.VX, req.VY)
		}
	}
	m.world.Step(dt)

	m.history = append(m.history, m.world.KineticEnergy())
	if len(m.history) > 120 {
		m.history = m.history[1:]
	}
}

func (m *model) View() string {
	var b strings.Builder

	status := viz.StatusRunning.Render("● running")
	if m.paused {
		status = viz.StatusPaused.Render("○ paused")
	}
	auto := viz.Subtle.Render("auto off")
	if m.autoSpawn {
		auto = viz.Subtle.Render("auto on")
	}
	b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n\n",
		viz.Title.Render("ballsim"), status, auto,
		viz.Subtle.Render(fmt.Sprintf("%.0ffps", m.fps))))

	bodies := m.world.Snapshot()
	var frame string
	if m.gesture.Active() {
		x0, y0 := m.gesture.Origin()
		frame = m.scene.RenderWithDrag(bodies, x0, y0, m.cursorX, m.cursorY)
	} else {
		frame = m.scene.Render(bodies)
	}
	margin := strings.Repeat(" ", sideMargin)
	for _, line := range strings.Split(strings.TrimRight(frame, "\n"), "\n") {
		b.WriteString(margin + line + "\n")
	}

	b.WriteString(fmt.Sprintf("\n  %s %s   %s %s\n",
		viz.MetricLabel.Render("bodies"),
		viz.MetricValue.Render(fmt.Sprintf("%d", len(bodies))),
		viz.MetricLabel.Render("energy"),
		viz.MetricValue.Render(fmt.Sprintf("%.3g", metrics.Total(bodies)))))
	b.WriteString("  " + viz.Sparkline(m.history, 40) + "\n")
	b.WriteString("  " + viz.KeyHint.Render("drag flick  space pause  a auto  c clear  r reseed  q quit") + "\n")

	return b.String()
}

// Run opens the live view. Drag and release with the mouse to flick a
// new ball in; scheduled drops keep arriving while auto spawn is on.
func Run(cfg *config.Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
