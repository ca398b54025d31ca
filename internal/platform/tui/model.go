package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndanilko/flaptty/internal/config"
	"github.com/ndanilko/flaptty/internal/core"
	"github.com/ndanilko/flaptty/internal/game"
)

// helpHeight is the number of terminal rows reserved below the field for
// the help footer.
const helpHeight = 1

// Model is the Bubble Tea model driving one play session. It owns the
// engine session, translates key presses into engine calls, and renders
// snapshots every tick.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	session *game.Session
	screen  *core.Screen
	sink    *uiEvents
	keys    KeyMap
	help    help.Model

	best     int // Highest score this process lifetime
	tooSmall bool
	quitting bool
}

// NewModel creates a model sized to the given runtime config. events may
// be nil; when set, engine events are forwarded to it.
func NewModel(cfg config.Config, rt core.RuntimeConfig, events game.Events) (Model, error) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	sink := newUIEvents(events)
	session, err := game.NewSession(cfg, fieldRuntime(rt), sink)
	if err != nil {
		return Model{}, fmt.Errorf("cannot create session for %dx%d terminal: %w",
			rt.ScreenW, rt.ScreenH, err)
	}

	return Model{
		cfg:     cfg,
		runtime: rt,
		session: session,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH-helpHeight),
		sink:    sink,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}, nil
}

// fieldRuntime shrinks the terminal size to the playfield: the bottom
// row belongs to the help footer.
func fieldRuntime(rt core.RuntimeConfig) core.RuntimeConfig {
	rt.ScreenH -= helpHeight
	return rt
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Flap):
		if !m.tooSmall {
			m.session.Jump()
		}
	}
	return m, nil
}

// handleResize rebuilds the session for the new field size. A terminal
// too small for the tuning parks the model until the next good resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.runtime.Seed = time.Now().UnixNano()
	m.help.Width = msg.Width

	session, err := game.NewSession(m.cfg, fieldRuntime(m.runtime), m.sink)
	if err != nil {
		m.tooSmall = true
		return m, nil
	}

	m.tooSmall = false
	m.session = session
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tooSmall {
		return m, tickCmd(m.runtime.TickRate)
	}

	m.session.Tick()

	snap := m.session.Snapshot()
	if snap.Phase == game.PhaseGameOver && snap.Score > m.best {
		m.best = snap.Score
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return "Terminal too small, resize to continue"
	}

	drawSession(m.screen, m.session.Snapshot(), m.cfg, m.best)

	out := RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
	if m.sink.takeBell() {
		out += "\a"
	}
	return out
}

// Best returns the highest score seen by this model.
func (m Model) Best() int {
	return m.best
}
