package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snack/internal/core"
	"github.com/vovakirdan/snack/internal/games/snake"
)

// EngineFactory starts a fresh engine. It is called once at start and
// again when the player restarts after stopping.
type EngineFactory func() (*snake.Engine, error)

// Model is the Bubble Tea model for playing snake.
type Model struct {
	factory EngineFactory
	engine  *snake.Engine
	sub     *core.Subscriber[snake.State]
	state   snake.State
	board   int

	keys   KeyMap
	help   help.Model
	screen *core.Screen
	notice *core.Screen
	config core.RuntimeConfig
	logger *log.Logger

	stopped  bool
	tooSmall bool
	quitting bool
	err      error
}

// NewModel creates a model driving the given engine.
func NewModel(factory EngineFactory, engine *snake.Engine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		factory: factory,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		logger:  logger,
	}
	m.attach(engine)
	m.checkSize()
	return m
}

// attach subscribes to a (new) engine.
func (m *Model) attach(engine *snake.Engine) {
	m.engine = engine
	m.sub = engine.Subscribe()
	m.state = engine.Current()
	m.board = engine.Options().BoardSize
	m.stopped = false

	// Board plus one status line.
	w, h := BoardSize(m.board)
	m.screen = core.NewScreen(w, h+1)
}

// Init starts listening to the engine's stream.
func (m Model) Init() tea.Cmd {
	return waitForState(m.sub)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.checkSize()
		return m, nil

	case StateMsg:
		if msg.sub != m.sub {
			return m, nil
		}
		m.state = msg.State
		return m, waitForState(m.sub)

	case StreamClosedMsg:
		if msg.sub == m.sub {
			m.stopped = true
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if dir, ok := DirectionFor(action); ok {
		m.engine.SetDirection(dir)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.engine.Stop()
		return m, tea.Quit

	case core.ActionStop:
		if !m.stopped {
			m.engine.Stop()
			m.stopped = true
		}
		return m, nil

	case core.ActionRestart:
		return m.restart()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// restart resets a running engine in place, or replaces a stopped one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if !m.stopped {
		m.engine.Reset()
		return m, nil
	}

	engine, err := m.factory()
	if err != nil {
		m.logger.Error("could not restart engine", "error", err)
		m.err = err
		return m, nil
	}
	m.sub.Cancel()
	m.attach(engine)
	m.err = nil
	return m, waitForState(m.sub)
}

// checkSize flags terminals too small for the board and prepares the
// notice shown instead.
func (m *Model) checkSize() {
	w, h := BoardSize(m.board)
	m.tooSmall = m.config.ScreenW < w || m.config.ScreenH < h+2
	if !m.tooSmall {
		return
	}

	lines := []string{
		"Window too small",
		fmt.Sprintf("Need %dx%d, have %dx%d", w, h+2, m.config.ScreenW, m.config.ScreenH),
	}
	width := m.config.ScreenW
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	if m.notice == nil {
		m.notice = core.NewScreen(width, len(lines))
	} else {
		m.notice.Resize(width, len(lines))
	}
	m.notice.Clear()
	for i, l := range lines {
		m.notice.DrawTextCentered(i, l)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		return m.notice.String()
	}

	m.screen.Clear()

	DrawBoard(m.screen, 0, 0, m.board, m.state)
	_, h := BoardSize(m.board)
	status := statusLine(m.state, m.engine.Direction(), m.stopped)
	if m.err != nil {
		status = " error: " + m.err.Error()
	}
	m.screen.DrawTextColored(0, h, status, core.ColorYellow)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last snapshot the model received.
func (m Model) State() snake.State {
	return m.state
}

// Stopped reports whether the current engine has stopped.
func (m Model) Stopped() bool {
	return m.stopped
}

// shutdown stops the current engine and releases its stream.
func (m Model) shutdown() {
	m.engine.Stop()
	m.sub.Cancel()
}

// Run starts the Bubble Tea program on a fresh engine from factory.
func Run(factory EngineFactory, cfg core.RuntimeConfig, logger *log.Logger) error {
	engine, err := factory()
	if err != nil {
		return err
	}

	model := NewModel(factory, engine, cfg, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	fm, ok := final.(Model)
	if !ok {
		fm = model
	}
	fm.shutdown()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
