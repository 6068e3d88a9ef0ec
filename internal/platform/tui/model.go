package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// footerRows is the space under the game screen used by the help line.
const footerRows = 1

// statusTicks is how long a status message replaces the help line.
const statusTicks = 120

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig // Full terminal size; the game gets the rows above the footer
	fixedSeed bool               // Restarts replay the seed given on the command line
	keys      *KeyMapper
	input     *KeyState
	help      help.Model
	logger    *log.Logger
	gameState core.GameState

	status      string
	statusErr   bool
	statusTimer int

	quitting bool
	back     bool // Player asked to return to the menu
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config:    cfg,
		fixedSeed: fixedSeed,
		keys:      NewKeyMapper(),
		input:     NewKeyState(holdTicks(cfg.TickRate)),
		help:      h,
		logger:    logger,
	}
}

func gameRows(h int) int {
	return max(0, h-footerRows)
}

// gameConfig is the runtime config as seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameRows(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.game.Render(m.screen)
		path, err := saveScreenshot(screenshotDir(), m.game.ID(), m.screen, time.Now())
		if err != nil {
			m.setStatus(err.Error(), true)
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.setStatus("saved "+path, false)
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, keys.Copy):
		m.game.Render(m.screen)
		if err := copyScreen(m.screen); err != nil {
			m.setStatus(err.Error(), true)
			m.logger.Warn("copy failed", "error", err)
		} else {
			m.setStatus("screen copied to clipboard", false)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	}

	m.input.Press(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width

	// The arena follows the window, so a running game starts over
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.input.Reset()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.input.Frame()

	if m.statusTimer > 0 {
		m.statusTimer--
		if m.statusTimer == 0 {
			m.status = ""
		}
	}

	// Check for restart
	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.input.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(frame)
	m.gameState = result.State

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
	m.statusTimer = statusTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	switch {
	case m.status != "" && m.statusErr:
		return errorStyle.Render(m.status)
	case m.status != "":
		return statusStyle.Render(m.status)
	default:
		return helpStyle.Render(m.help.View(m.keys.Keys()))
	}
}

// Result describes how a game session ended.
type Result struct {
	State core.GameState // Last state reported by the game
	Back  bool           // Player asked to return to the menu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{State: m.gameState, Back: m.back}, nil
}
