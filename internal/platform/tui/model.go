package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/sprites"
)

// helpRows is the space kept below the game for the key help line.
const helpRows = 1

// SpriteUser is implemented by games that draw with a sprite sheet.
type SpriteUser interface {
	SetSprites(sheet *sprites.Sheet)
}

// Options configures a game session.
type Options struct {
	SpritePath string      // Custom sprite sheet; empty uses the built-in one
	Logger     *log.Logger // Nil discards log output
}

// Model is the Bubble Tea model for running a game.
//
// The game is reset in NewModel; ticks start only after the sprite sheet
// has loaded. Each tick measures wall-clock time with a core.Clock and
// hands the clamped delta to the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	clock      *core.Clock
	inputFrame core.InputFrame
	gameState  core.GameState
	loaded     bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		help:       h,
		clock:      &core.Clock{},
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init loads the sprite sheet. The tick loop starts when it arrives.
func (m Model) Init() tea.Cmd {
	return sprites.LoadCmd(m.opts.SpritePath)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sprites.SpritesLoadedMsg:
		return m.handleSprites(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleSprites installs the loaded sheet and starts ticking.
func (m Model) handleSprites(msg sprites.SpritesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("sprite sheet not loaded, using built-in", "path", msg.Path, "err", msg.Err)
	} else {
		m.logger.Debug("sprite sheet loaded", "name", msg.Sheet.Name, "path", msg.Path, "sprites", msg.Sheet.IDs())
	}
	if su, ok := m.game.(SpriteUser); ok {
		su.SetSprites(msg.Sheet)
	}

	if m.loaded {
		return m, nil
	}
	m.loaded = true
	return m, tickCmd(m.config.TickRate)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.logger.Debug("leaving session for the menu")
		m.backToMenu = true
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.gameState.Paused = !m.gameState.Paused
		if !m.gameState.Paused {
			// Resume without counting the paused time
			m.clock.Reset()
		}
		m.logger.Debug("pause toggled", "paused", m.gameState.Paused)
		return m, nil
	}

	if m.gameState.Paused || action == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The board has a fixed size,
// so the session continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.Paused {
		return m, tickCmd(m.config.TickRate)
	}

	dt := m.clock.Tick(now)

	// The game gets its own copy; the live frame is reused for the next tick
	frame := m.inputFrame.Clone()
	m.inputFrame.Clear()

	result := m.game.Advance(frame, dt)
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.loaded {
		return "Loading sprites..."
	}

	m.game.Render(m.screen)
	if m.gameState.Paused {
		drawPauseBox(m.screen)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Game))
}

// Paused reports whether the session is paused.
func (m Model) Paused() bool {
	return m.gameState.Paused
}

// BackToMenu reports whether the session ended with the back key.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// SessionResult tells the caller how a session ended.
type SessionResult struct {
	BackToMenu bool // Player pressed back rather than quit
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (SessionResult, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return SessionResult{}, err
	}
	if fm, ok := finalModel.(Model); ok {
		return SessionResult{BackToMenu: fm.BackToMenu()}, nil
	}
	return SessionResult{}, nil
}
