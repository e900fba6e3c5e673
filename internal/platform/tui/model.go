package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-runner/internal/config"
	"github.com/vovakirdan/square-runner/internal/core"
)

// Options configures a game Model beyond the runtime config.
type Options struct {
	// Store receives finished runs. Nil disables score saving and the
	// in-game scoreboard.
	Store ScoreStore

	// Mode is the difficulty preset the game was built with.
	Mode config.DifficultyPreset

	// Player is recorded with each saved score.
	Player string

	// Logger reports best-effort failures. Nil silences them.
	Logger *log.Logger

	// ScreenshotDir overrides ~/.runner/screenshots.
	ScreenshotDir string
}

// helpRows is the number of rows below the world kept for key hints.
const helpRows = 1

// playHeight returns the screen rows left for the game in a window of h rows.
func playHeight(h int) int {
	return max(h-helpRows, 1)
}

// Model is the Bubble Tea model for running the game.
//
// The tick loop only runs while the game is live: it stops when the run ends
// or the game pauses, and is re-armed on restart or resume.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreboard *ScoreboardModel
	ticking    bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Mode == "" {
		opts.Mode = config.DifficultyNormal
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		ticking:    true, // Init arms the first tick
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		m.inputFrame.Set(core.ActionJump)

	case core.ActionPause:
		if m.gameState.GameOver {
			return m, nil
		}
		if m.gameState.Paused {
			// The ticker is stopped, so resume right away.
			frame := core.NewInputFrame()
			frame.Set(core.ActionPause)
			m.step(frame)
			m.inputFrame.Clear()
			return m.armTick()
		}
		m.inputFrame.Set(core.ActionPause)

	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}

	case core.ActionScoreboard:
		if m.gameState.GameOver && m.opts.Store != nil {
			sb := NewScoreboardModel(m.opts.Store, ScoreboardConfig{
				GameID:   m.game.ID(),
				Title:    m.game.Title(),
				Mode:     m.opts.Mode,
				Width:    m.config.ScreenW,
				Height:   m.config.ScreenH,
				Embedded: true,
			})
			m.scoreboard = &sb
		}
	}

	return m, nil
}

// updateScoreboard forwards messages to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(wsm)
	}

	updated, cmd := m.scoreboard.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

func (m *Model) resize(msg tea.WindowSizeMsg) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}

	m.step(m.inputFrame)
	m.inputFrame.Clear()

	if m.gameState.GameOver || m.gameState.Paused {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// step advances the game once and records a finished run.
func (m *Model) step(in core.InputFrame) {
	result := m.game.Step(in)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
}

func (m *Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(m.game.ID(), string(m.opts.Mode), m.opts.Player, m.gameState.Score)
	if err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save score", "score", m.gameState.Score, "error", err)
	}
}

// restart begins a new run with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	return m.armTick()
}

// armTick restarts the tick loop if it is not already running.
func (m Model) armTick() (tea.Model, tea.Cmd) {
	if m.ticking || m.gameState.GameOver || m.gameState.Paused {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot()
	if m.opts.Logger == nil {
		return
	}
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Debug("saved screenshot", "path", path)
}

func (m *Model) writeScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".runner", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	keys := m.keys.Keys().ForState(m.gameState, m.opts.Store != nil)
	return RenderScreen(m.screen) + "\n" + m.help.View(keys)
}

// GameState returns the state seen after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Ticking reports whether the tick loop is armed.
func (m Model) Ticking() bool {
	return m.ticking
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
