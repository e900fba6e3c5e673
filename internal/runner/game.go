package runner

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/square-runner/internal/config"
	"github.com/vovakirdan/square-runner/internal/core"
)

// GameID identifies the runner in score storage.
const GameID = "runner"

// Game adapts a Session to the platform's fixed-tick game loop.
type Game struct {
	cfg     config.RunnerConfig
	session *Session
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a runner game. The config is validated once here; every
// Reset reuses it.
func New(cfg config.RunnerConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Square Runner"
}

// Reset starts a fresh run seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.session = newSession(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.IsOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.session.Jump()
	}
	g.session.Step()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.IsOver(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying world for read-only inspection.
func (g *Game) Session() *Session {
	return g.session
}
