package tui

import (
	"github.com/vovakirdan/square-runner/internal/core"
	"github.com/vovakirdan/square-runner/internal/storage"
)

// Game is the contract between the terminal loop and a simulation.
// Implementations own their world state; the model only feeds input,
// advances ticks and asks for frames.
type Game interface {
	// ID returns a stable identifier used as the score storage key.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new run with the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the current state without advancing.
	State() core.GameState
}

// ScoreStore persists finished runs and lists the best ones.
//
//go:generate go tool mockgen -destination=./mocks/score_store_mock.go -package=mocks . ScoreStore
type ScoreStore interface {
	SaveScore(gameID, mode, player string, score int) (int64, error)
	TopScores(gameID, mode string, limit int) ([]storage.ScoreEntry, error)
}
