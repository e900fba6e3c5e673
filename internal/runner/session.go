package runner

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/square-runner/internal/config"
)

// ErrNegativeTicks is returned by Advance for a negative tick count.
var ErrNegativeTicks = errors.New("runner: negative tick count")

// State is the session lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	if s == StateGameOver {
		return "GameOver"
	}
	return "Playing"
}

// Session owns one run of the game world.
// It is not safe for concurrent use; the caller drives Step and Jump from a
// single goroutine and reads state only between calls.
type Session struct {
	cfg     config.RunnerConfig
	spawner *Spawner
	groundY float64 // Resting Y of the player

	player    Player
	obstacles []Obstacle
	score     int
	gameOver  bool
	ticks     int
}

// NewSession validates cfg and returns a session ready to play.
func NewSession(cfg config.RunnerConfig, rng Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	return newSession(cfg, rng), nil
}

// newSession skips validation for callers that already validated cfg.
func newSession(cfg config.RunnerConfig, rng Rand) *Session {
	s := &Session{
		cfg:     cfg,
		spawner: NewSpawner(cfg, rng),
		groundY: cfg.World.GroundLine() - cfg.Player.Size,
	}
	s.Reset()
	return s
}

// Reset rebuilds the world from scratch and enters StatePlaying.
// The random source carries on from where it was.
func (s *Session) Reset() {
	s.player = MakePlayer(s.cfg.Player, s.groundY)
	s.obstacles = s.spawner.Initial()
	s.score = 0
	s.gameOver = false
	s.ticks = 0
}

// Jump launches the player if it is grounded and the run is still going.
// Otherwise it does nothing.
func (s *Session) Jump() {
	if s.player.IsJumping || s.gameOver {
		return
	}
	s.player.VelocityY = s.cfg.Physics.JumpVelocity
	s.player.IsJumping = true
}

// Advance runs up to n ticks, stopping early if the run ends.
// It returns the number of ticks simulated.
func (s *Session) Advance(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeTicks, n)
	}
	for i := 0; i < n; i++ {
		if s.gameOver {
			return i, nil
		}
		s.Step()
	}
	return n, nil
}

// IsOver reports whether the run has ended.
func (s *Session) IsOver() bool {
	return s.gameOver
}

// State returns the lifecycle state.
func (s *Session) State() State {
	if s.gameOver {
		return StateGameOver
	}
	return StatePlaying
}

// Score returns the points earned this run.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of ticks simulated this run.
func (s *Session) Ticks() int {
	return s.ticks
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns a copy of the obstacles, ordered by X.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// GroundY returns the player's resting Y.
func (s *Session) GroundY() float64 {
	return s.groundY
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}
