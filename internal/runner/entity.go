// Package runner implements the Square Runner endless runner: a square
// jumps over approaching blocks and spikes until it hits one.
package runner

import (
	"github.com/vovakirdan/square-runner/internal/config"
	"github.com/vovakirdan/square-runner/internal/core"
)

// Kind tags an obstacle variant.
type Kind int

const (
	KindBlock Kind = iota // Tall rectangle
	KindSpike             // Triangle, collides as its bounding square
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// Player is the jumping square.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	VelocityY     float64 // Positive is downward
	IsJumping     bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Obstacle is a block or spike travelling left toward the player.
type Obstacle struct {
	Kind          Kind
	X, Y          float64
	Width, Height float64
	Passed        bool // Already scored
}

// Box returns the obstacle's collision box. For spikes this is the
// enclosing square, not the triangle.
func (o Obstacle) Box() core.Box {
	return core.Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// MakePlayer returns a grounded, motionless player. groundY is the
// player's resting Y, i.e. the ground line minus the player's height.
func MakePlayer(cfg config.PlayerConfig, groundY float64) Player {
	return Player{
		X:      cfg.X,
		Y:      groundY,
		Width:  cfg.Size,
		Height: cfg.Size,
	}
}

// MakeBlock returns a block at x whose base sits on groundLine.
func MakeBlock(cfg config.ObstacleConfig, x, groundLine float64) Obstacle {
	return Obstacle{
		Kind:   KindBlock,
		X:      x,
		Y:      groundLine - cfg.BlockHeight,
		Width:  cfg.BlockWidth,
		Height: cfg.BlockHeight,
	}
}

// MakeSpike returns a spike at x whose base sits on groundLine.
func MakeSpike(cfg config.ObstacleConfig, x, groundLine float64) Obstacle {
	return Obstacle{
		Kind:   KindSpike,
		X:      x,
		Y:      groundLine - cfg.SpikeSize,
		Width:  cfg.SpikeSize,
		Height: cfg.SpikeSize,
	}
}
