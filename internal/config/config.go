// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all configuration for the runner game.
// Lengths are in world units; the world is WorldConfig.Width wide and
// WorldConfig.Height tall with Y growing downward.
type RunnerConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// WorldConfig defines the playfield dimensions.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundLine returns the y-coordinate of the floor surface.
func (w WorldConfig) GroundLine() float64 {
	return w.Height - w.GroundHeight
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative: up is -Y
	GameSpeed    float64 `yaml:"game_speed"`    // Obstacle travel per tick
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// ObstacleConfig defines obstacle dimensions.
type ObstacleConfig struct {
	BlockWidth  float64 `yaml:"block_width"`
	BlockHeight float64 `yaml:"block_height"`
	SpikeSize   float64 `yaml:"spike_size"`
}

// SpawnConfig defines the procedural obstacle generation policy.
type SpawnConfig struct {
	InitialCount  int     `yaml:"initial_count"`
	InitialX      float64 `yaml:"initial_x"`
	InitialGap    float64 `yaml:"initial_gap"`    // Fixed part of the gap between initial obstacles
	InitialJitter float64 `yaml:"initial_jitter"` // Random part of that gap
	Threshold     float64 `yaml:"threshold"`      // Spawn when the furthest obstacle is left of this
	SpawnX        float64 `yaml:"spawn_x"`
	SpawnJitter   float64 `yaml:"spawn_jitter"`
	BlockChance   float64 `yaml:"block_chance"` // Probability a replenished obstacle is a block
}

// ScoringConfig defines points awarded per cleared obstacle.
type ScoringConfig struct {
	BlockPoints int `yaml:"block_points"`
	SpikePoints int `yaml:"spike_points"`
}
