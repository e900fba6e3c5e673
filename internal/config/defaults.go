package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        800,
			Height:       400,
			GroundHeight: 60,
		},
		Physics: PhysicsConfig{
			Gravity:      0.8,
			JumpVelocity: -11,
			GameSpeed:    6,
		},
		Player: PlayerConfig{
			X:    100,
			Size: 40,
		},
		Obstacles: ObstacleConfig{
			BlockWidth:  30,
			BlockHeight: 60,
			SpikeSize:   30,
		},
		Spawn: SpawnConfig{
			InitialCount:  5,
			InitialX:      800,
			InitialGap:    300,
			InitialJitter: 100,
			Threshold:     600,
			SpawnX:        800,
			SpawnJitter:   100,
			BlockChance:   0.5,
		},
		Scoring: ScoringConfig{
			BlockPoints: 5,
			SpikePoints: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
