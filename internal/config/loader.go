package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid runner config")

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so a file only needs the keys
// it overrides, and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height:
		return fmt.Errorf("%w: ground_height must be in [0, height)", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case c.Physics.JumpVelocity >= 0:
		return fmt.Errorf("%w: jump_velocity must be negative", ErrInvalidConfig)
	case c.Physics.GameSpeed <= 0:
		return fmt.Errorf("%w: game_speed must be positive", ErrInvalidConfig)
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Size > c.World.GroundLine():
		return fmt.Errorf("%w: player does not fit above the ground", ErrInvalidConfig)
	case c.Obstacles.BlockWidth <= 0 || c.Obstacles.BlockHeight <= 0 || c.Obstacles.SpikeSize <= 0:
		return fmt.Errorf("%w: obstacle sizes must be positive", ErrInvalidConfig)
	case c.Spawn.InitialCount < 0:
		return fmt.Errorf("%w: initial_count must not be negative", ErrInvalidConfig)
	case c.Spawn.InitialGap <= 0:
		return fmt.Errorf("%w: initial_gap must be positive", ErrInvalidConfig)
	case c.Spawn.InitialJitter < 0 || c.Spawn.SpawnJitter < 0:
		return fmt.Errorf("%w: jitter must not be negative", ErrInvalidConfig)
	case c.Spawn.Threshold <= 0:
		return fmt.Errorf("%w: threshold must be positive", ErrInvalidConfig)
	case c.Spawn.SpawnX < c.Spawn.Threshold:
		return fmt.Errorf("%w: spawn_x must not be left of threshold", ErrInvalidConfig)
	case c.Spawn.BlockChance < 0 || c.Spawn.BlockChance > 1:
		return fmt.Errorf("%w: block_chance must be in [0, 1]", ErrInvalidConfig)
	case c.Scoring.BlockPoints < 0 || c.Scoring.SpikePoints < 0:
		return fmt.Errorf("%w: points must not be negative", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
