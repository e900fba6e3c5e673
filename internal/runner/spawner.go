package runner

import (
	"github.com/vovakirdan/square-runner/internal/config"
)

//go:generate go tool mockgen -destination=./mocks/rand_mock.go -package=mocks . Rand

// Rand is a uniform random source in [0, 1). *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner decides when and where new obstacles appear.
// Obstacles it produces are always to the right of every existing one, so
// appending keeps the slice sorted by X.
type Spawner struct {
	cfg        config.SpawnConfig
	sizes      config.ObstacleConfig
	groundLine float64
	rng        Rand
}

// NewSpawner creates a spawner for the given config.
func NewSpawner(cfg config.RunnerConfig, rng Rand) *Spawner {
	return &Spawner{
		cfg:        cfg.Spawn,
		sizes:      cfg.Obstacles,
		groundLine: cfg.World.GroundLine(),
		rng:        rng,
	}
}

// Initial returns the opening obstacles: alternating block/spike starting
// with a block, separated by a fixed gap plus jitter.
//
// The gap is drawn after every obstacle, including the last, so a run
// consumes one random value per initial obstacle before replenishing starts.
func (sp *Spawner) Initial() []Obstacle {
	obstacles := make([]Obstacle, 0, sp.cfg.InitialCount+4)

	x := sp.cfg.InitialX
	for i := 0; i < sp.cfg.InitialCount; i++ {
		if i%2 == 0 {
			obstacles = append(obstacles, MakeBlock(sp.sizes, x, sp.groundLine))
		} else {
			obstacles = append(obstacles, MakeSpike(sp.sizes, x, sp.groundLine))
		}
		x += sp.cfg.InitialGap + sp.rng.Float64()*sp.cfg.InitialJitter
	}
	return obstacles
}

// Replenish appends at most one obstacle when the furthest obstacle has
// drifted left of the threshold.
func (sp *Spawner) Replenish(obstacles []Obstacle) []Obstacle {
	if lastX(obstacles) >= sp.cfg.Threshold {
		return obstacles
	}

	coin := sp.rng.Float64()
	x := sp.cfg.SpawnX + sp.rng.Float64()*sp.cfg.SpawnJitter

	if coin < sp.cfg.BlockChance {
		return append(obstacles, MakeBlock(sp.sizes, x, sp.groundLine))
	}
	return append(obstacles, MakeSpike(sp.sizes, x, sp.groundLine))
}

// lastX returns the X of the furthest obstacle, or 0 when there are none.
// Obstacles are sorted by X, so that is the tail.
func lastX(obstacles []Obstacle) float64 {
	if len(obstacles) == 0 {
		return 0
	}
	return obstacles[len(obstacles)-1].X
}
