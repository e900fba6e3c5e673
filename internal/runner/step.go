package runner

import "github.com/vovakirdan/square-runner/internal/core"

// Step advances the world by one tick. It does nothing once the run is over.
//
// The phases run in a fixed order: physics, ground clamp, scroll, prune,
// spawn, collide, score. Scoring still runs in the tick that ends the run.
func (s *Session) Step() {
	if s.gameOver {
		return
	}
	s.ticks++

	s.applyGravity()
	s.scrollObstacles()
	s.pruneObstacles()
	s.obstacles = s.spawner.Replenish(s.obstacles)

	if s.collides() {
		s.gameOver = true
	}

	s.awardPassed()
}

func (s *Session) applyGravity() {
	p := &s.player
	p.VelocityY += s.cfg.Physics.Gravity
	p.Y += p.VelocityY

	if p.Y > s.groundY {
		p.Y = s.groundY
		p.VelocityY = 0
		p.IsJumping = false
	}
}

func (s *Session) scrollObstacles() {
	for i := range s.obstacles {
		s.obstacles[i].X -= s.cfg.Physics.GameSpeed
	}
}

// pruneObstacles filters in place, preserving order.
func (s *Session) pruneObstacles() {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// collides checks every obstacle against the player. Blocks and spikes
// share the same bounding-box test.
func (s *Session) collides() bool {
	hit := false
	pb := s.player.Box()
	for _, o := range s.obstacles {
		if core.RectOverlap(pb, o.Box()) {
			hit = true
		}
	}
	return hit
}

func (s *Session) awardPassed() {
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Passed || o.Right() >= s.player.X {
			continue
		}
		s.score += s.points(o.Kind)
		o.Passed = true
	}
}

func (s *Session) points(k Kind) int {
	if k == KindSpike {
		return s.cfg.Scoring.SpikePoints
	}
	return s.cfg.Scoring.BlockPoints
}
