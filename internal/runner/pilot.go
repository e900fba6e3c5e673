package runner

// DefaultLookahead is how far ahead of the player, in world pixels, the
// autopilot reacts to an obstacle at the default speed.
const DefaultLookahead = 48

// Autopilot jumps whenever the next obstacle comes within Lookahead of the
// player's leading edge. It drives headless runs.
//
// With the default tuning a jump stays above block height for fewer ticks
// than a block takes to pass under the player, so the pilot clears spikes
// but crashes into the first block it meets.
type Autopilot struct {
	Lookahead float64
}

// ShouldJump reports whether the pilot would jump on the next tick.
func (a Autopilot) ShouldJump(s *Session) bool {
	if s.IsOver() || s.player.IsJumping {
		return false
	}

	front := s.player.X + s.player.Width
	for _, o := range s.obstacles {
		if o.X < front {
			continue
		}
		// Obstacles are ordered by x, so the first one ahead is the nearest.
		return o.X-front <= a.Lookahead
	}
	return false
}

// Drive advances s up to n ticks, jumping as needed. It returns the number of
// ticks actually simulated, which is short of n when the run ends.
func (a Autopilot) Drive(s *Session, n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeTicks
	}

	done := 0
	for done < n && !s.IsOver() {
		if a.ShouldJump(s) {
			s.Jump()
		}
		s.Step()
		done++
	}
	return done, nil
}
