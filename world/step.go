package world

import "gridcaster/vmath"

// Step advances the world by delta ticks (1.0 is one 60Hz tick).
func (s *State) Step(delta float64) {
	s.Events = s.Events[:0]
	s.Tick++

	s.updatePlayer(delta)
	s.updateProjectiles(delta)
	s.updateEnemies(delta)
	s.updateCast(delta)
	s.updateShooting(delta)
}

func (s *State) updatePlayer(delta float64) {
	p := &s.Player

	p.Rotate(s.Tuning.RotateSpeed * p.RotateInput * delta)
	p.RotateInput = 0

	switch {
	case p.InKnockback():
		p.KnockbackTimer -= delta
		if p.KnockbackTimer <= 0 {
			p.KnockbackTimer = 0
			p.Velocity = vmath.Zero
		}
	default:
		p.Velocity = p.MoveVelocity(s.Tuning.PlayerSpeed)
	}

	s.movePlayer(delta)
}
