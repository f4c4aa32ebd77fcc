package world

import (
	"gridcaster/raycast"
	"gridcaster/vmath"
)

// -- abilities

// updateCast advances the cast animation and releases the blast on its last frame.
func (s *State) updateCast(delta float64) {
	p := &s.Player
	if !p.Casting {
		return
	}

	p.CastTimer += delta
	if p.CastTimer < s.Tuning.CastDuration {
		return
	}
	p.CastTimer -= s.Tuning.CastDuration
	p.CastFrame++
	if p.CastFrame < s.Tuning.CastFrames {
		return
	}

	p.Casting = false
	p.CastFrame = 0
	p.CastTimer = 0
	s.releaseCast()
}

// releaseCast knocks back every visible enemy inside the cast cone.
func (s *State) releaseCast() {
	p := s.Player
	s.emit(CastFinished, p.Position)

	for i := len(s.Enemies) - 1; i >= 0; i-- {
		e := &s.Enemies[i]
		away := e.Position.Sub(p.Position)
		if away.Magnitude() > s.Tuning.CastRadius {
			continue
		}
		if !away.IsZero() && vmath.AngleBetween(p.Direction, away) > s.Tuning.CastHalfAngle {
			continue
		}
		if !raycast.LineOfSight(s.Map, p.Position, e.Position).Visible {
			continue
		}

		if away.IsZero() {
			away = p.Direction
		}
		e.Knockback(away.Scale(s.Tuning.KnockbackSpeed), s.Tuning.KnockbackTime)
		s.emit(EnemyKnockedBack, e.Position)
	}
}
