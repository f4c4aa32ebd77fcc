package world

import (
	"gridcaster/model"
	"gridcaster/vmath"
)

// -- enemies

func (s *State) updateEnemies(delta float64) {
	for i := len(s.Enemies) - 1; i >= 0; i-- {
		s.think(i, delta)
		s.moveEnemy(i, delta)

		e := &s.Enemies[i]
		e.Animate(s.Kinds.Get(e.Kind), delta)
	}
}

// think runs one tick of enemy i's state machine and sets its velocity.
func (s *State) think(i int, delta float64) {
	e := &s.Enemies[i]
	k := s.Kinds.Get(e.Kind)
	target := s.Player.Position
	dist := e.Position.Distance(target)

	if dist <= k.AttackRadius && e.State != model.EnemyAttacking && e.State != model.EnemyKnockback {
		e.Attack()
	}

	switch e.State {
	case model.EnemyKnockback, model.EnemyFrozen:
		e.Timer -= delta
		if e.Timer <= 0 {
			e.Timer = 0
			e.Idle()
		}

	case model.EnemyAttacking:
		if !e.HasHurtbox(k) {
			e.Velocity = vmath.Zero
			return
		}
		if e.Velocity.IsZero() {
			e.Velocity = target.Sub(e.Position).Scale(k.AttackSpeed)
		}
		if dist <= s.Tuning.MeleeRange {
			s.hurtPlayer(e)
			e.Idle()
			e.CurrentFrame = 0
			e.AnimationTimer = 0
		}

	case model.EnemyIdle, model.EnemyMoving:
		step, ok := s.Map.FindStep(e.Position, target)
		if !ok {
			e.Idle()
			return
		}
		next := target
		if !step.IsZero() {
			x, y := e.Position.Cell()
			next = vmath.Center(x+int(step.X), y+int(step.Y))
		}
		e.Velocity = next.Sub(e.Position).Scale(k.Speed)
		e.State = model.EnemyMoving
	}
}

func (s *State) hurtPlayer(e *model.Enemy) {
	push := s.Player.Position.Sub(e.Position)
	if push.IsZero() {
		push = s.Player.Direction.Mul(-1)
	}
	s.Player.Hurt(s.Tuning.MeleeDamage, push.Scale(s.Tuning.PlayerKnockbackSpeed), s.Tuning.PlayerKnockbackTime)
	s.emit(PlayerHurt, s.Player.Position)
}
