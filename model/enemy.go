package model

import "gridcaster/vmath"

type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyMoving
	EnemyAttacking
	EnemyKnockback
	EnemyFrozen
)

func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyMoving:
		return "moving"
	case EnemyAttacking:
		return "attacking"
	case EnemyKnockback:
		return "knockback"
	case EnemyFrozen:
		return "frozen"
	}
	return "unknown"
}

type Enemy struct {
	Kind           EnemyKind
	State          EnemyState
	CurrentFrame   int
	AnimationTimer float64
	Position       vmath.Vec
	Velocity       vmath.Vec
	// Timer counts down the remaining Knockback or Frozen ticks.
	Timer float64
}

func NewEnemy(kind EnemyKind, position vmath.Vec) Enemy {
	return Enemy{Kind: kind, Position: position}
}

func (e Enemy) Pos() vmath.Vec {
	return e.Position
}

func (e Enemy) Appearance() Appearance {
	sheet := SheetEnemyMove
	if e.State == EnemyAttacking {
		sheet = SheetEnemyAttack
	}
	return Appearance{
		Sheet:  sheet,
		Image:  int(e.Kind),
		Frame:  e.CurrentFrame,
		Frozen: e.State == EnemyFrozen,
	}
}

// HasHurtbox reports whether the enemy's attack can currently damage the player.
func (e *Enemy) HasHurtbox(k Kind) bool {
	return e.State == EnemyAttacking &&
		e.CurrentFrame >= k.AttackDangerFrame &&
		e.CurrentFrame < k.AttackSafeFrame
}

// Attack starts the attack animation from its first frame.
func (e *Enemy) Attack() {
	e.State = EnemyAttacking
	e.CurrentFrame = 0
	e.AnimationTimer = 0
	e.Velocity = vmath.Zero
}

// Idle stops the enemy where it stands.
func (e *Enemy) Idle() {
	e.State = EnemyIdle
	e.Velocity = vmath.Zero
}

// Knockback pushes the enemy with velocity for the given number of ticks.
func (e *Enemy) Knockback(velocity vmath.Vec, ticks float64) {
	e.State = EnemyKnockback
	e.Velocity = velocity
	e.Timer = ticks
	e.CurrentFrame = 0
	e.AnimationTimer = 0
}

// Freeze holds the enemy in place for the given number of ticks.
func (e *Enemy) Freeze(ticks float64) {
	e.State = EnemyFrozen
	e.Velocity = vmath.Zero
	e.Timer = ticks
	e.CurrentFrame = 0
	e.AnimationTimer = 0
}

// Animate advances the animation clock by delta ticks.
func (e *Enemy) Animate(k Kind, delta float64) {
	switch e.State {
	case EnemyIdle:
		e.CurrentFrame = 0
		e.AnimationTimer = 0
	case EnemyMoving:
		e.AnimationTimer += delta
		if e.AnimationTimer >= k.MoveDuration {
			e.AnimationTimer -= k.MoveDuration
			e.CurrentFrame = (e.CurrentFrame + 1) % k.MoveFrames
		}
	case EnemyAttacking:
		e.AnimationTimer += delta
		if e.AnimationTimer >= k.AttackDuration {
			e.AnimationTimer -= k.AttackDuration
			e.CurrentFrame++
		}
		if e.CurrentFrame >= k.AttackFrames-1 {
			e.Idle()
			e.CurrentFrame = 0
			e.AnimationTimer = 0
		}
	}
}
