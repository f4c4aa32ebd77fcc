package world

import "math"

// Tuning holds the player, ability and projectile constants. Durations are in ticks
// and speeds in cells per tick.
type Tuning struct {
	PlayerSpeed  float64
	RotateSpeed  float64
	PlayerHealth int
	CameraPlane  float64
	// PlayerRadius is the distance at which the player bumps into objects and enemies.
	PlayerRadius float64

	EnemyHalfSize        float64
	EnemySeparation      float64
	MeleeRange           float64
	MeleeDamage          int
	PlayerKnockbackSpeed float64
	PlayerKnockbackTime  float64

	ProjectileImage       int
	ProjectileSpeed       float64
	ProjectileSpawnOffset float64
	ProjectileHitRadius   float64
	ShootCooldown         float64
	FreezeDuration        float64

	CastFrames     int
	CastDuration   float64
	CastRadius     float64
	CastHalfAngle  float64
	KnockbackSpeed float64
	KnockbackTime  float64
}

func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:  0.05,
		RotateSpeed:  0.05,
		PlayerHealth: 100,
		CameraPlane:  0.66,
		PlayerRadius: 0.2,

		EnemyHalfSize:        0.2,
		EnemySeparation:      0.5,
		MeleeRange:           0.8,
		MeleeDamage:          10,
		PlayerKnockbackSpeed: 0.1,
		PlayerKnockbackTime:  10,

		ProjectileImage:       0,
		ProjectileSpeed:       0.1,
		ProjectileSpawnOffset: 0.3,
		ProjectileHitRadius:   0.3,
		ShootCooldown:         15,
		FreezeDuration:        180,

		CastFrames:     6,
		CastDuration:   4,
		CastRadius:     3,
		CastHalfAngle:  math.Pi / 4,
		KnockbackSpeed: 0.15,
		KnockbackTime:  20,
	}
}
