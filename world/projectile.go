package world

import (
	"gridcaster/model"
	"gridcaster/vmath"
)

// -- projectile

func (s *State) updateShooting(delta float64) {
	p := &s.Player
	if p.ShootCooldown > 0 {
		p.ShootCooldown = max(p.ShootCooldown-delta, 0)
	}
	if !s.shootRequested {
		return
	}
	s.shootRequested = false
	if p.ShootCooldown > 0 {
		return
	}

	pos := p.Position.Add(p.Direction.Scale(s.Tuning.ProjectileSpawnOffset))
	vel := p.Direction.Scale(s.Tuning.ProjectileSpeed)
	s.Projectiles = append(s.Projectiles, model.NewProjectile(s.Tuning.ProjectileImage, pos, vel))
	p.ShootCooldown = s.Tuning.ShootCooldown
	s.emit(ProjectileSpawned, pos)
}

// updateProjectiles moves every projectile, removing those that reach a wall. A
// projectile passing close to an enemy freezes it and is spent.
func (s *State) updateProjectiles(delta float64) {
	for i := len(s.Projectiles) - 1; i >= 0; i-- {
		pr := &s.Projectiles[i]
		if pr.Velocity.IsZero() {
			continue
		}
		pr.Position = pr.Position.Add(pr.Velocity.Mul(delta))

		if s.Map.InWall(pr.Position) {
			s.emit(ProjectileDestroyed, pr.Position)
			s.Projectiles = deleteAt(s.Projectiles, i, "projectiles")
			continue
		}

		if j := s.enemyNear(pr.Position, s.Tuning.ProjectileHitRadius); j >= 0 {
			e := &s.Enemies[j]
			e.Freeze(s.Tuning.FreezeDuration)
			s.emit(EnemyFrozen, e.Position)
			s.emit(ProjectileDestroyed, pr.Position)
			s.Projectiles = deleteAt(s.Projectiles, i, "projectiles")
		}
	}
}

func (s *State) enemyNear(p vmath.Vec, radius float64) int {
	for j := range s.Enemies {
		if s.Enemies[j].Position.Distance(p) <= radius {
			return j
		}
	}
	return -1
}
