package world

import (
	"gridcaster/level"
	"gridcaster/vmath"
)

// -- collision

// Resolve corrects a move from last to next that ended in a collision. Each axis of the
// displacement is tried alone from last; an axis that collides on its own is reverted.
// A move that does not collide is returned unchanged, so applying Resolve twice gives
// the same result as applying it once.
func Resolve(next, last vmath.Vec, collides func(vmath.Vec) bool) vmath.Vec {
	if !collides(next) {
		return next
	}

	d := next.Sub(last)
	xCaused := collides(last.Add(vmath.Vec{X: d.X}))
	yCaused := collides(last.Add(vmath.Vec{Y: d.Y}))
	if xCaused {
		next.X = last.X
	}
	if yCaused {
		next.Y = last.Y
	}
	return next
}

// circle reports points within radius of centre.
func circle(centre vmath.Vec, radius float64) func(vmath.Vec) bool {
	return func(p vmath.Vec) bool {
		return p.Distance(centre) <= radius
	}
}

// box reports points whose square of half-extent half touches a wall cell.
func box(m *level.Map, half float64) func(vmath.Vec) bool {
	return func(p vmath.Vec) bool {
		return m.InWall(vmath.Vec{X: p.X - half, Y: p.Y - half}) ||
			m.InWall(vmath.Vec{X: p.X + half, Y: p.Y - half}) ||
			m.InWall(vmath.Vec{X: p.X - half, Y: p.Y + half}) ||
			m.InWall(vmath.Vec{X: p.X + half, Y: p.Y + half})
	}
}

// separation reports points that come closer than dist to other while approaching it.
// Moving away is always allowed so overlapping enemies can drift apart.
func separation(other, last vmath.Vec, dist float64) func(vmath.Vec) bool {
	lastDist := last.Distance(other)
	return func(p vmath.Vec) bool {
		d := p.Distance(other)
		return d < dist && d < lastDist
	}
}

// movePlayer applies the player's velocity and resolves it against walls, then
// objects and enemies.
func (s *State) movePlayer(delta float64) {
	p := &s.Player
	if p.Velocity.IsZero() {
		return
	}

	last := p.Position
	next := last.Add(p.Velocity.Mul(delta))
	next = Resolve(next, last, s.Map.InWall)

	for _, o := range s.Objects {
		next = Resolve(next, last, circle(o.Position, s.Tuning.PlayerRadius))
	}
	for _, e := range s.Enemies {
		next = Resolve(next, last, circle(e.Position, s.Tuning.PlayerRadius))
	}

	p.Position = next
}

// moveEnemy applies enemy i's velocity and resolves it against walls and the other enemies.
func (s *State) moveEnemy(i int, delta float64) {
	e := &s.Enemies[i]
	if e.Velocity.IsZero() {
		return
	}

	last := e.Position
	next := last.Add(e.Velocity.Mul(delta))
	next = Resolve(next, last, box(s.Map, s.Tuning.EnemyHalfSize))

	for j := range s.Enemies {
		if j == i {
			continue
		}
		next = Resolve(next, last, separation(s.Enemies[j].Position, last, s.Tuning.EnemySeparation))
	}

	e.Position = next
}
