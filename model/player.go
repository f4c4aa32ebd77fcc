package model

import (
	"math"

	"gridcaster/vmath"
)

// Player is the camera-carrying avatar. Direction is a unit vector and Camera is the
// perpendicular view plane whose length sets the field of view.
type Player struct {
	Position  vmath.Vec
	Velocity  vmath.Vec
	Direction vmath.Vec
	Camera    vmath.Vec

	// MoveInput is the requested movement in screen axes: (0,-1) forward, (1,0) right.
	MoveInput vmath.Vec
	// RotateInput is consumed and reset by every simulation step.
	RotateInput float64

	Health         int
	KnockbackTimer float64

	Casting   bool
	CastFrame int
	CastTimer float64

	ShootCooldown float64
}

// NewPlayer places a player at position facing north. plane is the half-width of the
// camera plane at unit distance, tan(fov/2).
func NewPlayer(position vmath.Vec, plane float64, health int) Player {
	return Player{
		Position:  position,
		Direction: vmath.New(0, -1),
		Camera:    vmath.New(plane, 0),
		Health:    health,
	}
}

// Rotate turns the facing direction and camera plane together.
func (p *Player) Rotate(radians float64) {
	p.Direction = p.Direction.Rotate(radians)
	p.Camera = p.Camera.Rotate(radians)
}

func (p *Player) InKnockback() bool {
	return p.KnockbackTimer > 0
}

// Hurt knocks the player back along velocity for the given ticks and removes health.
func (p *Player) Hurt(damage int, velocity vmath.Vec, ticks float64) {
	p.Health = max(p.Health-damage, 0)
	p.Velocity = velocity
	p.KnockbackTimer = ticks
}

// MoveVelocity converts the movement input into a world velocity of the given speed,
// relative to the facing direction.
func (p *Player) MoveVelocity(speed float64) vmath.Vec {
	if p.MoveInput.IsZero() {
		return vmath.Zero
	}
	angle := math.Atan2(-p.MoveInput.Y, -p.MoveInput.X) - math.Pi/2
	return p.Direction.Rotate(angle).Scale(speed)
}

func (p Player) Pos() vmath.Vec {
	return p.Position
}
