// Package model defines the entities that live in the world: decoration sprites,
// projectiles, enemies with their per-kind tunables, and the player.
package model

import "gridcaster/vmath"

// Sheet selects which texture set a billboard is drawn from.
type Sheet int

const (
	SheetObject Sheet = iota
	SheetProjectile
	SheetEnemyMove
	SheetEnemyAttack
)

// Appearance tells the renderer what to draw for a billboard.
type Appearance struct {
	Sheet Sheet
	// Image is the object image index for objects and projectiles, the enemy kind for enemies.
	Image  int
	Frame  int
	Frozen bool
}

// Billboard is anything drawn as a camera-facing sprite.
type Billboard interface {
	Pos() vmath.Vec
	Appearance() Appearance
}

// Sprite is a static image placed in the world.
type Sprite struct {
	Image    int
	Position vmath.Vec
}

func (s Sprite) Pos() vmath.Vec {
	return s.Position
}

func (s Sprite) Appearance() Appearance {
	return Appearance{Sheet: SheetObject, Image: s.Image}
}

// Projectile is a sprite moving with a constant velocity until it meets a wall or an enemy.
type Projectile struct {
	Sprite
	Velocity vmath.Vec
}

func NewProjectile(image int, position, velocity vmath.Vec) Projectile {
	return Projectile{
		Sprite:   Sprite{Image: image, Position: position},
		Velocity: velocity,
	}
}

func (p Projectile) Appearance() Appearance {
	return Appearance{Sheet: SheetProjectile, Image: p.Image}
}
