package render

import (
	"math"

	"gridcaster/raycast"
	"gridcaster/texture"
	"gridcaster/vmath"
	"gridcaster/world"
)

var (
	overheadWall   = texture.RGB(90, 90, 100)
	overheadFloor  = texture.RGB(25, 25, 30)
	overheadObject = texture.RGB(220, 200, 80)
	overheadEnemy  = texture.RGB(220, 60, 60)
	overheadShot   = texture.RGB(120, 200, 255)
	overheadPlayer = texture.RGB(255, 255, 255)
	overheadSight  = texture.RGB(80, 220, 120)
)

// DrawOverhead draws a top-down view of s into f with cell pixels per map tile: walls,
// sprites, the player and the player's line of sight to the nearest wall ahead.
// Anything past the frame edge is clipped.
func DrawOverhead(s *world.State, f *Frame, cell int) {
	m := s.Map
	f.Fill(black)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			col := overheadFloor
			if m.WallAt(x, y) != 0 {
				col = overheadWall
			}
			fillRect(f, x*cell, y*cell, cell, cell, col)
		}
	}

	dot := max(cell/3, 1)
	point := func(p vmath.Vec, col uint32) {
		fillRect(f, int(p.X*float64(cell))-dot/2, int(p.Y*float64(cell))-dot/2, dot, dot, col)
	}
	for _, o := range s.Objects {
		point(o.Position, overheadObject)
	}
	for _, p := range s.Projectiles {
		point(p.Position, overheadShot)
	}
	for _, e := range s.Enemies {
		point(e.Position, overheadEnemy)
	}

	p := s.Player
	if hit, ok := raycast.Cast(m, p.Position, p.Direction); ok {
		drawLine(f, p.Position.Mul(float64(cell)), hit.Point.Mul(float64(cell)), overheadSight)
	}
	point(p.Position, overheadPlayer)
}

func fillRect(f *Frame, x0, y0, w, h int, col uint32) {
	for y := max(y0, 0); y < min(y0+h, f.Height); y++ {
		for x := max(x0, 0); x < min(x0+w, f.Width); x++ {
			f.Set(x, y, col)
		}
	}
}

func drawLine(f *Frame, a, b vmath.Vec, col uint32) {
	d := b.Sub(a)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		steps = 1
	}
	inc := d.Mul(1 / float64(steps))
	p := a
	for i := 0; i <= steps; i++ {
		x, y := int(p.X), int(p.Y)
		if x >= 0 && y >= 0 && x < f.Width && y < f.Height {
			f.Set(x, y, col)
		}
		p = p.Add(inc)
	}
}
