package texture

import (
	"math"

	"gridcaster/model"
)

var tilePalette = []uint32{
	RGB(150, 60, 50),   // brick
	RGB(110, 110, 120), // stone
	RGB(70, 110, 60),   // moss
	RGB(120, 90, 60),   // wood
	RGB(60, 70, 130),   // tile
	RGB(140, 130, 80),  // sandstone
}

// Placeholders generates a complete texture set so the game can run without assets.
func Placeholders(size int, kinds *model.KindTable) *Set {
	s := &Set{Size: size}
	for i, c := range tilePalette {
		s.Tiles = append(s.Tiles, brick(size, c, i%2 == 1))
	}
	s.Objects = []*Texture{
		pillar(size, RGB(180, 170, 150)),
		pillar(size, RGB(90, 140, 90)),
	}
	s.Projectiles = []*Texture{orb(size, RGB(120, 200, 255))}

	for i := 0; i < kinds.Len(); i++ {
		k := kinds.Get(model.EnemyKind(i))
		hue := RGB(80, 200, 90)
		move := make([]*Texture, k.MoveFrames)
		for f := range move {
			squash := 0.1 * math.Sin(2*math.Pi*float64(f)/float64(k.MoveFrames))
			move[f] = blob(size, hue, squash)
		}
		attack := make([]*Texture, k.AttackFrames)
		for f := range attack {
			c := hue
			if f >= k.AttackDangerFrame && f < k.AttackSafeFrame {
				c = RGB(230, 70, 60)
			}
			attack[f] = blob(size, c, -0.2*math.Sin(math.Pi*float64(f)/float64(k.AttackFrames)))
		}
		s.EnemyMove = append(s.EnemyMove, move)
		s.EnemyAttack = append(s.EnemyAttack, attack)
	}
	return s
}

func shade(c uint32, f float64) uint32 {
	r, g, b, _ := Unpack(c)
	return RGB(uint8(float64(r)*f), uint8(float64(g)*f), uint8(float64(b)*f))
}

// brick draws mortar lines over a base colour. checker swaps in a checkerboard instead.
func brick(size int, c uint32, checker bool) *Texture {
	t := New(size, size)
	row := max(size/4, 1)
	mortar := shade(c, 0.5)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px := c
			if checker {
				if (x/row+y/row)%2 == 0 {
					px = shade(c, 0.8)
				}
			} else {
				offset := 0
				if (y/row)%2 == 1 {
					offset = row
				}
				if y%row == 0 || (x+offset)%(2*row) == 0 {
					px = mortar
				}
			}
			t.Set(x, y, px)
		}
	}
	return t
}

func fill(size int) *Texture {
	t := New(size, size)
	for i := range t.Pix {
		t.Pix[i] = Transparent
	}
	return t
}

func pillar(size int, c uint32) *Texture {
	t := fill(size)
	half := size / 6
	for y := size / 4; y < size; y++ {
		for x := size/2 - half; x < size/2+half; x++ {
			edge := float64(x-(size/2-half)) / float64(2*half)
			t.Set(x, y, shade(c, 0.6+0.4*math.Sin(math.Pi*edge)))
		}
	}
	return t
}

func orb(size int, c uint32) *Texture {
	t := fill(size)
	centre := float64(size) / 2
	radius := float64(size) / 6
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-centre, float64(y)+0.5-centre)
			if d <= radius {
				t.Set(x, y, shade(c, 1-0.5*d/radius))
			}
		}
	}
	return t
}

// blob draws a half-ellipse resting on the bottom edge; squash widens it and lowers it.
func blob(size int, c uint32, squash float64) *Texture {
	t := fill(size)
	fs := float64(size)
	rx := fs * (0.35 + squash/2)
	ry := fs * (0.35 - squash/2)
	cx, cy := fs/2, fs
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if d := dx*dx + dy*dy; d <= 1 {
				t.Set(x, y, shade(c, 1-0.4*d))
			}
		}
	}
	eye := RGB(20, 20, 20)
	ey := int(cy - ry*0.6)
	for _, ex := range []int{int(cx - rx*0.35), int(cx + rx*0.35)} {
		if ex >= 0 && ex < size && ey >= 0 && ey < size {
			t.Set(ex, ey, eye)
		}
	}
	return t
}
