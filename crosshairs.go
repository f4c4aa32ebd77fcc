package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	crosshairColor = color.RGBA{220, 220, 220, 200}
	hitColor       = color.RGBA{120, 200, 255, 255}
)

// Crosshairs marks the screen centre and flashes after a hit lands.
type Crosshairs struct {
	size, gap float32
	hitTimer  int
}

func NewCrosshairs(size, gap float32) *Crosshairs {
	return &Crosshairs{size: size, gap: gap}
}

func (c *Crosshairs) ActivateHitIndicator(hitTime int) {
	c.hitTimer = hitTime
}

func (c *Crosshairs) IsHitIndicatorActive() bool {
	return c.hitTimer > 0
}

func (c *Crosshairs) Update() {
	if c.hitTimer > 0 {
		c.hitTimer--
	}
}

func (c *Crosshairs) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2

	clr := crosshairColor
	size := c.size
	if c.IsHitIndicatorActive() {
		clr = hitColor
		size *= 1.5
	}

	g, s := c.gap, c.gap+size
	vector.StrokeLine(screen, cx-s, cy, cx-g, cy, 2, clr, false)
	vector.StrokeLine(screen, cx+g, cy, cx+s, cy, 2, clr, false)
	vector.StrokeLine(screen, cx, cy-s, cx, cy-g, 2, clr, false)
	vector.StrokeLine(screen, cx, cy+g, cx, cy+s, 2, clr, false)
}
