package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hurtColor = color.RGBA{200, 20, 20, 110}
	castColor = color.RGBA{90, 150, 255, 80}
)

// Effect is a full-screen colour flash that fades out over its lifetime.
type Effect struct {
	color     color.RGBA
	ticks     int
	remaining int
}

func NewEffect(c color.RGBA, ticks int) *Effect {
	return &Effect{color: c, ticks: ticks, remaining: ticks}
}

func (e *Effect) Done() bool {
	return e.remaining <= 0
}

func (g *Game) addEffect(e *Effect) {
	g.effects = append(g.effects, e)
}

func (g *Game) updateEffects() {
	live := g.effects[:0]
	for _, e := range g.effects {
		e.remaining--
		if !e.Done() {
			live = append(live, e)
		}
	}
	g.effects = live
}

func (g *Game) drawEffects(screen *ebiten.Image) {
	for _, e := range g.effects {
		c := e.color
		c.A = uint8(int(c.A) * e.remaining / e.ticks)
		// vector expects premultiplied alpha
		c.R = uint8(int(c.R) * int(c.A) / 255)
		c.G = uint8(int(c.G) * int(c.A) / 255)
		c.B = uint8(int(c.B) * int(c.A) / 255)
		vector.DrawFilledRect(screen, 0, 0, float32(g.screenWidth), float32(g.screenHeight), c, false)
	}
}
