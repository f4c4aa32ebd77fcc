// minimap.go
package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridcaster/render"
)

const minimapMargin = 10

func (g *Game) drawMinimap(screen *ebiten.Image) {
	cell := max(g.cfg.Render.MinimapCell, 1)
	render.DrawOverhead(g.state, g.minimap.frame, cell)

	left := float64(g.screenWidth - g.minimap.frame.Width - minimapMargin)
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(0.8)
	op.GeoM.Translate(left, minimapMargin)
	screen.DrawImage(g.minimap.upload(), op)

	g.drawMinimapPlayer(screen, float32(left), minimapMargin, float32(cell))
}

// drawMinimapPlayer draws a triangle pointing along the player's view direction.
func (g *Game) drawMinimapPlayer(screen *ebiten.Image, left, top, cell float32) {
	p := g.state.Player
	playerX := left + float32(p.Position.X)*cell
	playerY := top + float32(p.Position.Y)*cell

	// calculate triangle points
	triangleSize := cell
	angle := p.Direction.Angle()

	x1 := playerX + triangleSize*float32(math.Cos(angle))
	y1 := playerY + triangleSize*float32(math.Sin(angle))

	x2 := playerX + triangleSize*float32(math.Cos(angle+2.5))
	y2 := playerY + triangleSize*float32(math.Sin(angle+2.5))

	x3 := playerX + triangleSize*float32(math.Cos(angle-2.5))
	y3 := playerY + triangleSize*float32(math.Sin(angle-2.5))

	c := color.RGBA{255, 255, 255, 255}
	vector.StrokeLine(screen, x1, y1, x2, y2, 1, c, false)
	vector.StrokeLine(screen, x2, y2, x3, y3, 1, c, false)
	vector.StrokeLine(screen, x3, y3, x1, y1, 1, c, false)
}
