// ui.go
package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) drawUI(screen *ebiten.Image) {
	p := g.state.Player
	h := g.screenHeight

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f  TPS: %0.2f", ebiten.ActualFPS(), ebiten.ActualTPS()), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Health: %d", p.Health), 10, 30)

	status := "ready"
	switch {
	case p.Casting:
		status = fmt.Sprintf("casting %d/%d", p.CastFrame+1, g.state.Tuning.CastFrames)
	case p.ShootCooldown > 0:
		status = "cooling down"
	}
	ebitenutil.DebugPrintAt(screen, "Orb: "+status, 10, 50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Enemies: %d", len(g.state.Enemies)), 10, 70)

	ebitenutil.DebugPrintAt(screen, "move with WASD, turn with mouse or arrows", 10, h-60)
	ebitenutil.DebugPrintAt(screen, "space/left click to shoot, E/right click to cast", 10, h-40)
	ebitenutil.DebugPrintAt(screen, "P to pause, ESC to exit", 10, h-20)

	switch {
	case g.gameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", g.screenWidth/2-30, h/2-30)
		ebitenutil.DebugPrintAt(screen, "Press SPACE to restart", g.screenWidth/2-70, h/2+20)
	case g.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.screenWidth/2-20, h/2-30)
	}
}
