package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridcaster/vmath"
)

func (g *Game) handleInput() error {
	// if p, pause game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.paused {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			g.paused = false
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
			g.paused = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// if escape, exit game
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.gameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			return g.reset()
		}
		return nil
	}

	if g.paused {
		return nil
	}

	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)

		// reset initial mouse capture position
		g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
	}

	var move vmath.Vec
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X++
	}

	var rotate float64
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		rotate--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		rotate++
	}
	rotate += g.mouseLook()

	g.state.SetInput(move, rotate)

	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.state.Shoot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.state.BeginCast()
	}
	return nil
}

// mouseLook converts horizontal cursor travel into rotation input, in units of the
// player's rotate speed.
func (g *Game) mouseLook() float64 {
	x, y := ebiten.CursorPosition()

	if g.mouseX == math.MinInt32 && g.mouseY == math.MinInt32 {
		// initialize first position to establish delta
		if x != 0 && y != 0 {
			g.mouseX, g.mouseY = x, y
		}
		return 0
	}

	dx := x - g.mouseX
	g.mouseX, g.mouseY = x, y

	speed := g.state.Tuning.RotateSpeed
	if dx == 0 || speed == 0 {
		return 0
	}
	return g.cfg.Input.MouseSensitivity * float64(dx) / speed
}
