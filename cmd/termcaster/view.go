package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridcaster/config"
	"gridcaster/render"
	"gridcaster/texture"
	"gridcaster/world"
)

const upperHalf = '▀'

// termView draws frames as half-block cells: the upper pixel is the foreground, the
// lower one the background. It is used by the render goroutine only.
type termView struct {
	screen tcell.Screen
	tex    *texture.Set
	cfg    *config.Config

	cols, rows int
	camera     *render.Camera
	frame      *render.Frame
}

func newTermView(screen tcell.Screen, tex *texture.Set, cfg *config.Config) *termView {
	return &termView{screen: screen, tex: tex, cfg: cfg}
}

// resize rebuilds the camera when the terminal size changes.
func (v *termView) resize() bool {
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 1 {
		return false
	}
	if cols == v.cols && rows == v.rows {
		return true
	}
	v.cols, v.rows = cols, rows

	// the top row is the status line
	w, h := cols, (rows-1)*2
	v.camera = render.NewCamera(w, h, v.tex, v.cfg.Render.Workers)
	v.camera.SetShading(v.cfg.Render.Shade)
	v.camera.SetSpriteAnchor(v.cfg.SpriteAnchor(), v.cfg.Render.SpriteScale)
	v.frame = render.NewFrame(w, h)
	v.screen.Clear()
	return true
}

func (v *termView) draw(s *world.State, paused bool) error {
	if s == nil || !v.resize() {
		return nil
	}
	if err := v.camera.Render(s, v.frame); err != nil {
		return err
	}

	for y := 0; y+1 < v.frame.Height; y += 2 {
		for x := 0; x < v.frame.Width; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(v.frame.At(x, y))).
				Background(cellColor(v.frame.At(x, y+1)))
			v.screen.SetContent(x, 1+y/2, upperHalf, nil, style)
		}
	}

	v.status(s, paused)
	v.screen.Show()
	return nil
}

func (v *termView) status(s *world.State, paused bool) {
	p := s.Player
	line := fmt.Sprintf(" HP %3d  enemies %d  wasd move  q/e turn  space shoot  f cast  p pause  esc quit",
		p.Health, len(s.Enemies))
	switch {
	case p.Health <= 0:
		line = " GAME OVER  esc to quit"
	case paused:
		line = " PAUSED  p to resume"
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	if p.InKnockback() {
		style = style.Background(tcell.ColorDarkRed)
	}
	x := 0
	for _, r := range line {
		if x >= v.cols {
			break
		}
		v.screen.SetContent(x, 0, r, nil, style)
		x++
	}
	for ; x < v.cols; x++ {
		v.screen.SetContent(x, 0, ' ', nil, style)
	}
}

func cellColor(c uint32) tcell.Color {
	r, g, b, _ := texture.Unpack(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
