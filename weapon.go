package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/model"
	"gridcaster/texture"
)

// Weapon is the orb held at the bottom of the view. It swells while the cast
// animation runs and recoils briefly after a shot.
type Weapon struct {
	img   *ebiten.Image
	w, h  int
	swell float64
	kick  int
}

func NewWeapon(t *texture.Texture) *Weapon {
	return &Weapon{img: textureImage(t), w: t.Width, h: t.Height}
}

func (w *Weapon) Update(p *model.Player, castFrames int) {
	w.swell = 0
	if p.Casting && castFrames > 0 {
		w.swell = float64(p.CastFrame+1) / float64(castFrames)
	}

	if w.kick > 0 {
		w.kick--
	}
}

// Fired starts the recoil animation.
func (w *Weapon) Fired() {
	w.kick = 6
}

func (w *Weapon) Draw(screen *ebiten.Image) {
	b := screen.Bounds()

	// the orb takes up a fifth of the screen height, more while casting
	scale := float64(b.Dy()) / 5 / float64(w.h) * (1 + 0.5*w.swell)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		float64(b.Dx())/2-float64(w.w)*scale/2,
		float64(b.Dy())-float64(w.h)*scale*0.8+float64(w.kick)*2,
	)
	if w.swell > 0 {
		op.ColorScale.Scale(0.8, 0.9, 1.2, 1)
	}
	screen.DrawImage(w.img, op)
}
