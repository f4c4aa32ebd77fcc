package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/render"
	"gridcaster/texture"
)

// frameImage uploads a software-rendered frame to the GPU, reusing its byte buffer.
type frameImage struct {
	frame *render.Frame
	pix   []byte
	img   *ebiten.Image
}

func newFrameImage(width, height int) *frameImage {
	return &frameImage{
		frame: render.NewFrame(width, height),
		img:   ebiten.NewImage(width, height),
	}
}

func (f *frameImage) upload() *ebiten.Image {
	f.pix = f.frame.RGBA(f.pix)
	f.img.WritePixels(f.pix)
	return f.img
}

// textureImage converts a packed texture to an ebiten image; transparent texels get
// zero alpha.
func textureImage(t *texture.Texture) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			c := t.At(x, y)
			if c == texture.Transparent {
				continue
			}
			r, g, b, a := texture.Unpack(c)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}
	return ebiten.NewImageFromImage(img)
}
