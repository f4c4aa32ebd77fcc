// Package texture loads wall, floor, sprite and spritesheet images into packed-colour
// textures for the software renderer.
package texture

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrSheetSize is returned when a spritesheet has fewer frames than its kind needs or
// its frames are not square.
var ErrSheetSize = errors.New("texture: bad spritesheet size")

// Transparent is the packed colour (opaque magenta) that sprite compositing skips.
const Transparent uint32 = 0xFFFF00FF

// Pack converts a colour to 0xAARRGGBB. Fully transparent pixels become Transparent.
func Pack(c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	return uint32(a>>8)<<24 | uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(b>>8)
}

// RGB builds an opaque packed colour.
func RGB(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed colour into its channels.
func Unpack(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Texture is a grid of packed colours addressed x + y*Width.
type Texture struct {
	Width  int
	Height int
	Pix    []uint32
}

func New(width, height int) *Texture {
	return &Texture{Width: width, Height: height, Pix: make([]uint32, width*height)}
}

// At returns the texel at (x, y), wrapping coordinates into the texture.
func (t *Texture) At(x, y int) uint32 {
	x %= t.Width
	if x < 0 {
		x += t.Width
	}
	y %= t.Height
	if y < 0 {
		y += t.Height
	}
	return t.Pix[x+y*t.Width]
}

func (t *Texture) Set(x, y int, c uint32) {
	t.Pix[x+y*t.Width] = c
}

// FromImage resamples the src rectangle of img to a size×size texture.
func FromImage(img image.Image, src image.Rectangle, size int) *Texture {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)

	t := New(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t.Set(x, y, Pack(dst.RGBAAt(x, y)))
		}
	}
	return t
}

// Strip cuts a horizontal strip of square frames into textures of the given size.
// The frame edge is the image height.
func Strip(img image.Image, size int) ([]*Texture, error) {
	b := img.Bounds()
	edge := b.Dy()
	if edge == 0 || b.Dx()%edge != 0 {
		return nil, ErrSheetSize
	}

	n := b.Dx() / edge
	frames := make([]*Texture, n)
	for i := range frames {
		src := image.Rect(b.Min.X+i*edge, b.Min.Y, b.Min.X+(i+1)*edge, b.Max.Y)
		frames[i] = FromImage(img, src, size)
	}
	return frames, nil
}
