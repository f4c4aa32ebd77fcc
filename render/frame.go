package render

import (
	"errors"

	"gridcaster/texture"
)

// Transparent marks texels skipped during sprite compositing.
const Transparent = texture.Transparent

// ErrFrameSize is returned when a frame does not match the camera's view size.
var ErrFrameSize = errors.New("render: frame size does not match view")

const black uint32 = 0xFF000000

// Frame is a packed 0xAARRGGBB pixel buffer addressed x + y*Width.
type Frame struct {
	Width  int
	Height int
	Pix    []uint32
}

func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pix: make([]uint32, width*height)}
}

func (f *Frame) At(x, y int) uint32 {
	return f.Pix[x+y*f.Width]
}

func (f *Frame) Set(x, y int, c uint32) {
	f.Pix[x+y*f.Width] = c
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c uint32) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// RGBA expands the frame into 8-bit RGBA bytes, reusing dst when it is large enough.
func (f *Frame) RGBA(dst []byte) []byte {
	n := len(f.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range f.Pix {
		r, g, b, a := texture.Unpack(c)
		dst[i*4] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = a
	}
	return dst
}

// darken halves every channel, keeping alpha.
func darken(c uint32) uint32 {
	return c&0xFF000000 | (c>>1)&0x007F7F7F
}

// frost tints a colour icy blue.
func frost(c uint32) uint32 {
	r, g, b, a := texture.Unpack(c)
	nb := min(int(b)+100, 255)
	return uint32(a)<<24 | uint32(r/2)<<16 | uint32(g/2+g/4)<<8 | uint32(nb)
}
