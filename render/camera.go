// Package render projects the world onto a Frame with a column raycaster: textured
// floor and ceiling rows, textured wall slices and depth-sorted billboard sprites.
package render

import (
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go"
	"golang.org/x/sync/errgroup"

	"gridcaster/level"
	"gridcaster/model"
	"gridcaster/raycast"
	"gridcaster/texture"
	"gridcaster/vmath"
	"gridcaster/world"
)

// -- camera

// Camera renders one view size. It keeps the depth buffer and sprite scratch space
// between frames and must not be shared across goroutines.
type Camera struct {
	w, h int

	tex *texture.Set

	// ZBuffer holds the perpendicular wall distance of every column of the last frame.
	ZBuffer []float64

	workers int
	shade   bool

	spriteAnchor raycaster.SpriteAnchor
	spriteScale  float64

	sprites []model.Billboard
	depths  []spriteDepth
}

func NewCamera(width, height int, tex *texture.Set, workers int) *Camera {
	return &Camera{
		w:            width,
		h:            height,
		tex:          tex,
		ZBuffer:      make([]float64, width),
		workers:      max(workers, 1),
		shade:        true,
		spriteAnchor: raycaster.AnchorBottom,
		spriteScale:  1,
	}
}

func (c *Camera) ViewSize() (int, int) {
	return c.w, c.h
}

// SetShading turns darkening of x-sided walls on or off.
func (c *Camera) SetShading(shade bool) {
	c.shade = shade
}

// SetSpriteAnchor sets where sprites smaller than a wall slice rest vertically.
func (c *Camera) SetSpriteAnchor(anchor raycaster.SpriteAnchor, scale float64) {
	c.spriteAnchor = anchor
	c.spriteScale = scale
}

// Render draws s into f, overwriting every pixel. It only reads s.
func (c *Camera) Render(s *world.State, f *Frame) error {
	if f.Width != c.w || f.Height != c.h || len(f.Pix) != c.w*c.h {
		return fmt.Errorf("%w: frame %dx%d, view %dx%d", ErrFrameSize, f.Width, f.Height, c.w, c.h)
	}

	v := view{
		m:     s.Map,
		pos:   s.Player.Position,
		dir:   s.Player.Direction,
		plane: s.Player.Camera,
	}

	if err := c.bands(c.h-c.h/2, func(lo, hi int) { c.castFloor(v, f, c.h/2+lo, c.h/2+hi) }); err != nil {
		return err
	}
	if err := c.bands(c.w, func(lo, hi int) { c.castWalls(v, f, lo, hi) }); err != nil {
		return err
	}
	c.castSprites(s, v, f)
	return nil
}

type view struct {
	m     *level.Map
	pos   vmath.Vec
	dir   vmath.Vec
	plane vmath.Vec
}

// bands splits [0, n) into one contiguous band per worker and runs fn on each. Bands
// never overlap, so fn may write its own pixels without locking.
func (c *Camera) bands(n int, fn func(lo, hi int)) error {
	var g errgroup.Group
	g.SetLimit(c.workers)

	size := (n + c.workers - 1) / c.workers
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	return g.Wait()
}

// castFloor draws floor rows [y0, y1) and their mirrored ceiling rows.
func (c *Camera) castFloor(v view, f *Frame, y0, y1 int) {
	rayLeft := v.dir.Sub(v.plane)
	rayRight := v.dir.Add(v.plane)
	size := float64(c.tex.Size)

	for y := y0; y < y1; y++ {
		p := float64(y) - float64(c.h)/2 + 0.5
		rowDist := 0.5 * float64(c.h) / p

		step := rayRight.Sub(rayLeft).Mul(rowDist / float64(c.w))
		floor := v.pos.Add(rayLeft.Mul(rowDist))
		ceilY := c.h - 1 - y

		for x := 0; x < c.w; x++ {
			cx, cy := floor.Cell()
			if !v.m.InBounds(cx, cy) {
				f.Set(x, y, black)
				f.Set(x, ceilY, black)
				floor = floor.Add(step)
				continue
			}

			tx := int(size * (floor.X - float64(cx)))
			ty := int(size * (floor.Y - float64(cy)))
			f.Set(x, y, texel(c.tex.Tile(v.m.FloorAt(cx, cy)), tx, ty))
			f.Set(x, ceilY, texel(c.tex.Tile(v.m.CeilAt(cx, cy)), tx, ty))

			floor = floor.Add(step)
		}
	}
}

func texel(t *texture.Texture, x, y int) uint32 {
	if t == nil {
		return black
	}
	return t.At(x, y)
}

// castWalls draws wall slices for columns [x0, x1) and records their depth.
func (c *Camera) castWalls(v view, f *Frame, x0, x1 int) {
	for x := x0; x < x1; x++ {
		cameraX := 2*float64(x)/float64(c.w) - 1
		ray := v.dir.Add(v.plane.Mul(cameraX))

		hit, ok := raycast.Cast(v.m, v.pos, ray)
		if !ok {
			c.ZBuffer[x] = math.Inf(1)
			for y := 0; y < c.h; y++ {
				f.Set(x, y, black)
			}
			continue
		}
		c.ZBuffer[x] = hit.Distance

		dist := math.Max(hit.Distance, 1e-6)
		lineHeight := float64(c.h) / dist
		top := (float64(c.h) - lineHeight) / 2
		drawStart := max(int(top), 0)
		drawEnd := min(int(top+lineHeight), c.h)

		tex := c.tex.Tile(hit.Wall)
		texX := 0
		if tex != nil {
			texX = hit.TextureColumn(tex.Width)
		}

		for y := drawStart; y < drawEnd; y++ {
			col := black
			if tex != nil {
				texY := int((float64(y) - top) * float64(tex.Height) / lineHeight)
				texY = min(max(texY, 0), tex.Height-1)
				col = tex.At(texX, texY)
			}
			if c.shade && hit.XSided {
				col = darken(col)
			}
			f.Set(x, y, col)
		}
	}
}
