package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/harbdog/raycaster-go"

	"gridcaster/texture"
	"gridcaster/world"
)

// -- sprites

// castSprites composites every billboard far to near, clipped against the depth buffer.
func (c *Camera) castSprites(s *world.State, v view, f *Frame) {
	c.sprites = s.Billboards(c.sprites[:0])

	c.depths = c.depths[:0]
	for i, b := range c.sprites {
		c.depths = append(c.depths, spriteDepth{index: i, dist: v.pos.Distance(b.Pos())})
	}
	sortFarToNear(c.depths)

	invDet := 1.0 / (v.plane.X*v.dir.Y - v.dir.X*v.plane.Y)
	for _, d := range c.depths {
		c.castSprite(v, f, invDet, d.index)
	}
}

func (c *Camera) castSprite(v view, f *Frame, invDet float64, index int) {
	b := c.sprites[index]
	a := b.Appearance()
	tex := c.tex.Sprite(a)
	if tex == nil {
		return
	}

	rel := b.Pos().Sub(v.pos)
	transformX := invDet * (v.dir.Y*rel.X - v.dir.X*rel.Y)
	transformY := invDet * (-v.plane.Y*rel.X + v.plane.X*rel.Y)
	if transformY <= 0 {
		return
	}

	screenX := int(float64(c.w) / 2 * (1 + transformX/transformY))
	vMove := int(anchorOffset(c.spriteAnchor, c.spriteScale, c.h) / transformY)

	size := math.Abs(float64(c.h)/transformY) * c.spriteScale
	spriteH := int(size)
	spriteW := int(size)
	if spriteH == 0 || spriteW == 0 {
		return
	}

	top := (c.h-spriteH)/2 + vMove
	left := screenX - spriteW/2

	drawStartY := max(top, 0)
	drawEndY := min(top+spriteH, c.h)
	drawStartX := max(left, 0)
	drawEndX := min(left+spriteW, c.w)

	for stripe := drawStartX; stripe < drawEndX; stripe++ {
		if transformY >= c.ZBuffer[stripe] {
			continue
		}
		texX := (stripe - left) * tex.Width / spriteW
		for y := drawStartY; y < drawEndY; y++ {
			texY := (y - top) * tex.Height / spriteH
			col := tex.At(texX, texY)
			if col == texture.Transparent {
				continue
			}
			if a.Frozen {
				col = frost(col)
			}
			f.Set(stripe, y, col)
		}
	}
}

// anchorOffset is the unprojected vertical shift that rests a sprite of the given scale
// on the floor, centres it, or hangs it from the ceiling.
func anchorOffset(anchor raycaster.SpriteAnchor, scale float64, h int) float64 {
	half := float64(h) / 2
	switch anchor {
	case raycaster.AnchorBottom:
		return half * (1 - scale)
	case raycaster.AnchorTop:
		return -half * (1 - scale)
	}
	return 0
}

// spriteDepth pairs a billboard index with its distance from the viewer.
type spriteDepth struct {
	index int
	dist  float64
}

// sortFarToNear orders depths by descending distance. Billboards at equal distance keep
// their snapshot order so overlapping sprites do not flicker between frames.
func sortFarToNear(depths []spriteDepth) {
	slices.SortStableFunc(depths, func(a, b spriteDepth) int {
		return cmp.Compare(b.dist, a.dist)
	})
}
