// Package raycast walks rays across the tile grid. The renderer uses Cast for wall
// columns and the simulation uses LineOfSight for ability targeting.
package raycast

import (
	"math"

	"gridcaster/level"
	"gridcaster/vmath"
)

// Hit describes where a ray met a wall.
type Hit struct {
	Wall   int  // wall tile id
	XSided bool // true when the ray crossed a vertical grid line (x = const) to hit
	// Distance is measured perpendicular to the camera plane, in units of the ray vector.
	Distance float64
	Point    vmath.Vec
	// WallX is the fractional position of the hit along the wall face, in [0, 1).
	WallX float64
	Ray   vmath.Vec
}

// TextureColumn maps the hit onto a column of a texture of the given width. Faces seen
// from the +x or -y side are mirrored so textures never appear flipped.
func (h Hit) TextureColumn(width int) int {
	col := int(h.WallX * float64(width))
	if col >= width {
		col = width - 1
	}
	if col < 0 {
		col = 0
	}
	if (h.XSided && h.Ray.X > 0) || (!h.XSided && h.Ray.Y < 0) {
		col = width - col - 1
	}
	return col
}

// walker steps a point from grid line to grid line along a ray.
type walker struct {
	m        *level.Map
	origin   vmath.Vec
	ray      vmath.Vec
	pos      vmath.Vec
	xSided   bool
	steps    int
	maxSteps int
}

func newWalker(m *level.Map, origin, ray vmath.Vec) *walker {
	return &walker{
		m:        m,
		origin:   origin,
		ray:      ray,
		pos:      origin,
		maxSteps: 2*(m.Width+m.Height) + 4,
	}
}

// nextLine returns the next grid line strictly ahead of p moving in direction d.
func nextLine(p, d float64) float64 {
	if d > 0 {
		return math.Floor(p) + 1
	}
	return math.Ceil(p) - 1
}

// next advances to the nearer of the next vertical and horizontal grid lines. It
// returns false once the walk has left the map or run out of steps.
func (w *walker) next() bool {
	if w.steps >= w.maxSteps {
		return false
	}
	w.steps++

	tx, ty := math.Inf(1), math.Inf(1)
	var nx, ny float64
	if w.ray.X != 0 {
		nx = nextLine(w.pos.X, w.ray.X)
		tx = (nx - w.pos.X) / w.ray.X
	}
	if w.ray.Y != 0 {
		ny = nextLine(w.pos.Y, w.ray.Y)
		ty = (ny - w.pos.Y) / w.ray.Y
	}

	if tx <= ty {
		w.pos = vmath.Vec{X: nx, Y: w.pos.Y + w.ray.Y*tx}
		w.xSided = true
	} else {
		w.pos = vmath.Vec{X: w.pos.X + w.ray.X*ty, Y: ny}
		w.xSided = false
	}

	p := w.pos
	return p.X >= 0 && p.Y >= 0 && p.X <= float64(w.m.Width) && p.Y <= float64(w.m.Height)
}

// distance is the travelled ray parameter along the axis of the last crossing.
func (w *walker) distance() float64 {
	if w.steps == 0 {
		return 0
	}
	if w.xSided {
		return (w.pos.X - w.origin.X) / w.ray.X
	}
	return (w.pos.Y - w.origin.Y) / w.ray.Y
}

func (w *walker) hit(wall int) Hit {
	var wallX float64
	if w.xSided {
		wallX = w.pos.Y - math.Floor(w.pos.Y)
	} else {
		wallX = w.pos.X - math.Floor(w.pos.X)
	}
	return Hit{
		Wall:     wall,
		XSided:   w.xSided,
		Distance: w.distance(),
		Point:    w.pos,
		WallX:    wallX,
		Ray:      w.ray,
	}
}

// Cast walks ray from origin until it meets a wall. The ray need not be normalized;
// distances are expressed in multiples of it. The second result is false for a zero ray
// or when the ray leaves the map without hitting anything.
func Cast(m *level.Map, origin, ray vmath.Vec) (Hit, bool) {
	if ray.IsZero() {
		return Hit{}, false
	}

	w := newWalker(m, origin, ray)
	if id, ok := m.WallKind(origin); ok {
		return w.hit(id), true
	}
	for w.next() {
		if id, ok := m.WallKind(w.pos); ok {
			return w.hit(id), true
		}
	}
	return Hit{}, false
}

// Sight is the outcome of a line-of-sight test.
type Sight struct {
	Visible bool
	// Distance is where the first wall was met, when not visible.
	Distance float64
}

// LineOfSight reports whether target can be seen from origin without a wall in between.
// An origin inside a wall cell sees nothing.
func LineOfSight(m *level.Map, origin, target vmath.Vec) Sight {
	if m.WallAt(int(math.Floor(origin.X)), int(math.Floor(origin.Y))) != 0 {
		return Sight{}
	}
	ray := target.Sub(origin)
	if ray.IsZero() {
		return Sight{Visible: true}
	}

	dist := ray.Magnitude()
	w := newWalker(m, origin, ray.Normalize())
	for w.next() {
		travelled := w.pos.Distance(origin)
		if travelled >= dist {
			return Sight{Visible: true}
		}
		if _, ok := m.WallKind(w.pos); ok {
			return Sight{Distance: travelled}
		}
	}
	return Sight{Distance: w.pos.Distance(origin)}
}
