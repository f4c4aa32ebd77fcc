// Package level holds the static tile map: its layers, the derived collision grid,
// spatial queries and pathfinding, and ingestion of TMX map files.
package level

import (
	"errors"
	"fmt"
	"math"

	"gridcaster/vmath"
)

var (
	// ErrDimensions is returned when a map has a non-positive size or mismatched layers.
	ErrDimensions = errors.New("level: invalid map dimensions")
	// ErrMalformed is returned when map data cannot be parsed.
	ErrMalformed = errors.New("level: malformed map data")
)

// Entity layer ids with special meaning at world-init.
const (
	EntityPlayerSpawn = 1
	EntityEnemySpawn  = 2
)

// Layers carries raw tile ids for New. Nil layers are treated as all-empty.
type Layers struct {
	Wall, Ceil, Floor, Objects, Entities []int
}

// Map is an immutable tile grid. Every layer is indexed x + y*Width.
type Map struct {
	Width  int
	Height int

	Wall     []int
	Ceil     []int
	Floor    []int
	Objects  []int
	Entities []int

	collide []bool
}

// Tile is a populated cell of a layer.
type Tile struct {
	X, Y int
	ID   int
}

// New builds a map from raw layers. Zero floor and ceiling ids become the default tile 1.
func New(width, height int, layers Layers) (*Map, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	size := width * height

	layer := func(name string, src []int, fill bool) ([]int, error) {
		dst := make([]int, size)
		if src == nil {
			if fill {
				for i := range dst {
					dst[i] = 1
				}
			}
			return dst, nil
		}
		if len(src) != size {
			return nil, fmt.Errorf("%w: layer %q has %d tiles, want %d", ErrDimensions, name, len(src), size)
		}
		copy(dst, src)
		if fill {
			for i, id := range dst {
				if id == 0 {
					dst[i] = 1
				}
			}
		}
		return dst, nil
	}

	m := &Map{Width: width, Height: height}
	var err error
	if m.Wall, err = layer("wall", layers.Wall, false); err != nil {
		return nil, err
	}
	if m.Ceil, err = layer("ceil", layers.Ceil, true); err != nil {
		return nil, err
	}
	if m.Floor, err = layer("floor", layers.Floor, true); err != nil {
		return nil, err
	}
	if m.Objects, err = layer("objects", layers.Objects, false); err != nil {
		return nil, err
	}
	if m.Entities, err = layer("entities", layers.Entities, false); err != nil {
		return nil, err
	}
	m.generateCollideMap()

	return m, nil
}

// MaxCells bounds the tile count of a map; larger sizes are rejected before any layer
// is allocated.
const MaxCells = 1 << 22

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	if width > MaxCells/height {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrDimensions, width, height, MaxCells)
	}
	return nil
}

func (m *Map) generateCollideMap() {
	m.collide = make([]bool, len(m.Wall))
	for i := range m.collide {
		m.collide[i] = m.Wall[i] != 0 || m.Objects[i] != 0
	}
}

func (m *Map) Index(x, y int) int {
	return x + y*m.Width
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// WallAt returns the wall id of a cell, 0 when empty or out of bounds.
func (m *Map) WallAt(x, y int) int {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.Wall[m.Index(x, y)]
}

// FloorAt returns the floor tile id of a cell, 0 when out of bounds.
func (m *Map) FloorAt(x, y int) int {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.Floor[m.Index(x, y)]
}

// CeilAt returns the ceiling tile id of a cell, 0 when out of bounds.
func (m *Map) CeilAt(x, y int) int {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.Ceil[m.Index(x, y)]
}

// Occupied reports whether a cell blocks pathfinding. Cells outside the map are occupied,
// so world edges need no special casing. Living entities are not considered.
func (m *Map) Occupied(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.collide[m.Index(x, y)]
}

// InWall reports whether the cell containing p holds a wall. Points off the map count as wall.
func (m *Map) InWall(p vmath.Vec) bool {
	x, y := p.Cell()
	if !m.InBounds(x, y) {
		return true
	}
	return m.Wall[m.Index(x, y)] != 0
}

type probe struct {
	x, y int
}

// wallProbes lists the cells a point touches: its own cell, plus the neighbours sharing
// the grid line(s) it lies exactly on.
func wallProbes(p vmath.Vec) []probe {
	fx, fy := math.Floor(p.X), math.Floor(p.Y)
	x, y := int(fx), int(fy)
	xInt := p.X == fx
	yInt := p.Y == fy

	probes := make([]probe, 0, 4)
	probes = append(probes, probe{x, y})
	if xInt {
		probes = append(probes, probe{x - 1, y})
	}
	if yInt {
		probes = append(probes, probe{x, y - 1})
	}
	if xInt && yInt {
		probes = append(probes, probe{x - 1, y - 1})
	}
	return probes
}

// WallKind returns the first nonzero wall id among the cells touching p. A point lying
// exactly on a grid line touches the cells on both sides of it.
func (m *Map) WallKind(p vmath.Vec) (int, bool) {
	for _, c := range wallProbes(p) {
		if id := m.WallAt(c.x, c.y); id != 0 {
			return id, true
		}
	}
	return 0, false
}

// PlayerSpawn returns the centre of the first player spawn cell, scanning column-major.
func (m *Map) PlayerSpawn() (vmath.Vec, bool) {
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if m.Entities[m.Index(x, y)] == EntityPlayerSpawn {
				return vmath.Center(x, y), true
			}
		}
	}
	return vmath.Zero, false
}

// EntityTiles lists every non-player entity spawn in column-major order.
func (m *Map) EntityTiles() []Tile {
	return m.tiles(m.Entities, func(id int) bool { return id >= EntityEnemySpawn })
}

// ObjectTiles lists every decoration object in column-major order.
func (m *Map) ObjectTiles() []Tile {
	return m.tiles(m.Objects, func(id int) bool { return id != 0 })
}

func (m *Map) tiles(layer []int, keep func(int) bool) []Tile {
	var out []Tile
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if id := layer[m.Index(x, y)]; keep(id) {
				out = append(out, Tile{X: x, Y: y, ID: id})
			}
		}
	}
	return out
}
