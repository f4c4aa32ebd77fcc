package render

import (
	"errors"
	"testing"

	"gridcaster/level"
	"gridcaster/model"
	"gridcaster/texture"
	"gridcaster/vmath"
	"gridcaster/world"
)

const (
	testW = 64
	testH = 48
)

var (
	floorColor  = texture.RGB(10, 200, 10)
	wallColor   = texture.RGB(200, 200, 200)
	objectColor = texture.RGB(250, 0, 0)
	enemyColor  = texture.RGB(0, 0, 120)
)

func solid(size int, c uint32) *texture.Texture {
	t := texture.New(size, size)
	for i := range t.Pix {
		t.Pix[i] = c
	}
	return t
}

func testTextures() *texture.Set {
	return &texture.Set{
		Size:        8,
		Tiles:       []*texture.Texture{solid(8, floorColor), solid(8, wallColor)},
		Objects:     []*texture.Texture{solid(8, objectColor), solid(8, texture.Transparent)},
		Projectiles: []*texture.Texture{solid(8, objectColor)},
		EnemyMove:   [][]*texture.Texture{{solid(8, enemyColor)}},
		EnemyAttack: [][]*texture.Texture{{solid(8, enemyColor)}},
	}
}

// testState builds a walled 10x10 room (wall id 2) with optional interior walls at
// the given cells, and puts the player at (4.5, 6.5) facing north.
func testState(t *testing.T, walls ...[2]int) *world.State {
	t.Helper()
	const w, h = 10, 10
	wall := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				wall[x+y*w] = 2
			}
		}
	}
	for _, c := range walls {
		wall[c[0]+c[1]*w] = 2
	}
	m, err := level.New(w, h, level.Layers{Wall: wall})
	if err != nil {
		t.Fatal(err)
	}
	kinds, err := model.NewKindTable(model.DefaultKinds())
	if err != nil {
		t.Fatal(err)
	}
	s, err := world.New(m, kinds, world.DefaultTuning())
	if err != nil {
		t.Fatal(err)
	}
	s.Player.Position = vmath.New(4.5, 6.5)
	return s
}

func render(t *testing.T, s *world.State) (*Frame, *Camera) {
	t.Helper()
	c := NewCamera(testW, testH, testTextures(), 4)
	f := NewFrame(testW, testH)
	if err := c.Render(s, f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return f, c
}

func framesEqual(a, b *Frame) bool {
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func TestSortFarToNear(t *testing.T) {
	depths := []spriteDepth{{0, 5}, {1, 1}, {2, 3}}
	sortFarToNear(depths)

	want := []int{0, 2, 1}
	for i := range want {
		if depths[i].index != want[i] {
			t.Fatalf("order = %v, want indices %v", depths, want)
		}
	}

	sortFarToNear(nil)
}

func TestSortFarToNearTiesKeepOrder(t *testing.T) {
	depths := []spriteDepth{{0, 2}, {1, 4}, {2, 2}, {3, 2}, {4, 4}}
	sortFarToNear(depths)

	want := []int{1, 4, 0, 2, 3}
	for i := range want {
		if depths[i].index != want[i] {
			t.Fatalf("order = %v, want indices %v", depths, want)
		}
	}
}

func TestSortFarToNearLarge(t *testing.T) {
	n := 50
	depths := make([]spriteDepth, n)
	orig := make([]float64, n)
	for i := range depths {
		orig[i] = float64((i * 37) % n)
		depths[i] = spriteDepth{index: i, dist: orig[i]}
	}
	sortFarToNear(depths)
	for i := 1; i < n; i++ {
		if depths[i].dist > depths[i-1].dist {
			t.Fatalf("dist not descending at %d: %v", i, depths)
		}
	}
	for i, d := range depths {
		if orig[d.index] != d.dist {
			t.Fatalf("depths[%d] index %d does not follow its distance", i, d.index)
		}
	}
}

func TestRenderRewritesWholeFrame(t *testing.T) {
	s := testState(t)
	c := NewCamera(testW, testH, testTextures(), 3)
	if w, h := c.ViewSize(); w != testW || h != testH {
		t.Fatalf("ViewSize = %dx%d, want %dx%d", w, h, testW, testH)
	}
	f := NewFrame(testW, testH)
	const poison = 0x12345678
	f.Fill(poison)

	if err := c.Render(s, f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i, px := range f.Pix {
		if px == poison {
			t.Fatalf("pixel %d was not rewritten", i)
		}
	}
}

func TestRenderLayout(t *testing.T) {
	f, c := render(t, testState(t))
	mid := testW / 2

	if got := f.At(mid, testH-1); got != floorColor {
		t.Errorf("floor pixel = %#x, want %#x", got, floorColor)
	}
	if got := f.At(mid, 0); got != floorColor {
		t.Errorf("ceiling pixel = %#x, want %#x", got, floorColor)
	}
	if got := f.At(mid, testH/2); got != wallColor {
		t.Errorf("wall pixel = %#x, want %#x", got, wallColor)
	}
	if got := c.ZBuffer[mid]; got != 5.5 {
		t.Errorf("ZBuffer[%d] = %v, want 5.5", mid, got)
	}
}

func TestRenderSprite(t *testing.T) {
	s := testState(t)
	s.Objects = []model.Sprite{{Image: 0, Position: vmath.New(4.5, 4.5)}}
	f, _ := render(t, s)

	if got := f.At(testW/2, testH/2); got != objectColor {
		t.Errorf("sprite centre = %#x, want %#x", got, objectColor)
	}
}

func TestRenderSpriteBehindWall(t *testing.T) {
	s := testState(t, [2]int{4, 4})
	without, _ := render(t, s)

	s.Objects = []model.Sprite{{Image: 0, Position: vmath.New(4.5, 2.5)}}
	with, _ := render(t, s)

	if !framesEqual(with, without) {
		t.Error("sprite behind a wall changed the frame")
	}
}

func TestRenderSkipsTransparent(t *testing.T) {
	s := testState(t)
	without, _ := render(t, s)

	s.Objects = []model.Sprite{{Image: 1, Position: vmath.New(4.5, 4.5)}}
	with, _ := render(t, s)

	if !framesEqual(with, without) {
		t.Error("fully transparent sprite changed the frame")
	}
}

func TestRenderNearSpriteOverpaintsFar(t *testing.T) {
	s := testState(t)
	s.Enemies = []model.Enemy{{Position: vmath.New(4.5, 3.5)}}
	s.Objects = []model.Sprite{{Image: 0, Position: vmath.New(4.5, 5.0)}}
	f, _ := render(t, s)

	if got := f.At(testW/2, testH/2); got != objectColor {
		t.Errorf("centre = %#x, want the nearer object %#x", got, objectColor)
	}
}

func TestRenderFrozenEnemyTinted(t *testing.T) {
	s := testState(t)
	s.Enemies = []model.Enemy{{State: model.EnemyFrozen, Position: vmath.New(4.5, 4.5)}}
	f, _ := render(t, s)

	if got, want := f.At(testW/2, testH/2), frost(enemyColor); got != want {
		t.Errorf("frozen enemy = %#x, want %#x", got, want)
	}
}

func TestRenderFrameSize(t *testing.T) {
	c := NewCamera(testW, testH, testTextures(), 1)
	err := c.Render(testState(t), NewFrame(10, 10))
	if !errors.Is(err, ErrFrameSize) {
		t.Errorf("err = %v, want ErrFrameSize", err)
	}
}

func TestFrameRGBA(t *testing.T) {
	f := NewFrame(2, 1)
	f.Set(0, 0, 0xFF102030)
	f.Set(1, 0, 0x80405060)
	got := f.RGBA(nil)
	want := []byte{0x10, 0x20, 0x30, 0xFF, 0x40, 0x50, 0x60, 0x80}
	if string(got) != string(want) {
		t.Errorf("RGBA = %v, want %v", got, want)
	}
}

func TestDrawOverhead(t *testing.T) {
	s := testState(t)
	s.Enemies = []model.Enemy{{Position: vmath.New(6.5, 6.5)}}
	f := NewFrame(40, 40)
	DrawOverhead(s, f, 4)

	if got := f.At(1, 1); got != overheadWall {
		t.Errorf("corner = %#x, want wall", got)
	}
	if got := f.At(18, 26); got != overheadPlayer {
		t.Errorf("player pixel = %#x, want %#x", got, overheadPlayer)
	}
	if got := f.At(26, 26); got != overheadEnemy {
		t.Errorf("enemy pixel = %#x, want %#x", got, overheadEnemy)
	}
	if got := f.At(18, 10); got != overheadSight {
		t.Errorf("sight line pixel = %#x, want %#x", got, overheadSight)
	}
}
