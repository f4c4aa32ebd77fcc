package level

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/lafriks/go-tiled"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="3" height="2" tilewidth="64" tileheight="64">
 <tileset firstgid="1" name="tileset" tilewidth="64" tileheight="64" tilecount="16" columns="16"/>
 <tileset firstgid="17" name="objects" tilewidth="64" tileheight="64" tilecount="16" columns="16"/>
 <tileset firstgid="33" name="entities" tilewidth="64" tileheight="64" tilecount="16" columns="16"/>
 <layer id="1" name="floor" width="3" height="2">
  <data encoding="csv">
0,2,3,
4,0,0
</data>
 </layer>
 <layer id="2" name="wall" width="3" height="2">
  <data encoding="csv">
1,0,0,
0,0,2147483653
</data>
 </layer>
 <layer id="3" name="objects" width="3" height="2">
  <data encoding="csv">
0,18,0,
0,0,0
</data>
 </layer>
 <layer id="4" name="entities" width="3" height="2">
  <data encoding="csv">
0,0,0,
33,34,0
</data>
 </layer>
 <layer id="5" name="notes" width="3" height="2">
  <data encoding="csv">
9,9,9,
9,9,9
</data>
 </layer>
</map>
`

func TestParseTMX(t *testing.T) {
	m, err := ParseTMX(strings.NewReader(testTMX))
	if err != nil {
		t.Fatalf("ParseTMX: %v", err)
	}
	if m.Width != 3 || m.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", m.Width, m.Height)
	}

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"floor", m.Floor, []int{1, 2, 3, 4, 1, 1}},
		{"ceil", m.Ceil, []int{1, 1, 1, 1, 1, 1}},
		{"wall", m.Wall, []int{1, 0, 0, 0, 0, 5}},
		{"objects", m.Objects, []int{0, 2, 0, 0, 0, 0}},
		{"entities", m.Entities, []int{0, 0, 0, 1, 2, 0}},
	}
	for _, tt := range tests {
		for i := range tt.want {
			if tt.got[i] != tt.want[i] {
				t.Errorf("%s[%d] = %d, want %d", tt.name, i, tt.got[i], tt.want[i])
			}
		}
	}

	if !m.Occupied(1, 0) {
		t.Error("object cell not occupied")
	}
	if p, ok := m.PlayerSpawn(); !ok || p.X != 0.5 || p.Y != 1.5 {
		t.Errorf("PlayerSpawn = (%v, %v), want ((0.5, 1.5), true)", p, ok)
	}
}

const oneTileset = `<tileset firstgid="1" name="tileset" tilewidth="64" tileheight="64" tilecount="16" columns="16"/>`

func TestParseTMXErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"not xml", "<map", ErrMalformed},
		{"zero size", `<map width="0" height="2"></map>`, ErrDimensions},
		{"overflowing size", `<map width="3037000500" height="3037000500"></map>`, ErrDimensions},
		{"too many cells", `<map width="100000" height="100000"></map>`, ErrDimensions},
		{
			"short layer",
			`<map width="2" height="2">` + oneTileset + `<layer name="wall" width="2" height="2"><data encoding="csv">1,2,3</data></layer></map>`,
			ErrMalformed,
		},
		{
			"non numeric id",
			`<map width="2" height="1">` + oneTileset + `<layer name="wall" width="2" height="1"><data encoding="csv">1,x</data></layer></map>`,
			ErrMalformed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseTMX(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Error("ParseTMX returned a map alongside an error")
			}
		})
	}
}

func TestParseTMXBase64(t *testing.T) {
	raw := make([]byte, 0, 8)
	raw = binary.LittleEndian.AppendUint32(raw, 3)
	raw = binary.LittleEndian.AppendUint32(raw, 0)
	doc := fmt.Sprintf(`<map width="2" height="1">%s<layer name="wall" width="2" height="1"><data encoding="base64">%s</data></layer></map>`,
		oneTileset, base64.StdEncoding.EncodeToString(raw))

	m, err := ParseTMX(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseTMX: %v", err)
	}
	if m.Wall[0] != 3 || m.Wall[1] != 0 {
		t.Errorf("wall = %v, want [3 0]", m.Wall)
	}
}

func TestTilesetKey(t *testing.T) {
	tests := []struct {
		ts   tiled.Tileset
		want string
	}{
		{tiled.Tileset{Source: "tileset.tsx"}, "tileset"},
		{tiled.Tileset{Source: "../tiles/entities.tsx"}, "entities"},
		{tiled.Tileset{Source: `..\tiles\objects.tsx`}, "objects"},
		{tiled.Tileset{Name: "objects"}, "objects"},
	}
	for _, tt := range tests {
		if got := tilesetKey(&tt.ts); got != tt.want {
			t.Errorf("tilesetKey(%+v) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}

func TestLoadTMX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.tmx")
	if err := os.WriteFile(path, []byte(testTMX), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTMX(path); err != nil {
		t.Errorf("LoadTMX: %v", err)
	}
	if _, err := LoadTMX(filepath.Join(t.TempDir(), "missing.tmx")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadTMX(missing) err = %v, want os.ErrNotExist", err)
	}
}

func TestLoadTMXFS(t *testing.T) {
	fsys := fstest.MapFS{"maps/level.tmx": {Data: []byte(testTMX)}}
	m, err := LoadTMXFS(fsys, "maps/level.tmx")
	if err != nil {
		t.Fatalf("LoadTMXFS: %v", err)
	}
	if m.Width != 3 {
		t.Errorf("Width = %d, want 3", m.Width)
	}
}

func tsx(name string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?>
<tileset name="%s" tilewidth="64" tileheight="64" tilecount="16" columns="16"/>`, name))}
}

func TestLoadTMXFSExternalTilesets(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<map width="2" height="1" tilewidth="64" tileheight="64">
 <tileset firstgid="1" source="tileset.tsx"/>
 <tileset firstgid="17" source="entities.tsx"/>
 <layer name="wall" width="2" height="1"><data encoding="csv">2,0</data></layer>
 <layer name="entities" width="2" height="1"><data encoding="csv">0,17</data></layer>
</map>`
	fsys := fstest.MapFS{
		"maps/level.tmx":    {Data: []byte(doc)},
		"maps/tileset.tsx":  tsx("tileset"),
		"maps/entities.tsx": tsx("entities"),
	}
	m, err := LoadTMXFS(fsys, "maps/level.tmx")
	if err != nil {
		t.Fatalf("LoadTMXFS: %v", err)
	}
	if m.Wall[0] != 2 {
		t.Errorf("wall[0] = %d, want 2", m.Wall[0])
	}
	if p, ok := m.PlayerSpawn(); !ok || p.X != 1.5 {
		t.Errorf("PlayerSpawn = (%v, %v), want x 1.5", p, ok)
	}

	delete(fsys, "maps/entities.tsx")
	if _, err := LoadTMXFS(fsys, "maps/level.tmx"); !errors.Is(err, ErrMalformed) {
		t.Errorf("missing tileset err = %v, want ErrMalformed", err)
	}
}
