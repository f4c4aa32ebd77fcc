package level

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadTMX reads a TMX map file from disk. External tilesets resolve relative to the
// map's directory.
func LoadTMX(filename string) (*Map, error) {
	// go-tiled reports a missing map as its own error; check first so callers can
	// match os.ErrNotExist.
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("open map %q: %w", filename, err)
	}

	tm, err := tiled.LoadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w: %v", filename, ErrMalformed, err)
	}
	m, err := fromTiled(tm)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", filename, err)
	}
	return m, nil
}

// LoadTMXFS reads a TMX map file from fsys. External tilesets resolve relative to the
// map's directory inside fsys.
func LoadTMXFS(fsys fs.FS, name string) (*Map, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open map %q: %w", name, err)
	}
	defer f.Close()

	tm, err := tiled.LoadReader(path.Dir(name), f, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w: %v", name, ErrMalformed, err)
	}
	m, err := fromTiled(tm)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", name, err)
	}
	return m, nil
}

// ParseTMX decodes a TMX map whose tilesets are embedded, or whose external tilesets
// resolve relative to the working directory.
func ParseTMX(r io.Reader) (*Map, error) {
	tm, err := tiled.LoadReader("", r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fromTiled(tm)
}

// fromTiled maps a decoded TMX document onto layers. Layers named wall, floor and ceil
// use the "tileset" tileset, objects and entities use tilesets of the same name; each
// layer's nonzero ids are made relative to its tileset's firstgid.
func fromTiled(tm *tiled.Map) (*Map, error) {
	if err := checkSize(tm.Width, tm.Height); err != nil {
		return nil, err
	}

	offsets := map[string]int{}
	for _, ts := range tm.Tilesets {
		offsets[tilesetKey(ts)] = int(ts.FirstGID) - 1
	}

	var layers Layers
	for _, l := range tm.Layers {
		var dst *[]int
		var tileset string
		switch l.Name {
		case "wall":
			dst, tileset = &layers.Wall, "tileset"
		case "floor":
			dst, tileset = &layers.Floor, "tileset"
		case "ceil":
			dst, tileset = &layers.Ceil, "tileset"
		case "objects":
			dst, tileset = &layers.Objects, "objects"
		case "entities":
			dst, tileset = &layers.Entities, "entities"
		default:
			slog.Debug("ignoring tmx layer", "layer", l.Name)
			continue
		}

		ids, err := layerIDs(l, tm.Width*tm.Height, offsets[tileset])
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", l.Name, err)
		}
		*dst = ids
	}

	return New(tm.Width, tm.Height, layers)
}

func tilesetKey(ts *tiled.Tileset) string {
	name := ts.Source
	if name == "" {
		name = ts.Name
	}
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimSuffix(name, path.Ext(name))
}

// layerIDs rebuilds each tile's global id, flip flags already stripped, and shifts it
// by the layer's tileset offset.
func layerIDs(l *tiled.Layer, want, offset int) ([]int, error) {
	if len(l.Tiles) != want {
		return nil, fmt.Errorf("%w: %d tiles, want %d", ErrMalformed, len(l.Tiles), want)
	}

	ids := make([]int, want)
	for i, t := range l.Tiles {
		if t == nil || t.Nil || t.Tileset == nil {
			continue
		}
		ids[i] = int(t.Tileset.FirstGID+t.ID) - offset
	}
	return ids, nil
}
