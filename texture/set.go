package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"

	"gridcaster/model"
)

var imageExts = []string{".png", ".bmp", ".gif", ".jpg"}

// Set is every texture the renderer draws from. Tile ids index Tiles from 1, object
// images index Objects from 0, and enemy sheets are indexed by model.EnemyKind.
type Set struct {
	Size        int
	Tiles       []*Texture
	Objects     []*Texture
	Projectiles []*Texture
	EnemyMove   [][]*Texture
	EnemyAttack [][]*Texture
}

// Tile returns the texture for a wall, floor or ceiling tile id, or nil for id 0.
// Ids past the end of the tileset wrap around.
func (s *Set) Tile(id int) *Texture {
	if id <= 0 || len(s.Tiles) == 0 {
		return nil
	}
	return s.Tiles[(id-1)%len(s.Tiles)]
}

// Sprite returns the texture for a billboard appearance, or nil when there is none.
func (s *Set) Sprite(a model.Appearance) *Texture {
	var frames []*Texture
	switch a.Sheet {
	case model.SheetObject:
		return pick(s.Objects, a.Image)
	case model.SheetProjectile:
		return pick(s.Projectiles, a.Image)
	case model.SheetEnemyMove:
		if a.Image < 0 || a.Image >= len(s.EnemyMove) {
			return nil
		}
		frames = s.EnemyMove[a.Image]
	case model.SheetEnemyAttack:
		if a.Image < 0 || a.Image >= len(s.EnemyAttack) {
			return nil
		}
		frames = s.EnemyAttack[a.Image]
	}
	return pick(frames, a.Frame)
}

func pick(textures []*Texture, i int) *Texture {
	if len(textures) == 0 {
		return nil
	}
	if i < 0 || i >= len(textures) {
		i = 0
	}
	return textures[i]
}

// Load reads a texture set from dir:
//
//	tiles.*            strip of wall/floor/ceiling tiles
//	objects.*          strip of decoration sprites
//	projectiles.*      strip of projectile sprites
//	<kind>_move.*      move animation strip per enemy kind
//	<kind>_attack.*    attack animation strip per enemy kind
//
// Every image is resampled to size×size frames.
func Load(dir string, size int, kinds *model.KindTable) (*Set, error) {
	return LoadFS(os.DirFS(dir), size, kinds)
}

func LoadFS(fsys fs.FS, size int, kinds *model.KindTable) (*Set, error) {
	s := &Set{Size: size}
	var err error

	if s.Tiles, err = loadStrip(fsys, "tiles", size); err != nil {
		return nil, err
	}
	if s.Objects, err = loadStrip(fsys, "objects", size); err != nil {
		return nil, err
	}
	if s.Projectiles, err = loadStrip(fsys, "projectiles", size); err != nil {
		return nil, err
	}

	for i := 0; i < kinds.Len(); i++ {
		k := kinds.Get(model.EnemyKind(i))
		move, err := loadStrip(fsys, k.Name+"_move", size)
		if err != nil {
			return nil, err
		}
		if len(move) < k.MoveFrames {
			return nil, fmt.Errorf("%s move sheet has %d frames, want %d: %w", k.Name, len(move), k.MoveFrames, ErrSheetSize)
		}
		attack, err := loadStrip(fsys, k.Name+"_attack", size)
		if err != nil {
			return nil, err
		}
		if len(attack) < k.AttackFrames {
			return nil, fmt.Errorf("%s attack sheet has %d frames, want %d: %w", k.Name, len(attack), k.AttackFrames, ErrSheetSize)
		}
		s.EnemyMove = append(s.EnemyMove, move)
		s.EnemyAttack = append(s.EnemyAttack, attack)
	}

	slog.Info("textures loaded",
		"tiles", len(s.Tiles), "objects", len(s.Objects),
		"projectiles", len(s.Projectiles), "kinds", kinds.Len())
	return s, nil
}

func loadStrip(fsys fs.FS, name string, size int) ([]*Texture, error) {
	img, file, err := openImage(fsys, name)
	if err != nil {
		return nil, err
	}
	frames, err := Strip(img, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return frames, nil
}

func openImage(fsys fs.FS, name string) (image.Image, string, error) {
	for _, ext := range imageExts {
		file := name + ext
		f, err := fsys.Open(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, file, fmt.Errorf("open %s: %w", file, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, file, fmt.Errorf("decode %s: %w", file, err)
		}
		return img, file, nil
	}
	return nil, name, fmt.Errorf("texture %q: %w", name, fs.ErrNotExist)
}
