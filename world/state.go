// Package world owns the live game state and advances it one tick at a time.
package world

import (
	"errors"
	"log/slog"
	"slices"

	"gridcaster/level"
	"gridcaster/model"
	"gridcaster/vmath"
)

var (
	ErrNoMap   = errors.New("world: no map")
	ErrNoKinds = errors.New("world: no enemy kind table")
)

var defaultSpawn = vmath.New(2.5, 2.5)

// State is the aggregate root of the simulation. It is not safe for concurrent use;
// other goroutines should read a Snapshot.
type State struct {
	Player model.Player
	Map    *level.Map

	Objects     []model.Sprite
	Projectiles []model.Projectile
	Enemies     []model.Enemy

	Kinds  *model.KindTable
	Tuning Tuning

	// Events lists what happened during the most recent Step.
	Events []Event

	Tick uint64

	shootRequested bool
}

// New populates a world from the map's object and entity layers.
func New(m *level.Map, kinds *model.KindTable, tuning Tuning) (*State, error) {
	if m == nil {
		return nil, ErrNoMap
	}
	if kinds == nil {
		return nil, ErrNoKinds
	}

	spawn, ok := m.PlayerSpawn()
	if !ok {
		spawn = defaultSpawn
	}

	s := &State{
		Player: model.NewPlayer(spawn, tuning.CameraPlane, tuning.PlayerHealth),
		Map:    m,
		Kinds:  kinds,
		Tuning: tuning,
	}

	for _, t := range m.ObjectTiles() {
		s.Objects = append(s.Objects, model.Sprite{
			Image:    t.ID - 1,
			Position: vmath.Center(t.X, t.Y),
		})
	}

	for _, t := range m.EntityTiles() {
		kind := model.EnemyKind(t.ID - level.EntityEnemySpawn)
		if int(kind) >= kinds.Len() {
			slog.Warn("unknown enemy kind on map, using default", "kind", int(kind), "x", t.X, "y", t.Y)
			kind = 0
		}
		s.Enemies = append(s.Enemies, model.NewEnemy(kind, vmath.Center(t.X, t.Y)))
	}

	slog.Debug("world created",
		"width", m.Width, "height", m.Height,
		"objects", len(s.Objects), "enemies", len(s.Enemies),
		"spawn", spawn)

	return s, nil
}

// SetInput records the movement axes and rotation for the next Step.
func (s *State) SetInput(move vmath.Vec, rotate float64) {
	s.Player.MoveInput = move
	s.Player.RotateInput = rotate
}

// BeginCast starts the player's cast animation unless one is already running.
func (s *State) BeginCast() {
	if s.Player.Casting {
		return
	}
	s.Player.Casting = true
	s.Player.CastFrame = 0
	s.Player.CastTimer = 0
}

// Shoot requests a projectile on the next Step. Requests made while the weapon is
// cooling down are dropped.
func (s *State) Shoot() {
	s.shootRequested = true
}

// Billboards appends every sprite-drawn entity to dst.
func (s *State) Billboards(dst []model.Billboard) []model.Billboard {
	for _, o := range s.Objects {
		dst = append(dst, o)
	}
	for _, p := range s.Projectiles {
		dst = append(dst, p)
	}
	for _, e := range s.Enemies {
		dst = append(dst, e)
	}
	return dst
}

// deleteAt removes element i keeping the order of the rest. An index out of range is a
// programmer error; it is logged and the slice returned unchanged.
func deleteAt[T any](items []T, i int, what string) []T {
	if i < 0 || i >= len(items) {
		slog.Error("delete index out of range", "collection", what, "index", i, "len", len(items))
		return items
	}
	return slices.Delete(items, i, i+1)
}
