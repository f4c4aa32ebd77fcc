package world

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Snapshot returns a copy of the state that later Steps cannot affect. The map and
// kind table are immutable and shared.
func (s *State) Snapshot() (*State, error) {
	snap := *s
	snap.Objects = nil
	snap.Projectiles = nil
	snap.Enemies = nil
	snap.Events = nil

	opt := copier.Option{DeepCopy: true}
	if err := copier.CopyWithOption(&snap.Objects, &s.Objects, opt); err != nil {
		return nil, fmt.Errorf("snapshot objects: %w", err)
	}
	if err := copier.CopyWithOption(&snap.Projectiles, &s.Projectiles, opt); err != nil {
		return nil, fmt.Errorf("snapshot projectiles: %w", err)
	}
	if err := copier.CopyWithOption(&snap.Enemies, &s.Enemies, opt); err != nil {
		return nil, fmt.Errorf("snapshot enemies: %w", err)
	}
	if err := copier.CopyWithOption(&snap.Events, &s.Events, opt); err != nil {
		return nil, fmt.Errorf("snapshot events: %w", err)
	}
	return &snap, nil
}
