package world

import "gridcaster/vmath"

type EventKind int

const (
	PlayerHurt EventKind = iota
	EnemyKnockedBack
	EnemyFrozen
	ProjectileSpawned
	ProjectileDestroyed
	CastFinished
)

func (k EventKind) String() string {
	switch k {
	case PlayerHurt:
		return "player-hurt"
	case EnemyKnockedBack:
		return "enemy-knocked-back"
	case EnemyFrozen:
		return "enemy-frozen"
	case ProjectileSpawned:
		return "projectile-spawned"
	case ProjectileDestroyed:
		return "projectile-destroyed"
	case CastFinished:
		return "cast-finished"
	}
	return "unknown"
}

// Event records something that happened during the last Step, for hosts that play
// sounds or show feedback.
type Event struct {
	Kind     EventKind
	Position vmath.Vec
}

func (s *State) emit(kind EventKind, pos vmath.Vec) {
	s.Events = append(s.Events, Event{Kind: kind, Position: pos})
}
