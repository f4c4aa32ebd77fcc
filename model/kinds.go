package model

import (
	"errors"
	"fmt"
)

// ErrInvalidKind is returned when an enemy kind's tunables are inconsistent.
var ErrInvalidKind = errors.New("model: invalid enemy kind")

// EnemyKind indexes the KindTable.
type EnemyKind int

const (
	KindSlime EnemyKind = iota
)

// Kind holds the tunables shared by every enemy of one kind. Durations are in ticks,
// speeds in cells per tick.
type Kind struct {
	Name string `mapstructure:"name"`

	MoveFrames   int     `mapstructure:"move_frames"`
	MoveDuration float64 `mapstructure:"move_duration"`

	AttackFrames      int     `mapstructure:"attack_frames"`
	AttackDuration    float64 `mapstructure:"attack_duration"`
	AttackDangerFrame int     `mapstructure:"attack_danger_frame"`
	AttackSafeFrame   int     `mapstructure:"attack_safe_frame"`

	Speed        float64 `mapstructure:"speed"`
	AttackSpeed  float64 `mapstructure:"attack_speed"`
	AttackRadius float64 `mapstructure:"attack_radius"`
}

func (k Kind) validate() error {
	switch {
	case k.MoveFrames <= 0 || k.AttackFrames <= 0:
		return fmt.Errorf("%w: %q needs at least one move and attack frame", ErrInvalidKind, k.Name)
	case k.MoveDuration <= 0 || k.AttackDuration <= 0:
		return fmt.Errorf("%w: %q has a non-positive frame duration", ErrInvalidKind, k.Name)
	case k.AttackDangerFrame < 0 || k.AttackDangerFrame > k.AttackSafeFrame || k.AttackSafeFrame > k.AttackFrames:
		return fmt.Errorf("%w: %q hurtbox window [%d, %d) outside %d attack frames",
			ErrInvalidKind, k.Name, k.AttackDangerFrame, k.AttackSafeFrame, k.AttackFrames)
	case k.Speed < 0 || k.AttackSpeed < 0 || k.AttackRadius < 0:
		return fmt.Errorf("%w: %q has a negative speed or radius", ErrInvalidKind, k.Name)
	}
	return nil
}

// DefaultKinds returns the built-in enemy kinds, indexed by EnemyKind.
func DefaultKinds() []Kind {
	return []Kind{
		KindSlime: {
			Name:              "slime",
			MoveFrames:        5,
			MoveDuration:      6.0,
			AttackFrames:      21,
			AttackDuration:    0.25,
			AttackDangerFrame: 8,
			AttackSafeFrame:   15,
			Speed:             0.02,
			AttackSpeed:       0.08,
			AttackRadius:      2.0,
		},
	}
}

// KindTable is the read-only table of enemy kinds. It is built once at startup and shared.
type KindTable struct {
	kinds []Kind
}

// NewKindTable validates kinds and freezes them into a table.
func NewKindTable(kinds []Kind) (*KindTable, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: empty kind table", ErrInvalidKind)
	}
	for _, k := range kinds {
		if err := k.validate(); err != nil {
			return nil, err
		}
	}
	t := &KindTable{kinds: make([]Kind, len(kinds))}
	copy(t.kinds, kinds)
	return t, nil
}

// Get returns the tunables of kind k. Unknown kinds fall back to the first entry.
func (t *KindTable) Get(k EnemyKind) Kind {
	if int(k) < 0 || int(k) >= len(t.kinds) {
		return t.kinds[0]
	}
	return t.kinds[k]
}

func (t *KindTable) Len() int {
	return len(t.kinds)
}

// Lookup finds a kind by name.
func (t *KindTable) Lookup(name string) (EnemyKind, bool) {
	for i, k := range t.kinds {
		if k.Name == name {
			return EnemyKind(i), true
		}
	}
	return 0, false
}
