package main

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gdamore/tcell/v2"

	"gridcaster/level"
	"gridcaster/model"
	"gridcaster/world"
)

func newTestSim(t *testing.T) *simulation {
	t.Helper()
	wall := make([]int, 25)
	for i := range wall {
		x, y := i%5, i/5
		if x == 0 || y == 0 || x == 4 || y == 4 {
			wall[i] = 1
		}
	}
	m, err := level.New(5, 5, level.Layers{Wall: wall})
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
	return newSimulation(s, nil)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleQuit(t *testing.T) {
	sim := newTestSim(t)
	err := sim.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), nil)
	if !errors.Is(err, errQuit) {
		t.Errorf("err = %v, want errQuit", err)
	}
}

func TestHeldKeyMovesThenReleases(t *testing.T) {
	sim := newTestSim(t)
	start := sim.state.Player.Position

	if err := sim.handle(key('w'), nil); err != nil {
		t.Fatal(err)
	}
	sim.step()
	moved := sim.state.Player.Position
	if moved.Y >= start.Y {
		t.Fatalf("forward press did not move north: %v -> %v", start, moved)
	}

	for i := 0; i < holdTicks+2; i++ {
		sim.step()
	}
	still := sim.state.Player.Position
	sim.step()
	if sim.state.Player.Position != still {
		t.Errorf("player kept moving after the hold expired")
	}
}

func TestOppositeKeysCancel(t *testing.T) {
	sim := newTestSim(t)
	sim.hold(actForward)
	sim.hold(actBack)
	if got := sim.axis(actForward, actBack); got != 1 {
		t.Errorf("axis = %v, want 1 (latest press wins)", got)
	}
}

func TestPauseStopsStepping(t *testing.T) {
	sim := newTestSim(t)
	if err := sim.handle(key('p'), nil); err != nil {
		t.Fatal(err)
	}
	tick := sim.state.Tick
	sim.step()
	if sim.state.Tick != tick {
		t.Error("paused simulation advanced")
	}
	_ = sim.handle(key('p'), nil)
	sim.step()
	if sim.state.Tick != tick+1 {
		t.Error("resumed simulation did not advance")
	}
}

func TestShootKey(t *testing.T) {
	sim := newTestSim(t)
	_ = sim.handle(key(' '), nil)
	sim.step()
	if len(sim.state.Projectiles) != 1 {
		t.Errorf("projectiles = %d, want 1", len(sim.state.Projectiles))
	}
}

func TestPublishIsIndependent(t *testing.T) {
	sim := newTestSim(t)
	var latest atomic.Pointer[world.State]
	if err := sim.publish(&latest); err != nil {
		t.Fatal(err)
	}
	snap := latest.Load()
	sim.hold(actRight)
	sim.step()
	if snap.Player.Position == sim.state.Player.Position {
		t.Error("snapshot followed the live state")
	}
}
