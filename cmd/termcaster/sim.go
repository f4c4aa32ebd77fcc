package main

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"gridcaster/vmath"
	"gridcaster/world"
)

// Terminals report key presses but not releases, so a press holds its key for a few
// ticks and auto-repeat keeps it held.
const holdTicks = 8

type action int

const (
	actForward action = iota
	actBack
	actLeft
	actRight
	actTurnLeft
	actTurnRight
	actCount
)

// simulation owns the world state; only the simulation goroutine touches it.
type simulation struct {
	state  *world.State
	sound  *Sound
	held   [actCount]int
	paused atomic.Bool
}

func newSimulation(s *world.State, sound *Sound) *simulation {
	return &simulation{state: s, sound: sound}
}

func (sim *simulation) handle(ev tcell.Event, screen tcell.Screen) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return errQuit
		case tcell.KeyUp:
			sim.hold(actForward)
		case tcell.KeyDown:
			sim.hold(actBack)
		case tcell.KeyLeft:
			sim.hold(actTurnLeft)
		case tcell.KeyRight:
			sim.hold(actTurnRight)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w':
				sim.hold(actForward)
			case 's':
				sim.hold(actBack)
			case 'a':
				sim.hold(actLeft)
			case 'd':
				sim.hold(actRight)
			case 'q', ',':
				sim.hold(actTurnLeft)
			case 'e', '.':
				sim.hold(actTurnRight)
			case ' ':
				sim.state.Shoot()
			case 'f':
				sim.state.BeginCast()
			case 'p':
				sim.paused.Store(!sim.paused.Load())
			}
		}
	}
	return nil
}

func (sim *simulation) hold(a action) {
	sim.held[a] = holdTicks
	// opposite directions cancel the older press
	switch a {
	case actForward:
		sim.held[actBack] = 0
	case actBack:
		sim.held[actForward] = 0
	case actLeft:
		sim.held[actRight] = 0
	case actRight:
		sim.held[actLeft] = 0
	case actTurnLeft:
		sim.held[actTurnRight] = 0
	case actTurnRight:
		sim.held[actTurnLeft] = 0
	}
}

func (sim *simulation) axis(neg, pos action) float64 {
	var v float64
	if sim.held[neg] > 0 {
		v--
	}
	if sim.held[pos] > 0 {
		v++
	}
	return v
}

func (sim *simulation) step() {
	if sim.paused.Load() || sim.state.Player.Health <= 0 {
		return
	}

	move := vmath.New(sim.axis(actLeft, actRight), sim.axis(actForward, actBack))
	sim.state.SetInput(move, sim.axis(actTurnLeft, actTurnRight))
	for i := range sim.held {
		if sim.held[i] > 0 {
			sim.held[i]--
		}
	}

	sim.state.Step(1)
	if sim.sound != nil {
		for _, e := range sim.state.Events {
			sim.sound.Play(e.Kind)
		}
	}
}

// publish stores a copy of the world for the render goroutine.
func (sim *simulation) publish(latest *atomic.Pointer[world.State]) error {
	snap, err := sim.state.Snapshot()
	if err != nil {
		return err
	}
	latest.Store(snap)
	return nil
}
