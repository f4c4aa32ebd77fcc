package main

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"gridcaster/world"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[world.EventKind]tone{
	world.PlayerHurt:        {220, 120 * time.Millisecond},
	world.EnemyKnockedBack:  {660, 80 * time.Millisecond},
	world.EnemyFrozen:       {990, 60 * time.Millisecond},
	world.ProjectileSpawned: {440, 30 * time.Millisecond},
}

// Sound plays short sine blips for world events.
type Sound struct {
	mu    sync.Mutex
	mixer *beep.Mixer
}

func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	s := &Sound{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the tone for kind; events without a tone are ignored.
func (s *Sound) Play(kind world.EventKind) {
	t, ok := tones[kind]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(t.duration), sine))
	speaker.Unlock()
}

func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Clear()
	speaker.Close()
}
