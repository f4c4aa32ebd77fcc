package main

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"gridcaster/assets"
	"gridcaster/config"
	"gridcaster/texture"
	"gridcaster/world"
)

// errQuit stops the run loops when the player exits.
var errQuit = errors.New("quit")

const frameInterval = time.Second / 30

func run(ctx context.Context, cfg *config.Config) error {
	kinds, err := cfg.KindTable()
	if err != nil {
		return err
	}
	m, err := assets.LoadMap(cfg.Assets.Map)
	if err != nil {
		return err
	}
	state, err := world.New(m, kinds, cfg.Tuning())
	if err != nil {
		return err
	}

	tex := texture.Placeholders(cfg.Render.TextureSize, kinds)
	if cfg.Assets.Textures != "" {
		if tex, err = texture.Load(cfg.Assets.Textures, cfg.Render.TextureSize, kinds); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer func() {
		// restore the terminal before any panic output
		screen.Fini()
		if r := recover(); r != nil {
			panic(r)
		}
	}()
	screen.HideCursor()

	var sound *Sound
	if cfg.Audio.Enabled {
		if sound, err = NewSound(); err != nil {
			// non-fatal, the game can run without sound
			slog.Warn("audio unavailable", "err", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	sim := newSimulation(state, sound)
	view := newTermView(screen, tex, cfg)

	var latest atomic.Pointer[world.State]
	if err := sim.publish(&latest); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	g.Go(func() error {
		tick := time.NewTicker(time.Second / time.Duration(cfg.Window.TPS))
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if err := sim.handle(ev, screen); err != nil {
					return err
				}
			case <-tick.C:
				sim.step()
				if err := sim.publish(&latest); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		tick := time.NewTicker(frameInterval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick.C:
				if err := view.draw(latest.Load(), sim.paused.Load()); err != nil {
					return err
				}
			}
		}
	})

	err = g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		slog.Info("termcaster exiting")
		return nil
	}
	return err
}
