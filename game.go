package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"gridcaster/assets"
	"gridcaster/config"
	"gridcaster/model"
	"gridcaster/render"
	"gridcaster/texture"
	"gridcaster/world"
)

// main game object
type Game struct {
	cfg    *config.Config
	paused bool

	// window size; the scene is rendered at the smaller render size and scaled up
	screenWidth  int
	screenHeight int

	kinds *model.KindTable
	tex   *texture.Set
	state *world.State

	camera  *render.Camera
	scene   *frameImage
	minimap *frameImage
	weapon  *Weapon

	crosshairs *Crosshairs
	effects    []*Effect

	mouseX, mouseY int

	gameOver bool
	err      error
}

// NewGame loads the map and textures named by cfg and builds the world.
func NewGame(cfg *config.Config) (*Game, error) {
	kinds, err := cfg.KindTable()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		screenWidth:  int(float64(cfg.Window.Width) * cfg.Window.Scale),
		screenHeight: int(float64(cfg.Window.Height) * cfg.Window.Scale),
		kinds:        kinds,
		crosshairs:   NewCrosshairs(6, 2),
		mouseX:       math.MinInt32,
		mouseY:       math.MinInt32,
	}

	if cfg.Assets.Textures != "" {
		if g.tex, err = texture.Load(cfg.Assets.Textures, cfg.Render.TextureSize, kinds); err != nil {
			return nil, err
		}
	} else {
		g.tex = texture.Placeholders(cfg.Render.TextureSize, kinds)
	}

	if err := g.reset(); err != nil {
		return nil, err
	}

	g.camera = render.NewCamera(cfg.Render.Width, cfg.Render.Height, g.tex, cfg.Render.Workers)
	g.camera.SetShading(cfg.Render.Shade)
	g.camera.SetSpriteAnchor(cfg.SpriteAnchor(), cfg.Render.SpriteScale)
	g.scene = newFrameImage(cfg.Render.Width, cfg.Render.Height)

	cell := max(cfg.Render.MinimapCell, 1)
	g.minimap = newFrameImage(g.state.Map.Width*cell, g.state.Map.Height*cell)

	if len(g.tex.Projectiles) > 0 {
		g.weapon = NewWeapon(g.tex.Projectiles[0])
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(g.screenWidth, g.screenHeight)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	slog.Info("game ready",
		"map", fmt.Sprintf("%dx%d", g.state.Map.Width, g.state.Map.Height),
		"render", fmt.Sprintf("%dx%d", cfg.Render.Width, cfg.Render.Height),
		"workers", cfg.Render.Workers)
	return g, nil
}

// reset reloads the map and starts a fresh world.
func (g *Game) reset() error {
	m, err := assets.LoadMap(g.cfg.Assets.Map)
	if err != nil {
		return err
	}
	s, err := world.New(m, g.kinds, g.cfg.Tuning())
	if err != nil {
		return err
	}
	g.state = s
	g.effects = g.effects[:0]
	g.gameOver = false
	return nil
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() error {
	g.paused = false

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if err := g.handleInput(); err != nil {
		return err
	}
	if g.paused || g.gameOver {
		return nil
	}

	g.state.Step(1)
	g.handleEvents()

	g.crosshairs.Update()
	g.updateEffects()
	if g.weapon != nil {
		g.weapon.Update(&g.state.Player, g.state.Tuning.CastFrames)
	}

	if g.state.Player.Health <= 0 {
		slog.Info("player died", "tick", g.state.Tick)
		g.gameOver = true
	}
	return nil
}

func (g *Game) handleEvents() {
	for _, e := range g.state.Events {
		slog.Debug("event", "kind", e.Kind, "pos", e.Position, "tick", g.state.Tick)
		switch e.Kind {
		case world.PlayerHurt:
			g.addEffect(NewEffect(hurtColor, 12))
		case world.CastFinished:
			g.addEffect(NewEffect(castColor, 8))
		case world.ProjectileSpawned:
			if g.weapon != nil {
				g.weapon.Fired()
			}
		case world.EnemyFrozen, world.EnemyKnockedBack:
			g.crosshairs.ActivateHitIndicator(20)
		}
	}
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.camera.Render(g.state, g.scene.frame); err != nil {
		if g.err == nil {
			slog.Error("render failed", "err", err)
			g.err = err
		}
		return
	}

	vw, vh := g.camera.ViewSize()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(
		float64(g.screenWidth)/float64(vw),
		float64(g.screenHeight)/float64(vh),
	)
	screen.DrawImage(g.scene.upload(), op)

	if g.weapon != nil {
		g.weapon.Draw(screen)
	}
	g.drawEffects(screen)
	g.drawMinimap(screen)
	g.crosshairs.Draw(screen)
	g.drawUI(screen)
}
