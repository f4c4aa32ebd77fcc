// Package config resolves runtime settings from defaults, an optional config file,
// GRIDCASTER_* environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"strings"

	"github.com/harbdog/raycaster-go"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gridcaster/model"
	"gridcaster/world"
)

// ErrInvalid is returned when a setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

const envPrefix = "GRIDCASTER"

type Window struct {
	Width  int     `mapstructure:"width"`
	Height int     `mapstructure:"height"`
	Scale  float64 `mapstructure:"scale"`
	Title  string  `mapstructure:"title"`
	TPS    int     `mapstructure:"tps"`

	Fullscreen bool `mapstructure:"fullscreen"`
}

type Render struct {
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	TextureSize  int     `mapstructure:"texture_size"`
	Workers      int     `mapstructure:"workers"`
	FOV          float64 `mapstructure:"fov"`
	Shade        bool    `mapstructure:"shade"`
	SpriteAnchor string  `mapstructure:"sprite_anchor"`
	SpriteScale  float64 `mapstructure:"sprite_scale"`
	MinimapCell  int     `mapstructure:"minimap_cell"`
}

type Assets struct {
	Map      string `mapstructure:"map"`
	Textures string `mapstructure:"textures"`
}

type Input struct {
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
}

type Config struct {
	Window Window `mapstructure:"window"`
	Render Render `mapstructure:"render"`
	Assets Assets `mapstructure:"assets"`
	Input  Input  `mapstructure:"input"`
	Log    struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Audio struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"audio"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`

	v *viper.Viper
}

// defaultFOV matches a camera plane of 0.66 at unit distance.
var defaultFOV = 2 * math.Atan(0.66) * 180 / math.Pi

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.scale", 1.0)
	v.SetDefault("window.title", "gridcaster")
	v.SetDefault("window.tps", 60)
	v.SetDefault("window.fullscreen", false)

	v.SetDefault("render.width", 480)
	v.SetDefault("render.height", 300)
	v.SetDefault("render.texture_size", 64)
	v.SetDefault("render.workers", runtime.NumCPU())
	v.SetDefault("render.fov", defaultFOV)
	v.SetDefault("render.shade", true)
	v.SetDefault("render.sprite_anchor", "bottom")
	v.SetDefault("render.sprite_scale", 1.0)
	v.SetDefault("render.minimap_cell", 4)

	v.SetDefault("assets.map", "")
	v.SetDefault("assets.textures", "")
	v.SetDefault("input.mouse_sensitivity", 0.002)
	v.SetDefault("log.level", "info")
	v.SetDefault("audio.enabled", true)

	t := world.DefaultTuning()
	v.SetDefault("player.speed", t.PlayerSpeed)
	v.SetDefault("player.rotate_speed", t.RotateSpeed)
	v.SetDefault("player.health", t.PlayerHealth)
	v.SetDefault("player.radius", t.PlayerRadius)

	v.SetDefault("enemy.half_size", t.EnemyHalfSize)
	v.SetDefault("enemy.separation", t.EnemySeparation)
	v.SetDefault("enemy.melee_range", t.MeleeRange)
	v.SetDefault("enemy.melee_damage", t.MeleeDamage)
	v.SetDefault("enemy.knockback_speed", t.PlayerKnockbackSpeed)
	v.SetDefault("enemy.knockback_time", t.PlayerKnockbackTime)

	v.SetDefault("projectile.image", t.ProjectileImage)
	v.SetDefault("projectile.speed", t.ProjectileSpeed)
	v.SetDefault("projectile.spawn_offset", t.ProjectileSpawnOffset)
	v.SetDefault("projectile.hit_radius", t.ProjectileHitRadius)
	v.SetDefault("projectile.cooldown", t.ShootCooldown)
	v.SetDefault("projectile.freeze_duration", t.FreezeDuration)

	v.SetDefault("ability.frames", t.CastFrames)
	v.SetDefault("ability.frame_duration", t.CastDuration)
	v.SetDefault("ability.radius", t.CastRadius)
	v.SetDefault("ability.half_angle", t.CastHalfAngle*180/math.Pi)
	v.SetDefault("ability.knockback_speed", t.KnockbackSpeed)
	v.SetDefault("ability.knockback_time", t.KnockbackTime)
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("gridcaster", pflag.ContinueOnError)
	fs.String("config", "", "config file (default gridcaster.{yaml,toml,json} in . or $HOME/.config/gridcaster)")
	fs.String("map", "", "TMX map file (default: embedded demo map)")
	fs.String("textures", "", "texture directory (default: generated placeholders)")
	fs.Int("width", 0, "render width in pixels")
	fs.Int("height", 0, "render height in pixels")
	fs.Int("workers", 0, "render worker goroutines")
	fs.Float64("fov", 0, "horizontal field of view in degrees")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.Bool("audio", true, "play sound cues (terminal host)")
	fs.Bool("fullscreen", false, "start fullscreen; F11 toggles")
	return fs
}

var flagKeys = map[string]string{
	"map":        "assets.map",
	"textures":   "assets.textures",
	"width":      "render.width",
	"height":     "render.height",
	"workers":    "render.workers",
	"fov":        "render.fov",
	"log-level":  "log.level",
	"audio":      "audio.enabled",
	"fullscreen": "window.fullscreen",
}

// Load resolves the configuration for the given command-line arguments (without the
// program name).
func Load(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file, _ := fs.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("gridcaster")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gridcaster")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{v: v, File: v.ConfigFileUsed()}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, c.Render.Width, c.Render.Height)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Render.TextureSize <= 0:
		return fmt.Errorf("%w: texture size %d", ErrInvalid, c.Render.TextureSize)
	case c.Render.FOV <= 0 || c.Render.FOV >= 180:
		return fmt.Errorf("%w: fov %v", ErrInvalid, c.Render.FOV)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	}
	if _, err := parseAnchor(c.Render.SpriteAnchor); err != nil {
		return err
	}
	return nil
}

// Tuning returns the simulation constants.
func (c *Config) Tuning() world.Tuning {
	v := c.v
	return world.Tuning{
		PlayerSpeed:  v.GetFloat64("player.speed"),
		RotateSpeed:  v.GetFloat64("player.rotate_speed"),
		PlayerHealth: v.GetInt("player.health"),
		CameraPlane:  math.Tan(c.Render.FOV * math.Pi / 360),
		PlayerRadius: v.GetFloat64("player.radius"),

		EnemyHalfSize:        v.GetFloat64("enemy.half_size"),
		EnemySeparation:      v.GetFloat64("enemy.separation"),
		MeleeRange:           v.GetFloat64("enemy.melee_range"),
		MeleeDamage:          v.GetInt("enemy.melee_damage"),
		PlayerKnockbackSpeed: v.GetFloat64("enemy.knockback_speed"),
		PlayerKnockbackTime:  v.GetFloat64("enemy.knockback_time"),

		ProjectileImage:       v.GetInt("projectile.image"),
		ProjectileSpeed:       v.GetFloat64("projectile.speed"),
		ProjectileSpawnOffset: v.GetFloat64("projectile.spawn_offset"),
		ProjectileHitRadius:   v.GetFloat64("projectile.hit_radius"),
		ShootCooldown:         v.GetFloat64("projectile.cooldown"),
		FreezeDuration:        v.GetFloat64("projectile.freeze_duration"),

		CastFrames:     v.GetInt("ability.frames"),
		CastDuration:   v.GetFloat64("ability.frame_duration"),
		CastRadius:     v.GetFloat64("ability.radius"),
		CastHalfAngle:  v.GetFloat64("ability.half_angle") * math.Pi / 180,
		KnockbackSpeed: v.GetFloat64("ability.knockback_speed"),
		KnockbackTime:  v.GetFloat64("ability.knockback_time"),
	}
}

// KindTable builds the enemy kind table from the built-in kinds, overlaying any
// enemies.<name>.* settings. Unknown kind names are rejected.
func (c *Config) KindTable() (*model.KindTable, error) {
	kinds := model.DefaultKinds()
	base, err := model.NewKindTable(kinds)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0)
	for name := range c.v.GetStringMap("enemies") {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		k, ok := base.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown enemy kind %q", ErrInvalid, name)
		}
		key := "enemies." + name
		if err := c.v.UnmarshalKey(key, &kinds[k]); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		slog.Debug("enemy kind overridden", "kind", name)
	}
	return model.NewKindTable(kinds)
}

// SpriteAnchor returns the vertical anchor for sprites.
func (c *Config) SpriteAnchor() raycaster.SpriteAnchor {
	a, _ := parseAnchor(c.Render.SpriteAnchor)
	return a
}

func parseAnchor(s string) (raycaster.SpriteAnchor, error) {
	switch strings.ToLower(s) {
	case "bottom", "":
		return raycaster.AnchorBottom, nil
	case "center", "centre":
		return raycaster.AnchorCenter, nil
	case "top":
		return raycaster.AnchorTop, nil
	}
	return raycaster.AnchorBottom, fmt.Errorf("%w: sprite anchor %q", ErrInvalid, s)
}

// LogLevel parses log.level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
