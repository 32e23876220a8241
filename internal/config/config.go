package config

import (
	"fmt"

	"github.com/VoidMesh/tileworld/internal/logging"
	"github.com/VoidMesh/tileworld/services/noise"
	"github.com/VoidMesh/tileworld/services/world"
)

// Upper bounds on settings whose cost grows quadratically.
const (
	MaxSpawnSpan     = 64
	MaxDestroyRadius = 16
)

type Config struct {
	World    WorldConfig    `yaml:"world"`
	Logging  LoggingConfig  `yaml:"logging"`
	Explorer ExplorerConfig `yaml:"explorer"`
}

type WorldConfig struct {
	Noise           noise.Config `yaml:"noise"`
	SpawnSpan       int32        `yaml:"spawn_span"`
	SwimMultiplier  float64      `yaml:"swim_multiplier"`
	CrawlMultiplier float64      `yaml:"crawl_multiplier"`
	DestroyRadius   float64      `yaml:"destroy_radius"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	// File receives log output when set. The explorer needs it since the
	// terminal belongs to the UI.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type ExplorerConfig struct {
	FPS int `yaml:"fps"`
	// Zoom is world tiles per canvas column.
	Zoom float64 `yaml:"zoom"`
	// RenderPadding grows the generated zone past the view, in tiles.
	RenderPadding float64 `yaml:"render_padding"`
	// MapZoneFactor scales the view into the zone sampled for the map.
	MapZoneFactor float64 `yaml:"map_zone_factor"`
	// MaxActiveZoom caps the zoom of the zone that is generated and drawn.
	// Zooming out past it shows the capped zone inside an empty frame.
	MaxActiveZoom float64 `yaml:"max_active_zoom"`
	PlayerSpeed   float64 `yaml:"player_speed"`
	PlayerName    string  `yaml:"player_name"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	opts := world.DefaultOptions()
	return &Config{
		World: WorldConfig{
			Noise:           noise.DefaultConfig(),
			SpawnSpan:       opts.SpawnSpan,
			SwimMultiplier:  opts.SwimMultiplier,
			CrawlMultiplier: opts.CrawlMultiplier,
			DestroyRadius:   opts.DestroyRadius,
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   false,
		},
		Explorer: ExplorerConfig{
			FPS:           30,
			Zoom:          0.5,
			RenderPadding: 16,
			MapZoneFactor: 4,
			MaxActiveZoom: 2,
			PlayerSpeed:   6,
			PlayerName:    "explorer",
		},
	}
}

// WorldOptions converts the world section into world.Options.
func (c *Config) WorldOptions() world.Options {
	return world.Options{
		SpawnSpan:       c.World.SpawnSpan,
		SwimMultiplier:  c.World.SwimMultiplier,
		CrawlMultiplier: c.World.CrawlMultiplier,
		DestroyRadius:   c.World.DestroyRadius,
	}
}

// LogFile converts the logging section into a rotating file config.
func (c *Config) LogFile() logging.FileConfig {
	return logging.FileConfig{
		Path:       c.Logging.File,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
		Compress:   c.Logging.Compress,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.World.Noise.Validate(); err != nil {
		return fmt.Errorf("world.noise: %w", err)
	}
	switch {
	case c.World.SpawnSpan < 0 || c.World.SpawnSpan > MaxSpawnSpan:
		return fmt.Errorf("world.spawn_span must be within [0, %d], got %d", MaxSpawnSpan, c.World.SpawnSpan)
	case c.World.SwimMultiplier <= 0:
		return fmt.Errorf("world.swim_multiplier must be positive, got %v", c.World.SwimMultiplier)
	case c.World.CrawlMultiplier <= 0:
		return fmt.Errorf("world.crawl_multiplier must be positive, got %v", c.World.CrawlMultiplier)
	case c.World.DestroyRadius < 0 || c.World.DestroyRadius > MaxDestroyRadius:
		return fmt.Errorf("world.destroy_radius must be within [0, %d], got %v", MaxDestroyRadius, c.World.DestroyRadius)
	}

	if !validLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	switch {
	case c.Explorer.FPS < 1 || c.Explorer.FPS > 240:
		return fmt.Errorf("explorer.fps must be within [1, 240], got %d", c.Explorer.FPS)
	case c.Explorer.Zoom <= 0:
		return fmt.Errorf("explorer.zoom must be positive, got %v", c.Explorer.Zoom)
	case c.Explorer.RenderPadding < 0:
		return fmt.Errorf("explorer.render_padding must not be negative, got %v", c.Explorer.RenderPadding)
	case c.Explorer.MapZoneFactor < 1:
		return fmt.Errorf("explorer.map_zone_factor must be at least 1, got %v", c.Explorer.MapZoneFactor)
	case c.Explorer.MaxActiveZoom <= 0:
		return fmt.Errorf("explorer.max_active_zoom must be positive, got %v", c.Explorer.MaxActiveZoom)
	case c.Explorer.PlayerSpeed <= 0:
		return fmt.Errorf("explorer.player_speed must be positive, got %v", c.Explorer.PlayerSpeed)
	}
	return nil
}

func validLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
