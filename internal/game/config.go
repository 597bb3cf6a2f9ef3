package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/rustygame/internal/world"
)

// Environment variables read by LoadConfig.
const (
	envScreenWidth  = "RUSTYGAME_SCREEN_WIDTH"
	envScreenHeight = "RUSTYGAME_SCREEN_HEIGHT"
	envMapWidth     = "RUSTYGAME_MAP_WIDTH"
	envMapHeight    = "RUSTYGAME_MAP_HEIGHT"
	envFPS          = "RUSTYGAME_FPS"
	envTitle        = "RUSTYGAME_TITLE"
	envLogFile      = "RUSTYGAME_LOG_FILE"
)

// Config holds game configuration options.
type Config struct {
	// Console size in cells. The map is drawn from the top-left corner.
	ScreenWidth  int
	ScreenHeight int

	// Map size in tiles. Must fit inside the console.
	MapWidth  int
	MapHeight int

	// FPS caps how often frames are presented. 0 disables the cap.
	FPS int

	Title   string
	LogFile string
}

// DefaultConfig returns the standard 80x50 console with an 80x45 map.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  80,
		ScreenHeight: 50,
		MapWidth:     world.DefaultWidth,
		MapHeight:    world.DefaultHeight,
		FPS:          20,
		Title:        "Rusty Game",
	}
}

// LoadConfig builds a Config from the defaults overridden by environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		env string
		dst *int
	}{
		{envScreenWidth, &cfg.ScreenWidth},
		{envScreenHeight, &cfg.ScreenHeight},
		{envMapWidth, &cfg.MapWidth},
		{envMapHeight, &cfg.MapHeight},
		{envFPS, &cfg.FPS},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.env)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", v.env, err)
		}
		*v.dst = n
	}

	if title, ok := os.LookupEnv(envTitle); ok {
		cfg.Title = title
	}
	cfg.LogFile = os.Getenv(envLogFile)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the dimensions are usable.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", c.MapWidth, c.MapHeight)
	}
	if c.MapWidth > c.ScreenWidth || c.MapHeight > c.ScreenHeight {
		return fmt.Errorf("map %dx%d does not fit screen %dx%d",
			c.MapWidth, c.MapHeight, c.ScreenWidth, c.ScreenHeight)
	}
	if c.FPS < 0 {
		return errors.New("fps must not be negative")
	}
	return nil
}

// PlayerStart returns where the player spawns: just left of and above the console center.
func (c Config) PlayerStart() (int, int) {
	return c.ScreenWidth/2 - 1, c.ScreenHeight/2 - 5
}
