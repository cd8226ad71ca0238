// Package config provides YAML-based configuration loading for the game:
// arena size, timing, start position, terminal theme and window assets.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Arena          ArenaConfig  `yaml:"arena"`
	Timing         TimingConfig `yaml:"timing"`
	Start          StartConfig  `yaml:"start"`
	ExitOnGameOver bool         `yaml:"exit_on_game_over"`
	Theme          ThemeConfig  `yaml:"theme"`
	Window         WindowConfig `yaml:"window"`
}

// ArenaConfig defines the playfield in pixels. The grid is the pixel size
// divided by the cell size.
type ArenaConfig struct {
	WidthPx  int `yaml:"width_px"`
	HeightPx int `yaml:"height_px"`
	CellPx   int `yaml:"cell_px"`
}

// TimingConfig defines how fast the game runs.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"` // Time between snake moves
	FrameRate    int           `yaml:"frame_rate"`    // Input polls and redraws per second
}

// StartConfig defines where the snake spawns.
type StartConfig struct {
	Row       int    `yaml:"row"`
	Col       int    `yaml:"col"`
	Direction string `yaml:"direction"`
}

// GlyphConfig is one terminal cell look.
type GlyphConfig struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color"`
}

// ThemeConfig defines how the terminal front end draws the arena.
type ThemeConfig struct {
	Head   GlyphConfig `yaml:"head"`
	Body   GlyphConfig `yaml:"body"`
	Apple  GlyphConfig `yaml:"apple"`
	Border string      `yaml:"border"`
}

// AssetsConfig lists optional PNG sprites for the window front end.
// Empty or unreadable paths fall back to solid colors.
type AssetsConfig struct {
	Head  string `yaml:"head"`
	Body  string `yaml:"body"`
	Apple string `yaml:"apple"`
}

// ColorsConfig holds "#rrggbb" colors for the window front end.
type ColorsConfig struct {
	Head       string `yaml:"head"`
	Body       string `yaml:"body"`
	Apple      string `yaml:"apple"`
	Background string `yaml:"background"`
}

// WindowConfig defines the graphical window.
type WindowConfig struct {
	Title  string       `yaml:"title"`
	Assets AssetsConfig `yaml:"assets"`
	Colors ColorsConfig `yaml:"colors"`
}

// GridSize returns the arena size in cells.
func (c SnakeConfig) GridSize() (w, h int) {
	if c.Arena.CellPx <= 0 {
		return 0, 0
	}
	return c.Arena.WidthPx / c.Arena.CellPx, c.Arena.HeightPx / c.Arena.CellPx
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Arena.WidthPx <= 0 || c.Arena.HeightPx <= 0 || c.Arena.CellPx <= 0 {
		return fmt.Errorf("%w: arena sizes must be positive", ErrInvalidConfig)
	}
	w, h := c.GridSize()
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: arena %dx%d px holds no %d px cell", ErrInvalidConfig,
			c.Arena.WidthPx, c.Arena.HeightPx, c.Arena.CellPx)
	}
	if c.Arena.WidthPx%c.Arena.CellPx != 0 || c.Arena.HeightPx%c.Arena.CellPx != 0 {
		return fmt.Errorf("%w: arena %dx%d px is not a whole number of %d px cells", ErrInvalidConfig,
			c.Arena.WidthPx, c.Arena.HeightPx, c.Arena.CellPx)
	}
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidConfig)
	}
	if c.Timing.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive", ErrInvalidConfig)
	}
	if !core.Pos(c.Start.Row, c.Start.Col).In(w, h) {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalidConfig, c.Start.Row, c.Start.Col, w, h)
	}
	switch strings.ToLower(c.Start.Direction) {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: unknown start direction %q", ErrInvalidConfig, c.Start.Direction)
	}

	for name, g := range map[string]GlyphConfig{"head": c.Theme.Head, "body": c.Theme.Body, "apple": c.Theme.Apple} {
		if _, ok := core.ParseColor(g.Color); !ok {
			return fmt.Errorf("%w: theme %s color %q", ErrInvalidConfig, name, g.Color)
		}
	}
	if _, ok := core.ParseColor(c.Theme.Border); !ok {
		return fmt.Errorf("%w: theme border color %q", ErrInvalidConfig, c.Theme.Border)
	}

	colors := map[string]string{
		"head":       c.Window.Colors.Head,
		"body":       c.Window.Colors.Body,
		"apple":      c.Window.Colors.Apple,
		"background": c.Window.Colors.Background,
	}
	for name, hex := range colors {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("%w: window %s color: %v", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

// Runtime converts the configuration into the values games consume.
// Call Validate first; unknown theme colors fall back to the default color.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	w, h := c.GridSize()
	return core.RuntimeConfig{
		GridW:        w,
		GridH:        h,
		TickInterval: c.Timing.TickInterval,
		FrameRate:    c.Timing.FrameRate,
		Seed:         seed,
		StartRow:     c.Start.Row,
		StartCol:     c.Start.Col,
		StartDir:     strings.ToLower(c.Start.Direction),
		Theme: core.Theme{
			Head:   glyph(c.Theme.Head),
			Body:   glyph(c.Theme.Body),
			Apple:  glyph(c.Theme.Apple),
			Border: colorOrDefault(c.Theme.Border),
		},
	}
}

func glyph(g GlyphConfig) core.Glyph {
	return core.Glyph{Text: g.Text, Color: colorOrDefault(g.Color)}
}

func colorOrDefault(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}

// ParseHexColor parses "#rrggbb" (the leading # is optional) into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("config: color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
