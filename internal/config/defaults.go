package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the classic 800x600 arena of 40 px cells
// (20x15 grid) with a move every 150ms.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			WidthPx:  800,
			HeightPx: 600,
			CellPx:   40,
		},
		Timing: TimingConfig{
			TickInterval: 150 * time.Millisecond,
			FrameRate:    60,
		},
		Start: StartConfig{
			Row:       0,
			Col:       0,
			Direction: "down",
		},
		ExitOnGameOver: false,
		Theme: ThemeConfig{
			Head:   GlyphConfig{Text: "█", Color: "bright_green"},
			Body:   GlyphConfig{Text: "▓", Color: "green"},
			Apple:  GlyphConfig{Text: "()", Color: "bright_red"},
			Border: "gray",
		},
		Window: WindowConfig{
			Title: "Snake Game",
			Assets: AssetsConfig{
				Head:  "snake_head.png",
				Body:  "snake_body.png",
				Apple: "apple.png",
			},
			Colors: ColorsConfig{
				Head:       "#00ff00",
				Body:       "#00c800",
				Apple:      "#ff0000",
				Background: "#000000",
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
