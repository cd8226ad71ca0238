package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// The arena size and tick interval are fixed for a whole run.
type RuntimeConfig struct {
	GridW        int           // Arena width in cells
	GridH        int           // Arena height in cells
	TickInterval time.Duration // Wall-clock time between simulation steps
	FrameRate    int           // Input polls and redraws per second
	Seed         int64         // RNG seed for apple placement

	StartRow int    // Initial head row
	StartCol int    // Initial head column
	StartDir string // Initial direction name ("up", "down", "left", "right")

	Theme Theme // Terminal glyphs and colors
}

// Glyph is how one arena cell looks in a terminal. Text holds one or two
// runes; a single rune is repeated so every cell is two characters wide.
type Glyph struct {
	Text  string
	Color Color
}

// Runes returns the two characters drawn for the glyph.
func (g Glyph) Runes() [2]rune {
	rs := []rune(g.Text)
	switch len(rs) {
	case 0:
		return [2]rune{' ', ' '}
	case 1:
		return [2]rune{rs[0], rs[0]}
	default:
		return [2]rune{rs[0], rs[1]}
	}
}

// Theme holds the glyphs used to draw the arena.
type Theme struct {
	Head   Glyph
	Body   Glyph
	Apple  Glyph
	Border Color
}

// DefaultTheme returns solid green blocks for the snake and a red apple.
func DefaultTheme() Theme {
	return Theme{
		Head:   Glyph{Text: "█", Color: ColorBrightGreen},
		Body:   Glyph{Text: "▓", Color: ColorGreen},
		Apple:  Glyph{Text: "()", Color: ColorBrightRed},
		Border: ColorGray,
	}
}

// DefaultConfig returns the classic 20x15 arena moving every 150ms at 60 FPS.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:        20,
		GridH:        15,
		TickInterval: 150 * time.Millisecond,
		FrameRate:    60,
		Seed:         0, // 0 means use current time in platform layer
		StartRow:     0,
		StartCol:     0,
		StartDir:     "down",
		Theme:        DefaultTheme(),
	}
}

// FrameDuration returns the nominal time between two frames.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Ticks int // Simulation steps applied during this frame (0 or 1)
}
