package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// binding maps physical keys to one game action.
type binding struct {
	keys   []ebiten.Key
	action core.Action
}

// bindings mirrors the terminal key map: WASD and arrows steer,
// P pauses, R restarts after game over and Q quits.
var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
}

// WindowSize returns the window size in pixels for a grid.
func WindowSize(gridW, gridH, cellPx int) (w, h int) {
	return gridW * cellPx, gridH * cellPx
}

// cellToPixel returns the top-left pixel of a grid cell.
// Rows grow downward and columns grow rightward.
func cellToPixel(p core.GridPos, cellPx int) (x, y float64) {
	return float64(p.Col * cellPx), float64(p.Row * cellPx)
}

// spriteScale returns the factors that stretch a w x h image over one cell.
func spriteScale(w, h, cellPx int) (sx, sy float64) {
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	return float64(cellPx) / float64(w), float64(cellPx) / float64(h)
}

// textX centers debug-font text horizontally; the font is 6 px per glyph.
func textX(text string, width int) int {
	return (width - len([]rune(text))*6) / 2
}
