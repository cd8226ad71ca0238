package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 1 // Status line above the arena

// boardRect returns the bordered arena on a screen of the given size.
func (g *Game) boardRect(screenW int) core.Rect {
	w := g.state.Width()*2 + 2
	h := g.state.Height() + 2
	return core.NewRect((screenW-w)/2, hudHeight, w, h)
}

// cellOrigin maps a grid cell to the left screen column and row of its two
// characters.
func cellOrigin(board core.Rect, p core.GridPos) (x, y int) {
	return board.X + 1 + p.Col*2, board.Y + 1 + p.Row
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == nil {
		g.renderOverlay(dst, "Invalid arena", fmt.Sprint(g.err))
		return
	}

	g.renderHUD(dst)

	board := g.boardRect(dst.Width())
	if board.X < 0 || board.Bottom() > dst.Height() {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", board.W, board.Bottom()))
		return
	}

	theme := g.cfg.Theme
	dst.DrawBox(board, theme.Border)

	if g.state.HasApple() {
		g.drawCell(dst, board, g.state.Apple(), theme.Apple)
	}
	for _, seg := range g.state.body {
		g.drawCell(dst, board, seg, theme.Body)
	}
	g.drawCell(dst, board, g.state.Head(), theme.Head)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Length: %d", g.state.TargetLength()))
	case g.over:
		g.renderOverlay(dst, "Game Over: "+g.outcome.Reason.String(), "R: restart  Q: quit")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawCell draws one arena cell as two colored characters.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, p core.GridPos, glyph core.Glyph) {
	if !g.state.InBounds(p) {
		return
	}
	x, y := cellOrigin(board, p)
	rs := glyph.Runes()
	dst.SetColored(x, y, rs[0], glyph.Color)
	dst.SetColored(x+1, y, rs[1], glyph.Color)
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Dir: %s",
		g.state.TargetLength(), g.state.TargetLength()+1, g.state.Direction())
	dst.DrawText(0, 0, hud)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
