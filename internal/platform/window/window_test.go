package window

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(20, 15, 40)
	if w != 800 || h != 600 {
		t.Errorf("WindowSize(20, 15, 40) = %dx%d, expected 800x600", w, h)
	}
}

func TestCellToPixel(t *testing.T) {
	tests := []struct {
		pos  core.GridPos
		x, y float64
	}{
		{core.Pos(0, 0), 0, 0},
		{core.Pos(0, 3), 120, 0},
		{core.Pos(2, 0), 0, 80},
		{core.Pos(14, 19), 760, 560},
	}

	for _, tc := range tests {
		x, y := cellToPixel(tc.pos, 40)
		if x != tc.x || y != tc.y {
			t.Errorf("cellToPixel(%v) = (%v, %v), expected (%v, %v)", tc.pos, x, y, tc.x, tc.y)
		}
	}
}

func TestSpriteScale(t *testing.T) {
	sx, sy := spriteScale(16, 32, 40)
	if sx != 2.5 || sy != 1.25 {
		t.Errorf("spriteScale(16, 32, 40) = (%v, %v)", sx, sy)
	}
	if sx, sy := spriteScale(0, 0, 40); sx != 1 || sy != 1 {
		t.Errorf("empty image should not scale, got (%v, %v)", sx, sy)
	}
}

func TestBindingsCoverActions(t *testing.T) {
	expected := map[core.Action][]ebiten.Key{
		core.ActionUp:      {ebiten.KeyW, ebiten.KeyArrowUp},
		core.ActionDown:    {ebiten.KeyS, ebiten.KeyArrowDown},
		core.ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
		core.ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
		core.ActionPause:   {ebiten.KeyP},
		core.ActionRestart: {ebiten.KeyR},
		core.ActionQuit:    {ebiten.KeyQ},
	}

	seen := make(map[ebiten.Key]bool)
	for _, b := range bindings {
		want, ok := expected[b.action]
		if !ok {
			t.Errorf("unexpected binding for %v", b.action)
			continue
		}
		if len(b.keys) != len(want) {
			t.Errorf("%v bound to %v, expected %v", b.action, b.keys, want)
			continue
		}
		for i, k := range b.keys {
			if k != want[i] {
				t.Errorf("%v key %d = %v, expected %v", b.action, i, k, want[i])
			}
			if seen[k] {
				t.Errorf("key %v bound twice", k)
			}
			seen[k] = true
		}
		delete(expected, b.action)
	}
	for a := range expected {
		t.Errorf("no binding for %v", a)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.ExitOnGameOver = true

	opts, err := OptionsFromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("OptionsFromConfig() failed: %v", err)
	}
	if opts.CellPx != 40 || opts.Title != "Snake Game" || !opts.ExitOnGameOver {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.Palette.Apple != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("apple color = %v", opts.Palette.Apple)
	}
	if opts.Assets.Head != "snake_head.png" {
		t.Errorf("head asset = %q", opts.Assets.Head)
	}

	cfg.Window.Colors.Body = "green"
	if _, err := OptionsFromConfig(cfg, nil); err == nil {
		t.Error("invalid hex color should fail")
	}
}

func newTestRunner(t *testing.T, row, col int, dir string, exitOnGameOver bool) (*runner, *snake.Game) {
	t.Helper()

	cfg := core.DefaultConfig()
	cfg.Seed = 3
	cfg.StartRow, cfg.StartCol, cfg.StartDir = row, col, dir

	g := snake.New()
	g.Reset(cfg)
	return newRunner(g, cfg, Options{CellPx: 40, ExitOnGameOver: exitOnGameOver}), g
}

// stepFrames steps until the game has applied one tick at the default rates.
func stepFrames(r *runner, n int) error {
	for range n {
		if err := r.step(); err != nil {
			return err
		}
	}
	return nil
}

func TestStepAdvancesAtFrameRate(t *testing.T) {
	r, g := newTestRunner(t, 5, 5, "down", false)

	r.frame.Set(core.ActionRight)
	if err := stepFrames(r, 9); err != nil {
		t.Fatalf("step() failed: %v", err)
	}
	if g.Snapshot().Tick != 0 {
		t.Fatal("nine frames at 60 FPS should not reach a 150ms tick")
	}

	if err := stepFrames(r, 1); err != nil {
		t.Fatalf("step() failed: %v", err)
	}
	snap := g.Snapshot()
	if snap.Tick != 1 || snap.Head != core.Pos(5, 6) {
		t.Errorf("tick %d head %v, expected tick 1 head (5,6)", snap.Tick, snap.Head)
	}
}

func TestStepQuit(t *testing.T) {
	r, _ := newTestRunner(t, 5, 5, "down", false)

	r.frame.Set(core.ActionQuit)
	if err := r.step(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("quit should terminate, got %v", err)
	}
	if !r.quit {
		t.Error("quit flag should be set")
	}
}

func TestStepExitOnGameOver(t *testing.T) {
	r, _ := newTestRunner(t, 0, 0, "up", true)

	err := stepFrames(r, 10)
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("game over should terminate, got %v", err)
	}
	if !r.ended || !r.state.GameOver {
		t.Error("runner should record the game over")
	}
}

func TestStepGameOverKeepsWindowOpen(t *testing.T) {
	r, g := newTestRunner(t, 0, 0, "up", false)

	if err := stepFrames(r, 20); err != nil {
		t.Fatalf("step() failed: %v", err)
	}
	snap := g.Snapshot()
	if snap.Phase != snake.PhaseGameOver || snap.Reason != snake.ReasonWallCollision {
		t.Errorf("phase %s reason %v, expected wall collision game over", snap.Phase, snap.Reason)
	}
}

func TestLayout(t *testing.T) {
	r, _ := newTestRunner(t, 0, 0, "down", false)

	w, h := r.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout() = %dx%d, expected 800x600", w, h)
	}
}
