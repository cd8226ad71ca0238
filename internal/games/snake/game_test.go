package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	cfg.StartRow = 5
	cfg.StartCol = 5
	return cfg
}

// stepFrames runs n frames with empty input.
func stepFrames(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

// framesPerTick is 150ms at 60 FPS rounded up to whole frames.
const framesPerTick = 10

func TestDeterminism(t *testing.T) {
	cfg := testConfig(12345)

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		input.Clear()
		if i == 20 {
			input.Set(core.ActionRight)
		}
		if i == 40 {
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Head != snap2.Head {
		t.Errorf("Head position mismatch: %v vs %v", snap1.Head, snap2.Head)
	}
	if snap1.Dir != snap2.Dir {
		t.Errorf("Direction mismatch: %v vs %v", snap1.Dir, snap2.Dir)
	}
	if snap1.Apple != snap2.Apple {
		t.Errorf("Apple position mismatch: %v vs %v", snap1.Apple, snap2.Apple)
	}
}

func TestResetStartsWithLengthZero(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	if g.Err() != nil {
		t.Fatalf("Reset() error: %v", g.Err())
	}
	snap := g.Snapshot()
	if snap.Head != core.Pos(5, 5) || snap.Dir != DirDown || snap.Length != 0 || len(snap.Body) != 0 {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
	if snap.Width != 20 || snap.Height != 15 {
		t.Errorf("grid = %dx%d, expected 20x15", snap.Width, snap.Height)
	}
	if !snap.HasApple || snap.Apple == snap.Head {
		t.Errorf("apple %v must exist and avoid the head", snap.Apple)
	}
	if snap.Phase != PhasePlaying {
		t.Errorf("phase = %v, expected playing", snap.Phase)
	}
}

func TestResetInvalidArena(t *testing.T) {
	cfg := testConfig(1)
	cfg.StartRow = 99

	g := New()
	g.Reset(cfg)

	if g.Err() == nil {
		t.Fatal("expected an error for a start outside the grid")
	}
	res := g.Step(core.NewInputFrame())
	if res.Ticks != 0 {
		t.Error("a game without a board must not advance")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Invalid arena") {
		t.Error("expected an invalid arena overlay")
	}
}

func TestStepAdvancesOncePerTickInterval(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	ticks := 0
	in := core.NewInputFrame()
	for i := 1; i <= framesPerTick*3; i++ {
		res := g.Step(in)
		if res.Ticks == 1 && i%framesPerTick != 0 {
			t.Fatalf("tick applied on frame %d, expected every %d frames", i, framesPerTick)
		}
		ticks += res.Ticks
	}

	if ticks != 3 {
		t.Errorf("ticks after %d frames = %d, expected 3", framesPerTick*3, ticks)
	}
	if head := g.Snapshot().Head; head != core.Pos(8, 5) {
		t.Errorf("head = %v, expected (8,5) after three moves down", head)
	}
}

func TestStepUsesElapsedTime(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	in := core.NewInputFrame()
	in.Elapsed = 100 * time.Millisecond
	if res := g.Step(in); res.Ticks != 0 {
		t.Fatal("100ms should not reach the 150ms tick interval")
	}
	if res := g.Step(in); res.Ticks != 1 {
		t.Fatal("200ms accumulated should produce a tick")
	}

	// A long stall still applies a single step.
	in.Elapsed = time.Second
	if res := g.Step(in); res.Ticks != 1 {
		t.Errorf("Ticks = %d after a stall, expected 1", res.Ticks)
	}
	if tick := g.Snapshot().Tick; tick != 2 {
		t.Errorf("Tick = %d, expected 2", tick)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	if g.Snapshot().Dir != DirDown {
		t.Fatalf("Expected initial direction Down, got %v", g.Snapshot().Dir)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)
	stepFrames(g, framesPerTick)

	if d := g.Snapshot().Dir; d != DirDown {
		t.Errorf("Should not allow immediate reversal from Down to Up, got %v", d)
	}

	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)
	stepFrames(g, framesPerTick)

	if d := g.Snapshot().Dir; d != DirLeft {
		t.Errorf("Expected direction Left, got %v", d)
	}
}

func TestLastDirectionInFrameWins(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	input.Set(core.ActionLeft)
	g.Step(input)
	stepFrames(g, framesPerTick)

	if d := g.Snapshot().Dir; d != DirLeft {
		t.Errorf("direction = %v, expected the later key (left)", d)
	}
}

func TestReversalLastInFrameKeepsDirection(t *testing.T) {
	g := New()
	cfg := testConfig(3)
	cfg.StartDir = "right"
	g.Reset(cfg)

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	input.Set(core.ActionLeft)
	g.Step(input)
	stepFrames(g, framesPerTick)

	snap := g.Snapshot()
	if snap.Dir != DirRight || snap.Head != core.Pos(5, 6) {
		t.Errorf("dir %v head %v, expected right at (5,6)", snap.Dir, snap.Head)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused || g.Snapshot().Phase != PhasePaused {
		t.Fatal("game should be paused")
	}
	stepFrames(g, framesPerTick*5)
	if tick := g.Snapshot().Tick; tick != 0 {
		t.Errorf("paused game advanced %d ticks", tick)
	}

	g.Step(pause)
	if g.State().Paused {
		t.Fatal("second pause should resume")
	}
	stepFrames(g, framesPerTick)
	if tick := g.Snapshot().Tick; tick != 1 {
		t.Errorf("Tick = %d after resuming, expected 1", tick)
	}
}

func TestGameOverOnWall(t *testing.T) {
	cfg := testConfig(1)
	cfg.StartRow = 0
	cfg.StartDir = "up"

	g := New()
	g.Reset(cfg)
	stepFrames(g, framesPerTick)

	if !g.State().GameOver {
		t.Fatal("moving up from row 0 should end the game")
	}
	if g.Outcome() != GameOver(ReasonWallCollision) {
		t.Errorf("Outcome() = %v, expected wall collision", g.Outcome())
	}
	snap := g.Snapshot()
	if snap.Phase != PhaseGameOver || snap.Reason != ReasonWallCollision {
		t.Errorf("snapshot phase %v reason %v", snap.Phase, snap.Reason)
	}

	// The simulation stops advancing.
	stepFrames(g, framesPerTick*3)
	if tick := g.Snapshot().Tick; tick != 1 {
		t.Errorf("Tick = %d, a finished game must not advance", tick)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	cfg := testConfig(1)
	cfg.StartRow = 0
	cfg.StartDir = "up"

	g := New()
	g.Reset(cfg)
	stepFrames(g, framesPerTick)
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.State().GameOver {
		t.Error("restart should clear game over")
	}
	if g.Outcome() != Continue {
		t.Errorf("Outcome() = %v after restart", g.Outcome())
	}
	if snap := g.Snapshot(); snap.Tick != 0 || snap.Length != 0 || snap.Head != core.Pos(0, 5) {
		t.Errorf("unexpected snapshot after restart %+v", snap)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	stepFrames(g, framesPerTick)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if tick := g.Snapshot().Tick; tick != 1 {
		t.Errorf("restart while playing must be ignored, tick = %d", tick)
	}
}

func TestEatingScores(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.state.apple = core.Pos(6, 5)

	stepFrames(g, framesPerTick)

	if score := g.State().Score; score != 1 {
		t.Errorf("Score = %d, expected 1 after eating", score)
	}
	if snap := g.Snapshot(); snap.Length != 1 || len(snap.Body) != 1 || snap.Body[0] != core.Pos(5, 5) {
		t.Errorf("unexpected snapshot after eating %+v", snap)
	}
}

func TestWinOnFullBoard(t *testing.T) {
	cfg := testConfig(1)
	cfg.GridW = 2
	cfg.GridH = 1
	cfg.StartRow = 0
	cfg.StartCol = 0
	cfg.StartDir = "right"

	g := New()
	g.Reset(cfg)
	stepFrames(g, framesPerTick)

	if !g.Won() || !g.State().GameOver {
		t.Fatal("filling the board should win the game")
	}
	if g.Snapshot().Phase != PhaseWin {
		t.Errorf("phase = %v, expected win", g.Snapshot().Phase)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.state.apple = core.Pos(0, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}

	// Board is 42 wide, centered on 80 columns, starting below the HUD.
	board := core.NewRect(19, 1, 42, 17)
	if screen.Get(board.X, board.Y) != '┌' || screen.Get(board.Right()-1, board.Bottom()-1) != '┘' {
		t.Error("arena border not drawn where expected")
	}

	hx, hy := cellOrigin(board, core.Pos(5, 5))
	head := screen.GetCell(hx, hy)
	if head.Rune != '█' || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", head)
	}
	ax, ay := cellOrigin(board, core.Pos(0, 0))
	if screen.Get(ax, ay) != '(' || screen.Get(ax+1, ay) != ')' {
		t.Errorf("apple cell = %q%q", screen.Get(ax, ay), screen.Get(ax+1, ay))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	screen := core.NewScreen(30, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small overlay")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	cfg := testConfig(1)
	cfg.StartRow = 0
	cfg.StartDir = "up"

	g := New()
	g.Reset(cfg)
	stepFrames(g, framesPerTick)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over: wall collision") {
		t.Error("expected the game over overlay")
	}
}
