// Package snake implements the classic single-player Snake game: a grid
// arena, a snake that grows by eating apples, and game over on wall or
// self collision.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "snake"

// Game drives a State from frame input: it buffers direction changes,
// advances the simulation once per tick interval and renders the arena.
type Game struct {
	cfg   core.RuntimeConfig
	rng   *rand.Rand
	state *State
	err   error

	frame   uint64        // Frames stepped since reset
	tick    uint64        // Simulation steps applied since reset
	elapsed time.Duration // Time accumulated toward the next tick

	paused  bool
	over    bool
	won     bool
	outcome Outcome
}

// New creates a Snake game. Reset must be called before stepping it.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new game with a snake of length 0 and a fresh apple.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frame = 0
	g.tick = 0
	g.elapsed = 0
	g.paused = false
	g.over = false
	g.won = false
	g.outcome = Continue

	dir, err := ParseDirection(cfg.StartDir)
	if err != nil {
		dir = DirDown
	}
	g.state, g.err = NewState(StateOptions{
		Width:     cfg.GridW,
		Height:    cfg.GridH,
		Start:     core.Pos(cfg.StartRow, cfg.StartCol),
		Direction: dir,
	}, g.rng)
}

// Err returns the error that prevented the last Reset from building a board.
func (g *Game) Err() error {
	return g.err
}

// Step consumes one frame of input and advances the simulation when a full
// tick interval has accumulated.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{State: g.State()}
	}
	g.frame++

	if in.Has(core.ActionRestart) && g.over {
		cfg := g.cfg
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}
	if g.over || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	elapsed := in.Elapsed
	if elapsed <= 0 {
		elapsed = g.cfg.FrameDuration()
	}
	g.elapsed += elapsed

	ticks := 0
	if g.elapsed >= g.cfg.TickInterval {
		g.elapsed = 0
		g.advance()
		ticks = 1
	}

	return core.StepResult{State: g.State(), Ticks: ticks}
}

// processInput forwards direction actions in arrival order, so the last
// accepted request of the frame wins.
func (g *Game) processInput(in core.InputFrame) {
	for _, a := range in.Sequence {
		switch a {
		case core.ActionUp:
			g.state.SetRequestedDirection(DirUp)
		case core.ActionDown:
			g.state.SetRequestedDirection(DirDown)
		case core.ActionLeft:
			g.state.SetRequestedDirection(DirLeft)
		case core.ActionRight:
			g.state.SetRequestedDirection(DirRight)
		}
	}
}

// advance runs one simulation step and the apple check that follows it.
func (g *Game) advance() {
	g.tick++
	out := g.state.Advance()
	if out.GameOver {
		g.over = true
		g.outcome = out
		return
	}
	if g.state.TryEatApple() && g.state.Full() {
		g.over = true
		g.won = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.state != nil {
		score = g.state.TargetLength()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// Outcome returns the outcome that ended the game, or Continue while it runs.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Won reports whether the snake filled the whole arena.
func (g *Game) Won() bool {
	return g.won
}

// DebugState returns a one-line description of the game for logs.
func (g *Game) DebugState() string {
	if g.state == nil {
		return fmt.Sprintf("no board: %v", g.err)
	}
	return fmt.Sprintf("tick=%d head=%v dir=%s length=%d apple=%v %s",
		g.tick, g.state.Head(), g.state.Direction(), g.state.TargetLength(), g.state.Apple(), g.outcome)
}
