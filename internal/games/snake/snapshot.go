package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Phase represents the current game phase.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseWin      Phase = "win"
)

// Snapshot is a read-only copy of everything a renderer needs, in grid
// coordinates. It is also used for determinism testing.
type Snapshot struct {
	Tick     uint64
	Width    int
	Height   int
	Head     core.GridPos
	Body     []core.GridPos
	Apple    core.GridPos
	HasApple bool
	Dir      Direction
	Length   int // Target length, which is also the score
	Phase    Phase
	Reason   Reason
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Phase: PhaseGameOver}
	}

	phase := PhasePlaying
	switch {
	case g.won:
		phase = PhaseWin
	case g.over:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Width:    g.state.Width(),
		Height:   g.state.Height(),
		Head:     g.state.Head(),
		Body:     g.state.Body(),
		Apple:    g.state.Apple(),
		HasApple: g.state.HasApple(),
		Dir:      g.state.Direction(),
		Length:   g.state.TargetLength(),
		Phase:    phase,
		Reason:   g.outcome.Reason,
	}
}
