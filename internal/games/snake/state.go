package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	// ErrInvalidGrid is returned when the arena has no cells.
	ErrInvalidGrid = errors.New("snake: grid must be at least 1x1")
	// ErrStartOutOfBounds is returned when the start cell is outside the arena.
	ErrStartOutOfBounds = errors.New("snake: start position outside the grid")
)

// StateOptions configures a new State.
type StateOptions struct {
	Width     int // Columns
	Height    int // Rows
	Start     core.GridPos
	Direction Direction
}

// State owns the snake geometry and the apple, and applies one simulation
// step per Advance call. It is not safe for concurrent use.
type State struct {
	width  int
	height int
	rng    *rand.Rand

	head         core.GridPos
	body         []core.GridPos // Front is the segment closest to the head
	direction    Direction
	pending      Direction
	hasPending   bool
	targetLength int
	lastVacated  core.GridPos

	apple    core.GridPos
	hasApple bool
}

// NewState creates a snake of length 0 at opts.Start and places the first apple.
func NewState(opts StateOptions, rng *rand.Rand) (*State, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, ErrInvalidGrid
	}
	if !opts.Start.In(opts.Width, opts.Height) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, opts.Start, opts.Width, opts.Height)
	}
	if !opts.Direction.Valid() {
		return nil, fmt.Errorf("snake: invalid start direction %d", opts.Direction)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	s := &State{
		width:       opts.Width,
		height:      opts.Height,
		rng:         rng,
		head:        opts.Start,
		direction:   opts.Direction,
		lastVacated: opts.Start,
	}
	s.placeApple()
	return s, nil
}

// SetRequestedDirection records the latest direction request since the last
// tick; the last request wins. Advance drops it if it reverses the active
// direction.
func (s *State) SetRequestedDirection(d Direction) {
	if !d.Valid() {
		return
	}
	s.pending = d
	s.hasPending = true
}

// Advance applies the pending direction and moves the head one cell.
// On collision the move is not committed and a game-over outcome is returned.
func (s *State) Advance() Outcome {
	if s.hasPending {
		if s.pending != s.direction.Opposite() {
			s.direction = s.pending
		}
		s.hasPending = false
	}

	dRow, dCol := s.direction.Delta()
	next := s.head.Add(dRow, dCol)

	// Checked against the body before this move shifts it.
	if slices.Contains(s.body, next) {
		return GameOver(ReasonSelfCollision)
	}
	if !next.In(s.width, s.height) {
		return GameOver(ReasonWallCollision)
	}

	s.lastVacated = s.head
	s.head = next
	s.body = slices.Insert(s.body, 0, s.lastVacated)
	if len(s.body) > s.targetLength {
		s.body = s.body[:len(s.body)-1]
	}
	return Continue
}

// TryEatApple grows the snake and relocates the apple when the head is on it.
// It reports whether the apple was eaten.
func (s *State) TryEatApple() bool {
	if !s.hasApple || s.head != s.apple {
		return false
	}
	s.targetLength++
	s.body = append(s.body, s.lastVacated)
	s.placeApple()
	return true
}

// placeApple picks uniformly among the free cells. When none is left the
// apple is removed and Full reports true.
func (s *State) placeApple() {
	free := make([]core.GridPos, 0, max(0, s.width*s.height-len(s.body)-1))
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			p := core.Pos(row, col)
			if !s.Occupied(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		s.hasApple = false
		return
	}
	s.apple = free[s.rng.Intn(len(free))]
	s.hasApple = true
}

// Occupied reports whether the head or a body segment is on p.
func (s *State) Occupied(p core.GridPos) bool {
	return p == s.head || slices.Contains(s.body, p)
}

// InBounds reports whether p is inside the arena.
func (s *State) InBounds(p core.GridPos) bool {
	return p.In(s.width, s.height)
}

// Head returns the head position.
func (s *State) Head() core.GridPos { return s.head }

// Body returns a copy of the body segments, nearest to the head first.
func (s *State) Body() []core.GridPos { return slices.Clone(s.body) }

// Apple returns the apple position. Only meaningful when HasApple is true.
func (s *State) Apple() core.GridPos { return s.apple }

// HasApple reports whether an apple is on the board.
func (s *State) HasApple() bool { return s.hasApple }

// Full reports whether the snake covers every cell.
func (s *State) Full() bool { return !s.hasApple }

// Direction returns the active direction.
func (s *State) Direction() Direction { return s.direction }

// TargetLength returns the number of body segments the snake grows to.
func (s *State) TargetLength() int { return s.targetLength }

// LastVacated returns the cell the head left on the most recent move.
func (s *State) LastVacated() core.GridPos { return s.lastVacated }

// Width returns the arena width in cells.
func (s *State) Width() int { return s.width }

// Height returns the arena height in cells.
func (s *State) Height() int { return s.height }
