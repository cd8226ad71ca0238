package snake

// Reason explains why a game ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonSelfCollision
	ReasonWallCollision
)

func (r Reason) String() string {
	switch r {
	case ReasonSelfCollision:
		return "self collision"
	case ReasonWallCollision:
		return "wall collision"
	default:
		return "none"
	}
}

// Outcome is the result of one simulation step.
type Outcome struct {
	GameOver bool
	Reason   Reason
}

// Continue is the outcome of a committed move.
var Continue = Outcome{}

// GameOver returns a terminal outcome with the given reason.
func GameOver(r Reason) Outcome {
	return Outcome{GameOver: true, Reason: r}
}

func (o Outcome) String() string {
	if !o.GameOver {
		return "continue"
	}
	return "game over: " + o.Reason.String()
}
