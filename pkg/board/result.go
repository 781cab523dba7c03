package board

// Outcome represents the decided outcome of a game, if any.
type Outcome uint8

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "*"
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "?"
	}
}

// Reason represents why an Outcome was adjudicated.
type Reason uint8

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	Repetition3
	Repetition5
	NoProgress
	InsufficientMaterial
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return ""
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition3:
		return "threefold repetition"
	case Repetition5:
		return "fivefold repetition"
	case NoProgress:
		return "50-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "?"
	}
}

// Result represents the result of a game, if any.
type Result struct {
	Outcome Outcome
	Reason  Reason
}

func (r Result) String() string {
	if r.Reason == NoReason {
		return r.Outcome.String()
	}
	return r.Outcome.String() + " (" + r.Reason.String() + ")"
}

// Loss returns the outcome for the color to move losing, i.e., the opponent wins.
func Loss(c Color) Outcome {
	if c == White {
		return BlackWins
	}
	return WhiteWins
}
