package search

import (
	"fmt"
	"time"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/walleye-engine/walleye/pkg/board"
)

// Options configure a single search launch. The zero value means "no limit": search until
// Halt is called.
type Options struct {
	// DepthLimit caps the iterative-deepening search at the given depth, in plies.
	DepthLimit lang.Optional[uint]
	// NodeLimit caps the search at approximately the given number of visited nodes.
	NodeLimit lang.Optional[uint64]
	// TimeControl, if set, derives soft/hard time limits for the side to move.
	TimeControl *TimeControl
}

func (o Options) String() string {
	depth := "-"
	if d, ok := o.DepthLimit.V(); ok {
		depth = fmt.Sprintf("%v", d)
	}
	return fmt.Sprintf("{depth=%v, tc=%v}", depth, o.TimeControl)
}

// TimeControl describes the remaining clock time for each side and the number of moves left
// until the next time control, mirroring the UCI "go wtime/btime/movestogo" parameters.
type TimeControl struct {
	White, Black time.Duration
	// Moves is the number of moves remaining until the next time control. Zero means sudden
	// death: the engine assumes defaultMovesToGo remain.
	Moves int
}

func (tc *TimeControl) String() string {
	if tc == nil {
		return "none"
	}
	return fmt.Sprintf("{white=%v, black=%v, moves=%v}", tc.White, tc.Black, tc.Moves)
}

// defaultMovesToGo is assumed remaining under sudden death, absent a movestogo hint.
const defaultMovesToGo = 40

// Limits returns the soft and hard time budgets for the side to move: soft is the time the
// iterative-deepening loop tries to stop within after completing a depth, hard is the time
// a search is forcibly cut off, even mid-depth. Zero means unlimited.
func (tc *TimeControl) Limits(c board.Color) (soft, hard time.Duration) {
	if tc == nil {
		return 0, 0
	}

	remaining := tc.White
	if c == board.Black {
		remaining = tc.Black
	}
	if remaining <= 0 {
		return 0, 0
	}

	movesToGo := tc.Moves
	if movesToGo <= 0 {
		movesToGo = defaultMovesToGo
	}

	soft = remaining / time.Duration(2*movesToGo)
	hard = soft * 3
	return soft, hard
}
