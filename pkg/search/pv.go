package search

import (
	"fmt"
	"time"

	"github.com/walleye-engine/walleye/pkg/board"
	"github.com/walleye-engine/walleye/pkg/eval"
)

// PV is a principal variation reported by a search: the best line found so far, along with the
// statistics to go with it.
type PV struct {
	Depth uint
	Nodes uint64
	Score eval.Score
	Moves []board.Move
	Time  time.Duration
}

func (pv PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v pv=%v", pv.Depth, pv.Score, pv.Nodes, pv.Time, board.PrintMoves(pv.Moves))
}
