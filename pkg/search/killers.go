package search

import "github.com/walleye-engine/walleye/pkg/board"

// MaxPly bounds the killer-move table: no search in this engine plies deeper than this.
const MaxPly = 128

// killers holds, per ply, the two most recent quiet moves that caused a beta cutoff. Quiet
// moves matching a killer are ordered ahead of other quiet moves, since a move that refuted a
// sibling position is likely to be strong here too.
//
// Grounded on hailam-chessplay's internal/engine/ordering.go killer table; the teacher itself
// has no killer-move heuristic.
type killers struct {
	moves [MaxPly][2]board.Move
}

func newKillers() *killers {
	return &killers{}
}

// Record registers m as a killer at ply, unless it is already the most recent one.
func (k *killers) Record(ply int, m board.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if k.moves[ply][0].Equals(m) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// IsKiller returns true iff m is one of the two killers recorded at ply.
func (k *killers) IsKiller(ply int, m board.Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	return k.moves[ply][0].Equals(m) || k.moves[ply][1].Equals(m)
}
