package search

import "github.com/walleye-engine/walleye/pkg/board"

// Perft counts the number of leaf nodes reachable in exactly depth plies from the board's
// current position, a standard move-generator correctness check.
//
// Grounded on the teacher's cmd/perft/main.go recursive counting shape, adapted to recurse over
// board.Board.PushMove/PopMove so perft exercises the same make/unmake path the search uses.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var count uint64
	for _, m := range b.Position().LegalMoves(b.Turn()) {
		b.PushMove(m)
		count += Perft(b, depth-1)
		b.PopMove()
	}
	return count
}

// DivideEntry is a single root move's contribution to a PerftDivide breakdown.
type DivideEntry struct {
	Move  board.Move
	Nodes uint64
}

// PerftDivide breaks a Perft(b, depth) count down by root move, which is the usual way to find
// where a move generator diverges from a reference engine.
func PerftDivide(b *board.Board, depth int) []DivideEntry {
	if depth == 0 {
		return nil
	}

	var entries []DivideEntry
	for _, m := range b.Position().LegalMoves(b.Turn()) {
		b.PushMove(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(b, depth-1)})
		b.PopMove()
	}
	return entries
}
