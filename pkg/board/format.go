package board

import "strings"

// FormatMoves joins moves into a space-separated string using the given per-move formatter.
func FormatMoves(moves []Move, fn func(Move) string) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fn(m)
	}
	return strings.Join(parts, " ")
}

// PrintMoves joins moves into a space-separated string using Move.String.
func PrintMoves(moves []Move) string {
	return FormatMoves(moves, Move.String)
}
