// Package eval contains static position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/walleye-engine/walleye/pkg/board"
)

// Evaluator is a static position evaluator. It returns the score from the side-to-move
// perspective: positive favors the side to move.
type Evaluator interface {
	Evaluate(ctx context.Context, pos *board.Position, turn board.Color) Score
}

// Standard is the material + piece-square-table evaluator described by Walleye's design: sum,
// over all non-empty squares, of material plus positional bonus, signed by color, returned
// from the side-to-move perspective.
type Standard struct {
	Noise Random
}

func (s Standard) Evaluate(ctx context.Context, pos *board.Position, turn board.Color) Score {
	var white Score
	endgame := isEndgame(pos)

	for c := board.ZeroColor; c < board.NumColors; c++ {
		sign := Score(1)
		if c == board.Black {
			sign = -1
		}

		for p := board.Pawn; p < board.NumPieces; p++ {
			bb := pos.Piece(c, p)
			for bb != 0 {
				sq := bb.LastPopSquare()
				bb ^= board.BitMask(sq)

				white += sign * (NominalValue(p) + pst(c, p, sq, endgame))
			}
		}
	}

	score := white
	if turn == board.Black {
		score = -white
	}
	return Crop(score + s.Noise.Evaluate(ctx))
}

// Mate returns the score for being checkmated in the current position: -MateScore. It carries no
// ply discount itself; the search makes a faster mate preferred by applying
// IncrementMateDistance once per ply as the score is negated up the tree.
func Mate() Score {
	return -MateScore
}

// Stalemate, and the 50-move and repetition draws, all score as exactly zero.
func Draw() Score {
	return ZeroScore
}
