package search

import (
	"github.com/walleye-engine/walleye/pkg/board"
	"github.com/walleye-engine/walleye/pkg/eval"
)

// quiescence extends the search along capture and promotion lines only, past the
// depth-limited horizon, to avoid the horizon effect of cutting off mid-exchange. A stand-pat
// score (the static evaluation) bounds the search: if the side to move need not capture, it can
// simply decline and keep at least that score.
func (s *searcher) quiescence(b *board.Board, alpha, beta eval.Score, ply int) (eval.Score, []board.Move) {
	s.nodes++
	if s.pollCancelled() {
		return s.ev.Evaluate(s.ctx, b.Position(), b.Turn()), nil
	}

	if result := b.Result(); result.Outcome != board.Undecided {
		return eval.Draw(), nil
	}

	moves := b.Position().LegalMoves(b.Turn())
	if len(moves) == 0 {
		if b.Position().IsChecked(b.Turn()) {
			return eval.Mate(), nil
		}
		return eval.Draw(), nil
	}

	standPat := s.ev.Evaluate(s.ctx, b.Position(), b.Turn())
	if ply >= MaxPly || standPat >= beta {
		return standPat, nil
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := capturesAndPromotions(moves)
	list := board.NewMoveList(captures, mvvLva)

	bestScore := standPat
	var best []board.Move

	for {
		m, ok := list.Next()
		if !ok {
			break
		}

		b.PushMove(m)
		score, childPV := s.quiescence(b, beta.Negate(), alpha.Negate(), ply+1)
		score = eval.IncrementMateDistance(score.Negate())
		b.PopMove()

		if score > bestScore {
			bestScore = score
			best = append([]board.Move{m}, childPV...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return bestScore, best
}

func capturesAndPromotions(moves []board.Move) []board.Move {
	out := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() || m.IsPromotion() {
			out = append(out, m)
		}
	}
	return out
}
