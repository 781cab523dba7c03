package search

import (
	"context"

	"github.com/walleye-engine/walleye/pkg/board"
	"github.com/walleye-engine/walleye/pkg/eval"
)

// nodePollInterval is how often, in visited nodes, the search checks ctx for cancellation.
const nodePollInterval = 4096

// Search is a root search algorithm: given a board and a depth in plies, it returns the node
// count, score and principal variation found, all from the side-to-move's perspective. hint, if
// non-nil, is the principal variation found by a prior (typically shallower) iteration at this
// same root, searched first at each ply it covers.
type Search interface {
	Search(ctx context.Context, ev eval.Evaluator, b *board.Board, depth uint, hint []board.Move) (nodes uint64, score eval.Score, pv []board.Move, err error)
}

// AlphaBeta is a fail-soft negamax alpha-beta search with principal variation search (PVS),
// quiescence extension at the leaves, and MVV-LVA/killer move ordering.
//
// Grounded on the teacher's pkg/search/alphabeta.go and pvs.go recursion shape, rebuilt to
// recurse over board.Board.PushMove/PopMove (rather than hand-rolled make/unmake of
// *board.Position) so perft and search share the exact same move-application path.
type AlphaBeta struct{}

func (AlphaBeta) Search(ctx context.Context, ev eval.Evaluator, b *board.Board, depth uint, hint []board.Move) (uint64, eval.Score, []board.Move, error) {
	s := &searcher{ctx: ctx, ev: ev, killers: newKillers(), hint: hint}

	score, pv := s.negamax(b, int(depth), eval.NegInfScore, eval.InfScore, 0)

	if s.cancelled {
		return s.nodes, score, pv, context.Canceled
	}
	return s.nodes, score, pv, nil
}

type searcher struct {
	ctx     context.Context
	ev      eval.Evaluator
	killers *killers
	hint    []board.Move // prior iteration's PV, searched first at each ply it covers

	nodes     uint64
	cancelled bool
}

func (s *searcher) pollCancelled() bool {
	if s.cancelled {
		return true
	}
	if s.nodes%nodePollInterval == 0 && s.ctx.Err() != nil {
		s.cancelled = true
	}
	return s.cancelled
}

// negamax searches the given board to depth plies (0 triggers quiescence), returning the score
// and principal variation from the perspective of the side to move. alpha/beta bound the
// search window; ply is the distance from the search root, used for killer-move bookkeeping and
// mate-distance scoring.
func (s *searcher) negamax(b *board.Board, depth int, alpha, beta eval.Score, ply int) (eval.Score, []board.Move) {
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

	if depth <= 0 {
		return s.quiescence(b, alpha, beta, ply)
	}

	var hintMove board.Move
	hasHint := ply < len(s.hint)
	if hasHint {
		hintMove = s.hint[ply]
	}
	board.SortByPriority(moves, orderMoves(s.killers, ply, hintMove, hasHint))

	var best []board.Move
	bestScore := eval.NegInfScore
	first := true

	for _, m := range moves {
		b.PushMove(m)
		var score eval.Score
		var childPV []board.Move

		if first {
			score, childPV = s.negamax(b, depth-1, beta.Negate(), alpha.Negate(), ply+1)
			score = score.Negate()
		} else {
			// PVS: search with a null window first, re-search in full only if it fails high.
			score, childPV = s.negamax(b, depth-1, alpha.Negate()-1, alpha.Negate(), ply+1)
			score = score.Negate()
			if score > alpha && score < beta {
				score, childPV = s.negamax(b, depth-1, beta.Negate(), alpha.Negate(), ply+1)
				score = score.Negate()
			}
		}
		b.PopMove()
		first = false

		score = eval.IncrementMateDistance(score)

		if score > bestScore {
			bestScore = score
			best = append([]board.Move{m}, childPV...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.IsCapture() && !m.IsPromotion() {
				s.killers.Record(ply, m)
			}
			break
		}
	}

	return bestScore, best
}
