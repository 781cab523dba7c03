package search

import (
	"github.com/walleye-engine/walleye/pkg/board"
)

// pieceRank is a small ordinal value used only for move ordering: it is not a material value
// (see eval.NominalValue for that), just a victim/attacker ranking kept well within
// board.MovePriority's int16 range.
func pieceRank(p board.Piece) board.MovePriority {
	switch p {
	case board.Pawn:
		return 1
	case board.Knight:
		return 2
	case board.Bishop:
		return 3
	case board.Rook:
		return 4
	case board.Queen:
		return 5
	case board.King:
		return 6
	default:
		return 0
	}
}

// mvvLva scores a capture by "most valuable victim, least valuable attacker": 10x the victim's
// rank minus the attacker's, so that e.g. PxQ always outranks QxP. Grounded on
// hailam-chessplay's internal/engine/ordering.go MVV-LVA table, rescaled from centipawn
// material values (which would overflow board.MovePriority's int16) to small ordinal ranks —
// the range is always in [4, 49], well inside the gap between the tiers below.
func mvvLva(m board.Move) board.MovePriority {
	victim := m.Capture
	if m.Type == board.EnPassantCapture {
		victim = board.Pawn
	}
	return 10*pieceRank(victim) - pieceRank(m.Piece)
}

// orderingTier biases the priority queue: PV move first (via board.First), then
// captures/promotions by MVV-LVA, then killer quiet moves, then everything else. The gap
// between tiers (4096) comfortably clears mvvLva's [4, 49] range, and tierCapture's maximum
// (8192+49=8241) stays well under math.MaxInt16.
const (
	tierKiller  board.MovePriority = 1 << 12
	tierCapture board.MovePriority = 1 << 13
)

// orderMoves returns a priority function for ranking moves at the given ply: any move matching
// hint (the previous iteration's move at this ply, if known) first, then captures and
// promotions by MVV-LVA, then recorded killer moves, then remaining quiet moves in generation
// order.
func orderMoves(k *killers, ply int, hint board.Move, hasHint bool) board.MovePriorityFn {
	fn := func(m board.Move) board.MovePriority {
		switch {
		case m.IsCapture() || m.IsPromotion():
			return tierCapture + mvvLva(m)
		case k.IsKiller(ply, m):
			return tierKiller
		default:
			return 0
		}
	}
	if hasHint {
		return board.First(hint, fn)
	}
	return fn
}
