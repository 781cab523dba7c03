package eval

import "github.com/walleye-engine/walleye/pkg/board"

// Material values in centipawns, conventional for a classical evaluation.
const (
	PawnValue   Score = 100
	KnightValue Score = 320
	BishopValue Score = 330
	RookValue   Score = 500
	QueenValue  Score = 900
	KingValue   Score = 20000
)

// NominalValue returns the absolute material value in centipawns of a piece kind.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return PawnValue
	case board.Bishop:
		return BishopValue
	case board.Knight:
		return KnightValue
	case board.Rook:
		return RookValue
	case board.Queen:
		return QueenValue
	case board.King:
		return KingValue
	default:
		return 0
	}
}

// NominalValueGain is the material gained by making the move, from the mover's perspective.
func NominalValueGain(m board.Move) Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture, board.EnPassantCapture:
		return NominalValue(m.Capture)
	default:
		return 0
	}
}

// isEndgame implements the phase criterion: endgame iff both sides have no queens, or each
// side has at most one rook and at most one minor piece (bishop or knight) besides.
func isEndgame(pos *board.Position) bool {
	if pos.Piece(board.White, board.Queen) == 0 && pos.Piece(board.Black, board.Queen) == 0 {
		return true
	}
	return sideIsLight(pos, board.White) && sideIsLight(pos, board.Black)
}

func sideIsLight(pos *board.Position, c board.Color) bool {
	rooks := pos.Piece(c, board.Rook).PopCount()
	minors := pos.Piece(c, board.Bishop).PopCount() + pos.Piece(c, board.Knight).PopCount()
	return rooks <= 1 && minors <= 1
}
