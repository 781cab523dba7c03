package board

import (
	"fmt"
	"strings"
)

// MoveType classifies a move. The no-progress (halfmove clock) counter is reset by any move
// that is not a Quiet move by a non-Pawn piece.
type MoveType uint8

const (
	Quiet MoveType = iota
	DoublePawnPush
	EnPassantCapture
	CastleKingside
	CastleQueenside
	Capture
	Promotion
	CapturePromotion
)

func (t MoveType) String() string {
	switch t {
	case Quiet:
		return "quiet"
	case DoublePawnPush:
		return "double-push"
	case EnPassantCapture:
		return "en-passant"
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	case Capture:
		return "capture"
	case Promotion:
		return "promotion"
	case CapturePromotion:
		return "capture-promotion"
	default:
		return "?"
	}
}

// Move represents a not-necessarily-legal move along with enough contextual metadata to make
// it: the moving piece, any captured piece and any promotion. 48 bits.
type Move struct {
	Type      MoveType
	From, To  Square
	Piece     Piece // piece making the move
	Promotion Piece // desired piece for promotion, if any
	Capture   Piece // captured piece, if any (NoPiece otherwise)
}

// IsCapture returns true iff the move captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == CapturePromotion || m.Type == EnPassantCapture
}

// IsPromotion returns true iff the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion || m.Type == CapturePromotion
}

// IsCastle returns true iff the move is a castle.
func (m Move) IsCastle() bool {
	return m.Type == CastleKingside || m.Type == CastleQueenside
}

// EnPassantCaptureSquare returns the square of the pawn captured en passant.
func (m Move) EnPassantCaptureSquare() Square {
	if m.To.Rank() == Rank6 {
		return NewSquare(m.To.File(), Rank5)
	}
	return NewSquare(m.To.File(), Rank4)
}

// CastlingRookMove returns the rook's from/to squares for a castle move.
func (m Move) CastlingRookMove() (Square, Square) {
	rank := m.From.Rank()
	if m.Type == CastleKingside {
		return NewSquare(FileH, rank), NewSquare(FileF, rank)
	}
	return NewSquare(FileA, rank), NewSquare(FileD, rank)
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move carries only From/To/Promotion: callers must resolve it against a Position's
// pseudo-legal moves to recover Type/Piece/Capture.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}

	return Move{From: from, To: to}, nil
}

// Equals compares moves by From/To/Promotion, i.e., as the UCI wire format would distinguish them.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.IsPromotion() {
		return strings.ToLower(fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion))
	}
	return strings.ToLower(fmt.Sprintf("%v%v", m.From, m.To))
}
