package board

// PseudoLegalMoves generates all pseudo-legal moves for the side to move, i.e., moves that
// are legal except possibly for leaving the mover's own king in check. Position.Move performs
// the final legality check when the move is made.
func (p *Position) PseudoLegalMoves(turn Color) []Move {
	var moves []Move

	own := p.pieces[turn][NoPiece]
	opp := p.pieces[turn.Opponent()][NoPiece]

	moves = p.genPawnMoves(turn, opp, moves)
	moves = p.genOfficerMoves(turn, Knight, own, opp, moves)
	moves = p.genOfficerMoves(turn, Bishop, own, opp, moves)
	moves = p.genOfficerMoves(turn, Rook, own, opp, moves)
	moves = p.genOfficerMoves(turn, Queen, own, opp, moves)
	moves = p.genOfficerMoves(turn, King, own, opp, moves)
	moves = p.genCastles(turn, moves)

	return moves
}

// LegalMoves generates all legal moves for the side to move, filtering PseudoLegalMoves through
// Position.Move to discard any that leave the mover's own king in check.
func (p *Position) LegalMoves(turn Color) []Move {
	pseudo := p.PseudoLegalMoves(turn)

	moves := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if _, ok := p.Move(m); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

var promotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func (p *Position) genPawnMoves(turn Color, opp Bitboard, moves []Move) []Move {
	all := p.rotated.Mask()
	promoRank := PawnPromotionRank(turn)
	startRank := BitRank(Rank2)
	if turn == Black {
		startRank = BitRank(Rank7)
	}

	pawns := p.pieces[turn][Pawn]
	for pawns != 0 {
		from := pawns.LastPopSquare()
		pawns ^= BitMask(from)

		fromBoard := BitMask(from)

		// Single push, and promotions thereof.
		single := PawnMoveboard(all, turn, fromBoard)
		if single != 0 {
			to := single.LastPopSquare()
			if single&promoRank != 0 {
				for _, promo := range promotionPieces {
					moves = append(moves, Move{Type: Promotion, From: from, To: to, Piece: Pawn, Promotion: promo})
				}
			} else {
				moves = append(moves, Move{Type: Quiet, From: from, To: to, Piece: Pawn})
			}

			// Double push, only possible if the single push succeeded.
			if fromBoard&startRank != 0 {
				if double := PawnMoveboard(all, turn, single); double != 0 {
					moves = append(moves, Move{Type: DoublePawnPush, From: from, To: double.LastPopSquare(), Piece: Pawn})
				}
			}
		}

		// Captures, including en passant.
		attacks := PawnCaptureboard(turn, fromBoard)
		for attacks != 0 {
			to := attacks.LastPopSquare()
			attacks ^= BitMask(to)

			if opp.IsSet(to) {
				_, captured, _ := p.Square(to)
				if BitMask(to)&promoRank != 0 {
					for _, promo := range promotionPieces {
						moves = append(moves, Move{Type: CapturePromotion, From: from, To: to, Piece: Pawn, Promotion: promo, Capture: captured})
					}
				} else {
					moves = append(moves, Move{Type: Capture, From: from, To: to, Piece: Pawn, Capture: captured})
				}
			} else if ep, ok := p.EnPassant(); ok && to == ep {
				moves = append(moves, Move{Type: EnPassantCapture, From: from, To: to, Piece: Pawn, Capture: Pawn})
			}
		}
	}
	return moves
}

func (p *Position) genOfficerMoves(turn Color, piece Piece, own, opp Bitboard, moves []Move) []Move {
	pieces := p.pieces[turn][piece]
	for pieces != 0 {
		from := pieces.LastPopSquare()
		pieces ^= BitMask(from)

		targets := Attackboard(p.rotated, from, piece) &^ own
		for targets != 0 {
			to := targets.LastPopSquare()
			targets ^= BitMask(to)

			if opp.IsSet(to) {
				_, captured, _ := p.Square(to)
				moves = append(moves, Move{Type: Capture, From: from, To: to, Piece: piece, Capture: captured})
			} else {
				moves = append(moves, Move{Type: Quiet, From: from, To: to, Piece: piece})
			}
		}
	}
	return moves
}

func (p *Position) genCastles(turn Color, moves []Move) []Move {
	if turn == White {
		if p.castling.IsAllowed(WhiteKingSideCastle) && p.isCastlePathClear(F1, G1) && p.isCastleSafe(turn, E1, F1, G1) {
			moves = append(moves, Move{Type: CastleKingside, From: E1, To: G1, Piece: King})
		}
		if p.castling.IsAllowed(WhiteQueenSideCastle) && p.isCastlePathClear(D1, C1, B1) && p.isCastleSafe(turn, E1, D1, C1) {
			moves = append(moves, Move{Type: CastleQueenside, From: E1, To: C1, Piece: King})
		}
	} else {
		if p.castling.IsAllowed(BlackKingSideCastle) && p.isCastlePathClear(F8, G8) && p.isCastleSafe(turn, E8, F8, G8) {
			moves = append(moves, Move{Type: CastleKingside, From: E8, To: G8, Piece: King})
		}
		if p.castling.IsAllowed(BlackQueenSideCastle) && p.isCastlePathClear(D8, C8, B8) && p.isCastleSafe(turn, E8, D8, C8) {
			moves = append(moves, Move{Type: CastleQueenside, From: E8, To: C8, Piece: King})
		}
	}
	return moves
}

func (p *Position) isCastlePathClear(squares ...Square) bool {
	for _, sq := range squares {
		if !p.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// isCastleSafe returns true iff none of the king's transit squares (including origin and
// destination) are attacked. The rook's square is not checked, matching standard chess rules.
func (p *Position) isCastleSafe(turn Color, squares ...Square) bool {
	for _, sq := range squares {
		if p.IsAttacked(turn, sq) {
			return false
		}
	}
	return true
}
