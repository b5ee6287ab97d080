package board

// castlingRightsLostAt returns the castling right that is forfeited when a king or rook
// leaves, or is captured on, the given corner/home square.
func castlingRightsLostAt(sq Square) Castling {
	switch sq {
	case E1:
		return WhiteKingside | WhiteQueenside
	case E8:
		return BlackKingside | BlackQueenside
	case A1:
		return WhiteQueenside
	case H1:
		return WhiteKingside
	case A8:
		return BlackQueenside
	case H8:
		return BlackKingside
	default:
		return NoCastling
	}
}

// ApplyMove applies a move to the position without validating it against the legal move
// list. It updates piece placement, castling rights, en-passant target, halfmove/fullmove
// counters, side to move, and recomputes the zobrist key from scratch.
func ApplyMove(p *Position, m Move) {
	applyMove(p, m)
}

func applyMove(p *Position, m Move) {
	side := p.side
	opp := side.Opponent()

	_, moving, ok := p.PieceAt(m.From)
	if !ok {
		panic("board: ApplyMove: no piece on from-square")
	}

	isPawnMoveOrCapture := moving == Pawn || m.Flags.Has(Capture)

	// (2) Remove a captured piece: en-passant victim, or whatever sits on the destination.
	if m.Flags.Has(EnPassant) {
		victim := m.To - 8
		if side == Black {
			victim = m.To + 8
		}
		p.pieces[opp][Pawn] = p.pieces[opp][Pawn].Clear(victim)
	} else if m.Flags.Has(Capture) {
		for k := Pawn; k <= King; k++ {
			if p.pieces[opp][k].IsSet(m.To) {
				p.pieces[opp][k] = p.pieces[opp][k].Clear(m.To)
				break
			}
		}
	}

	// (3) Move the piece, substituting the promotion kind if applicable.
	p.pieces[side][moving] = p.pieces[side][moving].Clear(m.From)
	placed := moving
	if m.Flags.Has(Promotion) {
		placed = m.Promotion
		if placed == None {
			placed = Queen // default promotion if the flag is set without a valid kind
		}
	}
	p.pieces[side][placed] = p.pieces[side][placed].Set(m.To)

	// (4) Castling: also move the rook to its inside square.
	switch {
	case m.Flags.Has(KingCastle):
		rookFrom, rookTo := castleRookSquares(side, true)
		p.pieces[side][Rook] = p.pieces[side][Rook].Clear(rookFrom).Set(rookTo)
	case m.Flags.Has(QueenCastle):
		rookFrom, rookTo := castleRookSquares(side, false)
		p.pieces[side][Rook] = p.pieces[side][Rook].Clear(rookFrom).Set(rookTo)
	}

	// (5) Castling rights: king move, rook move from a corner, or a capture onto a corner.
	p.castling &^= castlingRightsLostAt(m.From)
	p.castling &^= castlingRightsLostAt(m.To)

	// (6) En-passant target.
	if m.Flags.Has(DoublePawn) {
		if side == White {
			p.epTarget = m.From + 8
		} else {
			p.epTarget = m.From - 8
		}
	} else {
		p.epTarget = NoSquare
	}

	// (7) Halfmove clock.
	if isPawnMoveOrCapture {
		p.halfmove = 0
	} else if p.halfmove < maxHalfmoveClock {
		p.halfmove++
	}

	// (8) Fullmove number increments after Black's move.
	if side == Black {
		p.fullmove++
	}

	// (9) Flip side to move and refresh derived state.
	p.side = opp
	p.refresh()
}

// castleRookSquares returns the rook's origin and destination for a castling move.
func castleRookSquares(side Side, kingside bool) (Square, Square) {
	if side == White {
		if kingside {
			return H1, F1
		}
		return A1, D1
	}
	if kingside {
		return H8, F8
	}
	return A8, D8
}

// ApplyNullMove flips side to move, clears the en-passant target and increments the
// halfmove clock without moving any piece. Used by null-move pruning to probe whether a
// do-nothing response already refutes the position.
func ApplyNullMove(p *Position) {
	p.epTarget = NoSquare
	if p.halfmove < maxHalfmoveClock {
		p.halfmove++
	}
	if p.side == Black {
		p.fullmove++
	}
	p.side = p.side.Opponent()
	p.refresh()
}

// MakeMove validates the candidate against the position's legal move list (matching on
// From/To and, for promotions, the promotion kind) and applies the canonical legal move.
// Returns false, leaving the position unchanged, if the candidate is not legal.
func MakeMove(p *Position, m Move) bool {
	var legal MoveList
	GenerateLegalMoves(p, &legal)

	canonical, ok := legal.Contains(m)
	if !ok {
		return false
	}
	applyMove(p, canonical)
	return true
}
