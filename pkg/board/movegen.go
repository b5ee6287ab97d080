package board

// promotionKinds are the four pieces a pawn may promote to, in the order moves are emitted.
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// GenerateLegalMoves produces the fully legal move list for the side to move: every
// pseudo-legal move is generated and then filtered by simulating it and rejecting any
// that leaves the mover's own king attacked. list is reset before use.
func GenerateLegalMoves(p *Position, list *MoveList) {
	var pseudo MoveList
	generatePseudoLegal(p, &pseudo)

	list.Reset()
	mover := p.side
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		next := p.Clone()
		applyMove(next, m)
		if !next.InCheck(mover) {
			list.Add(m)
		}
	}
}

// generatePseudoLegal produces every pseudo-legal move (movement-rule legal, possibly
// leaving the mover's own king in check) for the side to move.
func generatePseudoLegal(p *Position, list *MoveList) {
	side := p.side
	own := p.occupancy[side]
	enemy := p.occupancy[side.Opponent()]

	generatePawnMoves(p, side, list)

	for bb := p.pieces[side][Knight]; bb != 0; {
		from := bb.PopLSB()
		addPieceMoves(list, from, KnightAttackboard(from)&^own, enemy)
	}
	for bb := p.pieces[side][Bishop]; bb != 0; {
		from := bb.PopLSB()
		addPieceMoves(list, from, BishopAttackboard(p.all, from)&^own, enemy)
	}
	for bb := p.pieces[side][Rook]; bb != 0; {
		from := bb.PopLSB()
		addPieceMoves(list, from, RookAttackboard(p.all, from)&^own, enemy)
	}
	for bb := p.pieces[side][Queen]; bb != 0; {
		from := bb.PopLSB()
		addPieceMoves(list, from, QueenAttackboard(p.all, from)&^own, enemy)
	}

	if p.pieces[side][King] != 0 {
		from := p.KingSquare(side)
		addPieceMoves(list, from, KingAttackboard(from)&^own, enemy)
		generateCastlingMoves(p, side, list)
	}
}

func addPieceMoves(list *MoveList, from Square, targets, enemy Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		var flags MoveFlag
		if enemy.IsSet(to) {
			flags = Capture
		}
		list.Add(Move{From: from, To: to, Flags: flags})
	}
}

func generatePawnMoves(p *Position, side Side, list *MoveList) {
	pawns := p.pieces[side][Pawn]
	enemy := p.occupancy[side.Opponent()]
	promoRank := PawnPromotionRank(side)

	for bb := pawns; bb != 0; {
		from := bb.PopLSB()

		// Single push.
		to := pawnPushSquare(side, from)
		if to.IsValid() && p.all&BitMask(to) == 0 {
			addPawnAdvance(list, from, to, promoRank)

			// Double push, only from the starting rank, both squares empty.
			if pawnStartRank(side) == from.Rank() {
				to2 := pawnPushSquare(side, to)
				if p.all&BitMask(to2) == 0 {
					list.Add(Move{From: from, To: to2, Flags: DoublePawn})
				}
			}
		}

		// Diagonal captures, including en passant.
		targets := PawnAttackboard(side, from)
		for t := targets; t != 0; {
			dst := t.PopLSB()
			switch {
			case enemy.IsSet(dst):
				addPawnCapture(list, from, dst, promoRank)
			case p.epTarget != NoSquare && dst == p.epTarget:
				list.Add(Move{From: from, To: dst, Flags: Capture | EnPassant})
			}
		}
	}
}

func addPawnAdvance(list *MoveList, from, to Square, promoRank Bitboard) {
	if promoRank.IsSet(to) {
		for _, promo := range promotionKinds {
			list.Add(Move{From: from, To: to, Promotion: promo, Flags: Promotion})
		}
		return
	}
	list.Add(Move{From: from, To: to})
}

func addPawnCapture(list *MoveList, from, to Square, promoRank Bitboard) {
	if promoRank.IsSet(to) {
		for _, promo := range promotionKinds {
			list.Add(Move{From: from, To: to, Promotion: promo, Flags: Capture | Promotion})
		}
		return
	}
	list.Add(Move{From: from, To: to, Flags: Capture})
}

// pawnPushSquare returns the square one step forward for side, or NoSquare past rank 8/1.
func pawnPushSquare(side Side, sq Square) Square {
	if side == White {
		if sq.Rank() == Rank8 {
			return NoSquare
		}
		return sq + 8
	}
	if sq.Rank() == Rank1 {
		return NoSquare
	}
	return sq - 8
}

func pawnStartRank(side Side) Rank {
	if side == White {
		return Rank2
	}
	return Rank7
}

// PawnPromotionRank returns the promotion rank mask for side: rank 8 for White, rank 1 for Black.
func PawnPromotionRank(side Side) Bitboard {
	if side == White {
		return BitRank(Rank8)
	}
	return BitRank(Rank1)
}

// PawnJumpRank returns the double-push destination rank mask for side: rank 4 for White,
// rank 5 for Black.
func PawnJumpRank(side Side) Bitboard {
	if side == White {
		return BitRank(Rank4)
	}
	return BitRank(Rank5)
}

// generateCastlingMoves emits King/QueenCastle moves when the right is held, the squares
// between king and rook are empty, and the king's origin/transit/destination squares are
// not attacked.
func generateCastlingMoves(p *Position, side Side, list *MoveList) {
	opp := side.Opponent()

	if side == White {
		if p.castling.Has(WhiteKingside) && p.all&(BitMask(F1)|BitMask(G1)) == 0 {
			if !p.IsAttacked(E1, opp) && !p.IsAttacked(F1, opp) && !p.IsAttacked(G1, opp) {
				list.Add(Move{From: E1, To: G1, Flags: KingCastle})
			}
		}
		if p.castling.Has(WhiteQueenside) && p.all&(BitMask(D1)|BitMask(C1)|BitMask(B1)) == 0 {
			if !p.IsAttacked(E1, opp) && !p.IsAttacked(D1, opp) && !p.IsAttacked(C1, opp) {
				list.Add(Move{From: E1, To: C1, Flags: QueenCastle})
			}
		}
		return
	}

	if p.castling.Has(BlackKingside) && p.all&(BitMask(F8)|BitMask(G8)) == 0 {
		if !p.IsAttacked(E8, opp) && !p.IsAttacked(F8, opp) && !p.IsAttacked(G8, opp) {
			list.Add(Move{From: E8, To: G8, Flags: KingCastle})
		}
	}
	if p.castling.Has(BlackQueenside) && p.all&(BitMask(D8)|BitMask(C8)|BitMask(B8)) == 0 {
		if !p.IsAttacked(E8, opp) && !p.IsAttacked(D8, opp) && !p.IsAttacked(C8, opp) {
			list.Add(Move{From: E8, To: C8, Flags: QueenCastle})
		}
	}
}
