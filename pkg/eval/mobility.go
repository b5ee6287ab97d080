package eval

import "github.com/Kourosh37/chesscore/pkg/board"

// mobilityScore weighs knight/bishop moves by 4, rook moves by 2, queen moves by 1, and
// adds rook-on-(semi-)open-file bonuses. Mobility is identical mg/eg.
func mobilityScore(p *board.Position) (mg, eg Score) {
	w := mobilitySideScore(p, board.White)
	b := mobilitySideScore(p, board.Black)
	return w - b, w - b
}

func mobilitySideScore(p *board.Position, side board.Side) Score {
	own := p.Occupancy(side)
	occ := p.AllOccupancy()
	var score Score

	for bb := p.Piece(side, board.Knight); bb != 0; {
		sq := bb.PopLSB()
		score += Score((board.KnightAttackboard(sq) &^ own).PopCount()) * 4
	}
	for bb := p.Piece(side, board.Bishop); bb != 0; {
		sq := bb.PopLSB()
		score += Score((board.BishopAttackboard(occ, sq) &^ own).PopCount()) * 4
	}
	for bb := p.Piece(side, board.Rook); bb != 0; {
		sq := bb.PopLSB()
		score += Score((board.RookAttackboard(occ, sq) &^ own).PopCount()) * 2
		score += rookFileScore(p, sq)
	}
	for bb := p.Piece(side, board.Queen); bb != 0; {
		sq := bb.PopLSB()
		score += Score((board.QueenAttackboard(occ, sq) &^ own).PopCount()) * 1
	}
	return score
}

func rookFileScore(p *board.Position, sq board.Square) Score {
	f := sq.File()
	file := board.BitFile(f)
	ownPawns := p.Piece(whoseRookSide(p, sq), board.Pawn)
	if file&(p.Piece(board.White, board.Pawn)|p.Piece(board.Black, board.Pawn)) == 0 {
		return 18 // open file: no pawns of either side
	}
	if file&ownPawns == 0 {
		return 9 // semi-open: no own pawns, but enemy pawns present
	}
	return 0
}

// whoseRookSide identifies which side's pawns to check for a rook on sq, since
// rookFileScore is called while iterating a specific side's rooks.
func whoseRookSide(p *board.Position, sq board.Square) board.Side {
	if p.Piece(board.White, board.Rook).IsSet(sq) {
		return board.White
	}
	return board.Black
}
