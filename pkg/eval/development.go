package eval

import "github.com/Kourosh37/chesscore/pkg/board"

// developmentScore penalizes knights and bishops still on their home squares and an early
// queen sortie, and rewards vacated d/e pawn squares. It contributes to the midgame score
// only; the caller applies it only while GamePhase is at least 12.
func developmentScore(p *board.Position) (mg, eg Score) {
	w := developmentSideScore(p, board.White)
	b := developmentSideScore(p, board.Black)
	return w - b, 0
}

func developmentSideScore(p *board.Position, side board.Side) Score {
	var score Score
	knightHome, bishopHome, queenHome := homeSquares(side)

	undeveloped := 0
	for _, sq := range knightHome {
		if p.Piece(side, board.Knight).IsSet(sq) {
			score -= 11
			undeveloped++
		}
	}
	for _, sq := range bishopHome {
		if p.Piece(side, board.Bishop).IsSet(sq) {
			score -= 9
			undeveloped++
		}
	}

	score += centerPawnAdvanceScore(p, side)

	if !p.Piece(side, board.Queen).IsSet(queenHome) && undeveloped >= 3 {
		score -= 12
	}

	return score
}

func homeSquares(side board.Side) (knights, bishops [2]board.Square, queen board.Square) {
	if side == board.White {
		return [2]board.Square{board.B1, board.G1}, [2]board.Square{board.C1, board.F1}, board.D1
	}
	return [2]board.Square{board.B8, board.G8}, [2]board.Square{board.C8, board.F8}, board.D8
}

// centerPawnAdvanceScore rewards vacating the d/e pawn squares, clearing lines for
// development.
func centerPawnAdvanceScore(p *board.Position, side board.Side) Score {
	var dHome, eHome board.Square
	if side == board.White {
		dHome, eHome = board.D2, board.E2
	} else {
		dHome, eHome = board.D7, board.E7
	}

	var score Score
	pawns := p.Piece(side, board.Pawn)
	if !pawns.IsSet(dHome) {
		score += 4
	}
	if !pawns.IsSet(eHome) {
		score += 6
	}
	return score
}
