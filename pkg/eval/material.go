package eval

import "github.com/Kourosh37/chesscore/pkg/board"

// NominalValue is the material value of a piece kind in centipawns, identical for midgame
// and endgame.
func NominalValue(p board.PieceKind) Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}

func materialScore(p *board.Position) (mg, eg Score) {
	var total Score
	for k := board.Pawn; k <= board.Queen; k++ {
		diff := Score(p.Piece(board.White, k).PopCount() - p.Piece(board.Black, k).PopCount())
		total += diff * NominalValue(k)
	}
	return total, total
}

// nonPawnPhaseWeight is the game-phase contribution of one piece of the given kind:
// Knight=1, Bishop=1, Rook=2, Queen=4.
func nonPawnPhaseWeight(k board.PieceKind) int {
	switch k {
	case board.Knight, board.Bishop:
		return 1
	case board.Rook:
		return 2
	case board.Queen:
		return 4
	default:
		return 0
	}
}

// GamePhase returns a 0..24 integer derived from non-pawn material, clamped to 24.
func GamePhase(p *board.Position) int {
	phase := 0
	for _, side := range [2]board.Side{board.White, board.Black} {
		for _, k := range [4]board.PieceKind{board.Knight, board.Bishop, board.Rook, board.Queen} {
			phase += p.Piece(side, k).PopCount() * nonPawnPhaseWeight(k)
		}
	}
	if phase > 24 {
		phase = 24
	}
	return phase
}
