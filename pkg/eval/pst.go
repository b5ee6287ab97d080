package eval

import "github.com/Kourosh37/chesscore/pkg/board"

// pstMG and pstEG hold the midgame and endgame piece-square tables, one 64-entry array per piece kind,
// always from White's perspective. Black's value for a square is read from the
// vertically-mirrored square (square XOR 56).
var pstMG, pstEG [7][64]int32

// centerDistance is the Chebyshev-like distance from the board center, used to shape the
// piece-square tables below: 0 at the four central squares, growing toward the edges.
func centerDistance(f, r int) int {
	df := f - 4
	if df < 0 {
		df = 3 - f
	}
	dr := r - 4
	if dr < 0 {
		dr = 3 - r
	}
	if df > dr {
		return df
	}
	return dr
}

func init() {
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			sq := r*8 + f
			dist := centerDistance(f, r) // 0..3

			// Knight: strong centralization bonus, identical shape mg/eg.
			knight := int32(24 - 8*dist)
			pstMG[board.Knight][sq] = knight
			pstEG[board.Knight][sq] = knight

			// Bishop: mild centralization, slightly flatter than knight.
			bishop := int32(14 - 4*dist)
			pstMG[board.Bishop][sq] = bishop
			pstEG[board.Bishop][sq] = bishop

			// Rook: rewards central files mildly in mg; flatter in eg.
			fileDist := f - 4
			if fileDist < 0 {
				fileDist = 3 - f
			}
			pstMG[board.Rook][sq] = int32(6 - 2*fileDist)
			pstEG[board.Rook][sq] = 0

			// Queen: light centralization, more pronounced in the endgame.
			pstMG[board.Queen][sq] = int32(6 - 2*dist)
			pstEG[board.Queen][sq] = int32(10 - 3*dist)

			// Pawn: rank-based advance bonus, with a central-file bump; no bonus on ranks 1/8.
			rankBonus := 0
			switch r {
			case 1:
				rankBonus = 0
			case 2:
				rankBonus = 5
			case 3:
				rankBonus = 10
			case 4:
				rankBonus = 20
			case 5:
				rankBonus = 35
			case 6:
				rankBonus = 60
			}
			centerFile := 0
			if f == 3 || f == 4 {
				centerFile = 8
			} else if f == 2 || f == 5 {
				centerFile = 4
			}
			pstMG[board.Pawn][sq] = int32(rankBonus + centerFile)
			pstEG[board.Pawn][sq] = int32(rankBonus)

			// King: mg rewards the back rank and corners (safety); eg rewards the center (activity).
			pstMG[board.King][sq] = int32(14 - 5*dist - 2*r)
			pstEG[board.King][sq] = int32(24 - 8*dist)
		}
	}
}

// pstValue returns the piece-square value for side/kind/square at the given phase table.
func pstValue(table *[7][64]int32, c board.Side, k board.PieceKind, sq board.Square) int32 {
	s := int(sq)
	if c == board.Black {
		s ^= 56
	}
	return table[k][s]
}

func pstScore(p *board.Position) (mg, eg Score) {
	for _, side := range [2]board.Side{board.White, board.Black} {
		sign := Score(1)
		if side == board.Black {
			sign = -1
		}
		for k := board.Pawn; k <= board.King; k++ {
			for bb := p.Piece(side, k); bb != 0; {
				sq := bb.PopLSB()
				mg += sign * Score(pstValue(&pstMG, side, k, sq))
				eg += sign * Score(pstValue(&pstEG, side, k, sq))
			}
		}
	}
	return mg, eg
}
