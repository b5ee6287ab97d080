package eval

import "github.com/Kourosh37/chesscore/pkg/board"

func bishopPairScore(p *board.Position) (mg, eg Score) {
	if p.Piece(board.White, board.Bishop).PopCount() >= 2 {
		mg += 35
		eg += 45
	}
	if p.Piece(board.Black, board.Bishop).PopCount() >= 2 {
		mg -= 35
		eg -= 45
	}
	return mg, eg
}

// pawnStructureScore scores doubled, isolated, supported and passed pawns for both sides.
func pawnStructureScore(p *board.Position) (mg, eg Score) {
	w := pawnSideScore(p, board.White)
	b := pawnSideScore(p, board.Black)
	return w - b, w - b
}

func pawnSideScore(p *board.Position, side board.Side) Score {
	pawns := p.Piece(side, board.Pawn)
	enemyPawns := p.Piece(side.Opponent(), board.Pawn)

	var score Score

	for f := board.File(0); f < board.NumFiles; f++ {
		onFile := pawns & board.BitFile(f)
		n := onFile.PopCount()
		if n > 1 {
			score -= Score(n-1) * 14 // doubled: penalty per extra pawn on the file
		}
		if n > 0 && !hasNeighborFilePawns(pawns, f) {
			score -= 11 // isolated
		}
	}

	for bb := pawns; bb != 0; {
		sq := bb.PopLSB()

		if isSupported(pawns, side, sq) {
			score += 4
		}
		if isPassed(enemyPawns, side, sq) {
			advance := relativeRank(side, sq)
			score += 18 + Score(advance)*8
		}
	}

	return score
}

func hasNeighborFilePawns(pawns board.Bitboard, f board.File) bool {
	var mask board.Bitboard
	if f > 0 {
		mask |= board.BitFile(f - 1)
	}
	if f < board.NumFiles-1 {
		mask |= board.BitFile(f + 1)
	}
	return pawns&mask != 0
}

// isSupported returns true iff a same-side pawn defends sq diagonally from behind.
func isSupported(pawns board.Bitboard, side board.Side, sq board.Square) bool {
	f := sq.File()
	r := int(sq.Rank())
	br := r - 1
	if side == board.Black {
		br = r + 1
	}
	if br < 0 || br > 7 {
		return false
	}
	for _, df := range [2]int{-1, 1} {
		nf := int(f) + df
		if nf < 0 || nf > 7 {
			continue
		}
		if pawns.IsSet(board.NewSquare(board.File(nf), board.Rank(br))) {
			return true
		}
	}
	return false
}

// isPassed returns true iff no enemy pawn occupies sq's file or an adjacent file on any
// rank ahead of sq (from side's perspective).
func isPassed(enemyPawns board.Bitboard, side board.Side, sq board.Square) bool {
	f := sq.File()
	var files board.Bitboard = board.BitFile(f)
	if f > 0 {
		files |= board.BitFile(f - 1)
	}
	if f < board.NumFiles-1 {
		files |= board.BitFile(f + 1)
	}

	var ahead board.Bitboard
	if side == board.White {
		for r := sq.Rank() + 1; r < board.NumRanks; r++ {
			ahead |= board.BitRank(r)
		}
	} else {
		for r := sq.Rank() - 1; r >= 0; r-- {
			ahead |= board.BitRank(r)
		}
	}
	return enemyPawns&files&ahead == 0
}

// relativeRank returns how many ranks a pawn has advanced from its starting rank (0..5).
func relativeRank(side board.Side, sq board.Square) int {
	if side == board.White {
		return int(sq.Rank()) - 1
	}
	return int(board.Rank7) - int(sq.Rank())
}
