package eval

import "github.com/Kourosh37/chesscore/pkg/board"

// kingSafetyScore evaluates castled/uncastled status, pawn shield and king-zone attacker
// tempo, weighted by game phase.
func kingSafetyScore(p *board.Position, phase int) (mg, eg Score) {
	w := kingSafetySideScore(p, board.White, phase)
	b := kingSafetySideScore(p, board.Black, phase)
	return w - b, (w - b) / 2 // king safety matters far less in the endgame
}

func kingSafetySideScore(p *board.Position, side board.Side, phase int) Score {
	ksq := p.KingSquare(side)
	var score Score

	castled := hasCastledHome(ksq, side)
	switch {
	case castled:
		score += 52
	case p.Castling().Has(kingsideRight(side)) || p.Castling().Has(queensideRight(side)):
		score += 6
	default:
		score -= 34
	}

	score += pawnShieldScore(p, side, ksq)

	attackers := countKingZoneAttackers(p, side, ksq)
	penalty := 6
	if phase >= 16 {
		penalty = 11
	}
	score -= Score(attackers * penalty)

	return score
}

func hasCastledHome(ksq board.Square, side board.Side) bool {
	if side == board.White {
		return ksq == board.G1 || ksq == board.C1
	}
	return ksq == board.G8 || ksq == board.C8
}

func kingsideRight(side board.Side) board.Castling {
	if side == board.White {
		return board.WhiteKingside
	}
	return board.BlackKingside
}

func queensideRight(side board.Side) board.Castling {
	if side == board.White {
		return board.WhiteQueenside
	}
	return board.BlackQueenside
}

// pawnShieldScore rewards pawns on the three files around the king, one rank ahead.
func pawnShieldScore(p *board.Position, side board.Side, ksq board.Square) Score {
	pawns := p.Piece(side, board.Pawn)
	f := int(ksq.File())
	aheadRank := int(ksq.Rank()) + 1
	if side == board.Black {
		aheadRank = int(ksq.Rank()) - 1
	}
	if aheadRank < 0 || aheadRank > 7 {
		return 0
	}

	var score Score
	for df := -1; df <= 1; df++ {
		nf := f + df
		if nf < 0 || nf > 7 {
			continue
		}
		if pawns.IsSet(board.NewSquare(board.File(nf), board.Rank(aheadRank))) {
			score += 7
		} else {
			score -= 9
		}
	}
	return score
}

// countKingZoneAttackers counts how many of the squares around ksq are attacked by the
// enemy; each attacked square counts once, however many enemy pieces attack it.
func countKingZoneAttackers(p *board.Position, side board.Side, ksq board.Square) int {
	zone := board.KingAttackboard(ksq)
	opp := side.Opponent()
	count := 0

	for bb := zone; bb != 0; {
		sq := bb.PopLSB()
		if p.IsAttacked(sq, opp) {
			count++
		}
	}
	return count
}
