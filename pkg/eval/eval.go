// Package eval contains static position evaluation: material, piece-square tables with a
// midgame/endgame blend, pawn structure, mobility, king safety and opening development.
package eval

import "github.com/Kourosh37/chesscore/pkg/board"

// Score is a centipawn evaluation. Positive favors White until Evaluate flips it to the
// side-to-move perspective at the very end.
type Score int32

// Evaluate returns the static score of the position from the side-to-move's perspective:
// positive always means good for the side to move.
func Evaluate(p *board.Position) Score {
	white := evaluateWhitePerspective(p)
	if p.SideToMove() == board.Black {
		return -white
	}
	return white
}

// evaluateWhitePerspective computes the score where positive always favors White,
// including a flat side-to-move tempo bonus applied before the final flip.
func evaluateWhitePerspective(p *board.Position) Score {
	phase := GamePhase(p)

	mg, eg := Score(0), Score(0)

	m, e := materialScore(p)
	mg += m
	eg += e

	m, e = pstScore(p)
	mg += m
	eg += e

	m, e = bishopPairScore(p)
	mg += m
	eg += e

	m, e = pawnStructureScore(p)
	mg += m
	eg += e

	m, e = mobilityScore(p)
	mg += m
	eg += e

	m, e = kingSafetyScore(p, phase)
	mg += m
	eg += e

	if phase >= 12 {
		m, e = developmentScore(p)
		mg += m
		eg += e
	}

	blended := (mg*Score(phase) + eg*Score(24-phase)) / 24

	tempo := Score(10)
	if p.SideToMove() == board.Black {
		tempo = -tempo
	}
	return blended + tempo
}
