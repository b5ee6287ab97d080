package search

import (
	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/eval"
)

// quiescence searches only captures and promotions (plus all moves while in check) to
// resolve tactical sequences before trusting the static evaluation as a leaf score.
func (s *run) quiescence(pos *board.Position, alpha, beta int32, ply int) int32 {
	s.nodes++
	if s.nodes%1024 == 0 && s.outOfTime() {
		s.stopped = true
	}
	if s.stopped {
		return 0
	}

	inCheck := pos.InCheck(pos.SideToMove())
	standPat := int32(eval.Evaluate(pos))

	if !inCheck {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	var moves board.MoveList
	board.GenerateLegalMoves(pos, &moves)
	if inCheck && moves.Len() == 0 {
		return -Mate + int32(ply)
	}

	orderMoves(pos, &moves, board.Move{From: board.NoSquare}, -1, &s.killers, &s.history)

	for i := 0; i < moves.Len(); i++ {
		moves.SwapBest(i)
		m := moves.Get(i)

		isTactical := m.Flags.Has(board.Capture) || m.Flags.Has(board.EnPassant) || m.Flags.Has(board.Promotion)
		if !inCheck && !isTactical {
			continue
		}

		if !inCheck && isTactical && !m.Flags.Has(board.Promotion) {
			gain := int32(eval.NominalValue(captureVictimKind(pos, m)))
			if standPat+gain+90 < alpha {
				continue // delta pruning
			}
		}

		child := pos.Clone()
		board.ApplyMove(child, m)

		score := -s.quiescence(child, -beta, -alpha, ply+1)
		if s.stopped {
			return 0
		}

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return beta
		}
	}

	return alpha
}
