package search

import (
	"context"
	"time"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// run holds the mutable state of one SearchBestMove call: node counter, cutoff heuristics,
// the in-tree repetition path and the stop flag. It is discarded at the end of the call;
// only the TranspositionTable and Book outlive it.
type run struct {
	ctx      context.Context
	tt       *TranspositionTable
	deadline time.Time
	hasLimit bool

	nodes   uint64
	stopped bool

	killers killers
	history history

	path []board.ZobristKey // zobrist keys along the current search path, root first
}

func (s *run) outOfTime() bool {
	if contextx.IsCancelled(s.ctx) {
		return true
	}
	if !s.hasLimit {
		return false
	}
	return time.Now().After(s.deadline)
}

func (s *run) push(key board.ZobristKey) {
	s.path = append(s.path, key)
}

func (s *run) pop() {
	s.path = s.path[:len(s.path)-1]
}

// isRepetition reports whether the current key matches an earlier same-side-to-move
// ancestor in the path, stepping back two plies at a time.
func (s *run) isRepetition(key board.ZobristKey) bool {
	for i := len(s.path) - 2; i >= 0; i -= 2 {
		if s.path[i] == key {
			return true
		}
	}
	return false
}

// negamax searches pos to depth, returning the score for the side to move. ply is the
// distance from the search root, used for mate-distance scoring and killer indexing.
func (s *run) negamax(pos *board.Position, depth, ply int, alpha, beta int32) int32 {
	if s.nodes%1024 == 0 && s.outOfTime() {
		s.stopped = true
	}
	if s.stopped {
		return 0
	}

	if pos.HalfmoveClock() >= 100 {
		return 0
	}
	if ply > 0 && s.isRepetition(pos.Key()) {
		return 0
	}
	if pos.HasInsufficientMaterial() {
		return 0
	}
	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	s.nodes++
	alphaOrig := alpha

	var hashMove board.Move
	hashMove.From = board.NoSquare
	if e, ok := s.tt.probe(pos.Key()); ok {
		if e.depth >= int16(depth) {
			score := decodeMateScore(e.score, ply)
			switch e.bound {
			case Exact:
				return score
			case LowerBound:
				if score > alpha {
					alpha = score
				}
			case UpperBound:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
		hashMove = e.best
	}

	inCheck := pos.InCheck(pos.SideToMove())
	if inCheck && depth < 126 {
		depth++
	}

	staticEval := int32(eval.Evaluate(pos))

	if !inCheck && depth <= 2 && staticEval+120*int32(depth) <= alpha {
		return s.quiescence(pos, alpha, beta, ply)
	}
	if !inCheck && depth <= 3 && beta < MateBound && staticEval-85*int32(depth) >= beta {
		return staticEval - 85*int32(depth)
	}

	if !inCheck && depth >= 3 && beta < MateBound && staticEval >= beta-40 && pos.HasNonPawnMaterial(pos.SideToMove()) {
		r := 2
		if depth >= 7 {
			r = 3
		}
		null := pos.Clone()
		board.ApplyNullMove(null)

		s.push(pos.Key())
		score := -s.negamax(null, depth-1-r, ply+1, -beta, -beta+1)
		s.pop()

		if s.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	var moves board.MoveList
	board.GenerateLegalMoves(pos, &moves)
	if moves.Len() == 0 {
		if inCheck {
			return -Mate + int32(ply)
		}
		return 0
	}

	orderMoves(pos, &moves, hashMove, ply, &s.killers, &s.history)

	var best board.Move
	bestScore := -Mate - 1

	s.push(pos.Key())
	defer s.pop()

	for i := 0; i < moves.Len(); i++ {
		moves.SwapBest(i)
		m := moves.Get(i)

		child := pos.Clone()
		board.ApplyMove(child, m)
		givesCheck := child.InCheck(child.SideToMove())

		quiet := m.IsQuiet() && !m.Flags.Has(board.KingCastle) && !m.Flags.Has(board.QueenCastle)

		if quiet && !inCheck && !givesCheck && i > 0 && depth <= 3 {
			if i >= 4+depth*depth {
				continue // late-move pruning
			}
			margin := int32(0)
			if i >= 6 {
				margin = 30
			}
			if staticEval+85*int32(depth)+margin <= alpha {
				continue // futility
			}
		}

		childDepth := depth - 1
		if quiet && !inCheck && !givesCheck && depth >= 4 && i >= 3 {
			reduction := 1
			if depth >= 8 {
				reduction++
			}
			if i >= 8 {
				reduction++
			}
			childDepth = depth - 1 - reduction
			if childDepth < 1 {
				childDepth = 1
			}
		}

		var score int32
		if i == 0 {
			score = -s.negamax(child, childDepth, ply+1, -beta, -alpha)
		} else {
			score = -s.negamax(child, childDepth, ply+1, -alpha-1, -alpha)
			if score > alpha && score < beta {
				score = -s.negamax(child, depth-1, ply+1, -beta, -alpha)
			} else if score > alpha && childDepth < depth-1 {
				score = -s.negamax(child, depth-1, ply+1, -beta, -alpha)
			}
		}

		if s.stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if quiet {
				s.killers.record(ply, m)
				side, _, _ := pos.PieceAt(m.From)
				s.history.record(side, m, depth)
			}
			break
		}
	}

	bound := Exact
	if bestScore <= alphaOrig {
		bound = UpperBound
	} else if bestScore >= beta {
		bound = LowerBound
	}
	s.tt.store(pos.Key(), bound, depth, encodeMateScore(bestScore, ply), best)

	return bestScore
}
