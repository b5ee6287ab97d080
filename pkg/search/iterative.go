package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/Kourosh37/chesscore/pkg/board"
)

// Searcher owns the resources that persist across calls to SearchBestMove: the
// transposition table and the opening book. Per-call state (killers, history, node
// counters) lives in a fresh run instead, so a Searcher is safe to reuse across an
// entire game but not to drive two concurrent searches.
type Searcher struct {
	tt   *TranspositionTable
	book *Book
	rand *rand.Rand
}

// NewSearcher creates a Searcher over the given transposition table. book may be nil.
func NewSearcher(tt *TranspositionTable, book *Book) *Searcher {
	return &Searcher{
		tt:   tt,
		book: book,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Book returns the Searcher's opening book, or nil if none was configured.
func (sr *Searcher) Book() *Book {
	return sr.book
}

// ResetTranspositionTable clears the owned transposition table.
func (sr *Searcher) ResetTranspositionTable() {
	sr.tt.Reset()
}

type rootMove struct {
	move  board.Move
	score int32
}

// SearchBestMove runs iterative deepening from depth 1 to limits.Depth, consulting the
// opening book first. ctx is checked cooperatively every 1024 nodes.
func (sr *Searcher) SearchBestMove(ctx context.Context, pos *board.Position, limits Limits) Result {
	limits = limits.Clamped()

	var legal board.MoveList
	board.GenerateLegalMoves(pos, &legal)
	if legal.Len() == 0 {
		return Result{}
	}

	if sr.book != nil {
		if m, ok := sr.book.Probe(pos, &legal, limits.Randomness, sr.rand.Intn); ok {
			return Result{Best: m, Depth: 0, Nodes: 0}
		}
	}

	s := &run{ctx: ctx, tt: sr.tt}
	if limits.TimeMs > 0 {
		s.hasLimit = true
		s.deadline = time.Now().Add(time.Duration(limits.TimeMs) * time.Millisecond)
	}

	var result Result
	var lastRoots []rootMove
	prevScore := int32(0)

	for depth := 1; depth <= limits.Depth; depth++ {
		best, roots, ok := sr.searchIteration(s, pos, depth, prevScore)
		if !ok {
			break // stop flag raised mid-iteration: discard the incomplete result
		}

		prevScore = best.score
		lastRoots = roots
		result = Result{Best: best.move, Score: best.score, Depth: depth, Nodes: s.nodes}

		if plies, isMate := IsMateScore(best.score); isMate && plies <= depth {
			break // forced mate found within a full-width search
		}
	}

	if limits.Randomness > 0 && len(lastRoots) > 0 {
		if _, isMate := IsMateScore(result.Score); !isMate {
			result.Best, result.Score = sr.pickWithinWindow(lastRoots, result.Score, limits.Randomness)
		}
	}

	return result
}

// searchIteration runs one depth of aspiration-windowed search, widening and finally
// falling back to a full +/-inf window when a result falls outside it.
func (sr *Searcher) searchIteration(s *run, pos *board.Position, depth int, prevScore int32) (rootMove, []rootMove, bool) {
	alpha, beta := int32(-Mate-1), int32(Mate+1)
	window := int32(35 + 8*depth)
	if depth > 2 {
		alpha = prevScore - window
		beta = prevScore + window
	}

	for {
		best, roots := s.searchRoot(pos, depth, alpha, beta)
		if s.stopped {
			return rootMove{}, nil, false
		}

		if depth > 2 && best.score <= alpha && alpha > -Mate-1 {
			window *= 2
			alpha = prevScore - window
			if window > 1200 {
				alpha, beta = -Mate-1, Mate+1
			}
			continue
		}
		if depth > 2 && best.score >= beta && beta < Mate+1 {
			window *= 2
			beta = prevScore + window
			if window > 1200 {
				alpha, beta = -Mate-1, Mate+1
			}
			continue
		}
		return best, roots, true
	}
}

// pickWithinWindow selects uniformly among root moves whose score is within randomness
// centipawns of the best score.
func (sr *Searcher) pickWithinWindow(roots []rootMove, best int32, randomness int) (board.Move, int32) {
	var within []rootMove
	for _, rm := range roots {
		if best-rm.score <= int32(randomness) {
			within = append(within, rm)
		}
	}
	if len(within) <= 1 {
		for _, rm := range roots {
			if rm.score == best {
				return rm.move, rm.score
			}
		}
		return within[0].move, within[0].score
	}
	pick := within[sr.rand.Intn(len(within))]
	return pick.move, pick.score
}

// searchRoot runs one full root move loop at depth, returning the best move and the
// per-move scores needed for randomized root selection.
func (s *run) searchRoot(pos *board.Position, depth int, alpha, beta int32) (rootMove, []rootMove) {
	var moves board.MoveList
	board.GenerateLegalMoves(pos, &moves)

	var hashMove board.Move
	hashMove.From = board.NoSquare
	if e, ok := s.tt.probe(pos.Key()); ok {
		hashMove = e.best
	}
	orderMoves(pos, &moves, hashMove, 0, &s.killers, &s.history)

	alphaOrig := alpha
	best := rootMove{score: -Mate - 1}
	var results []rootMove

	s.push(pos.Key())
	for i := 0; i < moves.Len(); i++ {
		if s.stopped {
			break
		}
		moves.SwapBest(i)
		m := moves.Get(i)

		child := pos.Clone()
		board.ApplyMove(child, m)

		var score int32
		if i == 0 {
			score = -s.negamax(child, depth-1, 1, -beta, -alpha)
		} else {
			score = -s.negamax(child, depth-1, 1, -alpha-1, -alpha)
			if score > alpha && score < beta {
				score = -s.negamax(child, depth-1, 1, -beta, -alpha)
			}
		}
		if s.stopped {
			break
		}

		results = append(results, rootMove{move: m, score: score})
		if score > best.score {
			best = rootMove{move: m, score: score}
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	s.pop()

	if len(results) > 0 {
		bound := Exact
		if best.score <= alphaOrig {
			bound = UpperBound
		} else if best.score >= beta {
			bound = LowerBound
		}
		s.tt.store(pos.Key(), bound, depth, encodeMateScore(best.score, 0), best.move)
	}

	return best, results
}
