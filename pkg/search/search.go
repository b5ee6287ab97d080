// Package search implements iterative-deepening negamax with alpha-beta pruning, a
// transposition table, principal-variation search, quiescence, killer/history move
// ordering, null-move pruning, late-move reductions, aspiration windows and a small
// built-in opening book.
package search

import (
	"fmt"

	"github.com/Kourosh37/chesscore/pkg/board"
)

// Mate is the score magnitude assigned to a checkmate. Scores with absolute value above
// MateBound are mate scores expressed as a distance-to-mate.
const Mate int32 = 250000

// MateBound is the threshold above which a score is considered a mate score.
const MateBound int32 = Mate - 1024

// MaxSearchPly is the size of the per-ply killer table: killers are neither recorded nor
// consulted at plies at or beyond it. Negamax and quiescence do not stop recursing at this
// ply, and the repetition path is a slice that grows with the search path.
const MaxSearchPly = 128

// Limits bounds a single SearchBestMove call. Out-of-range values are silently clamped
// rather than rejected.
type Limits struct {
	Depth      int // 1..14
	TimeMs     int // <=0 disables the time cut
	Randomness int // centipawns; 0 picks deterministically
}

// Clamped returns Limits with Depth clamped to [1,14] and Randomness clamped to >=0.
func (l Limits) Clamped() Limits {
	if l.Depth < 1 {
		l.Depth = 1
	}
	if l.Depth > 14 {
		l.Depth = 14
	}
	if l.Randomness < 0 {
		l.Randomness = 0
	}
	return l
}

// Result is the outcome of a completed (or halted) search.
type Result struct {
	Best  board.Move
	Score int32
	Depth int
	Nodes uint64
}

func (r Result) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v best=%v", r.Depth, r.Score, r.Nodes, r.Best)
}

// IsMateScore reports whether score represents a forced mate, and if so the number of
// plies to it (always non-negative).
func IsMateScore(score int32) (plies int, ok bool) {
	if score > MateBound {
		return int(Mate - score), true
	}
	if score < -MateBound {
		return int(Mate + score), true
	}
	return 0, false
}
