package search

import (
	"github.com/Kourosh37/chesscore/pkg/board"
)

// bookEntry is one candidate move for a book position, with a cumulative weight.
type bookEntry struct {
	move   board.Move
	weight int
}

// Book is a small built-in opening book, keyed by zobrist hash. It is built once at
// construction time rather than parsed lazily on first probe.
type Book struct {
	lines map[board.ZobristKey][]bookEntry
}

// Line is one opening line as a sequence of UCI coordinate moves, e.g. "e2e4".
type Line struct {
	Moves  []string
	Weight int
}

// NewBook builds a Book from a set of curated lines. Each ply of each line contributes an
// entry keyed by the position it is played from, with a weight decayed by ply/2. Multiple
// lines that transpose into the same position sum their weights. A line is cut off at its
// first move that does not parse or is not legal in the position reached; the plies before
// that move stay in the book, and no error is reported.
func NewBook(lines []Line) *Book {
	b := &Book{lines: map[board.ZobristKey][]bookEntry{}}

	for _, line := range lines {
		pos := board.Start()

		var list board.MoveList
		for ply, str := range line.Moves {
			board.GenerateLegalMoves(pos, &list)

			m, ok := board.MoveFromUCI(str)
			if !ok {
				break
			}
			full, ok := list.Contains(m)
			if !ok {
				break
			}

			weight := line.Weight - ply/2
			if weight < 1 {
				weight = 1
			}
			b.add(pos.Key(), full, weight)
			board.ApplyMove(pos, full)
		}
	}

	return b
}

func (b *Book) add(key board.ZobristKey, m board.Move, weight int) {
	entries := b.lines[key]
	for i, e := range entries {
		if e.move.Equals(m) {
			entries[i].weight += weight
			b.lines[key] = entries
			return
		}
	}
	b.lines[key] = append(entries, bookEntry{move: m, weight: weight})
}

// Probe returns a book move for pos, if one applies. Only fullmove<=12, halfmove clock<=10
// and both queens still on the board qualify a position for book lookup. randomness>0
// picks among candidates weighted at random; otherwise the highest-weight entry is chosen.
// A candidate not found in the currently legal move list is ignored.
func (b *Book) Probe(pos *board.Position, legal *board.MoveList, randomness int, rng func(n int) int) (board.Move, bool) {
	if pos.FullmoveNumber() > 12 || pos.HalfmoveClock() > 10 {
		return board.Move{}, false
	}
	if pos.Piece(board.White, board.Queen) == 0 || pos.Piece(board.Black, board.Queen) == 0 {
		return board.Move{}, false
	}

	entries := b.lines[pos.Key()]
	var candidates []bookEntry
	for _, e := range entries {
		if _, ok := legal.Contains(e.move); ok {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return board.Move{}, false
	}

	if randomness > 0 && len(candidates) > 1 && rng != nil {
		total := 0
		for _, e := range candidates {
			total += e.weight
		}
		pick := rng(total)
		for _, e := range candidates {
			pick -= e.weight
			if pick < 0 {
				return e.move, true
			}
		}
		return candidates[len(candidates)-1].move, true
	}

	best := candidates[0]
	for _, e := range candidates[1:] {
		if e.weight > best.weight {
			best = e
		}
	}
	return best.move, true
}
