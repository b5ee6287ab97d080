package board

// MaxMoves bounds the legal moves reachable from any legal chess position (see
// https://www.chessprogramming.org/Chess_Position#The_Maximum_Number_of_Moves).
const MaxMoves = 256

// MoveList is a fixed-capacity, inline move buffer. It is a deliberate performance
// choice: generation and move ordering never allocate on the heap during search.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Len returns the number of moves currently held.
func (l *MoveList) Len() int {
	return l.n
}

// Add appends a move. Silently drops moves beyond MaxMoves, which never happens in a
// legal chess position but keeps the buffer memory-safe regardless.
func (l *MoveList) Add(m Move) {
	if l.n >= MaxMoves {
		return
	}
	l.moves[l.n] = m
	l.n++
}

// Get returns the move at index i.
func (l *MoveList) Get(i int) Move {
	return l.moves[i]
}

// Set overwrites the move at index i, e.g. to update its ordering Score.
func (l *MoveList) Set(i int, m Move) {
	l.moves[i] = m
}

// Reset empties the list for reuse.
func (l *MoveList) Reset() {
	l.n = 0
}

// Slice returns the populated moves as a slice view over the inline backing array. The
// slice is only valid until the next Add/Reset.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

// SwapBest moves the highest-Score move (searching from index i onward) to index i, a
// single pass of selection sort. Search calls this once per ply-loop iteration instead
// of sorting the whole list upfront, so a beta cutoff skips sorting moves never visited.
func (l *MoveList) SwapBest(i int) {
	best := i
	for j := i + 1; j < l.n; j++ {
		if l.moves[j].Score > l.moves[best].Score {
			best = j
		}
	}
	if best != i {
		l.moves[i], l.moves[best] = l.moves[best], l.moves[i]
	}
}

// Contains returns true iff a move with the same From/To/Promotion identity is present,
// and returns that move (with its generated flags) for callers that only have a bare
// UCI-parsed candidate.
func (l *MoveList) Contains(m Move) (Move, bool) {
	for i := 0; i < l.n; i++ {
		if l.moves[i].Equals(m) {
			return l.moves[i], true
		}
	}
	return Move{}, false
}
