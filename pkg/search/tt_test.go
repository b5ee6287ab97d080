package search_test

import (
	"testing"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionTableDefaultSizeStartsEmpty(t *testing.T) {
	tt := search.NewTranspositionTable()
	assert.Equal(t, 1<<20, tt.Size())
	assert.Equal(t, float64(0), tt.Used())
}

func TestTranspositionTableSizedRoundsToPowerOfTwo(t *testing.T) {
	tt := search.NewTranspositionTableSized(64)
	assert.Equal(t, 1<<21, tt.Size())

	tiny := search.NewTranspositionTableSized(1)
	assert.Equal(t, 1<<16, tiny.Size())
}

func TestTranspositionTableReset(t *testing.T) {
	tt := search.NewTranspositionTable()
	tt.Reset()
	assert.Equal(t, float64(0), tt.Used())
}

// probe/store are unexported; the contract (probe returns what the last store wrote)
// is exercised end to end through search.Searcher in iterative_test.go instead.
func TestBoundString(t *testing.T) {
	assert.Equal(t, "Exact", search.Exact.String())
	assert.Equal(t, "Lower", search.LowerBound.String())
	assert.Equal(t, "Upper", search.UpperBound.String())
}

func TestIsMateScore(t *testing.T) {
	plies, ok := search.IsMateScore(search.Mate - 3)
	assert.True(t, ok)
	assert.Equal(t, 3, plies)

	plies, ok = search.IsMateScore(-search.Mate + 5)
	assert.True(t, ok)
	assert.Equal(t, 5, plies)

	_, ok = search.IsMateScore(120)
	assert.False(t, ok)
}

func TestLimitsClamped(t *testing.T) {
	l := search.Limits{Depth: 0, Randomness: -5}.Clamped()
	assert.Equal(t, 1, l.Depth)
	assert.Equal(t, 0, l.Randomness)

	l = search.Limits{Depth: 99}.Clamped()
	assert.Equal(t, 14, l.Depth)
}

func TestResultString(t *testing.T) {
	r := search.Result{Best: board.Move{From: board.E2, To: board.E4}, Score: 35, Depth: 6, Nodes: 1000}
	assert.Contains(t, r.String(), "e2e4")
}
