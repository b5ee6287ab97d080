package search_test

import (
	"testing"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/board/fen"
	"github.com/Kourosh37/chesscore/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookProbeReturnsOpeningMove(t *testing.T) {
	book := search.NewBook([]search.Line{
		{Moves: []string{"e2e4", "e7e5", "g1f3"}, Weight: 10},
	})

	pos := board.Start()
	var legal board.MoveList
	board.GenerateLegalMoves(pos, &legal)

	m, ok := book.Probe(pos, &legal, 0, nil)
	require.True(t, ok)
	assert.Equal(t, "e2e4", board.MoveToUCI(m))
}

func TestBookProbeWeightedRandomReturnsABookMove(t *testing.T) {
	book := search.NewBook([]search.Line{
		{Moves: []string{"e2e4"}, Weight: 10},
		{Moves: []string{"d2d4"}, Weight: 10},
	})

	pos := board.Start()
	var legal board.MoveList
	board.GenerateLegalMoves(pos, &legal)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		m, ok := book.Probe(pos, &legal, 50, func(n int) int { return i % n })
		require.True(t, ok)
		seen[board.MoveToUCI(m)] = true
	}
	assert.True(t, seen["e2e4"] || seen["d2d4"])
}

func TestDefaultOpeningLinesProduceABookMove(t *testing.T) {
	book := search.NewBook(search.DefaultOpeningLines)

	pos := board.Start()
	var legal board.MoveList
	board.GenerateLegalMoves(pos, &legal)

	_, ok := book.Probe(pos, &legal, 0, nil)
	assert.True(t, ok)
}

func TestBookProbeDeclinesOutsideOpeningWindow(t *testing.T) {
	book := search.NewBook([]search.Line{
		{Moves: []string{"e2e4"}, Weight: 10},
	})

	pos, err := fen.Decode("r1bq1rk1/ppp2ppp/2n2n2/3pp3/1b2P3/2NP1N2/PPP2PPP/R1BQKB1R w KQ - 2 20")
	require.NoError(t, err)

	var legal board.MoveList
	board.GenerateLegalMoves(pos, &legal)

	_, ok := book.Probe(pos, &legal, 0, nil)
	assert.False(t, ok)
}
