package eval_test

import (
	"testing"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/board/fen"
	"github.com/Kourosh37/chesscore/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStartingPositionIsNearZero(t *testing.T) {
	pos := board.Start()
	score := eval.Evaluate(pos)
	assert.InDelta(t, 0, int(score), 15) // symmetric position plus tempo bonus
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	score := eval.Evaluate(pos)
	assert.Positive(t, int(score))
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	white, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	black, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	require.NoError(t, err)

	// Same material balance, opposite side to move: scores should be negations of
	// each other up to the small flat tempo bonus.
	assert.InDelta(t, -int(eval.Evaluate(white)), int(eval.Evaluate(black)), 25)
}

func TestNominalValueOrdering(t *testing.T) {
	assert.Less(t, eval.NominalValue(board.Pawn), eval.NominalValue(board.Knight))
	assert.Less(t, eval.NominalValue(board.Knight), eval.NominalValue(board.Rook))
	assert.Less(t, eval.NominalValue(board.Rook), eval.NominalValue(board.Queen))
}

func TestGamePhaseFullMaterialIsMax(t *testing.T) {
	pos := board.Start()
	assert.Equal(t, 24, eval.GamePhase(pos))
}

func TestGamePhaseBareKingsIsZero(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 0, eval.GamePhase(pos))
}
