package board_test

import (
	"testing"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestStartPosition(t *testing.T) {
	pos := board.Start()

	assert.Equal(t, board.White, pos.SideToMove())
	assert.Equal(t, board.AllCastling, pos.Castling())
	assert.Equal(t, board.NoSquare, pos.EnPassant())
	assert.Equal(t, 0, pos.HalfmoveClock())
	assert.Equal(t, 1, pos.FullmoveNumber())
	assert.True(t, pos.IsStructurallyValid())

	assert.Equal(t, 8, pos.Piece(board.White, board.Pawn).PopCount())
	assert.Equal(t, 8, pos.Piece(board.Black, board.Pawn).PopCount())
	assert.Equal(t, board.E1, pos.KingSquare(board.White))
	assert.Equal(t, board.E8, pos.KingSquare(board.Black))
}

func TestPieceAt(t *testing.T) {
	pos := board.Start()

	side, kind, ok := pos.PieceAt(board.E1)
	assert.True(t, ok)
	assert.Equal(t, board.White, side)
	assert.Equal(t, board.King, kind)

	_, _, ok = pos.PieceAt(board.E4)
	assert.False(t, ok)
	assert.True(t, pos.IsEmpty(board.E4))
}

func TestInCheck(t *testing.T) {
	pos := board.FromPlacements([]board.Placement{
		{Square: board.E1, Side: board.White, Piece: board.King},
		{Square: board.E8, Side: board.Black, Piece: board.King},
		{Square: board.E2, Side: board.Black, Piece: board.Rook},
	}, board.White, board.NoCastling, board.NoSquare, 0, 1)

	assert.True(t, pos.InCheck(board.White))
	assert.False(t, pos.InCheck(board.Black))
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name        string
		placements  []board.Placement
		insufficient bool
	}{
		{
			"bare kings",
			[]board.Placement{
				{Square: board.E1, Side: board.White, Piece: board.King},
				{Square: board.E8, Side: board.Black, Piece: board.King},
			},
			true,
		},
		{
			"king and minor vs king",
			[]board.Placement{
				{Square: board.E1, Side: board.White, Piece: board.King},
				{Square: board.E8, Side: board.Black, Piece: board.King},
				{Square: board.B1, Side: board.White, Piece: board.Knight},
			},
			true,
		},
		{
			"same-colored bishops",
			[]board.Placement{
				{Square: board.E1, Side: board.White, Piece: board.King},
				{Square: board.E8, Side: board.Black, Piece: board.King},
				{Square: board.C1, Side: board.White, Piece: board.Bishop},
				{Square: board.F8, Side: board.Black, Piece: board.Bishop},
			},
			true,
		},
		{
			"rook on board",
			[]board.Placement{
				{Square: board.E1, Side: board.White, Piece: board.King},
				{Square: board.E8, Side: board.Black, Piece: board.King},
				{Square: board.A1, Side: board.White, Piece: board.Rook},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := board.FromPlacements(tt.placements, board.White, board.NoCastling, board.NoSquare, 0, 1)
			assert.Equal(t, tt.insufficient, pos.HasInsufficientMaterial())
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	pos := board.Start()
	clone := pos.Clone()

	var list board.MoveList
	board.GenerateLegalMoves(clone, &list)
	m, ok := list.Contains(board.Move{From: board.E2, To: board.E4})
	assert.True(t, ok)
	board.ApplyMove(clone, m)

	assert.Equal(t, board.White, pos.SideToMove())
	assert.Equal(t, board.Black, clone.SideToMove())
}
