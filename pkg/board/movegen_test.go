package board_test

import (
	"testing"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingPositionMoveCount(t *testing.T) {
	pos := board.Start()

	var list board.MoveList
	board.GenerateLegalMoves(pos, &list)
	assert.Equal(t, 20, list.Len())
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes int64
	}{
		{"start d4", fen.Initial, 4, 197281},
		{"kiwipete d4", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
		{"endgame ep d5", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674624},
		{"castling maze d4", "r3k2r/Pppp1ppp/1b3nbN/nP6/B1P1P3/5N2/Pp1P1PPP/R2Q1RK1 w kq - 0 1", 4, 1371859},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := fen.Decode(tt.fen)
			require.NoError(t, err)
			assert.Equal(t, tt.nodes, perft(pos, tt.depth))
		})
	}
}

func TestPerftStartDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("expensive perft, skipped with -short")
	}
	pos := board.Start()
	assert.Equal(t, int64(4865609), perft(pos, 5))
}

func perft(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var list board.MoveList
	board.GenerateLegalMoves(pos, &list)

	var nodes int64
	for i := 0; i < list.Len(); i++ {
		child := pos.Clone()
		board.ApplyMove(child, list.Get(i))
		nodes += perft(child, depth-1)
	}
	return nodes
}

func TestCastlingBlockedWhenSquaresAttacked(t *testing.T) {
	pos := board.FromPlacements([]board.Placement{
		{Square: board.E1, Side: board.White, Piece: board.King},
		{Square: board.H1, Side: board.White, Piece: board.Rook},
		{Square: board.A1, Side: board.White, Piece: board.Rook},
		{Square: board.E8, Side: board.Black, Piece: board.King},
		{Square: board.F8, Side: board.Black, Piece: board.Rook}, // covers f1
	}, board.White, board.AllCastling, board.NoSquare, 0, 1)

	var list board.MoveList
	board.GenerateLegalMoves(pos, &list)

	_, kingside := list.Contains(board.Move{From: board.E1, To: board.G1})
	assert.False(t, kingside)
	_, queenside := list.Contains(board.Move{From: board.E1, To: board.C1})
	assert.True(t, queenside)
}

func TestEnPassantCapture(t *testing.T) {
	pos := board.FromPlacements([]board.Placement{
		{Square: board.E1, Side: board.White, Piece: board.King},
		{Square: board.E8, Side: board.Black, Piece: board.King},
		{Square: board.E5, Side: board.White, Piece: board.Pawn},
		{Square: board.D5, Side: board.Black, Piece: board.Pawn},
	}, board.White, board.NoCastling, board.D6, 0, 1)

	var list board.MoveList
	board.GenerateLegalMoves(pos, &list)

	m, ok := list.Contains(board.Move{From: board.E5, To: board.D6})
	require.True(t, ok)
	assert.True(t, m.Flags.Has(board.EnPassant))

	child := pos.Clone()
	board.ApplyMove(child, m)
	assert.True(t, child.IsEmpty(board.D5))
}

func TestPromotionGeneratesFourChoices(t *testing.T) {
	pos := board.FromPlacements([]board.Placement{
		{Square: board.A1, Side: board.White, Piece: board.King},
		{Square: board.A8, Side: board.Black, Piece: board.King},
		{Square: board.D7, Side: board.White, Piece: board.Pawn},
	}, board.White, board.NoCastling, board.NoSquare, 0, 1)

	var list board.MoveList
	board.GenerateLegalMoves(pos, &list)

	count := 0
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)
		if m.From == board.D7 && m.To == board.D8 {
			count++
		}
	}
	assert.Equal(t, 4, count)
}
