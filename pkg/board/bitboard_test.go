package board_test

import (
	"testing"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboardSetClearIsSet(t *testing.T) {
	var bb board.Bitboard
	assert.False(t, bb.IsSet(board.E4))

	bb = bb.Set(board.E4)
	assert.True(t, bb.IsSet(board.E4))
	assert.Equal(t, 1, bb.PopCount())

	bb = bb.Clear(board.E4)
	assert.False(t, bb.IsSet(board.E4))
	assert.Equal(t, 0, bb.PopCount())
}

func TestBitboardPopLSB(t *testing.T) {
	bb := board.BitMask(board.A1) | board.BitMask(board.D4) | board.BitMask(board.H8)

	var got []board.Square
	for bb != 0 {
		got = append(got, bb.PopLSB())
	}
	assert.Equal(t, []board.Square{board.A1, board.D4, board.H8}, got)
}

func TestBitRankBitFile(t *testing.T) {
	rank4 := board.BitRank(board.Rank4)
	assert.True(t, rank4.IsSet(board.A4))
	assert.True(t, rank4.IsSet(board.H4))
	assert.False(t, rank4.IsSet(board.A5))
	assert.Equal(t, 8, rank4.PopCount())

	fileD := board.BitFile(board.FileD)
	assert.True(t, fileD.IsSet(board.D1))
	assert.True(t, fileD.IsSet(board.D8))
	assert.False(t, fileD.IsSet(board.E1))
	assert.Equal(t, 8, fileD.PopCount())
}

func TestKnightAttackboardCorner(t *testing.T) {
	attacks := board.KnightAttackboard(board.A1)
	assert.Equal(t, 2, attacks.PopCount())
	assert.True(t, attacks.IsSet(board.B3))
	assert.True(t, attacks.IsSet(board.C2))
}

func TestKingAttackboardCorner(t *testing.T) {
	attacks := board.KingAttackboard(board.A1)
	assert.Equal(t, 3, attacks.PopCount())
	assert.True(t, attacks.IsSet(board.A2))
	assert.True(t, attacks.IsSet(board.B1))
	assert.True(t, attacks.IsSet(board.B2))
}

func TestRookAttackboardStopsAtBlocker(t *testing.T) {
	occ := board.BitMask(board.D4) | board.BitMask(board.D6) | board.BitMask(board.F4)

	attacks := board.RookAttackboard(occ, board.D4)
	assert.True(t, attacks.IsSet(board.D5))
	assert.True(t, attacks.IsSet(board.D6)) // includes the blocker itself
	assert.False(t, attacks.IsSet(board.D7))
	assert.True(t, attacks.IsSet(board.E4))
	assert.True(t, attacks.IsSet(board.F4))
	assert.False(t, attacks.IsSet(board.G4))
}

func TestBishopAttackboardStopsAtBlocker(t *testing.T) {
	occ := board.BitMask(board.D4) | board.BitMask(board.F6)

	attacks := board.BishopAttackboard(occ, board.D4)
	assert.True(t, attacks.IsSet(board.E5))
	assert.True(t, attacks.IsSet(board.F6))
	assert.False(t, attacks.IsSet(board.G7))
}

func TestQueenAttackboardIsRookUnionBishop(t *testing.T) {
	occ := board.BitMask(board.D4)
	queen := board.QueenAttackboard(occ, board.D4)
	rook := board.RookAttackboard(occ, board.D4)
	bishop := board.BishopAttackboard(occ, board.D4)
	assert.Equal(t, rook|bishop, queen)
}
