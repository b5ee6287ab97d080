package search

import (
	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/eval"
)

// hashMoveScore must fit in int16 (board.Move.Score's type) and sort above the highest
// possible capture score (Queen victim: eval.NominalValue(Queen)*16 = 14400).
const (
	hashMoveScore     = 30000
	castleBonus       = 2200
	firstKillerBonus  = 7000
	secondKillerBonus = 6500
	historyCap        = 8000
)

// killers holds, per ply, the two most recent quiet moves that caused a beta cutoff.
type killers [MaxSearchPly][2]board.Move

func (k *killers) record(ply int, m board.Move) {
	if ply < 0 || ply >= MaxSearchPly {
		return
	}
	if k[ply][0].Equals(m) {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

// history accumulates cutoff counts per side/from/to, used to order quiet moves that
// aren't killers. Clamped so one lucky line can't dominate ordering forever.
type history [board.NumSides][64][64]int32

func (h *history) record(side board.Side, m board.Move, depth int) {
	v := &h[side][m.From][m.To]
	*v += int32(depth * depth)
	if *v > historyCap {
		*v = historyCap
	}
}

// orderMoves assigns a transient ordering score to each move in list. Each move is scored
// by the first category that applies: hash move (hashMoveScore), capture/promotion by
// MVV/LVA, castling (castleBonus), killer (first/secondKillerBonus), else history (up to
// historyCap). The category scores overlap, so killers and high history values sort above
// castling and above low-value captures.
func orderMoves(pos *board.Position, list *board.MoveList, hashMove board.Move, ply int, k *killers, h *history) {
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)
		m.Score = moveOrderScore(pos, m, hashMove, ply, k, h)
		list.Set(i, m)
	}
}

func moveOrderScore(pos *board.Position, m board.Move, hashMove board.Move, ply int, k *killers, h *history) int16 {
	if hashMove.Equals(m) {
		return hashMoveScore
	}

	if m.Flags.Has(board.Capture) || m.Flags.Has(board.EnPassant) {
		victim := eval.NominalValue(captureVictimKind(pos, m))
		attacker := eval.NominalValue(movingPieceKind(pos, m))
		return clampScore(int32(victim)*16 - int32(attacker))
	}
	if m.Flags.Has(board.Promotion) {
		return clampScore(int32(eval.NominalValue(m.Promotion)) * 16)
	}
	if m.Flags.Has(board.KingCastle) || m.Flags.Has(board.QueenCastle) {
		return castleBonus
	}

	if ply >= 0 && ply < MaxSearchPly {
		if k[ply][0].Equals(m) {
			return firstKillerBonus
		}
		if k[ply][1].Equals(m) {
			return secondKillerBonus
		}
	}

	side, _, _ := pos.PieceAt(m.From)
	return int16(h[side][m.From][m.To])
}

func clampScore(v int32) int16 {
	if v > 1<<15-1 {
		return 1<<15 - 1
	}
	if v < -(1 << 15) {
		return -(1 << 15)
	}
	return int16(v)
}

func movingPieceKind(pos *board.Position, m board.Move) board.PieceKind {
	_, kind, _ := pos.PieceAt(m.From)
	return kind
}

// captureVictimKind returns the piece kind being captured by m, accounting for en passant
// where the victim square differs from m.To.
func captureVictimKind(pos *board.Position, m board.Move) board.PieceKind {
	if m.Flags.Has(board.EnPassant) {
		return board.Pawn
	}
	_, kind, _ := pos.PieceAt(m.To)
	return kind
}
