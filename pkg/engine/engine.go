// Package engine wires together board, eval and search into a single owned handle:
// position state, transposition table and opening book all live on the Engine value
// instead of as process-global mutable state.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/board/fen"
	"github.com/Kourosh37/chesscore/pkg/eval"
	"github.com/Kourosh37/chesscore/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// defaultHashSizeMB is the transposition table size used when no Option overrides it.
const defaultHashSizeMB = 32

// Engine is an owned handle over one game's position, transposition table and opening
// book. Construct one per game (or per concurrent analysis); searches on the same Engine
// must not overlap.
type Engine struct {
	name string

	pos      *board.Position
	tt       *search.TranspositionTable
	searcher *search.Searcher

	// defaultTimeMs is the move time applied when SearchBestMove is given limits.TimeMs<=0.
	// Unset (lang.None) means no default: the caller's depth limit alone governs the search.
	defaultTimeMs lang.Optional[int]

	mu sync.Mutex
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithName overrides the engine's display name.
func WithName(name string) Option {
	return func(e *Engine) {
		e.name = name
	}
}

// WithBook equips the engine with a built-in opening book.
func WithBook(book *search.Book) Option {
	return func(e *Engine) {
		e.searcher = search.NewSearcher(e.tt, book)
	}
}

// WithDefaultTimeMs sets the move time applied to a SearchBestMove call whose Limits leave
// TimeMs unset (<=0), for callers such as a REPL that want a house time control rather than
// a depth-only search.
func WithDefaultTimeMs(ms int) Option {
	return func(e *Engine) {
		e.defaultTimeMs = lang.Some(ms)
	}
}

// WithHashSize overrides the transposition table size, in megabytes, in place of
// defaultHashSizeMB. Must be given before any other Option that reads e.tt.
func WithHashSize(mb int) Option {
	return func(e *Engine) {
		e.tt = search.NewTranspositionTableSized(mb)
		e.searcher = search.NewSearcher(e.tt, e.searcher.Book())
	}
}

// NewEngine constructs an Engine at the standard starting position, with its own
// transposition table and no opening book unless WithBook is given.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		name: "chesscore",
		pos:  board.Start(),
		tt:   search.NewTranspositionTableSized(defaultHashSizeMB),
	}
	e.searcher = search.NewSearcher(e.tt, nil)
	for _, fn := range opts {
		fn(e)
	}
	return e
}

// Name returns the engine's display name and version, e.g. "chesscore v0.1.0".
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// ResetTranspositionTable clears accumulated search results. Safe to call between games.
func (e *Engine) ResetTranspositionTable() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.searcher.ResetTranspositionTable()
}

// SetPositionEmpty clears the board to the empty position.
func (e *Engine) SetPositionEmpty() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = board.Empty()
}

// SetPositionStart resets to the standard starting position.
func (e *Engine) SetPositionStart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = board.Start()
}

// SetPositionFromFEN parses and installs a position. On failure the current position is
// left unchanged and false is returned.
func (e *Engine) SetPositionFromFEN(s string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(s)
	if err != nil {
		return false
	}
	e.pos = pos
	return true
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos)
}

// GenerateLegalMoves returns the fully legal moves for the side to move.
func (e *Engine) GenerateLegalMoves() *board.MoveList {
	e.mu.Lock()
	defer e.mu.Unlock()

	list := &board.MoveList{}
	board.GenerateLegalMoves(e.pos, list)
	return list
}

// ApplyMove applies m without validating it against the legal move list. Returns false,
// leaving the position unchanged, only when no piece stands on m.From (board.ApplyMove
// panics on such a move); otherwise applies m and returns true.
func (e *Engine) ApplyMove(m board.Move) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !m.From.IsValid() || e.pos.IsEmpty(m.From) {
		return false
	}
	board.ApplyMove(e.pos, m)
	return true
}

// MakeMove validates m against the legal move list and applies it. Returns false, leaving
// the position unchanged, if m is not legal.
func (e *Engine) MakeMove(m board.Move) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return board.MakeMove(e.pos, m)
}

// InCheck reports whether side's king is attacked in the current position.
func (e *Engine) InCheck(side board.Side) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.InCheck(side)
}

// EvaluatePosition returns the static evaluation from the side-to-move's perspective.
func (e *Engine) EvaluatePosition() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return int32(eval.Evaluate(e.pos))
}

// SearchBestMove runs iterative-deepening search on the current position, honoring limits
// and ctx cancellation.
func (e *Engine) SearchBestMove(ctx context.Context, limits search.Limits) search.Result {
	e.mu.Lock()
	pos := e.pos.Clone()
	searcher := e.searcher
	if limits.TimeMs <= 0 {
		if ms, ok := e.defaultTimeMs.V(); ok {
			limits.TimeMs = ms
		}
	}
	e.mu.Unlock()

	logw.Debugf(ctx, "Searching %v with limits=%+v", fen.Encode(pos), limits)

	result := searcher.SearchBestMove(ctx, pos, limits)

	logw.Debugf(ctx, "Search result: %v", result)
	return result
}
