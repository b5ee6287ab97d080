// bench runs the tactical test suite from the engine's testable-properties table, and
// doubles as a minimal UCI-style REPL for headless play.
package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/engine"
	"github.com/Kourosh37/chesscore/pkg/search"
	"github.com/seekerror/logw"
)

var (
	mode     = flag.String("mode", "suite", "suite | repl")
	depth    = flag.Int("depth", 6, "search depth for the tactical suite")
	movetime = flag.Int("movetime", 1000, "search time in ms for the tactical suite")
	book     = flag.Bool("book", true, "seed the engine with the built-in opening book")
	hashMB   = flag.Int("hash", 32, "transposition table size in megabytes")
)

func newEngine() *engine.Engine {
	opts := []engine.Option{
		engine.WithHashSize(*hashMB),
		engine.WithDefaultTimeMs(*movetime),
	}
	if *book {
		opts = append(opts, engine.WithBook(search.NewBook(search.DefaultOpeningLines)))
	}
	return engine.NewEngine(opts...)
}

type scenario struct {
	fen      string
	expected []string
	name     string
}

var scenarios = []scenario{
	{name: "mate-in-one", fen: "7k/6p1/6KQ/8/8/8/8/8 w - - 0 1", expected: []string{"h6g7"}},
	{name: "win-the-queen", fen: "4k3/8/8/8/3q4/8/8/3QK3 w - - 0 1", expected: []string{"d1d4"}},
	{name: "hanging-queen", fen: "r1b1kbnr/pppp1ppp/2n5/4p3/3q4/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 5", expected: []string{"f3d4"}},
}

func main() {
	ctx := context.Background()
	flag.Parse()

	switch *mode {
	case "repl":
		runREPL(ctx)
	default:
		runSuite(ctx)
	}
}

func runSuite(ctx context.Context) {
	e := newEngine()

	passed := 0
	for _, sc := range scenarios {
		if !e.SetPositionFromFEN(sc.fen) {
			logw.Errorf(ctx, "%v: invalid fen %q", sc.name, sc.fen)
			continue
		}

		limits := search.Limits{Depth: *depth, TimeMs: *movetime}
		result := e.SearchBestMove(ctx, limits)

		got := board.MoveToUCI(result.Best)
		ok := false
		for _, want := range sc.expected {
			if got == want {
				ok = true
				break
			}
		}

		status := "FAIL"
		if ok {
			status = "PASS"
			passed++
		}
		fmt.Printf("%-16v %v best=%v want=%v score=%v depth=%v nodes=%v\n",
			sc.name, status, got, sc.expected, result.Score, result.Depth, result.Nodes)
	}

	fmt.Printf("%v/%v scenarios passed\n", passed, len(scenarios))
}

// runREPL implements a small subset of the UCI text protocol: "position startpos|fen ...
// [moves ...]", "go depth N|movetime N", "quit". Output is funneled through a chan and
// drained by engine.WriteStdoutLines, the counterpart to engine.ReadStdinLines below.
func runREPL(ctx context.Context) {
	e := newEngine()

	out := make(chan string, 1)
	done := make(chan struct{})
	go func() {
		engine.WriteStdoutLines(ctx, out)
		close(done)
	}()
	defer func() {
		close(out)
		<-done // let the last queued lines flush before the process exits
	}()

	out <- e.Name()

	lines := engine.ReadStdinLines(ctx)
	for line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit":
			return
		case "position":
			handlePosition(e, fields[1:])
		case "go":
			handleGo(ctx, e, out, fields[1:])
		case "uci":
			out <- "id name " + e.Name()
			out <- "uciok"
		case "isready":
			out <- "readyok"
		}
	}
}

func handlePosition(e *engine.Engine, args []string) {
	if len(args) == 0 {
		return
	}

	i := 0
	switch args[0] {
	case "startpos":
		e.SetPositionStart()
		i = 1
	case "fen":
		var parts []string
		i = 1
		for i < len(args) && args[i] != "moves" {
			parts = append(parts, args[i])
			i++
		}
		e.SetPositionFromFEN(strings.Join(parts, " "))
	default:
		return
	}

	if i < len(args) && args[i] == "moves" {
		for _, s := range args[i+1:] {
			m, ok := board.MoveFromUCI(s)
			if !ok {
				continue
			}
			e.MakeMove(m)
		}
	}
}

func handleGo(ctx context.Context, e *engine.Engine, out chan<- string, args []string) {
	limits := search.Limits{Depth: 14}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					limits.Depth = n
				}
			}
		case "movetime":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					limits.TimeMs = n
				}
			}
		}
	}

	start := time.Now()
	result := e.SearchBestMove(ctx, limits)
	out <- fmt.Sprintf("info depth %v score cp %v nodes %v time %v",
		result.Depth, result.Score, result.Nodes, time.Since(start).Milliseconds())
	out <- fmt.Sprintf("bestmove %v", board.MoveToUCI(result.Best))
}
