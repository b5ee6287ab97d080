// perft is a move-generation debugging tool. See:
// https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/Kourosh37/chesscore/pkg/board"
	"github.com/Kourosh37/chesscore/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "search depth")
	position = flag.String("fen", "", "start position (default to standard)")
	divide   = flag.Bool("divide", false, "divide leaf counts by root move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(pos, i, *divide && i == *depth)
		elapsed := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, elapsed.Microseconds())
	}
}

func perft(pos *board.Position, depth int, divide bool) int64 {
	if depth == 0 {
		return 1
	}

	var list board.MoveList
	board.GenerateLegalMoves(pos, &list)

	var nodes int64
	for i := 0; i < list.Len(); i++ {
		m := list.Get(i)

		child := pos.Clone()
		board.ApplyMove(child, m)

		count := perft(child, depth-1, false)
		if divide {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
