// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corvidlabs/patzer/pkg/board"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	for i := 1; i <= *depth; i++ {
		b := board.NewBoard()
		start := time.Now()
		nodes := perft(b, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v", i, nodes, duration.Microseconds()))
	}
	logw.Infof(ctx, "Done")
}

func perft(b *board.Board, depth int, d bool) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range board.GenerateLegalMoves(b) {
		u, ok := board.ApplyMove(b, m)
		if !ok {
			continue
		}
		count := perft(b, depth-1, false)
		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
		board.UnmakeMove(b, u)
	}
	return nodes
}
