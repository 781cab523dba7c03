// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/seekerror/logw"

	"github.com/walleye-engine/walleye/pkg/board"
	"github.com/walleye-engine/walleye/pkg/board/fen"
	"github.com/walleye-engine/walleye/pkg/search"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, turn, noprogress, fullmoves, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	zt := board.NewZobristTable(0)

	for i := 1; i <= *depth; i++ {
		b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

		start := time.Now()
		if *divide && i == *depth {
			for _, entry := range search.PerftDivide(b, i) {
				fmt.Printf("%v: %v\n", entry.Move, entry.Nodes)
			}
		}
		nodes := search.Perft(b, i)
		elapsed := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, elapsed.Microseconds())
	}
}
