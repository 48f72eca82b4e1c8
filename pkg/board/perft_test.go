package board_test

import (
	"testing"

	"github.com/corvidlabs/patzer/pkg/board"
	"github.com/stretchr/testify/require"
)

func perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := board.GenerateLegalMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u, ok := board.ApplyMove(b, m)
		if !ok {
			continue
		}
		nodes += perft(b, depth-1)
		board.UnmakeMove(b, u)
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	tests := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, tt := range tests {
		b := board.NewBoard()
		got := perft(b, tt.depth)
		require.Equal(t, tt.nodes, got, "perft(%d)", tt.depth)
	}
}

func TestPerftStartPositionDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	b := board.NewBoard()
	require.Equal(t, uint64(4865609), perft(b, 5))
}

// TestPerftRestoresBoard checks that a full perft walk leaves the root
// board byte-identical to how it started, i.e. every ApplyMove down the
// tree is exactly undone.
func TestPerftRestoresBoard(t *testing.T) {
	b := board.NewBoard()
	before := *b
	perft(b, 3)
	require.Equal(t, before, *b)
}
