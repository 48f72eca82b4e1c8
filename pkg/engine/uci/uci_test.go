package uci_test

import (
	"context"
	"strings"
	"testing"

	"github.com/corvidlabs/patzer/pkg/engine"
	"github.com/corvidlabs/patzer/pkg/engine/uci"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, lines ...string) []string {
	t.Helper()
	ctx := context.Background()
	e := engine.New(ctx, "test", "test")

	in := make(chan string, len(lines)+1)
	for _, l := range lines {
		in <- l
	}
	in <- "quit"
	close(in)

	driver, out := uci.NewDriver(ctx, e, in)
	var got []string
	for line := range out {
		got = append(got, line)
	}
	<-driver.Closed()
	return got
}

func TestUCIHandshake(t *testing.T) {
	out := run(t, "isready")
	require.Len(t, out, 4) // id name, id author, uciok, readyok
	require.Contains(t, out[0], "id name test")
	require.Equal(t, "id author test", out[1])
	require.Equal(t, "uciok", out[2])
	require.Equal(t, "readyok", out[3])
}

func TestGoPerftFromStartPosition(t *testing.T) {
	out := run(t, "position startpos", "go perft 2")
	require.Contains(t, out, "nodes 400")
}

func TestGoPerftDefaultsToDepthOne(t *testing.T) {
	out := run(t, "position startpos", "go perft")
	require.Contains(t, out, "nodes 20")
}

func TestPositionStartposWithMovesThenPerft(t *testing.T) {
	out := run(t, "position startpos moves e2e4", "go perft 1")
	require.Contains(t, out, "nodes 20")
}

func TestPositionFenIgnoresPayloadButAppliesMoves(t *testing.T) {
	out := run(t, "position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 moves e2e4", "go perft 1")
	require.Contains(t, out, "nodes 20")
}

func TestGoDepthReturnsBestmove(t *testing.T) {
	out := run(t, "position startpos", "go depth 1")
	found := false
	for _, l := range out {
		if strings.HasPrefix(l, "bestmove") {
			found = true
		}
	}
	require.True(t, found, "expected a bestmove line, got %v", out)
}
