package engine_test

import (
	"context"
	"testing"

	"github.com/corvidlabs/patzer/pkg/engine"
	"github.com/stretchr/testify/require"
)

func TestPerftStartPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "test")

	tests := []struct {
		depth int
		nodes uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tt := range tests {
		require.Equal(t, tt.nodes, e.Perft(ctx, tt.depth), "perft(%d)", tt.depth)
	}
}

func TestApplyCoordinateMoveThenPerftOne(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "test")

	require.NoError(t, e.ApplyCoordinateMove(ctx, "e2e4"))
	require.Equal(t, uint64(20), e.Perft(ctx, 1))

	require.NoError(t, e.ApplyCoordinateMove(ctx, "e7e5"))
	require.Equal(t, uint64(20), e.Perft(ctx, 1))
}

func TestApplyCoordinateMoveRejectsEmptyFromSquare(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "test")

	require.Error(t, e.ApplyCoordinateMove(ctx, "e4e5")) // no piece on e4 yet
}

func TestFindBestMoveReturnsLegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "test")

	mv := e.FindBestMove(ctx, 1)
	require.False(t, mv.IsZero())
}

func TestSetupResetsToStartPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "test")

	require.NoError(t, e.ApplyCoordinateMove(ctx, "e2e4"))
	e.Setup(ctx)
	require.Equal(t, uint64(20), e.Perft(ctx, 1))
}
