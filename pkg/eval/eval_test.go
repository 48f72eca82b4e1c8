package eval_test

import (
	"testing"

	"github.com/corvidlabs/patzer/pkg/board"
	"github.com/corvidlabs/patzer/pkg/eval"
	"github.com/stretchr/testify/require"
)

func TestStartPositionIsBalanced(t *testing.T) {
	b := board.NewBoard()
	require.Zero(t, eval.Evaluate(b))
}

func TestPhaseStartsAtMax(t *testing.T) {
	b := board.NewBoard()
	require.Equal(t, eval.MaxPhase, eval.Phase(b))
}

func TestPhaseDropsAsMaterialComesOff(t *testing.T) {
	b := board.NewBoard()
	for _, s := range []string{"g1f3", "g8f6", "f3e5", "f6e4"} {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		_, ok := board.ApplyMove(b, m)
		require.True(t, ok)
	}
	require.Less(t, eval.Phase(b), eval.MaxPhase)
}

func TestEvaluateFavorsSideUpMaterial(t *testing.T) {
	b := board.NewBoard()
	for _, s := range []string{"e2e4", "d7d5", "e4d5"} {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		_, ok := board.ApplyMove(b, m)
		require.True(t, ok)
	}
	// White just won a pawn; it is Black to move, so Evaluate (from the
	// mover's perspective) should read negative for Black.
	require.Negative(t, eval.Evaluate(b))
}
