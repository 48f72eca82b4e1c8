package board_test

import (
	"testing"

	"github.com/corvidlabs/patzer/pkg/board"
	"github.com/stretchr/testify/require"
)

func TestApplyUnmakeRoundTrip(t *testing.T) {
	b := board.NewBoard()
	before := *b

	mv, err := board.ParseMove("e2e4")
	require.NoError(t, err)

	u, ok := board.ApplyMove(b, mv)
	require.True(t, ok)
	require.Equal(t, board.Black, b.Turn)
	require.Equal(t, board.NewSquare(4, 2), b.EnPassant)

	board.UnmakeMove(b, u)
	require.Equal(t, before, *b)
}

func TestEnPassantCapture(t *testing.T) {
	b := board.NewBoard()

	for _, s := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		mv, err := board.ParseMove(s)
		require.NoError(t, err)
		_, ok := board.ApplyMove(b, mv)
		require.True(t, ok)
	}
	require.Equal(t, board.NewSquare(3, 5), b.EnPassant)

	mv, err := board.ParseMove("e5d6")
	require.NoError(t, err)
	u, ok := board.ApplyMove(b, mv)
	require.True(t, ok)
	require.True(t, u.WasEnPassant)
	require.False(t, b.Occupied.IsSet(board.NewSquare(3, 4))) // captured black pawn gone
	require.True(t, b.Piece(board.White, board.Pawn).IsSet(board.NewSquare(3, 5)))

	before := b.Piece(board.Black, board.Pawn)
	board.UnmakeMove(b, u)
	require.NotEqual(t, before, b.Piece(board.Black, board.Pawn))
	require.True(t, b.Piece(board.Black, board.Pawn).IsSet(board.NewSquare(3, 4)))
}

func TestCastlingMovesRookAndRevokesRights(t *testing.T) {
	b := board.NewBoard()
	for _, s := range []string{"g1f3", "g8f6", "g2g3", "g7g6", "f1g2", "f8g7"} {
		mv, err := board.ParseMove(s)
		require.NoError(t, err)
		_, ok := board.ApplyMove(b, mv)
		require.True(t, ok)
	}

	mv, err := board.ParseMove("e1g1")
	require.NoError(t, err)
	u, ok := board.ApplyMove(b, mv)
	require.True(t, ok)
	require.True(t, u.RookFrom.IsValid())
	require.True(t, b.Piece(board.White, board.Rook).IsSet(board.NewSquare(5, 0)))
	require.False(t, b.Castling.ShortWhite)
	require.False(t, b.Castling.LongWhite)

	before := *b
	board.UnmakeMove(b, u)
	require.NotEqual(t, before, *b)
	require.True(t, b.Castling.ShortWhite)
}

func TestPromotion(t *testing.T) {
	b := board.NewBoard()
	for _, s := range []string{"d2d4", "a7a6", "d4d5", "a6a5", "d5d6", "a5a4", "d6c7", "a4a3", "c7b8q"} {
		m, err := board.ParseMove(s)
		require.NoError(t, err)
		_, ok := board.ApplyMove(b, m)
		require.True(t, ok)
	}
	require.True(t, b.Piece(board.White, board.Queen).IsSet(board.NewSquare(1, 7)))
	require.False(t, b.Piece(board.White, board.Pawn).IsSet(board.NewSquare(1, 7)))
}
