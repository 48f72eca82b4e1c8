package eval

import "github.com/corvidlabs/patzer/pkg/board"

// knightMobility counts squares knights can reach that aren't occupied by
// their own side, summed across all of the color's knights.
func knightMobility(b *board.Board, c board.Color) int {
	knights := b.Piece(c, board.Knight)
	own := b.Pieces(c)
	m := 0
	for knights != 0 {
		var sq board.Square
		sq, knights = knights.PopLSB()
		m += (board.KnightAttacks(sq) &^ own).PopCount()
	}
	return m
}

// bishopMobility counts squares on the bishop's empty-board diagonal reach
// that aren't occupied by its own side. It is a mobility hint, not a
// legal-move count: blockers are ignored.
func bishopMobility(b *board.Board, c board.Color) int {
	bishops := b.Piece(c, board.Bishop)
	own := b.Pieces(c)
	m := 0
	for bishops != 0 {
		var sq board.Square
		sq, bishops = bishops.PopLSB()
		m += (board.BishopMobilityMask(sq) &^ own).PopCount()
	}
	return m
}
