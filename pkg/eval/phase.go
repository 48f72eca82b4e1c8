// Package eval scores a position in centipawns from the perspective of the
// side to move, blending middlegame and endgame terms by material phase.
package eval

import "github.com/corvidlabs/patzer/pkg/board"

// Phase weights and the game-phase ceiling. A full set of minor and major
// pieces on both sides gives phase 0; phase rises toward MaxPhase as they
// trade off. Evaluate weights its middlegame accumulator by phase and its
// endgame accumulator by MaxPhase-phase.
const (
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4

	// MaxPhase is the phase value of the initial position: 4 knights, 4
	// bishops, 4 rooks and 2 queens.
	MaxPhase = knightPhase*4 + bishopPhase*4 + rookPhase*4 + queenPhase*2
)

// Phase returns MaxPhase minus the phase weight of the knights, bishops,
// rooks and queens still on the board, clamped to 0. It is 0 in the
// initial position and increases as pieces are traded off the board.
func Phase(b *board.Board) int {
	p := MaxPhase
	p -= b.Piece(board.White, board.Knight).PopCount() * knightPhase
	p -= b.Piece(board.Black, board.Knight).PopCount() * knightPhase
	p -= b.Piece(board.White, board.Bishop).PopCount() * bishopPhase
	p -= b.Piece(board.Black, board.Bishop).PopCount() * bishopPhase
	p -= b.Piece(board.White, board.Rook).PopCount() * rookPhase
	p -= b.Piece(board.Black, board.Rook).PopCount() * rookPhase
	p -= b.Piece(board.White, board.Queen).PopCount() * queenPhase
	p -= b.Piece(board.Black, board.Queen).PopCount() * queenPhase
	if p < 0 {
		p = 0
	}
	return p
}
