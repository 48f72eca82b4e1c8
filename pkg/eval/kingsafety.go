package eval

import "github.com/corvidlabs/patzer/pkg/board"

// kingSafetyMG scores back-rank shelter and pawn cover in front of the
// king. Middlegame term only: it is added to the mg accumulator and has
// no endgame counterpart.
func kingSafetyMG(b *board.Board, c board.Color) int {
	sq := b.King(c)
	if !sq.IsValid() {
		return -200
	}
	r, f := sq.Rank(), sq.File()

	score := 0
	if (c == board.White && r <= 1) || (c == board.Black && r >= 6) {
		score += 10
	} else {
		score -= 5
	}

	dir := 1
	if c == board.Black {
		dir = -1
	}
	fr := r + dir
	if fr >= 0 && fr < 8 {
		pawns := b.Piece(c, board.Pawn)
		for df := -1; df <= 1; df++ {
			ff := f + df
			if ff < 0 || ff > 7 {
				continue
			}
			if pawns.IsSet(board.NewSquare(ff, fr)) {
				score += 5
			}
		}
	}
	return score
}
