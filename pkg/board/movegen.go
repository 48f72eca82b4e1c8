package board

// GenerateMoves returns every pseudo-legal move for the side to move. The
// returned slice is fresh per call; callers must not assume a fixed
// capacity.
func GenerateMoves(b *Board) []Move {
	moves := make([]Move, 0, 48)
	turn := b.Turn
	ci := turn.index()

	bb := b.pieces[ci][Pawn]
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		appendPawnMoves(b, &moves, sq, turn)
	}
	bb = b.pieces[ci][Knight]
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		appendJumpMoves(b, &moves, sq, KnightAttacks(sq), turn)
	}
	bb = b.pieces[ci][Bishop]
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		appendSlidingMoves(b, &moves, sq, bishopOffsets[:], turn)
	}
	bb = b.pieces[ci][Rook]
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		appendSlidingMoves(b, &moves, sq, rookOffsets[:], turn)
	}
	bb = b.pieces[ci][Queen]
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		appendSlidingMoves(b, &moves, sq, bishopOffsets[:], turn)
		appendSlidingMoves(b, &moves, sq, rookOffsets[:], turn)
	}
	bb = b.pieces[ci][King]
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		appendJumpMoves(b, &moves, sq, KingAttacks(sq), turn)
		appendCastlingMoves(b, &moves, sq, turn)
	}
	return moves
}

var promotionPieces = [4]Piece{Knight, Bishop, Rook, Queen}

func appendPawnMoves(b *Board, moves *[]Move, sq Square, turn Color) {
	dir := 1
	startRank := 1
	promoRank := 7
	if turn == Black {
		dir = -1
		startRank = 6
		promoRank = 0
	}

	r, f := sq.Rank(), sq.File()
	toR := r + dir

	if within(toR, f) {
		oneStep := NewSquare(f, toR)
		if !b.Occupied.IsSet(oneStep) {
			appendPawnTarget(moves, sq, oneStep, toR == promoRank)

			twoR := r + 2*dir
			if r == startRank && within(twoR, f) {
				twoStep := NewSquare(f, twoR)
				if !b.Occupied.IsSet(twoStep) {
					*moves = append(*moves, Move{From: sq, To: twoStep})
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		tf := f + df
		if !within(toR, tf) {
			continue
		}
		to := NewSquare(tf, toR)
		target := b.CodeAt(to)
		if !target.IsEmpty() {
			if target.Color() != turn {
				appendPawnTarget(moves, sq, to, toR == promoRank)
			}
			continue
		}
		if b.EnPassant == to {
			capSq := NewSquare(tf, r)
			capCode := b.CodeAt(capSq)
			if !capCode.IsEmpty() && capCode.Piece() == Pawn && capCode.Color() != turn {
				*moves = append(*moves, Move{From: sq, To: to})
			}
		}
	}
}

func appendPawnTarget(moves *[]Move, from, to Square, promotes bool) {
	if !promotes {
		*moves = append(*moves, Move{From: from, To: to})
		return
	}
	for _, p := range promotionPieces {
		*moves = append(*moves, Move{From: from, To: to, Promotion: p})
	}
}

func appendJumpMoves(b *Board, moves *[]Move, sq Square, targets Bitboard, turn Color) {
	targets &= ^b.Pieces(turn)
	for targets != 0 {
		var to Square
		to, targets = targets.PopLSB()
		*moves = append(*moves, Move{From: sq, To: to})
	}
}

func appendSlidingMoves(b *Board, moves *[]Move, sq Square, directions [][2]int, turn Color) {
	own := b.Pieces(turn)
	for _, d := range directions {
		r, f := sq.Rank(), sq.File()
		for {
			r += d[0]
			f += d[1]
			if !within(r, f) {
				break
			}
			to := NewSquare(f, r)
			if own.IsSet(to) {
				break
			}
			*moves = append(*moves, Move{From: sq, To: to})
			if b.Occupied.IsSet(to) {
				break
			}
		}
	}
}

func appendCastlingMoves(b *Board, moves *[]Move, sq Square, turn Color) {
	if turn == White && sq == NewSquare(4, 0) {
		if b.Castling.ShortWhite &&
			!b.Occupied.IsSet(NewSquare(5, 0)) && !b.Occupied.IsSet(NewSquare(6, 0)) &&
			!IsAttacked(b, NewSquare(4, 0), White) && !IsAttacked(b, NewSquare(5, 0), White) && !IsAttacked(b, NewSquare(6, 0), White) {
			*moves = append(*moves, Move{From: sq, To: NewSquare(6, 0)})
		}
		if b.Castling.LongWhite &&
			!b.Occupied.IsSet(NewSquare(3, 0)) && !b.Occupied.IsSet(NewSquare(2, 0)) && !b.Occupied.IsSet(NewSquare(1, 0)) &&
			!IsAttacked(b, NewSquare(4, 0), White) && !IsAttacked(b, NewSquare(3, 0), White) && !IsAttacked(b, NewSquare(2, 0), White) {
			*moves = append(*moves, Move{From: sq, To: NewSquare(2, 0)})
		}
	}
	if turn == Black && sq == NewSquare(4, 7) {
		if b.Castling.ShortBlack &&
			!b.Occupied.IsSet(NewSquare(5, 7)) && !b.Occupied.IsSet(NewSquare(6, 7)) &&
			!IsAttacked(b, NewSquare(4, 7), Black) && !IsAttacked(b, NewSquare(5, 7), Black) && !IsAttacked(b, NewSquare(6, 7), Black) {
			*moves = append(*moves, Move{From: sq, To: NewSquare(6, 7)})
		}
		if b.Castling.LongBlack &&
			!b.Occupied.IsSet(NewSquare(3, 7)) && !b.Occupied.IsSet(NewSquare(2, 7)) && !b.Occupied.IsSet(NewSquare(1, 7)) &&
			!IsAttacked(b, NewSquare(4, 7), Black) && !IsAttacked(b, NewSquare(3, 7), Black) && !IsAttacked(b, NewSquare(2, 7), Black) {
			*moves = append(*moves, Move{From: sq, To: NewSquare(2, 7)})
		}
	}
}

// GenerateLegalMoves returns every pseudo-legal move that does not leave
// the mover's own king attacked. It applies, tests, and unmakes each
// candidate in turn.
func GenerateLegalMoves(b *Board) []Move {
	pseudo := GenerateMoves(b)
	legal := make([]Move, 0, len(pseudo))

	mover := b.Turn
	for _, m := range pseudo {
		u, ok := ApplyMove(b, m)
		if !ok {
			continue
		}
		kingSq := b.King(mover)
		safe := kingSq.IsValid() && !IsAttacked(b, kingSq, mover)
		UnmakeMove(b, u)
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsCapture reports whether mv's destination square is presently occupied.
// Used by quiescence search and move ordering. Must be computed before
// applying the move.
func IsCapture(b *Board, mv Move) bool {
	return b.Occupied.IsSet(mv.To)
}
