package board

// ApplyMove applies mv to b and fills in u with enough state to reverse
// it with UnmakeMove. It performs no legality checking beyond "there is
// a piece to move": it returns false (and leaves b untouched) only if
// From is empty. Pseudo-legal moves generated by this package are always
// accepted; a driver supplying an arbitrary move is expected to have at
// least checked that much.
func ApplyMove(b *Board, mv Move) (Undo, bool) {
	var u Undo
	u.From = mv.From
	u.To = mv.To
	u.MovedCode = b.CodeAt(mv.From)
	u.CapturedCode = b.CodeAt(mv.To)
	u.CapturedSq = mv.To
	u.PrevCastling = b.Castling
	u.PrevEnPassant = b.EnPassant
	u.PrevTurn = b.Turn
	u.RookFrom, u.RookTo = NoSquare, NoSquare

	if u.MovedCode.IsEmpty() {
		return u, false
	}

	moverColor := u.MovedCode.Color()
	dir := 1
	if moverColor == Black {
		dir = -1
	}

	fromRank, fromFile := mv.From.Rank(), mv.From.File()
	toRank, toFile := mv.To.Rank(), mv.To.File()

	// En passant capture: a pawn crossing files onto an empty square that
	// equals the en passant target.
	if u.MovedCode.Piece() == Pawn && fromFile != toFile && b.CodeAt(mv.To).IsEmpty() && mv.To == b.EnPassant {
		u.WasEnPassant = true
		capSq := Square(int(mv.To) - dir*8)
		u.CapturedSq = capSq
		u.CapturedCode = b.CodeAt(capSq)
		b.removePiece(capSq)
	} else if !u.CapturedCode.IsEmpty() {
		b.removePiece(mv.To)
	}

	b.removePiece(mv.From)
	if mv.Promotion != NoPiece {
		b.placePiece(mv.To, NewCode(mv.Promotion, moverColor))
	} else {
		b.placePiece(mv.To, u.MovedCode)
	}

	// Castling: king moving two files drags the rook along.
	if u.MovedCode.Piece() == King && abs(fromFile-toFile) == 2 {
		kingRank := toRank
		if toFile == 6 {
			u.RookFrom = NewSquare(7, kingRank)
			u.RookTo = NewSquare(5, kingRank)
		} else {
			u.RookFrom = NewSquare(0, kingRank)
			u.RookTo = NewSquare(3, kingRank)
		}
		u.RookCode = b.CodeAt(u.RookFrom)
		rookCode := b.removePiece(u.RookFrom)
		if !rookCode.IsEmpty() {
			b.placePiece(u.RookTo, rookCode)
		}
	}

	// Castling rights: king or rook moving, or a rook square captured onto.
	if u.MovedCode.Piece() == King {
		if moverColor == White {
			b.Castling.ShortWhite, b.Castling.LongWhite = false, false
		} else {
			b.Castling.ShortBlack, b.Castling.LongBlack = false, false
		}
	}
	if u.MovedCode.Piece() == Rook {
		revokeRookRights(b, mv.From)
	}
	if !u.CapturedCode.IsEmpty() && u.CapturedCode.Piece() == Rook {
		revokeRookRights(b, mv.To)
	}

	if u.MovedCode.Piece() == Pawn && abs(toRank-fromRank) == 2 {
		b.EnPassant = NewSquare(fromFile, (fromRank+toRank)/2)
	} else {
		b.EnPassant = NoSquare
	}

	b.updateOccupancies()
	b.Turn = b.Turn.Opponent()
	return u, true
}

// revokeRookRights clears the castling right tied to a rook's original
// square. Idempotent and order-independent.
func revokeRookRights(b *Board, sq Square) {
	switch sq {
	case 0:
		b.Castling.LongWhite = false
	case 7:
		b.Castling.ShortWhite = false
	case 56:
		b.Castling.LongBlack = false
	case 63:
		b.Castling.ShortBlack = false
	}
}

// UnmakeMove reverses the single most recent ApplyMove described by u.
func UnmakeMove(b *Board, u Undo) {
	b.Turn = u.PrevTurn

	b.removePiece(u.From)
	b.removePiece(u.To)
	b.placePiece(u.From, u.MovedCode)

	if !u.CapturedCode.IsEmpty() {
		b.placePiece(u.CapturedSq, u.CapturedCode)
	}

	if u.RookFrom.IsValid() {
		b.removePiece(u.RookTo)
		b.placePiece(u.RookFrom, u.RookCode)
	}

	b.Castling = u.PrevCastling
	b.EnPassant = u.PrevEnPassant
	b.updateOccupancies()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
