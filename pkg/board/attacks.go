package board

// IsAttacked reports whether sq is attacked by the color opposing
// defender. The defender's own pieces are part of occupancy for the ray
// walks (used for king-safety and castling-transit checks); this is
// correct even when sq is the defending king's own square, since the
// king would otherwise be (incorrectly) seen as blocking an attack on
// itself.
func IsAttacked(b *Board, sq Square, defender Color) bool {
	attacker := defender.Opponent()
	ai := attacker.index()

	if KnightAttacks(sq)&b.pieces[ai][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&b.pieces[ai][King] != 0 {
		return true
	}

	r, f := sq.Rank(), sq.File()
	pr := r - 1
	if attacker == Black {
		pr = r + 1
	}
	if pr >= 0 && pr < 8 {
		for _, df := range [2]int{-1, 1} {
			pf := f + df
			if !within(pr, pf) {
				continue
			}
			if b.pieces[ai][Pawn].IsSet(NewSquare(pf, pr)) {
				return true
			}
		}
	}

	rooksQueens := b.pieces[ai][Rook] | b.pieces[ai][Queen]
	for _, d := range rookOffsets {
		if rayAttacksFrom(sq, d[0], d[1], b.Occupied)&rooksQueens != 0 {
			return true
		}
	}

	bishopsQueens := b.pieces[ai][Bishop] | b.pieces[ai][Queen]
	for _, d := range bishopOffsets {
		if rayAttacksFrom(sq, d[0], d[1], b.Occupied)&bishopsQueens != 0 {
			return true
		}
	}

	return false
}

// IsChecked reports whether color's king is attacked. Returns false if
// the king is missing (should not occur in a legal position).
func IsChecked(b *Board, c Color) bool {
	sq := b.King(c)
	if !sq.IsValid() {
		return false
	}
	return IsAttacked(b, sq, c)
}
