package board

import "math/bits"

// Bitboard is a 64-bit set of squares, bit i set iff square i is a member.
type Bitboard uint64

// BitMask returns a bitboard with only sq set.
func BitMask(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// IsSet reports whether sq is a member.
func (b Bitboard) IsSet(sq Square) bool {
	return b&BitMask(sq) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// PopLSB returns the least-significant set square and the bitboard with
// that bit cleared. Must not be called on an empty bitboard.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	sq := Square(bits.TrailingZeros64(uint64(b)))
	return sq, b & (b - 1)
}

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	bishopOffsets = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookOffsets   = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
)

var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	// bishopAttacks is the bishop's diagonal reach on an empty board. It is
	// a mobility upper bound only; it must never be used for legality, since
	// it ignores blockers.
	bishopAttacks [64]Bitboard
)

func init() {
	for sq := Square(0); sq < 64; sq++ {
		r, f := sq.Rank(), sq.File()

		var k, n Bitboard
		for _, d := range kingOffsets {
			if rr, ff := r+d[0], f+d[1]; within(rr, ff) {
				k |= BitMask(NewSquare(ff, rr))
			}
		}
		for _, d := range knightOffsets {
			if rr, ff := r+d[0], f+d[1]; within(rr, ff) {
				n |= BitMask(NewSquare(ff, rr))
			}
		}

		var bi Bitboard
		for _, d := range bishopOffsets {
			bi |= rayAttacksFrom(sq, d[0], d[1], 0)
		}

		kingAttacks[sq] = k
		knightAttacks[sq] = n
		bishopAttacks[sq] = bi
	}
}

// KnightAttacks returns the knight attack/move set from sq, ignoring
// occupancy (knights jump).
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack/move set from sq (castling excluded).
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// BishopMobilityMask returns the bishop's empty-board diagonal reach from
// sq. Used only as a mobility hint in evaluation.
func BishopMobilityMask(sq Square) Bitboard {
	return bishopAttacks[sq]
}

// rayAttacksFrom walks from sq in direction (dr, df), including every
// square stepped onto, stopping after including the first occupied square
// or after stepping off the board.
func rayAttacksFrom(sq Square, dr, df int, occupancy Bitboard) Bitboard {
	var attacks Bitboard
	r, f := sq.Rank(), sq.File()
	for {
		r += dr
		f += df
		if !within(r, f) {
			break
		}
		t := NewSquare(f, r)
		attacks |= BitMask(t)
		if occupancy.IsSet(t) {
			break
		}
	}
	return attacks
}

// RookAttacks returns rook moves/attacks from sq given the board occupancy.
func RookAttacks(sq Square, occupancy Bitboard) Bitboard {
	var a Bitboard
	for _, d := range rookOffsets {
		a |= rayAttacksFrom(sq, d[0], d[1], occupancy)
	}
	return a
}

// BishopAttacks returns bishop moves/attacks from sq given the board occupancy.
func BishopAttacks(sq Square, occupancy Bitboard) Bitboard {
	var a Bitboard
	for _, d := range bishopOffsets {
		a |= rayAttacksFrom(sq, d[0], d[1], occupancy)
	}
	return a
}

// QueenAttacks returns queen moves/attacks from sq given the board occupancy.
func QueenAttacks(sq Square, occupancy Bitboard) Bitboard {
	return RookAttacks(sq, occupancy) | BishopAttacks(sq, occupancy)
}
