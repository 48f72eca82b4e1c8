package board

// Piece is a chess piece type, colorless. Values are the low 3 bits of a
// packed piece code. NoPiece (0) means an empty square.
type Piece uint8

const (
	NoPiece Piece = 0
	Pawn    Piece = 1
	Knight  Piece = 2
	Bishop  Piece = 3
	Rook    Piece = 4
	Queen   Piece = 5
	King    Piece = 6
)

const (
	colorMask Piece = 0x8
	typeMask  Piece = 0x7
)

// Code is a packed piece+color code: code&7 is the Piece, code&8 is the Color.
type Code uint8

// NewCode packs a piece and color into a single code.
func NewCode(p Piece, c Color) Code {
	return Code(p) | Code(c)
}

func (c Code) Piece() Piece {
	return Piece(c) & typeMask
}

func (c Code) Color() Color {
	if Piece(c)&colorMask != 0 {
		return Black
	}
	return White
}

func (c Code) IsEmpty() bool {
	return c == 0
}

// MVVIndex returns the 0..5 victim/attacker index used by the MVV-LVA
// table: P=0, N=1, B=2, R=3, Q=4, K=5.
func (p Piece) MVVIndex() int {
	return int(p) - 1
}

// Value is the nominal piece value in centipawns, used for material in
// evaluation and for promotion scoring in move ordering. Bishop is one
// centipawn above Knight.
func (p Piece) Value() int {
	switch p {
	case Pawn:
		return 100
	case Knight:
		return 300
	case Bishop:
		return 301
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// ParsePromotionPiece parses a UCI promotion suffix letter (case-insensitive).
func ParsePromotionPiece(r rune) (Piece, bool) {
	switch r {
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	default:
		return NoPiece, false
	}
}
