package board

// Undo is the snapshot needed to reverse exactly one ApplyMove. Undo
// records must be stacked in LIFO order with ApplyMove calls along the
// search tree.
type Undo struct {
	From, To Square

	MovedCode    Code
	CapturedCode Code   // 0 if no capture
	CapturedSq   Square // differs from To on en passant

	PrevCastling  Rights
	PrevEnPassant Square
	PrevTurn      Color

	WasEnPassant bool

	RookFrom, RookTo Square // NoSquare unless this was a castle
	RookCode         Code
}
