package search

import "github.com/corvidlabs/patzer/pkg/board"

// Move-ordering priority bands: promo > capture > killer > history. The
// bands are spaced far enough apart that no band's contents can overlap
// the one below.
const (
	scorePromo   = 9_000_000
	scoreCapture = 8_000_000
	scoreKiller  = 7_000_000
	scoreHistory = 0
)

// mvvLva[victim][attacker] ranks captures by most-valuable-victim,
// least-valuable-attacker. Indices are board.Piece.MVVIndex(): P=0, N=1,
// B=2, R=3, Q=4, K=5. Larger values sort first.
var mvvLva = [6][6]int32{
	{15, 14, 13, 12, 11, 10}, // victim pawn
	{25, 24, 23, 22, 21, 20}, // victim knight
	{35, 34, 33, 32, 31, 30}, // victim bishop
	{45, 44, 43, 42, 41, 40}, // victim rook
	{55, 54, 53, 52, 51, 50}, // victim queen
	{65, 64, 63, 62, 61, 60}, // victim king
}

// scoreMove assigns mv a move-ordering priority for the node at ply, given
// b in its pre-move state (so board.IsCapture still sees the destination
// occupancy).
func (c *Context) scoreMove(b *board.Board, mv board.Move, ply int) int32 {
	if mv.Promotion != board.NoPiece {
		return scorePromo + int32(mv.Promotion.Value())
	}
	if board.IsCapture(b, mv) {
		victim := b.CodeAt(mv.To).Piece()
		attacker := b.CodeAt(mv.From).Piece()
		return scoreCapture + mvvLva[victim.MVVIndex()][attacker.MVVIndex()]
	}
	if ply < maxPly {
		k := c.killers[ply]
		if mv.Equals(k[0]) {
			return scoreKiller
		}
		if mv.Equals(k[1]) {
			return scoreKiller - 1
		}
	}
	return scoreHistory + c.history[mv.From][mv.To]
}

// orderMoves scores every move in place and sorts descending by score.
// Selection sort is adequate at these branching factors; running it twice
// on the same slice yields the same order.
func (c *Context) orderMoves(b *board.Board, moves []board.Move, ply int) {
	for i := range moves {
		moves[i].Score = c.scoreMove(b, moves[i], ply)
	}
	for i := 0; i < len(moves); i++ {
		best := i
		for j := i + 1; j < len(moves); j++ {
			if moves[j].Score > moves[best].Score {
				best = j
			}
		}
		moves[i], moves[best] = moves[best], moves[i]
	}
}

// recordCutoff updates the killer slots and history table for a
// non-capture move that produced a beta cutoff at ply. Callers must only
// pass non-captures; captures are never recorded here.
func (c *Context) recordCutoff(mv board.Move, ply, depth int) {
	if ply < maxPly {
		c.killers[ply][1] = c.killers[ply][0]
		c.killers[ply][0] = mv
	}
	c.history[mv.From][mv.To] += int32(depth * depth)
}
