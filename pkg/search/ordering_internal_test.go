package search

import (
	"testing"

	"github.com/corvidlabs/patzer/pkg/board"
)

func TestOrderMovesIsStableAcrossReruns(t *testing.T) {
	b := board.NewBoard()
	moves := board.GenerateLegalMoves(b)

	ctx := &Context{}
	ctx.orderMoves(b, moves, 1)
	first := append([]board.Move(nil), moves...)

	ctx.orderMoves(b, moves, 1)
	for i := range moves {
		if moves[i] != first[i] {
			t.Fatalf("orderMoves unstable at %d: %v vs %v", i, moves[i], first[i])
		}
	}
}

func TestScoreMoveOrdersPromoAboveCaptureAboveKillerAboveHistory(t *testing.T) {
	ctx := &Context{}
	promo := board.Move{From: 8, To: 16, Promotion: board.Queen}
	capture := board.Move{From: 1, To: 2}
	killer := board.Move{From: 16, To: 24} // empty squares, so not a capture
	quiet := board.Move{From: 32, To: 40}

	ctx.killers[1][0] = killer
	ctx.history[quiet.From][quiet.To] = 1_000_000 // even a hot history entry stays below a killer

	b := board.NewBoard()
	// Force CodeAt(capture.To) non-empty by placing the capture move's `to`
	// on an occupied square: square 2 (c1, White bishop) at the start
	// position is already occupied, so scoreMove sees it as a capture.
	promoScore := ctx.scoreMove(b, promo, 1)
	captureScore := ctx.scoreMove(b, capture, 1)
	killerScore := ctx.scoreMove(b, killer, 1)
	quietScore := ctx.scoreMove(b, quiet, 1)

	if !(promoScore > captureScore && captureScore > killerScore && killerScore > quietScore) {
		t.Fatalf("ordering violated: promo=%v capture=%v killer=%v quiet=%v", promoScore, captureScore, killerScore, quietScore)
	}
}
