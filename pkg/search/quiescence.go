package search

import (
	"github.com/corvidlabs/patzer/pkg/board"
	"github.com/corvidlabs/patzer/pkg/eval"
)

// quiescence extends the search over captures only, to avoid the horizon
// effect at the leaves of the fixed-depth minimax. A stand-pat score at or
// above beta returns beta; otherwise it returns the best score found
// (stand-pat or better), and a capture reaching beta returns its own score.
func (c *Context) quiescence(b *board.Board, alpha, beta int) int {
	standPat := eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := board.GenerateLegalMoves(b)
	for _, mv := range moves {
		if !board.IsCapture(b, mv) {
			continue
		}

		u, ok := board.ApplyMove(b, mv)
		if !ok {
			continue
		}
		score := -c.quiescence(b, -beta, -alpha)
		board.UnmakeMove(b, u)

		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
		if score > standPat {
			standPat = score
		}
	}
	return standPat
}
