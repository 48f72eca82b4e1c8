package search

import "github.com/corvidlabs/patzer/pkg/board"

// minimax is negamax with alpha-beta pruning. It returns the score of b at
// depth from the side-to-move's perspective; ply counts nodes from the
// search root (1-based) and feeds the killer table.
//
// Cutoffs are fail-hard: a move that raises the score to beta or above
// returns beta immediately rather than the move's own score. Quiescence
// instead returns its best score on a cutoff.
func (c *Context) minimax(b *board.Board, depth, alpha, beta, ply int) int {
	if depth == 0 {
		return c.quiescence(b, alpha, beta)
	}

	moves := board.GenerateLegalMoves(b)
	if len(moves) == 0 {
		if board.IsChecked(b, b.Turn) {
			return MatedScore - depth
		}
		return 0
	}

	c.orderMoves(b, moves, ply)

	for _, mv := range moves {
		u, ok := board.ApplyMove(b, mv)
		if !ok {
			continue
		}
		score := -c.minimax(b, depth-1, -beta, -alpha, ply+1)
		board.UnmakeMove(b, u)

		if score >= beta {
			if !board.IsCapture(b, mv) {
				c.recordCutoff(mv, ply, depth)
			}
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
