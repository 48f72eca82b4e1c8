package eval

import "github.com/corvidlabs/patzer/pkg/board"

// Evaluate scores b in centipawns from the perspective of the side to
// move: positive favors the mover. It blends middlegame (mg) and endgame
// (eg) accumulators by Phase, adding material, piece-square, pawn
// structure, king safety and mobility terms.
//
// Black's accumulation intentionally does not mirror the piece-square
// tables before indexing, and reuses the middlegame table for its
// endgame term as well; the tables in pst.go are built rank-symmetric so
// the first quirk cancels out.
func Evaluate(b *board.Board) int {
	var mg, eg int

	mg, eg = accumulateWhite(b, mg, eg)
	mg, eg = accumulateBlack(b, mg, eg)

	dp := doubledPawns(b, board.White) - doubledPawns(b, board.Black)
	ip := isolatedPawns(b, board.White) - isolatedPawns(b, board.Black)
	pp := passedPawns(b, board.White) - passedPawns(b, board.Black)

	mg += doubledPawnBonus * dp
	eg += doubledPawnBonus * dp

	mg += isolatedPawnBonusMG * ip
	eg += isolatedPawnBonusEG * ip

	mg += passedPawnBonusMG * pp
	eg += passedPawnBonusEG * pp

	mg += kingSafetyMG(b, board.White)
	mg -= kingSafetyMG(b, board.Black)

	mg += knightMobility(b, board.White) * 2
	mg += bishopMobility(b, board.White) * 2
	mg -= knightMobility(b, board.Black) * 2
	mg -= bishopMobility(b, board.Black) * 2

	eg += knightMobility(b, board.White)
	eg -= knightMobility(b, board.Black)

	phase := Phase(b)
	s := (mg*phase + eg*(MaxPhase-phase)) / MaxPhase

	if b.Turn == board.White {
		return s
	}
	return -s
}

func accumulateWhite(b *board.Board, mg, eg int) (int, int) {
	for p, bb := range whitePieceBitboards(b) {
		for bb != 0 {
			var sq board.Square
			sq, bb = bb.PopLSB()
			r, f := sq.Rank(), sq.File()
			mgTable, egTable := pstTables(board.Piece(p + 1))
			mg += board.Piece(p + 1).Value() + mgTable[r][f]
			eg += board.Piece(p + 1).Value() + egTable[r][f]
		}
	}
	return mg, eg
}

// accumulateBlack mirrors accumulateWhite but always indexes the
// middlegame table, for both the mg and eg accumulators, and never
// mirrors rank/file before indexing. See the Evaluate doc comment.
func accumulateBlack(b *board.Board, mg, eg int) (int, int) {
	for p, bb := range blackPieceBitboards(b) {
		for bb != 0 {
			var sq board.Square
			sq, bb = bb.PopLSB()
			r, f := sq.Rank(), sq.File()
			mgTable, _ := pstTables(board.Piece(p + 1))
			mg -= board.Piece(p+1).Value() + mgTable[r][f]
			eg -= board.Piece(p+1).Value() + mgTable[r][f]
		}
	}
	return mg, eg
}

func whitePieceBitboards(b *board.Board) [6]board.Bitboard {
	return [6]board.Bitboard{
		b.Piece(board.White, board.Pawn),
		b.Piece(board.White, board.Knight),
		b.Piece(board.White, board.Bishop),
		b.Piece(board.White, board.Rook),
		b.Piece(board.White, board.Queen),
		b.Piece(board.White, board.King),
	}
}

func blackPieceBitboards(b *board.Board) [6]board.Bitboard {
	return [6]board.Bitboard{
		b.Piece(board.Black, board.Pawn),
		b.Piece(board.Black, board.Knight),
		b.Piece(board.Black, board.Bishop),
		b.Piece(board.Black, board.Rook),
		b.Piece(board.Black, board.Queen),
		b.Piece(board.Black, board.King),
	}
}

func pstTables(p board.Piece) (mg, eg [8][8]int) {
	switch p {
	case board.Pawn:
		return pstPawnMG, pstPawnEG
	case board.Knight:
		return pstKnightMG, pstKnightEG
	case board.Bishop:
		return pstBishopMG, pstBishopEG
	case board.Rook:
		return pstRookMG, pstRookEG
	case board.Queen:
		return pstQueenMG, pstQueenEG
	case board.King:
		return pstKingMG, pstKingEG
	default:
		return
	}
}
