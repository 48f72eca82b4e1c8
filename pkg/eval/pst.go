package eval

// Piece-square tables, indexed [rank][file] with rank 0 the a1-h1 rank.
// Black's evaluation does not mirror these tables before indexing, and
// reuses the middlegame table for its endgame term too (see eval.go), so
// every table here is built rank-symmetric: row r equals row 7-r.
var (
	pstPawnMG = [8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	pstPawnEG = [8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{10, 10, 10, 10, 10, 10, 10, 10},
		{20, 20, 20, 20, 20, 20, 20, 20},
		{35, 35, 35, 35, 35, 35, 35, 35},
		{35, 35, 35, 35, 35, 35, 35, 35},
		{20, 20, 20, 20, 20, 20, 20, 20},
		{10, 10, 10, 10, 10, 10, 10, 10},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	pstKnightMG = [8][8]int{
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	}
	pstKnightEG = [8][8]int{
		{-40, -30, -20, -20, -20, -20, -30, -40},
		{-30, -10, 0, 0, 0, 0, -10, -30},
		{-20, 0, 10, 10, 10, 10, 0, -20},
		{-20, 5, 10, 15, 15, 10, 5, -20},
		{-20, 5, 10, 15, 15, 10, 5, -20},
		{-20, 0, 10, 10, 10, 10, 0, -20},
		{-30, -10, 0, 0, 0, 0, -10, -30},
		{-40, -30, -20, -20, -20, -20, -30, -40},
	}

	pstBishopMG = [8][8]int{
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	}
	pstBishopEG = [8][8]int{
		{-18, -8, -8, -8, -8, -8, -8, -18},
		{-8, 0, 0, 0, 0, 0, 0, -8},
		{-8, 0, 8, 8, 8, 8, 0, -8},
		{-8, 4, 4, 8, 8, 4, 4, -8},
		{-8, 4, 4, 8, 8, 4, 4, -8},
		{-8, 0, 8, 8, 8, 8, 0, -8},
		{-8, 0, 0, 0, 0, 0, 0, -8},
		{-18, -8, -8, -8, -8, -8, -8, -18},
	}

	pstRookMG = [8][8]int{
		{0, 0, 0, 5, 5, 0, 0, 0},
		{0, 10, 10, 10, 10, 10, 10, 0},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{0, 10, 10, 10, 10, 10, 10, 0},
		{0, 0, 0, 5, 5, 0, 0, 0},
	}
	pstRookEG = [8][8]int{
		{0, 0, 0, 2, 2, 0, 0, 0},
		{0, 5, 5, 5, 5, 5, 5, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 5, 5, 5, 5, 5, 5, 0},
		{0, 0, 0, 2, 2, 0, 0, 0},
	}

	pstQueenMG = [8][8]int{
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	}
	pstQueenEG = [8][8]int{
		{-10, -5, -5, -2, -2, -5, -5, -10},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 2, 2, 2, 2, 0, -5},
		{-2, 0, 2, 2, 2, 2, 0, -2},
		{-2, 0, 2, 2, 2, 2, 0, -2},
		{-5, 0, 2, 2, 2, 2, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-10, -5, -5, -2, -2, -5, -5, -10},
	}

	// Castled-king safety cuts both ways across both home ranks, since the
	// table is never flipped for Black: whichever side's king sits on its
	// own back rank pair gets the same bonus shape.
	pstKingMG = [8][8]int{
		{20, 30, 10, 0, 0, 10, 30, 20},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{20, 30, 10, 0, 0, 10, 30, 20},
	}
	pstKingEG = [8][8]int{
		{-50, -30, -30, -30, -30, -30, -30, -50},
		{-30, -30, 0, 0, 0, 0, -30, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -30, 0, 0, 0, 0, -30, -30},
		{-50, -30, -30, -30, -30, -30, -30, -50},
	}
)
