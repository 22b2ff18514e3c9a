package engine

import mb "heron-chess/mailbox"

const (
	doubledPawnPenalty    = 10
	isolatedPawnPenalty   = 20
	backwardsPawnPenalty  = 8
	passedPawnBonus       = 20
	rookSemiOpenFileBonus = 10
	rookOpenFileBonus     = 15
	rookOnSeventhBonus    = 20

	// below this much non-pawn material the opponent's king switches to
	// the endgame placement table
	endgameMaterial = 1200

	// king-safety scores are scaled by the opponent's piece material over
	// this divisor
	kingSafetyDivisor = 3100
)

var pieceValue = [6]int32{100, 300, 300, 500, 900, 0}

// Placement tables, from light's point of view with square 0 = a8. Dark
// pieces read them through flip.

var pawnPcsq = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 15, 20, 20, 15, 10, 5,
	4, 8, 12, 16, 16, 12, 8, 4,
	3, 6, 9, 12, 12, 9, 6, 3,
	2, 4, 6, 8, 8, 6, 4, 2,
	1, 2, 3, -10, -10, 3, 2, 1,
	0, 0, 0, -40, -40, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPcsq = [64]int32{
	-10, -10, -10, -10, -10, -10, -10, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, -30, -10, -10, -10, -10, -30, -10,
}

var bishopPcsq = [64]int32{
	-10, -10, -10, -10, -10, -10, -10, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, -10, -20, -10, -10, -20, -10, -10,
}

var kingPcsq = [64]int32{
	-40, -40, -40, -40, -40, -40, -40, -40,
	-40, -40, -40, -40, -40, -40, -40, -40,
	-40, -40, -40, -40, -40, -40, -40, -40,
	-40, -40, -40, -40, -40, -40, -40, -40,
	-40, -40, -40, -40, -40, -40, -40, -40,
	-40, -40, -40, -40, -40, -40, -40, -40,
	-20, -20, -20, -20, -20, -20, -20, -20,
	0, 20, 40, -20, 0, -20, 40, 20,
}

var kingEndgamePcsq = [64]int32{
	0, 10, 20, 30, 30, 20, 10, 0,
	10, 20, 30, 40, 40, 30, 20, 10,
	20, 30, 40, 50, 50, 40, 30, 20,
	30, 40, 50, 60, 60, 50, 40, 30,
	30, 40, 50, 60, 60, 50, 40, 30,
	20, 30, 40, 50, 50, 40, 30, 20,
	10, 20, 30, 40, 40, 30, 20, 10,
	0, 10, 20, 30, 30, 20, 10, 0,
}

// flip mirrors a square vertically so dark pieces can share the tables.
var flip = [64]int{
	56, 57, 58, 59, 60, 61, 62, 63,
	48, 49, 50, 51, 52, 53, 54, 55,
	40, 41, 42, 43, 44, 45, 46, 47,
	32, 33, 34, 35, 36, 37, 38, 39,
	24, 25, 26, 27, 28, 29, 30, 31,
	16, 17, 18, 19, 20, 21, 22, 23,
	8, 9, 10, 11, 12, 13, 14, 15,
	0, 1, 2, 3, 4, 5, 6, 7,
}

// evaluator is the per-position scratch state; pawnRank[side][f+1] holds
// the rank index of side's least-advanced pawn on file f (0 for light /
// 7 for dark when the file has no pawn). The extra file on each edge
// saves bounds checks.
type evaluator struct {
	pawnRank [2][10]int
	pieceMat [2]int32
	pawnMat  [2]int32
}

// Evaluate scores the position in centipawns from the side to move's
// point of view.
func Evaluate(b *mb.Board) int32 {
	var e evaluator
	return e.eval(b)
}

func (e *evaluator) eval(b *mb.Board) int32 {
	// first pass: material counts and the pawn-rank profile
	for i := 0; i < 10; i++ {
		e.pawnRank[mb.Light][i] = 0
		e.pawnRank[mb.Dark][i] = 7
	}
	e.pieceMat[mb.Light] = 0
	e.pieceMat[mb.Dark] = 0
	e.pawnMat[mb.Light] = 0
	e.pawnMat[mb.Dark] = 0
	for i := 0; i < 64; i++ {
		c := b.ColorAt(i)
		if c == mb.Empty {
			continue
		}
		p := b.PieceAt(i)
		if p == mb.Pawn {
			e.pawnMat[c] += pieceValue[mb.Pawn]
			f := mb.Col(i) + 1
			if c == mb.Light {
				if e.pawnRank[mb.Light][f] < mb.Row(i) {
					e.pawnRank[mb.Light][f] = mb.Row(i)
				}
			} else if e.pawnRank[mb.Dark][f] > mb.Row(i) {
				e.pawnRank[mb.Dark][f] = mb.Row(i)
			}
		} else {
			e.pieceMat[c] += pieceValue[p]
		}
	}

	// second pass: piece placement and structure
	var score [2]int32
	score[mb.Light] = e.pieceMat[mb.Light] + e.pawnMat[mb.Light]
	score[mb.Dark] = e.pieceMat[mb.Dark] + e.pawnMat[mb.Dark]
	for i := 0; i < 64; i++ {
		c := b.ColorAt(i)
		if c == mb.Empty {
			continue
		}
		if c == mb.Light {
			switch b.PieceAt(i) {
			case mb.Pawn:
				score[mb.Light] += e.lightPawn(i)
			case mb.Knight:
				score[mb.Light] += knightPcsq[i]
			case mb.Bishop:
				score[mb.Light] += bishopPcsq[i]
			case mb.Rook:
				if e.pawnRank[mb.Light][mb.Col(i)+1] == 0 {
					if e.pawnRank[mb.Dark][mb.Col(i)+1] == 7 {
						score[mb.Light] += rookOpenFileBonus
					} else {
						score[mb.Light] += rookSemiOpenFileBonus
					}
				}
				if mb.Row(i) == 1 {
					score[mb.Light] += rookOnSeventhBonus
				}
			case mb.King:
				if e.pieceMat[mb.Dark] <= endgameMaterial {
					score[mb.Light] += kingEndgamePcsq[i]
				} else {
					score[mb.Light] += e.lightKing(i)
				}
			}
		} else {
			switch b.PieceAt(i) {
			case mb.Pawn:
				score[mb.Dark] += e.darkPawn(i)
			case mb.Knight:
				score[mb.Dark] += knightPcsq[flip[i]]
			case mb.Bishop:
				score[mb.Dark] += bishopPcsq[flip[i]]
			case mb.Rook:
				if e.pawnRank[mb.Dark][mb.Col(i)+1] == 7 {
					if e.pawnRank[mb.Light][mb.Col(i)+1] == 0 {
						score[mb.Dark] += rookOpenFileBonus
					} else {
						score[mb.Dark] += rookSemiOpenFileBonus
					}
				}
				if mb.Row(i) == 6 {
					score[mb.Dark] += rookOnSeventhBonus
				}
			case mb.King:
				if e.pieceMat[mb.Light] <= endgameMaterial {
					score[mb.Dark] += kingEndgamePcsq[flip[i]]
				} else {
					score[mb.Dark] += e.darkKing(i)
				}
			}
		}
	}

	if b.Side == mb.Light {
		return score[mb.Light] - score[mb.Dark]
	}
	return score[mb.Dark] - score[mb.Light]
}

func (e *evaluator) lightPawn(sq int) int32 {
	f := mb.Col(sq) + 1
	row := mb.Row(sq)
	r := pawnPcsq[sq]

	// a friendly pawn behind on the same file means this one is doubled
	if e.pawnRank[mb.Light][f] > row {
		r -= doubledPawnPenalty
	}

	if e.pawnRank[mb.Light][f-1] == 0 && e.pawnRank[mb.Light][f+1] == 0 {
		r -= isolatedPawnPenalty
	} else if e.pawnRank[mb.Light][f-1] < row && e.pawnRank[mb.Light][f+1] < row {
		r -= backwardsPawnPenalty
	}

	if e.pawnRank[mb.Dark][f-1] >= row &&
		e.pawnRank[mb.Dark][f] >= row &&
		e.pawnRank[mb.Dark][f+1] >= row {
		r += int32(7-row) * passedPawnBonus
	}
	return r
}

func (e *evaluator) darkPawn(sq int) int32 {
	f := mb.Col(sq) + 1
	row := mb.Row(sq)
	r := pawnPcsq[flip[sq]]

	if e.pawnRank[mb.Dark][f] < row {
		r -= doubledPawnPenalty
	}

	if e.pawnRank[mb.Dark][f-1] == 7 && e.pawnRank[mb.Dark][f+1] == 7 {
		r -= isolatedPawnPenalty
	} else if e.pawnRank[mb.Dark][f-1] > row && e.pawnRank[mb.Dark][f+1] > row {
		r -= backwardsPawnPenalty
	}

	if e.pawnRank[mb.Light][f-1] <= row &&
		e.pawnRank[mb.Light][f] <= row &&
		e.pawnRank[mb.Light][f+1] <= row {
		r += int32(row) * passedPawnBonus
	}
	return r
}

func (e *evaluator) lightKing(sq int) int32 {
	r := kingPcsq[sq]
	col := mb.Col(sq)

	// a castled king is judged by its pawn shelter; problems on the c and
	// f files count half
	if col < 3 {
		r += e.lightKingPawn(1)
		r += e.lightKingPawn(2)
		r += e.lightKingPawn(3) / 2
	} else if col > 4 {
		r += e.lightKingPawn(8)
		r += e.lightKingPawn(7)
		r += e.lightKingPawn(6) / 2
	} else {
		for f := col; f <= col+2; f++ {
			if e.pawnRank[mb.Light][f] == 0 && e.pawnRank[mb.Dark][f] == 7 {
				r -= 10
			}
		}
	}

	r *= e.pieceMat[mb.Dark]
	r /= kingSafetyDivisor
	return r
}

// lightKingPawn judges the shelter pawn in front of a castled light king
// on file f.
func (e *evaluator) lightKingPawn(f int) int32 {
	var r int32

	switch rank := e.pawnRank[mb.Light][f]; {
	case rank == 6: // pawn hasn't moved
	case rank == 5:
		r -= 10 // pawn moved one square
	case rank != 0:
		r -= 20 // pawn moved more than one square
	default:
		r -= 25 // no pawn on this file
	}

	switch e.pawnRank[mb.Dark][f] {
	case 7:
		r -= 15 // no enemy pawn to block the file
	case 5:
		r -= 10 // enemy pawn on its 3rd rank
	case 4:
		r -= 5 // enemy pawn on its 4th rank
	}

	return r
}

func (e *evaluator) darkKing(sq int) int32 {
	r := kingPcsq[flip[sq]]
	col := mb.Col(sq)

	if col < 3 {
		r += e.darkKingPawn(1)
		r += e.darkKingPawn(2)
		r += e.darkKingPawn(3) / 2
	} else if col > 4 {
		r += e.darkKingPawn(8)
		r += e.darkKingPawn(7)
		r += e.darkKingPawn(6) / 2
	} else {
		for f := col; f <= col+2; f++ {
			if e.pawnRank[mb.Light][f] == 0 && e.pawnRank[mb.Dark][f] == 7 {
				r -= 10
			}
		}
	}

	r *= e.pieceMat[mb.Light]
	r /= kingSafetyDivisor
	return r
}

func (e *evaluator) darkKingPawn(f int) int32 {
	var r int32

	switch rank := e.pawnRank[mb.Dark][f]; {
	case rank == 1:
	case rank == 2:
		r -= 10
	case rank != 7:
		r -= 20
	default:
		r -= 25
	}

	switch e.pawnRank[mb.Light][f] {
	case 0:
		r -= 15
	case 2:
		r -= 10
	case 3:
		r -= 5
	}

	return r
}
