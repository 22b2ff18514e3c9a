package engine

import mb "heron-chess/mailbox"

// orderNextMove swaps the highest-scored move in moves[index:] into
// position index. One selection step per move tried is cheaper than a
// full sort because most nodes cut off after the first move or two.
func orderNextMove(moves []mb.GeneratedMove, index int) {
	best := index
	bestScore := moves[index].Score
	for i := index + 1; i < len(moves); i++ {
		if moves[i].Score > bestScore {
			best = i
			bestScore = moves[i].Score
		}
	}
	moves[index], moves[best] = moves[best], moves[index]
}

// sortPV boosts the move the previous iteration's principal variation
// plays at this ply, if it was generated here, and keeps following the
// PV only while such a move exists.
func (s *Search) sortPV(moves []mb.GeneratedMove) {
	s.followPV = false
	want := s.pv[0][s.Board.Ply]
	if want == 0 {
		return
	}
	for i := range moves {
		if moves[i].Move == want {
			s.followPV = true
			moves[i].Score += pvBonus
			return
		}
	}
}
