package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	mb "heron-chess/mailbox"
)

// OutputMode selects how Think reports each finished iteration. It never
// changes what the search does.
type OutputMode int

const (
	OutputNone     OutputMode = iota
	OutputVerbose             // human-readable table
	OutputProtocol            // xboard post lines
)

const (
	mateScore     = int32(10000)
	mateThreshold = int32(9000)

	// the clock is polled every time this many nodes have been visited
	nodeCheckMask = 1023

	// a move matching the previous iteration's PV sorts above everything
	pvBonus = 10000000
)

// BestLine is the outcome of a Think call: the principal variation of the
// deepest fully finished iteration, its score, and search statistics.
// A book hit carries the single book move and FromBook set. Moves is
// empty when the side to move has no legal move.
type BestLine struct {
	Moves    []mb.Move
	Score    int32
	Depth    int
	Nodes    int64
	FromBook bool
}

// Search owns a board plus all per-search scratch state: the triangular
// PV table, the node counter and the deadline. It is single-threaded by
// construction; wrap it in a Worker to drive it from another goroutine.
type Search struct {
	Board *mb.Board
	Book  *Book
	Out   io.Writer

	pv       [mb.MaxPly][mb.MaxPly]mb.Move
	pvLength [mb.MaxPly]int
	followPV bool

	nodes     int64
	startTime time.Time
	stopTime  time.Time

	eval evaluator
}

// NewSearch returns a Search reporting to stdout.
func NewSearch(b *mb.Board) *Search {
	return &Search{Board: b, Out: os.Stdout}
}

// Think picks a move for the side to move: a book move if the book has
// one, otherwise iterative deepening up to maxDepth plies within maxTime.
// When the deadline fires mid-iteration the partial iteration is
// discarded and any half-applied line is unwound, so the board always
// comes back in its pre-Think state.
func (s *Search) Think(maxTime time.Duration, maxDepth int, output OutputMode) BestLine {
	b := s.Board

	if s.Book != nil {
		if m, ok := s.Book.Move(b); ok {
			return BestLine{Moves: []mb.Move{m}, FromBook: true}
		}
	}

	s.startTime = time.Now()
	s.stopTime = s.startTime.Add(maxTime)
	s.nodes = 0
	b.Ply = 0

	s.pv = [mb.MaxPly][mb.MaxPly]mb.Move{}
	s.pvLength = [mb.MaxPly]int{}
	b.History = [64][64]int32{}

	maxDepth = Clamp(maxDepth, 1, mb.MaxPly)

	var best BestLine
	if output == OutputVerbose {
		fmt.Fprintln(s.Out, "ply      nodes  score  pv")
	}
	for depth := 1; depth <= maxDepth; depth++ {
		s.followPV = true
		score, stopped := s.search(-mateScore, mateScore, depth)
		if stopped {
			for b.Ply != 0 {
				b.Takeback()
			}
			break
		}
		best.Score = score
		best.Depth = depth
		best.Moves = append(best.Moves[:0], s.pv[0][:s.pvLength[0]]...)
		s.report(output, depth, score)
		if Abs(score) > mateThreshold {
			break
		}
	}
	// if not even depth 1 finished, take whatever root move the aborted
	// iteration managed to establish
	if len(best.Moves) == 0 && s.pvLength[0] > 0 {
		best.Moves = append(best.Moves, s.pv[0][:s.pvLength[0]]...)
	}
	best.Nodes = s.nodes
	return best
}

func (s *Search) report(output OutputMode, depth int, score int32) {
	switch output {
	case OutputNone:
		return
	case OutputVerbose:
		fmt.Fprintf(s.Out, "%3d  %9d  %5d ", depth, s.nodes, score)
	case OutputProtocol:
		fmt.Fprintf(s.Out, "%d %d %d %d",
			depth, score, time.Since(s.startTime).Milliseconds()/10, s.nodes)
	}
	for i := 0; i < s.pvLength[0]; i++ {
		fmt.Fprintf(s.Out, " %s", s.pv[0][i])
	}
	fmt.Fprintln(s.Out)
}

func (s *Search) timeUp() bool {
	return time.Now().After(s.stopTime)
}

// search is the negamax alpha-beta core. The second return value is true
// when the deadline fired somewhere below; the score is then meaningless
// and the moves applied on the way down are still on the board, to be
// unwound by Think.
func (s *Search) search(alpha, beta int32, depth int) (int32, bool) {
	if depth == 0 {
		return s.quiesce(alpha, beta)
	}
	b := s.Board

	s.nodes++
	if s.nodes&nodeCheckMask == 0 && s.timeUp() {
		return 0, true
	}

	s.pvLength[b.Ply] = b.Ply

	// at the root we must produce a move; anywhere else a position we
	// already had inside the fifty-move window is a draw
	if b.Ply != 0 && b.Repetitions() > 0 {
		return 0, false
	}

	if b.Ply >= mb.MaxPly-1 || b.Hply >= mb.HistStack-1 {
		return s.eval.eval(b), false
	}

	check := b.InCheck(b.Side)
	if check {
		depth++
	}

	moves := b.Generate()
	if s.followPV {
		s.sortPV(moves)
	}

	played := false
	for i := range moves {
		orderNextMove(moves, i)
		m := moves[i].Move
		if !b.MakeMove(m) {
			continue
		}
		played = true
		score, stopped := s.search(-beta, -alpha, depth-1)
		if stopped {
			return 0, true
		}
		b.Takeback()
		if x := -score; x > alpha {
			b.History[m.From()][m.To()] += int32(depth)
			if x >= beta {
				return beta, false
			}
			alpha = x
			s.updatePV(b.Ply, m)
		}
	}

	if !played {
		if check {
			return -mateScore + int32(b.Ply), false
		}
		return 0, false
	}
	if b.Fifty >= 100 {
		return 0, false
	}
	return alpha, false
}

// quiesce searches captures and promotions only, with the static
// evaluation as a stand-pat floor, so the main search never cuts off in
// the middle of an exchange.
func (s *Search) quiesce(alpha, beta int32) (int32, bool) {
	b := s.Board

	s.nodes++
	if s.nodes&nodeCheckMask == 0 && s.timeUp() {
		return 0, true
	}

	s.pvLength[b.Ply] = b.Ply

	if b.Ply >= mb.MaxPly-1 || b.Hply >= mb.HistStack-1 {
		return s.eval.eval(b), false
	}

	x := s.eval.eval(b)
	if x >= beta {
		return beta, false
	}
	if x > alpha {
		alpha = x
	}

	moves := b.GenerateCaptures()
	if s.followPV {
		s.sortPV(moves)
	}

	for i := range moves {
		orderNextMove(moves, i)
		m := moves[i].Move
		if !b.MakeMove(m) {
			continue
		}
		score, stopped := s.quiesce(-beta, -alpha)
		if stopped {
			return 0, true
		}
		b.Takeback()
		if x := -score; x > alpha {
			if x >= beta {
				return beta, false
			}
			alpha = x
			s.updatePV(b.Ply, m)
		}
	}
	return alpha, false
}

// updatePV records m at this ply and pulls up the child's continuation.
func (s *Search) updatePV(ply int, m mb.Move) {
	s.pv[ply][ply] = m
	for j := ply + 1; j < s.pvLength[ply+1]; j++ {
		s.pv[ply][j] = s.pv[ply+1][j]
	}
	s.pvLength[ply] = s.pvLength[ply+1]
}
