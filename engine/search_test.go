package engine

import (
	"io"
	"testing"
	"time"

	mb "heron-chess/mailbox"
)

func newTestSearch(t *testing.T, fen string) *Search {
	t.Helper()
	b, err := mb.ParseFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSearch(b)
	s.Out = io.Discard
	return s
}

const longTime = time.Hour

func TestFindsBackRankMate(t *testing.T) {
	s := newTestSearch(t, "6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	line := s.Think(longTime, 5, OutputNone)
	if len(line.Moves) == 0 {
		t.Fatal("no move returned")
	}
	if got := line.Moves[0].String(); got != "e1e8" {
		t.Errorf("best move = %s, want e1e8", got)
	}
	if len(line.Moves) != 1 {
		t.Errorf("mating line continues past the mate: %v", line.Moves)
	}
	if line.Score <= mateThreshold {
		t.Errorf("score = %d, want a mate score above %d", line.Score, mateThreshold)
	}
}

func TestMatePrefersShortest(t *testing.T) {
	// queen plus king versus bare king, mate in one available
	s := newTestSearch(t, "8/8/8/8/8/2k5/2q5/K7 b - - 0 1")
	line := s.Think(longTime, 6, OutputNone)
	if len(line.Moves) == 0 {
		t.Fatal("no move returned")
	}
	if line.Score <= mateThreshold {
		t.Errorf("score = %d, want a mate score", line.Score)
	}
}

func TestNoLegalMovesReturnsEmpty(t *testing.T) {
	// side to move is already checkmated
	s := newTestSearch(t, "4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	line := s.Think(longTime, 3, OutputNone)
	if len(line.Moves) != 0 {
		t.Errorf("checkmated side produced move %s", line.Moves[0])
	}
}

func TestStalematedSideHasNoMove(t *testing.T) {
	s := newTestSearch(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	line := s.Think(longTime, 3, OutputNone)
	if len(line.Moves) != 0 {
		t.Errorf("stalemated side produced move %s", line.Moves[0])
	}
}

func TestThinkLeavesBoardUntouched(t *testing.T) {
	b := BenchBoard()
	s := NewSearch(b)
	s.Out = io.Discard
	before := b.Snapshot()

	// an immediate deadline forces the timeout path
	s.Think(0, mb.MaxPly, OutputNone)
	if b.Ply != 0 {
		t.Errorf("search ply = %d after timed-out think, want 0", b.Ply)
	}
	if b.Snapshot() != before {
		t.Error("timed-out think modified the position")
	}

	// and a completed search must restore it too
	s.Think(longTime, 4, OutputNone)
	if b.Snapshot() != before {
		t.Error("completed think modified the position")
	}
}

func TestSearchDeterministic(t *testing.T) {
	run := func() BestLine {
		s := NewSearch(BenchBoard())
		s.Out = io.Discard
		return s.Think(longTime, 4, OutputNone)
	}
	a, b := run(), run()
	if a.Nodes != b.Nodes {
		t.Errorf("node counts differ between identical searches: %d vs %d", a.Nodes, b.Nodes)
	}
	if a.Score != b.Score {
		t.Errorf("scores differ between identical searches: %d vs %d", a.Score, b.Score)
	}
	if len(a.Moves) == 0 || len(b.Moves) == 0 || a.Moves[0] != b.Moves[0] {
		t.Error("best moves differ between identical searches")
	}
}

func TestRepetitionScoredAsDraw(t *testing.T) {
	// down a queen, the defender should aim for a repeated position
	b := mb.New()
	for _, s := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1"} {
		m, ok := b.ParseMove(s)
		if !ok || !b.MakeMove(m) {
			t.Fatalf("move %s failed", s)
		}
	}
	s := NewSearch(b)
	s.Out = io.Discard
	line := s.Think(longTime, 3, OutputNone)
	if len(line.Moves) == 0 {
		t.Fatal("no move returned")
	}
	// repeating with f6g8 walks into the fifty-window repetition, which
	// the search scores as 0 rather than the static evaluation
	if line.Moves[0].String() == "f6g8" && line.Score != 0 {
		t.Errorf("repetition line scored %d, want 0", line.Score)
	}
}

func TestBookMoveShortCircuitsSearch(t *testing.T) {
	b := mb.New()
	s := NewSearch(b)
	s.Out = io.Discard
	s.Book = NewBook([]string{"d2d4 d7d5"}, fixedRand())
	line := s.Think(longTime, 4, OutputNone)
	if !line.FromBook {
		t.Fatal("book move not used from the initial position")
	}
	if got := line.Moves[0].String(); got != "d2d4" {
		t.Errorf("book move = %s, want d2d4", got)
	}
	if line.Nodes != 0 {
		t.Errorf("book hit still searched %d nodes", line.Nodes)
	}
}

func BenchmarkThink(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := NewSearch(BenchBoard())
		s.Out = io.Discard
		s.Think(longTime, benchDepth, OutputNone)
	}
}
