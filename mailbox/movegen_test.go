package mailbox

import (
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func legalMoves(b *Board) []Move {
	var legal []Move
	for _, g := range b.Generate() {
		if b.MakeMove(g.Move) {
			b.Takeback()
			legal = append(legal, g.Move)
		}
	}
	return legal
}

func TestInitialPosition(t *testing.T) {
	b := New()
	if got := len(legalMoves(b)); got != 20 {
		t.Errorf("initial position: %d legal moves, want 20", got)
	}
	for _, g := range b.GenerateCaptures() {
		if b.MakeMove(g.Move) {
			b.Takeback()
			t.Errorf("initial position: unexpected capture candidate %s", g.Move)
		}
	}
}

func TestDoublePushSetsEnPassant(t *testing.T) {
	b := New()
	m, ok := b.ParseMove("e2e4")
	if !ok {
		t.Fatal("e2e4 not generated")
	}
	if m.Bits()&FlagDoublePush == 0 {
		t.Errorf("e2e4 bits = %#x, double-push flag missing", m.Bits())
	}
	if !b.MakeMove(m) {
		t.Fatal("e2e4 rejected")
	}
	// e3
	if b.Ep != 44 {
		t.Errorf("en-passant square = %d, want 44 (e3)", b.Ep)
	}
}

func TestEnPassantCapture(t *testing.T) {
	b := New()
	for _, s := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m, ok := b.ParseMove(s)
		if !ok || !b.MakeMove(m) {
			t.Fatalf("move %s failed", s)
		}
	}
	m, ok := b.ParseMove("e5d6")
	if !ok {
		t.Fatal("en-passant capture e5d6 not generated")
	}
	if m.Bits()&FlagEnPassant == 0 {
		t.Fatalf("e5d6 bits = %#x, en-passant flag missing", m.Bits())
	}
	if !b.MakeMove(m) {
		t.Fatal("e5d6 rejected")
	}
	// the d5 pawn must be gone
	if b.ColorAt(27) != Empty {
		t.Errorf("square d5 = color %d, want empty after en-passant", b.ColorAt(27))
	}
}

func TestCastling(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"e1g1", "e1c1"} {
		m, ok := b.ParseMove(s)
		if !ok {
			t.Fatalf("castle %s not generated", s)
		}
		if !b.MakeMove(m) {
			t.Fatalf("castle %s rejected", s)
		}
		b.Takeback()
	}
}

func TestCastlingThroughCheckRejected(t *testing.T) {
	// black rook covers f1, so king-side castling is illegal while
	// queen-side stays available
	b, err := ParseFEN("r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if m, ok := b.ParseMove("e1g1"); !ok {
		t.Fatal("e1g1 not generated")
	} else if b.MakeMove(m) {
		t.Error("castling through an attacked square was allowed")
	}
	if m, ok := b.ParseMove("e1c1"); !ok || !b.MakeMove(m) {
		t.Error("legal queen-side castle rejected")
	}
}

func TestPinnedPieceMoveRejected(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/4q3/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := b.ParseMove("e2d2")
	if !ok {
		t.Fatal("e2d2 not generated")
	}
	if b.MakeMove(m) {
		t.Error("moving a pinned rook off the file was allowed")
	}
}

func perft(b *Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, g := range b.Generate() {
		if !b.MakeMove(g.Move) {
			continue
		}
		nodes += perft(b, depth-1)
		b.Takeback()
	}
	return nodes
}

func oraclePerft(b *dragontoothmg.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		unapply()
	}
	return nodes
}

var perftPositions = []struct {
	name  string
	fen   string
	depth int
}{
	{"initial", dragontoothmg.Startpos, 4},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3},
}

func TestPerftAgainstOracle(t *testing.T) {
	for _, tc := range perftPositions {
		b, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		ob := dragontoothmg.ParseFen(tc.fen)
		for d := 1; d <= tc.depth; d++ {
			got := perft(b, d)
			want := oraclePerft(&ob, d)
			if got != want {
				t.Errorf("%s depth %d: perft = %d, oracle says %d", tc.name, d, got, want)
			}
		}
	}
}

func TestPerftInitialKnownCounts(t *testing.T) {
	want := []int64{20, 400, 8902, 197281}
	b := New()
	for d := 1; d <= len(want); d++ {
		if got := perft(b, d); got != want[d-1] {
			t.Errorf("perft(%d) = %d, want %d", d, got, want[d-1])
		}
	}
}

func TestMoveSetMatchesOracle(t *testing.T) {
	for _, tc := range perftPositions {
		b, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		mine := map[string]bool{}
		for _, m := range legalMoves(b) {
			mine[strings.ToLower(m.String())] = true
		}
		ob := dragontoothmg.ParseFen(tc.fen)
		for _, m := range ob.GenerateLegalMoves() {
			s := strings.ToLower(m.String())
			if !mine[s] {
				t.Errorf("%s: oracle move %s not generated", tc.name, s)
			}
			delete(mine, s)
		}
		for s := range mine {
			t.Errorf("%s: extra move %s not known to oracle", tc.name, s)
		}
	}
}
