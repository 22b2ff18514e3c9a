package mailbox

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"1rb2rk1/p4ppp/1p1qp1n1/3n2N1/2pP4/2P3P1/PPR2PBP/R1B1R1K1 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"8/P6k/8/8/8/8/8/K7 w - - 12 1",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("round trip changed FEN:\n in  %s\n out %s", fen, got)
		}
	}
}

func TestParseFENRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // short placement
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",   // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq -",   // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9",  // bad ep square
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x", // bad clock
		"rnbqkbnr/pppppppp/8/8/9/8/PPPPPPPP/RNBQKBNR w KQkq -",   // bad digit
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) accepted malformed input", fen)
		}
	}
}

func TestInitialStateMatchesFEN(t *testing.T) {
	b := New()
	const want = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if got := b.FEN(); got != want {
		t.Errorf("New() = %s, want %s", got, want)
	}
	parsed, err := ParseFEN(want)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Hash != b.Hash {
		t.Error("parsed initial position hashes differently from New()")
	}
}
