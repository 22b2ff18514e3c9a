package mailbox

import "math/rand"

// Zobrist key tables. The source is seeded with a constant so hashes are
// stable across runs, which keeps searches and tests reproducible.
var (
	zobristPiece     [2][6][64]uint64
	zobristSide      uint64
	zobristEnPassant [8]uint64
)

func init() {
	rnd := rand.New(rand.NewSource(982451653))
	for c := 0; c < 2; c++ {
		for p := 0; p < 6; p++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][p][sq] = rnd.Uint64()
			}
		}
	}
	zobristSide = rnd.Uint64()
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
}

// setHash recomputes the position hash from scratch. Moves are rare
// enough relative to node evaluation here that the full pass keeps the
// make/unmake code free of incremental-update bookkeeping.
func (b *Board) setHash() {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if b.color[sq] != Empty {
			key ^= zobristPiece[b.color[sq]][b.piece[sq]][sq]
		}
	}
	if b.Side == Dark {
		key ^= zobristSide
	}
	if b.Ep != -1 {
		key ^= zobristEnPassant[Col(b.Ep)]
	}
	b.Hash = key
}
