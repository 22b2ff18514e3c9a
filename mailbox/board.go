package mailbox

import "strings"

// Board is the complete game and search context: the 64-square position,
// whose turn it is, castling/en-passant/fifty-move state, the Zobrist
// hash, the shared move buffer with its per-ply delimiters, the undo
// stack, and the history-heuristic counters the move generator scores
// quiet moves with.
//
// Exactly one goroutine may use a Board at a time; MakeMove/Takeback
// leave the position transiently inconsistent.
type Board struct {
	color [64]int
	piece [64]int

	Side  int // side to move
	Xside int // the other side, always Side^1

	Castle int // rights bits: 1 light king-side, 2 light queen-side, 4 dark king-side, 8 dark queen-side
	Ep     int // en-passant target square, or -1
	Fifty  int // half-moves since the last capture or pawn move
	Hash   uint64

	Ply  int // half-moves since the search root
	Hply int // half-moves since the start of the game

	// The move list for ply n lives in genDat[firstMove[n]:firstMove[n+1]].
	genDat    [GenStack]GeneratedMove
	firstMove [MaxPly]int

	histDat [HistStack]undo

	// History counts quiet-move beta cutoffs per (from,to); the search
	// resets it at the start of every think and the generator uses it to
	// score quiet moves.
	History [64][64]int32
}

// undo holds what Takeback needs to reverse one move exactly.
type undo struct {
	move    Move
	capture int
	castle  int
	ep      int
	fifty   int
	hash    uint64
}

// New returns a board set up for the start of a game.
func New() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the initial game state.
func (b *Board) Reset() {
	b.color = initColor
	b.piece = initPiece
	b.Side = Light
	b.Xside = Dark
	b.Castle = 15
	b.Ep = -1
	b.Fifty = 0
	b.Ply = 0
	b.Hply = 0
	b.History = [64][64]int32{}
	b.firstMove[0] = 0
	b.setHash()
}

// ColorAt returns Light, Dark or Empty for a square.
func (b *Board) ColorAt(sq int) int { return b.color[sq] }

// PieceAt returns the piece kind on a square, or Empty.
func (b *Board) PieceAt(sq int) int { return b.piece[sq] }

// Attacked reports whether square sq is attacked by side s.
func (b *Board) Attacked(sq, s int) bool {
	for i := 0; i < 64; i++ {
		if b.color[i] != s {
			continue
		}
		p := b.piece[i]
		if p == Pawn {
			if s == Light {
				if Col(i) != 0 && i-9 == sq {
					return true
				}
				if Col(i) != 7 && i-7 == sq {
					return true
				}
			} else {
				if Col(i) != 0 && i+7 == sq {
					return true
				}
				if Col(i) != 7 && i+9 == sq {
					return true
				}
			}
			continue
		}
		for j := 0; j < offsets[p]; j++ {
			for n := i; ; {
				n = mailbox[mailbox64[n]+offset[p][j]]
				if n == -1 {
					break
				}
				if n == sq {
					return true
				}
				if b.color[n] != Empty {
					break
				}
				if !slide[p] {
					break
				}
			}
		}
	}
	return false
}

// InCheck reports whether side s's king is attacked. A side with no king
// means the position has been corrupted, which is unrecoverable.
func (b *Board) InCheck(s int) bool {
	for i := 0; i < 64; i++ {
		if b.piece[i] == King && b.color[i] == s {
			return b.Attacked(i, s^1)
		}
	}
	panic("mailbox: no king on the board")
}

// Repetitions counts how many positions inside the current fifty-move
// window had the same hash as the current position. The search treats any
// nonzero count as a draw.
func (b *Board) Repetitions() int {
	r := 0
	start := b.Hply - b.Fifty
	if start < 0 {
		start = 0
	}
	for i := start; i < b.Hply; i++ {
		if b.histDat[i].hash == b.Hash {
			r++
		}
	}
	return r
}

// GameRepetitions counts prior occurrences of the current position over
// the whole game, the threshold the game-result rules use.
func (b *Board) GameRepetitions() int {
	r := 0
	for i := 0; i < b.Hply; i++ {
		if b.histDat[i].hash == b.Hash {
			r++
		}
	}
	return r
}

// PlayedMoves returns the moves applied since the start of the game.
func (b *Board) PlayedMoves() []Move {
	ms := make([]Move, b.Hply)
	for i := range ms {
		ms[i] = b.histDat[i].move
	}
	return ms
}

// Snapshot is a copy of every field that defines a position. Tests use it
// to assert that Takeback restores the pre-move state exactly.
type Snapshot struct {
	Color  [64]int
	Piece  [64]int
	Side   int
	Xside  int
	Castle int
	Ep     int
	Fifty  int
	Hash   uint64
}

// Snapshot captures the position-defining state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Color:  b.color,
		Piece:  b.piece,
		Side:   b.Side,
		Xside:  b.Xside,
		Castle: b.Castle,
		Ep:     b.Ep,
		Fifty:  b.Fifty,
		Hash:   b.Hash,
	}
}

// String draws the board, upper-case for light pieces and lower-case for
// dark, rank 8 on top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n8 ")
	for i := 0; i < 64; i++ {
		switch b.color[i] {
		case Empty:
			sb.WriteString(" .")
		case Light:
			sb.WriteByte(' ')
			sb.WriteByte(pieceChar[b.piece[i]])
		case Dark:
			sb.WriteByte(' ')
			sb.WriteByte(pieceChar[b.piece[i]] + 'a' - 'A')
		}
		if (i+1)%8 == 0 && i != 63 {
			sb.WriteByte('\n')
			sb.WriteByte(byte('0' + 7 - Row(i)))
			sb.WriteByte(' ')
		}
	}
	sb.WriteString("\n\n   a b c d e f g h\n\n")
	return sb.String()
}
