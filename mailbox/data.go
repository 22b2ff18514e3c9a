package mailbox

// Sides and piece kinds. Empty doubles as "no piece" in both the color and
// piece arrays.
const (
	Light = 0
	Dark  = 1
	Empty = 6
)

const (
	Pawn   = 0
	Knight = 1
	Bishop = 2
	Rook   = 3
	Queen  = 4
	King   = 5
)

// Capacity limits: the shared move buffer, the search-ply tables and the
// undo-history stack.
const (
	GenStack  = 1120
	MaxPly    = 32
	HistStack = 400
)

// Squares that the castling code cares about. Index 0 is a8; index 63 is h1.
const (
	A1 = 56
	B1 = 57
	C1 = 58
	D1 = 59
	E1 = 60
	F1 = 61
	G1 = 62
	H1 = 63
	A8 = 0
	B8 = 1
	C8 = 2
	D8 = 3
	E8 = 4
	F8 = 5
	G8 = 6
	H8 = 7
)

// Row returns a square's rank index (0 = rank 8) and Col its file index
// (0 = the a-file).
func Row(sq int) int { return sq >> 3 }
func Col(sq int) int { return sq & 7 }

// The 10x12 out-of-board frame. To step a piece from square n in some
// direction, look up mailbox[mailbox64[n]+offset]; -1 means the step left
// the board, anything else is the destination square.
var mailbox = [120]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, 0, 1, 2, 3, 4, 5, 6, 7, -1,
	-1, 8, 9, 10, 11, 12, 13, 14, 15, -1,
	-1, 16, 17, 18, 19, 20, 21, 22, 23, -1,
	-1, 24, 25, 26, 27, 28, 29, 30, 31, -1,
	-1, 32, 33, 34, 35, 36, 37, 38, 39, -1,
	-1, 40, 41, 42, 43, 44, 45, 46, 47, -1,
	-1, 48, 49, 50, 51, 52, 53, 54, 55, -1,
	-1, 56, 57, 58, 59, 60, 61, 62, 63, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

var mailbox64 = [64]int{
	21, 22, 23, 24, 25, 26, 27, 28,
	31, 32, 33, 34, 35, 36, 37, 38,
	41, 42, 43, 44, 45, 46, 47, 48,
	51, 52, 53, 54, 55, 56, 57, 58,
	61, 62, 63, 64, 65, 66, 67, 68,
	71, 72, 73, 74, 75, 76, 77, 78,
	81, 82, 83, 84, 85, 86, 87, 88,
	91, 92, 93, 94, 95, 96, 97, 98,
}

// Direction vectors per piece kind. slide says whether the piece repeats
// its step; offsets is the number of live directions in offset.
var slide = [6]bool{false, false, true, true, true, false}

var offsets = [6]int{0, 8, 4, 4, 8, 8}

var offset = [6][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{-21, -19, -12, -8, 8, 12, 19, 21},
	{-11, -9, 9, 11, 0, 0, 0, 0},
	{-10, -1, 1, 10, 0, 0, 0, 0},
	{-11, -10, -9, -1, 1, 9, 10, 11},
	{-11, -10, -9, -1, 1, 9, 10, 11},
}

// castleMask is ANDed into the castling rights for a move's from- and
// to-squares. Moving or capturing a rook or king strips the relevant bits.
var castleMask = [64]int{
	7, 15, 15, 15, 3, 15, 15, 11,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	13, 15, 15, 15, 12, 15, 15, 14,
}

var pieceChar = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// the initial game state

var initColor = [64]int{
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var initPiece = [64]int{
	3, 1, 2, 4, 5, 2, 1, 3,
	0, 0, 0, 0, 0, 0, 0, 0,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6,
	0, 0, 0, 0, 0, 0, 0, 0,
	3, 1, 2, 4, 5, 2, 1, 3,
}
