package mailbox

// Move flag bits, stored in the top byte of a Move.
const (
	FlagCapture    = 1
	FlagCastle     = 2
	FlagEnPassant  = 4
	FlagDoublePush = 8
	FlagPawn       = 16
	FlagPromotion  = 32
)

// Move packs a move into 32 bits:
//
//	bits  0-7   from square
//	bits  8-15  to square
//	bits 16-23  promotion piece kind (meaningful only with FlagPromotion)
//	bits 24-31  flag bits
//
// The packed value is also the move's comparison key: two moves are the
// same move iff the uint32 values are equal. The zero value is "no move".
type Move uint32

// NewMove builds a Move from its components.
func NewMove(from, to, promote, bits int) Move {
	return Move(uint32(from) | uint32(to)<<8 | uint32(promote)<<16 | uint32(bits)<<24)
}

// From returns the origin square.
func (m Move) From() int { return int(m & 0xff) }

// To returns the destination square.
func (m Move) To() int { return int(m >> 8 & 0xff) }

// Promote returns the piece kind a promoting pawn becomes.
func (m Move) Promote() int { return int(m >> 16 & 0xff) }

// Bits returns the move's flag bits.
func (m Move) Bits() int { return int(m >> 24 & 0xff) }

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	buf := []byte{
		byte('a' + Col(m.From())),
		byte('0' + 8 - Row(m.From())),
		byte('a' + Col(m.To())),
		byte('0' + 8 - Row(m.To())),
	}
	if m.Bits()&FlagPromotion != 0 {
		var c byte
		switch m.Promote() {
		case Knight:
			c = 'n'
		case Bishop:
			c = 'b'
		case Rook:
			c = 'r'
		default:
			c = 'q'
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// ParseMove matches a coordinate-notation string against the side to
// move's candidate moves. The promotion letter is n, b, r or q; a
// promotion with no letter is taken as a queen. A string that matches no
// candidate (or doesn't look like a move at all) returns false.
func (b *Board) ParseMove(s string) (Move, bool) {
	if len(s) < 4 ||
		s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' ||
		s[2] < 'a' || s[2] > 'h' || s[3] < '1' || s[3] > '8' {
		return 0, false
	}
	from := int(s[0]-'a') + 8*(8-int(s[1]-'0'))
	to := int(s[2]-'a') + 8*(8-int(s[3]-'0'))

	for _, g := range b.Generate() {
		m := g.Move
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Bits()&FlagPromotion != 0 {
			want := Queen
			if len(s) >= 5 {
				switch s[4] {
				case 'n', 'N':
					want = Knight
				case 'b', 'B':
					want = Bishop
				case 'r', 'R':
					want = Rook
				}
			}
			if m.Promote() != want {
				continue
			}
		}
		return m, true
	}
	return 0, false
}
