package mailbox

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN builds a board from a FEN string. The halfmove-clock and
// fullmove fields are optional; game history starts empty.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("mailbox: malformed FEN %q", fen)
	}

	b := &Board{}
	for i := range b.color {
		b.color[i] = Empty
		b.piece[i] = Empty
	}

	sq := 0
	for i := 0; i < len(fields[0]); i++ {
		c := fields[0][i]
		switch {
		case c == '/':
			if sq%8 != 0 {
				return nil, fmt.Errorf("mailbox: short rank in FEN %q", fen)
			}
		case c >= '1' && c <= '8':
			sq += int(c - '0')
		default:
			if sq >= 64 {
				return nil, fmt.Errorf("mailbox: too many squares in FEN %q", fen)
			}
			side := Light
			up := c
			if c >= 'a' && c <= 'z' {
				side = Dark
				up = c - 'a' + 'A'
			}
			p := -1
			for k, pc := range pieceChar {
				if pc == up {
					p = k
				}
			}
			if p < 0 {
				return nil, fmt.Errorf("mailbox: bad piece %q in FEN %q", c, fen)
			}
			b.color[sq] = side
			b.piece[sq] = p
			sq++
		}
	}
	if sq != 64 {
		return nil, fmt.Errorf("mailbox: incomplete placement in FEN %q", fen)
	}

	switch fields[1] {
	case "w":
		b.Side = Light
	case "b":
		b.Side = Dark
	default:
		return nil, fmt.Errorf("mailbox: bad side %q in FEN %q", fields[1], fen)
	}
	b.Xside = b.Side ^ 1

	b.Castle = 0
	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			b.Castle |= 1
		case 'Q':
			b.Castle |= 2
		case 'k':
			b.Castle |= 4
		case 'q':
			b.Castle |= 8
		case '-':
		default:
			return nil, fmt.Errorf("mailbox: bad castling %q in FEN %q", fields[2], fen)
		}
	}

	b.Ep = -1
	if fields[3] != "-" {
		s := fields[3]
		if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
			return nil, fmt.Errorf("mailbox: bad en-passant square %q in FEN %q", s, fen)
		}
		b.Ep = int(s[0]-'a') + 8*(8-int(s[1]-'0'))
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("mailbox: bad halfmove clock %q in FEN %q", fields[4], fen)
		}
		b.Fifty = n
	}

	b.firstMove[0] = 0
	b.setHash()
	return b, nil
}

// FEN renders the position as a FEN string. The fullmove number is
// derived from the game half-move count.
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := r*8 + f
			if b.color[sq] == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			c := pieceChar[b.piece[sq]]
			if b.color[sq] == Dark {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if r != 7 {
			sb.WriteByte('/')
		}
	}

	if b.Side == Light {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.Castle == 0 {
		sb.WriteByte('-')
	} else {
		if b.Castle&1 != 0 {
			sb.WriteByte('K')
		}
		if b.Castle&2 != 0 {
			sb.WriteByte('Q')
		}
		if b.Castle&4 != 0 {
			sb.WriteByte('k')
		}
		if b.Castle&8 != 0 {
			sb.WriteByte('q')
		}
	}

	if b.Ep == -1 {
		sb.WriteString(" -")
	} else {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + Col(b.Ep)))
		sb.WriteByte(byte('0' + 8 - Row(b.Ep)))
	}

	fmt.Fprintf(&sb, " %d %d", b.Fifty, b.Hply/2+1)
	return sb.String()
}
