package mailbox

// MakeMove applies a pseudo-legal move. It returns false and leaves the
// position untouched when the move is illegal: a castle through check or
// over occupied squares, or any move that leaves the mover's own king
// attacked (that last case is applied first and then rolled back).
func (b *Board) MakeMove(m Move) bool {
	from, to, bits := m.From(), m.To(), m.Bits()

	if bits&FlagCastle != 0 {
		if b.InCheck(b.Side) {
			return false
		}
		var rfrom, rto int
		switch to {
		case G1:
			if b.color[F1] != Empty || b.color[G1] != Empty ||
				b.Attacked(F1, b.Xside) || b.Attacked(G1, b.Xside) {
				return false
			}
			rfrom, rto = H1, F1
		case C1:
			if b.color[B1] != Empty || b.color[C1] != Empty || b.color[D1] != Empty ||
				b.Attacked(C1, b.Xside) || b.Attacked(D1, b.Xside) {
				return false
			}
			rfrom, rto = A1, D1
		case G8:
			if b.color[F8] != Empty || b.color[G8] != Empty ||
				b.Attacked(F8, b.Xside) || b.Attacked(G8, b.Xside) {
				return false
			}
			rfrom, rto = H8, F8
		case C8:
			if b.color[B8] != Empty || b.color[C8] != Empty || b.color[D8] != Empty ||
				b.Attacked(C8, b.Xside) || b.Attacked(D8, b.Xside) {
				return false
			}
			rfrom, rto = A8, D8
		default:
			return false
		}
		b.color[rto] = b.color[rfrom]
		b.piece[rto] = b.piece[rfrom]
		b.color[rfrom] = Empty
		b.piece[rfrom] = Empty
	}

	h := &b.histDat[b.Hply]
	h.move = m
	h.capture = b.piece[to]
	h.castle = b.Castle
	h.ep = b.Ep
	h.fifty = b.Fifty
	h.hash = b.Hash
	b.Ply++
	b.Hply++

	b.Castle &= castleMask[from] & castleMask[to]
	if bits&FlagDoublePush != 0 {
		if b.Side == Light {
			b.Ep = to + 8
		} else {
			b.Ep = to - 8
		}
	} else {
		b.Ep = -1
	}
	if bits&(FlagCapture|FlagPawn) != 0 {
		b.Fifty = 0
	} else {
		b.Fifty++
	}

	b.color[to] = b.Side
	if bits&FlagPromotion != 0 {
		b.piece[to] = m.Promote()
	} else {
		b.piece[to] = b.piece[from]
	}
	b.color[from] = Empty
	b.piece[from] = Empty

	if bits&FlagEnPassant != 0 {
		if b.Side == Light {
			b.color[to+8] = Empty
			b.piece[to+8] = Empty
		} else {
			b.color[to-8] = Empty
			b.piece[to-8] = Empty
		}
	}

	b.Side ^= 1
	b.Xside ^= 1
	if b.InCheck(b.Xside) {
		b.Takeback()
		return false
	}
	b.setHash()
	return true
}

// Takeback reverses the most recent successful MakeMove, restoring every
// field from the undo record.
func (b *Board) Takeback() {
	b.Side ^= 1
	b.Xside ^= 1
	b.Ply--
	b.Hply--
	h := &b.histDat[b.Hply]
	m := h.move
	b.Castle = h.castle
	b.Ep = h.ep
	b.Fifty = h.fifty
	b.Hash = h.hash

	from, to, bits := m.From(), m.To(), m.Bits()
	b.color[from] = b.Side
	if bits&FlagPromotion != 0 {
		b.piece[from] = Pawn
	} else {
		b.piece[from] = b.piece[to]
	}
	if h.capture == Empty {
		b.color[to] = Empty
		b.piece[to] = Empty
	} else {
		b.color[to] = b.Xside
		b.piece[to] = h.capture
	}

	if bits&FlagCastle != 0 {
		var rfrom, rto int
		switch to {
		case G1:
			rfrom, rto = F1, H1
		case C1:
			rfrom, rto = D1, A1
		case G8:
			rfrom, rto = F8, H8
		case C8:
			rfrom, rto = D8, A8
		}
		b.color[rto] = b.Side
		b.piece[rto] = b.piece[rfrom]
		b.color[rfrom] = Empty
		b.piece[rfrom] = Empty
	}

	if bits&FlagEnPassant != 0 {
		if b.Side == Light {
			b.color[to+8] = b.Xside
			b.piece[to+8] = Pawn
		} else {
			b.color[to-8] = b.Xside
			b.piece[to-8] = Pawn
		}
	}
}
