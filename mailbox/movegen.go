package mailbox

// GeneratedMove couples a pseudo-legal move with its ordering score. The
// generator seeds the score (captures by most-valuable-victim /
// least-valuable-attacker above one million, quiet moves by the history
// counter); the search may boost it further.
type GeneratedMove struct {
	Move  Move
	Score int32
}

const captureScore = 1000000

// Generate fills the current ply's section of the shared move buffer with
// pseudo-legal moves for the side to move and returns that section.
// Castling moves are emitted whenever the rights bit is set; MakeMove does
// the occupancy and attack validation. The returned slice is invalidated
// by the next Generate or GenerateCaptures at the same ply.
func (b *Board) Generate() []GeneratedMove {
	b.firstMove[b.Ply+1] = b.firstMove[b.Ply]

	for i := 0; i < 64; i++ {
		if b.color[i] != b.Side {
			continue
		}
		p := b.piece[i]
		if p == Pawn {
			if b.Side == Light {
				if Col(i) != 0 && b.color[i-9] == Dark {
					b.genPush(i, i-9, 17)
				}
				if Col(i) != 7 && b.color[i-7] == Dark {
					b.genPush(i, i-7, 17)
				}
				if b.color[i-8] == Empty {
					b.genPush(i, i-8, 16)
					if i >= 48 && b.color[i-16] == Empty {
						b.genPush(i, i-16, 24)
					}
				}
			} else {
				if Col(i) != 0 && b.color[i+7] == Light {
					b.genPush(i, i+7, 17)
				}
				if Col(i) != 7 && b.color[i+9] == Light {
					b.genPush(i, i+9, 17)
				}
				if b.color[i+8] == Empty {
					b.genPush(i, i+8, 16)
					if i <= 15 && b.color[i+16] == Empty {
						b.genPush(i, i+16, 24)
					}
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
				if b.color[n] != Empty {
					if b.color[n] == b.Xside {
						b.genPush(i, n, 1)
					}
					break
				}
				b.genPush(i, n, 0)
				if !slide[p] {
					break
				}
			}
		}
	}

	if b.Side == Light {
		if b.Castle&1 != 0 {
			b.genPush(E1, G1, 2)
		}
		if b.Castle&2 != 0 {
			b.genPush(E1, C1, 2)
		}
	} else {
		if b.Castle&4 != 0 {
			b.genPush(E8, G8, 2)
		}
		if b.Castle&8 != 0 {
			b.genPush(E8, C8, 2)
		}
	}
	b.genEnPassant()

	return b.genDat[b.firstMove[b.Ply]:b.firstMove[b.Ply+1]]
}

// GenerateCaptures is Generate restricted to captures, en-passant and
// promotions (including the non-capturing promotion push), for the
// quiescence search.
func (b *Board) GenerateCaptures() []GeneratedMove {
	b.firstMove[b.Ply+1] = b.firstMove[b.Ply]

	for i := 0; i < 64; i++ {
		if b.color[i] != b.Side {
			continue
		}
		p := b.piece[i]
		if p == Pawn {
			if b.Side == Light {
				if Col(i) != 0 && b.color[i-9] == Dark {
					b.genPush(i, i-9, 17)
				}
				if Col(i) != 7 && b.color[i-7] == Dark {
					b.genPush(i, i-7, 17)
				}
				if i <= 15 && b.color[i-8] == Empty {
					b.genPush(i, i-8, 16)
				}
			} else {
				if Col(i) != 0 && b.color[i+7] == Light {
					b.genPush(i, i+7, 17)
				}
				if Col(i) != 7 && b.color[i+9] == Light {
					b.genPush(i, i+9, 17)
				}
				if i >= 48 && b.color[i+8] == Empty {
					b.genPush(i, i+8, 16)
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
				if b.color[n] != Empty {
					if b.color[n] == b.Xside {
						b.genPush(i, n, 1)
					}
					break
				}
				if !slide[p] {
					break
				}
			}
		}
	}
	b.genEnPassant()

	return b.genDat[b.firstMove[b.Ply]:b.firstMove[b.Ply+1]]
}

func (b *Board) genEnPassant() {
	if b.Ep == -1 {
		return
	}
	if b.Side == Light {
		if Col(b.Ep) != 0 && b.color[b.Ep+7] == Light && b.piece[b.Ep+7] == Pawn {
			b.genPush(b.Ep+7, b.Ep, 21)
		}
		if Col(b.Ep) != 7 && b.color[b.Ep+9] == Light && b.piece[b.Ep+9] == Pawn {
			b.genPush(b.Ep+9, b.Ep, 21)
		}
	} else {
		if Col(b.Ep) != 0 && b.color[b.Ep-9] == Dark && b.piece[b.Ep-9] == Pawn {
			b.genPush(b.Ep-9, b.Ep, 21)
		}
		if Col(b.Ep) != 7 && b.color[b.Ep-7] == Dark && b.piece[b.Ep-7] == Pawn {
			b.genPush(b.Ep-7, b.Ep, 21)
		}
	}
}

// genPush appends one scored move; a pawn move that reaches the last rank
// fans out into the four promotions instead.
func (b *Board) genPush(from, to, bits int) {
	if bits&FlagPawn != 0 {
		if b.Side == Light {
			if to <= H8 {
				b.genPromote(from, to, bits)
				return
			}
		} else if to >= A1 {
			b.genPromote(from, to, bits)
			return
		}
	}
	g := &b.genDat[b.firstMove[b.Ply+1]]
	b.firstMove[b.Ply+1]++
	g.Move = NewMove(from, to, 0, bits)
	if b.color[to] != Empty {
		g.Score = captureScore + int32(b.piece[to])*10 - int32(b.piece[from])
	} else {
		g.Score = b.History[from][to]
	}
}

func (b *Board) genPromote(from, to, bits int) {
	for p := Knight; p <= Queen; p++ {
		g := &b.genDat[b.firstMove[b.Ply+1]]
		b.firstMove[b.Ply+1]++
		g.Move = NewMove(from, to, p, bits|FlagPromotion)
		g.Score = captureScore + int32(p)*10
	}
}
