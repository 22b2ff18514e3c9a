package engine

import mb "heron-chess/mailbox"

// Outcome is the game result from the point of view of the rules, not the
// search. Ongoing means the game continues.
type Outcome int

const (
	Ongoing Outcome = iota
	LightMated
	DarkMated
	Stalemate
	RepetitionDraw
	FiftyMoveDraw
)

func (o Outcome) String() string {
	switch o {
	case LightMated:
		return "0-1 {Black mates}"
	case DarkMated:
		return "1-0 {White mates}"
	case Stalemate:
		return "1/2-1/2 {Stalemate}"
	case RepetitionDraw:
		return "1/2-1/2 {Draw by repetition}"
	case FiftyMoveDraw:
		return "1/2-1/2 {Draw by fifty move rule}"
	}
	return ""
}

// Status applies the game-end rules to the side to move: mate or
// stalemate when no legal move exists, then threefold repetition over the
// whole game, then the fifty-move rule.
func Status(b *mb.Board) Outcome {
	legal := false
	for _, g := range b.Generate() {
		if b.MakeMove(g.Move) {
			b.Takeback()
			legal = true
			break
		}
	}
	if !legal {
		if b.InCheck(b.Side) {
			if b.Side == mb.Light {
				return LightMated
			}
			return DarkMated
		}
		return Stalemate
	}
	if b.GameRepetitions() >= 2 {
		return RepetitionDraw
	}
	if b.Fifty >= 100 {
		return FiftyMoveDraw
	}
	return Ongoing
}
