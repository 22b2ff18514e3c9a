package engine

import (
	"bufio"
	"math/rand"
	"os"
	"strings"

	mb "heron-chess/mailbox"
)

// the book is not consulted after this many game half-moves
const bookMoveLimit = 25

// Book is a list of opening lines, one per line of the source file, each
// a space-separated sequence of coordinate moves from the initial
// position. When several lines continue the current game the reply is
// drawn at random, weighted by how many lines play each continuation.
type Book struct {
	lines []string
	rng   *rand.Rand
}

// NewBook builds a book from in-memory lines. Tests pass a fixed-seed
// rng; play passes a wall-clock seeded one.
func NewBook(lines []string, rng *rand.Rand) *Book {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			kept = append(kept, l)
		}
	}
	return &Book{lines: kept, rng: rng}
}

// OpenBook loads an opening-line file. The caller decides what a missing
// file means; an empty book simply never produces a move.
func OpenBook(path string, rng *rand.Rand) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewBook(lines, rng), nil
}

// Move looks the game line up in the book. It returns false once the game
// has left book, gone past the half-move limit, or the board's history no
// longer starts at the initial position in a way any line matches.
func (bk *Book) Move(b *mb.Board) (mb.Move, bool) {
	if bk == nil || len(bk.lines) == 0 || b.Hply > bookMoveLimit {
		return 0, false
	}

	var sb strings.Builder
	for _, m := range b.PlayedMoves() {
		sb.WriteString(m.String())
		sb.WriteByte(' ')
	}
	prefix := sb.String()

	// collect the distinct continuations, weighted by occurrence
	var moves []mb.Move
	var counts []int
	total := 0
	for _, line := range bk.lines {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		rest := strings.Fields(line[len(prefix):])
		if len(rest) == 0 {
			continue
		}
		m, ok := b.ParseMove(rest[0])
		if !ok {
			continue
		}
		found := false
		for i := range moves {
			if moves[i] == m {
				counts[i]++
				found = true
				break
			}
		}
		if !found {
			moves = append(moves, m)
			counts = append(counts, 1)
		}
		total++
	}
	if total == 0 {
		return 0, false
	}

	j := bk.rng.Intn(total)
	for i := range moves {
		j -= counts[i]
		if j < 0 {
			return moves[i], true
		}
	}
	return 0, false
}
