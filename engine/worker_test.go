package engine

import (
	"io"
	"testing"
	"time"

	mb "heron-chess/mailbox"
)

func newTestWorker(b *mb.Board) *Worker {
	s := NewSearch(b)
	s.Out = io.Discard
	return NewWorker(s)
}

func TestWorkerGameFlow(t *testing.T) {
	w := newTestWorker(mb.New())
	defer w.Stop()

	if w.Side() != mb.Light {
		t.Fatal("new game does not start with light to move")
	}
	if w.CanTakeback() {
		t.Error("takeback offered before any move")
	}

	m, ok := w.ParseMove("e2e4")
	if !ok {
		t.Fatal("e2e4 not recognized")
	}
	if !w.MakeMove(m) {
		t.Fatal("e2e4 rejected")
	}
	if w.Side() != mb.Dark {
		t.Error("turn did not pass to dark")
	}
	if got := w.Status(); got != Ongoing {
		t.Errorf("status = %v, want Ongoing", got)
	}
	if !w.CanTakeback() {
		t.Error("takeback refused with a move on record")
	}

	w.Takeback()
	if w.Side() != mb.Light {
		t.Error("takeback did not return the move to light")
	}

	w.MakeMove(m)
	w.NewGame()
	if w.CanTakeback() {
		t.Error("history survived a new game")
	}
}

func TestWorkerThink(t *testing.T) {
	b, err := mb.ParseFEN("6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	w := newTestWorker(b)
	defer w.Stop()

	line := w.Think(time.Hour, 5, OutputNone)
	if len(line.Moves) == 0 || line.Moves[0].String() != "e1e8" {
		t.Errorf("worker think returned %v, want e1e8", line.Moves)
	}
}

func TestWorkerThinkAsync(t *testing.T) {
	w := newTestWorker(mb.New())
	defer w.Stop()

	ch := w.ThinkAsync(time.Hour, 3, OutputNone)
	select {
	case line := <-ch:
		if len(line.Moves) == 0 {
			t.Error("async think returned no move")
		}
	case <-time.After(30 * time.Second):
		t.Fatal("async think did not complete")
	}
}

func TestWorkerRejectsIllegalMove(t *testing.T) {
	w := newTestWorker(mb.New())
	defer w.Stop()

	if _, ok := w.ParseMove("e2e5"); ok {
		t.Error("e2e5 accepted from the initial position")
	}
	if _, ok := w.ParseMove("nonsense"); ok {
		t.Error("garbage accepted as a move")
	}
}
