package engine

import (
	"time"

	mb "heron-chess/mailbox"
)

// Worker runs a Search on its own goroutine so a caller can keep reading
// input while the engine thinks. The worker goroutine is the sole owner
// of the Search and its board; every access goes through the request
// channel and replies come back on per-request channels, so there is no
// shared mutable state.
type Worker struct {
	reqs chan func(*Search)
	done chan struct{}
}

// NewWorker starts the goroutine owning s. The caller must not touch s or
// its board again except through the Worker.
func NewWorker(s *Search) *Worker {
	w := &Worker{
		reqs: make(chan func(*Search)),
		done: make(chan struct{}),
	}
	go func() {
		defer close(w.done)
		for fn := range w.reqs {
			fn(s)
		}
	}()
	return w
}

// Stop shuts the worker down and waits for the goroutine to exit. The
// Worker must not be used afterwards.
func (w *Worker) Stop() {
	close(w.reqs)
	<-w.done
}

// Think searches synchronously from the caller's point of view.
func (w *Worker) Think(maxTime time.Duration, maxDepth int, output OutputMode) BestLine {
	reply := make(chan BestLine, 1)
	w.reqs <- func(s *Search) { reply <- s.Think(maxTime, maxDepth, output) }
	return <-reply
}

// ThinkAsync starts a search and returns immediately; the result arrives
// on the returned channel. Requests sent while the search runs queue up
// behind it.
func (w *Worker) ThinkAsync(maxTime time.Duration, maxDepth int, output OutputMode) <-chan BestLine {
	reply := make(chan BestLine, 1)
	w.reqs <- func(s *Search) { reply <- s.Think(maxTime, maxDepth, output) }
	return reply
}

// ParseMove resolves coordinate notation against the current position.
func (w *Worker) ParseMove(str string) (mb.Move, bool) {
	type res struct {
		m  mb.Move
		ok bool
	}
	reply := make(chan res, 1)
	w.reqs <- func(s *Search) {
		m, ok := s.Board.ParseMove(str)
		reply <- res{m, ok}
	}
	r := <-reply
	return r.m, r.ok
}

// MakeMove applies a move as a game move (the search ply stays at the
// root) and reports whether it was legal.
func (w *Worker) MakeMove(m mb.Move) bool {
	reply := make(chan bool, 1)
	w.reqs <- func(s *Search) {
		ok := s.Board.MakeMove(m)
		if ok {
			s.Board.Ply = 0
		}
		reply <- ok
	}
	return <-reply
}

// CanTakeback reports whether there is a game move to undo.
func (w *Worker) CanTakeback() bool {
	reply := make(chan bool, 1)
	w.reqs <- func(s *Search) { reply <- s.Board.Hply > 0 }
	return <-reply
}

// Takeback undoes the last game move if there is one.
func (w *Worker) Takeback() {
	reply := make(chan struct{}, 1)
	w.reqs <- func(s *Search) {
		if s.Board.Hply > 0 {
			s.Board.Takeback()
			s.Board.Ply = 0
		}
		reply <- struct{}{}
	}
	<-reply
}

// NewGame resets the board to the initial position.
func (w *Worker) NewGame() {
	reply := make(chan struct{}, 1)
	w.reqs <- func(s *Search) {
		s.Board.Reset()
		reply <- struct{}{}
	}
	<-reply
}

// Side returns whose turn it is.
func (w *Worker) Side() int {
	reply := make(chan int, 1)
	w.reqs <- func(s *Search) { reply <- s.Board.Side }
	return <-reply
}

// Status applies the game-end rules to the current position.
func (w *Worker) Status() Outcome {
	reply := make(chan Outcome, 1)
	w.reqs <- func(s *Search) { reply <- Status(s.Board) }
	return <-reply
}

// BoardString renders the current position diagram.
func (w *Worker) BoardString() string {
	reply := make(chan string, 1)
	w.reqs <- func(s *Search) { reply <- s.Board.String() }
	return <-reply
}
