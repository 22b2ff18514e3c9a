package engine

import (
	"fmt"
	"io"
	"time"

	mb "heron-chess/mailbox"
)

// Fischer vs. Sherwin, New Jersey State Open 1957, before white's 17th.
const benchFEN = "1rb2rk1/p4ppp/1p1qp1n1/3n2N1/2pP4/2P3P1/PPR2PBP/R1B1R1K1 w - - 0 17"

const (
	benchDepth = 5
	benchRuns  = 3

	// nodes/second of the original reference machine, so the final score
	// is comparable across hardware
	benchBaselineNPS = 243169.0
)

// BenchBoard returns the fixed benchmark position. Tests also use it as a
// stable non-trivial middlegame.
func BenchBoard() *mb.Board {
	b, err := mb.ParseFEN(benchFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// Bench runs a fixed-depth search over the benchmark position three times
// and reports the node count, the best wall time, and the nodes-per-second
// score normalized to the reference machine. The book is never consulted.
func Bench(out io.Writer) {
	b := BenchBoard()
	s := NewSearch(b)
	s.Out = out

	var times [benchRuns]time.Duration
	var line BestLine
	for i := range times {
		start := time.Now()
		line = s.Think(1<<20*time.Second, benchDepth, OutputVerbose)
		times[i] = time.Since(start)
		fmt.Fprintf(out, "Time: %d ms\n", times[i].Milliseconds())
	}

	best := Min(times[0], Min(times[1], times[2]))
	fmt.Fprintf(out, "\nNodes: %d\n", line.Nodes)
	fmt.Fprintf(out, "Best time: %d ms\n", best.Milliseconds())
	if best <= 0 {
		fmt.Fprintln(out, "(Time not long enough to rate nodes per second)")
		return
	}
	nps := float64(line.Nodes) / best.Seconds()
	fmt.Fprintf(out, "Nodes per second: %d (Score: %.3f)\n", int64(nps), nps/benchBaselineNPS)
}
