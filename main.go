package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"heron-chess/engine"
	mb "heron-chess/mailbox"
)

// effectively "no time limit" when searching by fixed depth
const noTimeLimit = 1 << 20 * time.Second

const banner = `
Heron - a small mailbox chess engine

"help" displays a list of commands.
`

const helpText = `on - computer plays for the side to move
off - computer stops playing
st n - search for n seconds per move
sd n - search n plies deep per move
undo - take back a move
new - start a new game
d - display the board
bench - run the built-in benchmark
bye - exit the program
xboard - switch to xboard mode
Enter moves in coordinate notation, e.g. e2e4, e7e8q.
`

func main() {
	board := mb.New()
	search := engine.NewSearch(board)

	book, err := engine.OpenBook("book.txt", rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		fmt.Println("Opening book missing.")
	} else {
		search.Book = book
	}

	fmt.Print(banner)
	consoleLoop(search)
}

// consoleLoop is the interactive driver: the human types moves or
// commands, and whenever it is the computer's side to move the engine
// thinks and plays.
func consoleLoop(s *engine.Search) {
	b := s.Board
	scanner := bufio.NewScanner(os.Stdin)
	maxTime := noTimeLimit
	maxDepth := 4
	computerSide := mb.Empty

	for {
		if b.Side == computerSide {
			line := s.Think(maxTime, maxDepth, engine.OutputVerbose)
			if len(line.Moves) == 0 {
				fmt.Println("(no legal moves)")
				computerSide = mb.Empty
				continue
			}
			m := line.Moves[0]
			fmt.Printf("Computer's move: %s\n", m)
			b.MakeMove(m)
			b.Ply = 0
			printResult(b)
			continue
		}

		fmt.Print("heron> ")
		if !scanner.Scan() {
			return
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		switch tokens[0] {
		case "on":
			computerSide = b.Side
		case "off":
			computerSide = mb.Empty
		case "st":
			maxTime = time.Duration(intArg(tokens, 1)) * time.Second
			maxDepth = mb.MaxPly
		case "sd":
			maxDepth = intArg(tokens, 1)
			maxTime = noTimeLimit
		case "undo":
			if b.Hply == 0 {
				continue
			}
			computerSide = mb.Empty
			b.Takeback()
			b.Ply = 0
		case "new":
			computerSide = mb.Empty
			b.Reset()
		case "d":
			fmt.Print(b)
		case "bench":
			computerSide = mb.Empty
			engine.Bench(os.Stdout)
		case "bye":
			fmt.Println("Share and enjoy!")
			return
		case "xboard":
			xboardLoop(s)
			return
		case "help":
			fmt.Print(helpText)
		default:
			m, ok := b.ParseMove(tokens[0])
			if !ok || !b.MakeMove(m) {
				fmt.Println("Illegal move.")
				continue
			}
			b.Ply = 0
			printResult(b)
		}
	}
}

// xboardLoop speaks the subset of the xboard protocol a GUI needs to play
// a game against the engine.
func xboardLoop(s *engine.Search) {
	b := s.Board
	scanner := bufio.NewScanner(os.Stdin)
	output := engine.OutputNone
	maxTime := noTimeLimit
	maxDepth := 4
	computerSide := mb.Empty

	fmt.Println()
	b.Reset()

	for {
		if b.Side == computerSide {
			line := s.Think(maxTime, maxDepth, output)
			if len(line.Moves) == 0 {
				computerSide = mb.Empty
				continue
			}
			m := line.Moves[0]
			fmt.Printf("move %s\n", m)
			b.MakeMove(m)
			b.Ply = 0
			printResult(b)
			continue
		}

		if !scanner.Scan() {
			return
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		switch tokens[0] {
		case "xboard":
		case "new":
			b.Reset()
			computerSide = mb.Dark
		case "quit":
			return
		case "force":
			computerSide = mb.Empty
		case "white":
			b.Side = mb.Light
			b.Xside = mb.Dark
			computerSide = mb.Dark
		case "black":
			b.Side = mb.Dark
			b.Xside = mb.Light
			computerSide = mb.Light
		case "st":
			maxTime = time.Duration(intArg(tokens, 1)) * time.Second
			maxDepth = mb.MaxPly
		case "sd":
			maxDepth = intArg(tokens, 1)
			maxTime = noTimeLimit
		case "time":
			// centiseconds on our clock; budget a thirtieth of it
			maxTime = time.Duration(intArg(tokens, 1)) * 10 * time.Millisecond / 30
			maxDepth = mb.MaxPly
		case "otim":
		case "go":
			computerSide = b.Side
		case "hint":
			line := s.Think(maxTime, maxDepth, engine.OutputNone)
			if len(line.Moves) > 0 {
				fmt.Printf("Hint: %s\n", line.Moves[0])
			}
		case "undo":
			if b.Hply == 0 {
				continue
			}
			b.Takeback()
			b.Ply = 0
		case "remove":
			if b.Hply < 2 {
				continue
			}
			b.Takeback()
			b.Takeback()
			b.Ply = 0
		case "post":
			output = engine.OutputProtocol
		case "nopost":
			output = engine.OutputNone
		default:
			m, ok := b.ParseMove(tokens[0])
			if !ok || !b.MakeMove(m) {
				fmt.Printf("Error (unknown command): %s\n", tokens[0])
				continue
			}
			b.Ply = 0
			printResult(b)
		}
	}
}

func printResult(b *mb.Board) {
	if o := engine.Status(b); o != engine.Ongoing {
		fmt.Println(o)
	}
}

func intArg(tokens []string, i int) int {
	if i >= len(tokens) {
		return 0
	}
	n, err := strconv.Atoi(tokens[i])
	if err != nil {
		return 0
	}
	return n
}
