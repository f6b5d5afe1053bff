// Package console implements a line-oriented debugging console over pkg/board: the
// human supplies every move, and the driver reports legal moves, check/mate status and
// attack queries. It contains no move-selection logic of its own.
package console

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kernelchess/rules/pkg/board"
	"github.com/kernelchess/rules/pkg/board/fen"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Driver drives an interactive session against a single Position.
type Driver struct {
	iox.AsyncCloser

	pos  *board.Position
	out  chan<- string
	last board.Move // most recent applied move, for a single-level undo
}

// NewDriver starts a Driver reading commands from in, writing responses to the
// returned channel. Both ends are closed together when in is exhausted or the caller
// calls Close.
func NewDriver(ctx context.Context, pos *board.Position, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		pos:         pos,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console initialized")

	d.printBoard()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}

			cmd, args := strings.ToLower(parts[0]), parts[1:]

			switch cmd {
			case "load", "reset", "r":
				record := fen.Initial
				if len(args) > 0 {
					record = strings.Join(args, " ")
				}
				pos, err := fen.Decode(record)
				if err != nil {
					d.out <- fmt.Sprintf("invalid fen: %v", err)
					break
				}
				d.pos = pos
				d.last = board.Move{}
				d.printBoard()

			case "print", "p":
				d.printBoard()

			case "legal", "l":
				for _, m := range d.pos.LegalMoves() {
					d.out <- board.RenderSAN(m)
				}

			case "attacks":
				if len(args) != 1 {
					d.out <- "usage: attacks <square>"
					break
				}
				sq, err := board.ParseSquareStr(args[0])
				if err != nil {
					d.out <- fmt.Sprintf("invalid square: %v", err)
					break
				}
				d.out <- fmt.Sprintf("white attacks %v: %v", sq, d.pos.IsAttacked(sq, board.White))
				d.out <- fmt.Sprintf("black attacks %v: %v", sq, d.pos.IsAttacked(sq, board.Black))

			case "undo", "u":
				if (d.last == board.Move{}) {
					d.out <- "nothing to undo"
					break
				}
				d.pos.Undo(d.last)
				d.last = board.Move{}
				d.printBoard()

			case "quit", "exit", "q":
				return

			default:
				// Assume a move in coordinate notation, e.g. "e2e4" or "a7a8q".
				m, err := board.ParseMove(cmd)
				if err != nil {
					d.out <- fmt.Sprintf("unrecognized command or move: %q", cmd)
					break
				}
				if err := d.pos.ApplyChecked(m); err != nil {
					d.out <- fmt.Sprintf("illegal move: %v", cmd)
					break
				}
				d.last = m
				d.printBoard()
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) printBoard() {
	d.out <- ""
	d.out <- d.pos.String()
	d.out <- fmt.Sprintf("side to move: %v, result: %v", d.pos.SideToMove(), d.pos.Result())
	d.out <- ""
}

// ReadStdinLines reads stdin lines into a chan. Async.
func ReadStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteStdoutLines writes lines from the given chan to stdout.
func WriteStdoutLines(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
