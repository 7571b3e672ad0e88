package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var (
	ErrInputClosed = errors.New("input closed")
	ErrNoMoves     = errors.New("no empty squares")
)

const DefaultPrompt = "Choose a square (row col): "

// Interactive reads "row col" pairs from an input channel, re-prompting until
// the pair names an empty square
type Interactive struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return NewInteractiveScanner(bufio.NewScanner(in), out)
}

// Use when the input is shared with other readers, e.g. two players on one stdin
func NewInteractiveScanner(scanner *bufio.Scanner, out io.Writer) *Interactive {
	return &Interactive{
		scanner: scanner,
		out:     out,
		prompt:  DefaultPrompt,
	}
}

func (i *Interactive) SetPrompt(prompt string) *Interactive {
	i.prompt = prompt
	return i
}

func (i *Interactive) Decide(b *ttt.Board, _ ttt.Player) (ttt.Coord, error) {
	if b.EmptyCount() == 0 {
		return ttt.Coord{}, fmt.Errorf("%w: board is full", ErrNoMoves)
	}

	for {
		fmt.Fprint(i.out, i.prompt)

		if !i.scanner.Scan() {
			if err := i.scanner.Err(); err != nil {
				return ttt.Coord{}, fmt.Errorf("%w: %w", ErrInputClosed, err)
			}
			return ttt.Coord{}, ErrInputClosed
		}

		mv, err := parseCoord(i.scanner.Text())
		if err == nil && b.InBounds(mv) && !b.Occupied(mv) {
			return mv, nil
		}

		fmt.Fprintln(i.out, "Invalid coordinate")
	}
}

func parseCoord(line string) (ttt.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return ttt.Coord{}, fmt.Errorf("expected 2 numbers, got %d", len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return ttt.Coord{}, err
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return ttt.Coord{}, err
	}

	return ttt.Coord{Row: row, Col: col}, nil
}
