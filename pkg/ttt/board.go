package ttt

import (
	"fmt"
	"strings"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1
)

// Board is the 3x3 grid. The zero value is an empty board. Board is a plain
// value: assigning or calling Clone yields an independent copy.
type Board struct {
	squares   [Squares]Player
	bitboards [2]uint16
}

func NewBoard() *Board {
	return &Board{}
}

func bitboardIdx(p Player) int {
	if p == Circle {
		return _bitboardCircleIdx
	}
	return _bitboardCrossIdx
}

// Independent copy, safe to mutate without touching the receiver
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func (b *Board) InBounds(c Coord) bool {
	return 0 <= c.Row && c.Row < Size && 0 <= c.Col && c.Col < Size
}

// Reports whether the square is owned by a player, false for out-of-bounds coordinates
func (b *Board) Occupied(c Coord) bool {
	return b.At(c) != None
}

// Owner of the square, None if empty or out of bounds
func (b *Board) At(c Coord) Player {
	if !b.InBounds(c) {
		return None
	}
	return b.squares[c.Index()]
}

// Place marks the square as owned by p. Fails with ErrInvalidMove if c is out
// of bounds, the square is occupied, or p is not a participant.
func (b *Board) Place(c Coord, p Player) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v out of bounds", ErrInvalidMove, c)
	}

	if !p.Valid() {
		return fmt.Errorf("%w: unknown player %d", ErrInvalidMove, p)
	}

	idx := c.Index()
	if b.squares[idx] != None {
		return fmt.Errorf("%w: %v already occupied", ErrInvalidMove, c)
	}

	b.squares[idx] = p
	b.bitboards[bitboardIdx(p)] |= 1 << idx
	return nil
}

// Clear empties an occupied square, used to undo speculative placements
func (b *Board) Clear(c Coord) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v out of bounds", ErrInvalidMove, c)
	}

	idx := c.Index()
	owner := b.squares[idx]
	if owner == None {
		return fmt.Errorf("%w: %v already empty", ErrInvalidMove, c)
	}

	b.squares[idx] = None
	b.bitboards[bitboardIdx(owner)] &^= 1 << idx
	return nil
}

// Build a board from a row-major layout, 'X' for Cross, 'O' for Circle,
// anything else is empty. Mostly useful in tests and examples.
//
//	ttt.ParseBoard("XX." + "..." + "...")
func ParseBoard(layout string) (*Board, error) {
	layout = strings.Join(strings.Fields(layout), "")
	if len(layout) != Squares {
		return nil, fmt.Errorf("board layout must have %d squares, got %d", Squares, len(layout))
	}

	b := NewBoard()
	for i, r := range layout {
		var p Player
		switch r {
		case 'X', 'x':
			p = Cross
		case 'O', 'o':
			p = Circle
		default:
			continue
		}
		if err := b.Place(CoordOf(i), p); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (b *Board) String() string {
	builder := strings.Builder{}
	for i, p := range b.squares {
		switch p {
		case Cross:
			builder.WriteByte('X')
		case Circle:
			builder.WriteByte('O')
		default:
			builder.WriteByte('.')
		}
		if i%Size == Size-1 && i != Squares-1 {
			builder.WriteByte('/')
		}
	}
	return builder.String()
}
