package ttt

import "fmt"

// Coord addresses a square by (row, column), both in [0, Size)
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Coordinate of the square with given row-major index
func CoordOf(index int) Coord {
	return Coord{Row: index / Size, Col: index % Size}
}

// Row-major index of the square, valid only for in-bounds coordinates
func (c Coord) Index() int {
	return c.Row*Size + c.Col
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Fixed capacity list of moves, never allocates when used by value
type MoveList struct {
	Moves [Squares]Coord
	Size  uint8
}

func (ml *MoveList) AppendMove(c Coord) {
	ml.Moves[ml.Size] = c
	ml.Size++
}

func (ml *MoveList) Len() int {
	return int(ml.Size)
}

// Slice view of the moves, shares memory with the list
func (ml *MoveList) Slice() []Coord {
	return ml.Moves[:ml.Size]
}
