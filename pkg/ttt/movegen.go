package ttt

import "math/bits"

const fullMask uint16 = 0b111111111

func (b *Board) freeMask() uint {
	return uint(fullMask ^ (b.bitboards[_bitboardCrossIdx] | b.bitboards[_bitboardCircleIdx]))
}

// EmptySquares lists unoccupied squares in row-major order: row 0 left to right,
// then row 1, then row 2. The search relies on this order for tie-breaking.
func (b *Board) EmptySquares() MoveList {
	var movelist MoveList

	free := b.freeMask()
	for free != 0 {
		movelist.AppendMove(CoordOf(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}

// Number of unoccupied squares
func (b *Board) EmptyCount() int {
	return bits.OnesCount(b.freeMask())
}
