package ttt

type Status int

const (
	StatusInProgress Status = iota
	StatusWin
	StatusDraw
)

func (s Status) String() string {
	switch s {
	case StatusWin:
		return "win"
	case StatusDraw:
		return "draw"
	default:
		return "in-progress"
	}
}

// Outcome of a game, Winner is set only when Status is StatusWin
type Outcome struct {
	Status Status `json:"status"`
	Winner Player `json:"winner"`
}

func (o Outcome) Terminal() bool {
	return o.Status != StatusInProgress
}

func (o Outcome) String() string {
	if o.Status == StatusWin {
		return o.Winner.String() + " won"
	}
	return o.Status.String()
}

// Winning lines in scan order: rows top to bottom, columns left to right,
// the main diagonal, then the anti-diagonal. Bit i is the row-major square i.
var Lines = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// Owner of the first fully owned line, None if there is no such line
func (b *Board) Winner() Player {
	crossbb := b.bitboards[_bitboardCrossIdx]
	circlebb := b.bitboards[_bitboardCircleIdx]

	for _, line := range Lines {
		if crossbb&line == line {
			return Cross
		}
		if circlebb&line == line {
			return Circle
		}
	}

	return None
}

// Outcome checks for a winner first, then for a full board
func (b *Board) Outcome() Outcome {
	if winner := b.Winner(); winner != None {
		return Outcome{Status: StatusWin, Winner: winner}
	}

	if b.EmptyCount() == 0 {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusInProgress}
}
