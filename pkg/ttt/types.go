package ttt

import "errors"

// Player identifies the owner of a square. The two participants are
// Cross (+1) and Circle (-1), so the opponent is always the negation.
type Player int8

const (
	None   Player = 0
	Cross  Player = 1
	Circle Player = -1
)

// Board dimension and square count
const (
	Size    = 3
	Squares = Size * Size
)

var ErrInvalidMove = errors.New("invalid move")

func (p Player) Opponent() Player {
	return -p
}

func (p Player) Valid() bool {
	return p == Cross || p == Circle
}

func (p Player) String() string {
	switch p {
	case Cross:
		return "cross"
	case Circle:
		return "circle"
	default:
		return "none"
	}
}
