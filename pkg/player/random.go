package player

import (
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Random plays uniformly among the empty squares
type Random struct {
	rand *rand.Rand
}

// Seeded from SeedGeneratorFn when r is nil
func NewRandom(r *rand.Rand) *Random {
	if r == nil {
		r = rand.New(rand.NewSource(SeedGeneratorFn()))
	}
	return &Random{rand: r}
}

func (r *Random) Decide(b *ttt.Board, _ ttt.Player) (ttt.Coord, error) {
	moves := b.EmptySquares()
	if moves.Len() == 0 {
		return ttt.Coord{}, fmt.Errorf("%w: board is full", ErrNoMoves)
	}
	return moves.Moves[r.rand.Intn(moves.Len())], nil
}
