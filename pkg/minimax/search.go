package minimax

import (
	"fmt"
	"math"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Chosen move with its score, the score is only meaningful for comparing
// candidates of the same search
type searchResult struct {
	move  ttt.Coord
	score int
}

// Evaluate every candidate with a fresh window and keep the strictly greatest,
// so the first candidate in row-major order wins ties
func (e *Engine) root(b *ttt.Board, self ttt.Player) searchResult {
	best := searchResult{score: math.MinInt}

	moves := b.EmptySquares()
	for _, mv := range moves.Slice() {
		score := e.play(b, mv, self, func() int {
			return e.minimax(b, self, false, math.MinInt, math.MaxInt, 0)
		})

		if score > best.score {
			best = searchResult{move: mv, score: score}
		}
	}

	return best
}

// Score of the node reached after the previous ply, from self's perspective.
// On a maximizing layer self is to move, so an existing winner is the
// opponent. Earlier wins (more empty squares) weigh more.
func (e *Engine) minimax(b *ttt.Board, self ttt.Player, maximizing bool, alpha, beta, depth int) int {
	e.stats.Nodes++
	e.stats.MaxPly = max(e.stats.MaxPly, depth+1)

	empty := b.EmptyCount()
	if b.Winner() != ttt.None {
		if maximizing {
			return -(empty + 1)
		}
		return empty + 1
	}

	if empty == 0 || depth == e.limits.Depth {
		return 0
	}

	moves := b.EmptySquares()
	if maximizing {
		maxEval := math.MinInt
		for _, mv := range moves.Slice() {
			eval := e.play(b, mv, self, func() int {
				return e.minimax(b, self, false, alpha, beta, depth+1)
			})
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if e.pruning && beta <= alpha {
				e.stats.Cutoffs++
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	opponent := self.Opponent()
	for _, mv := range moves.Slice() {
		eval := e.play(b, mv, opponent, func() int {
			return e.minimax(b, self, true, alpha, beta, depth+1)
		})
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if e.pruning && beta <= alpha {
			e.stats.Cutoffs++
			break
		}
	}
	return minEval
}

// Place the mover's mark, evaluate, and clear the square on every exit path
func (e *Engine) play(b *ttt.Board, mv ttt.Coord, mover ttt.Player, next func() int) int {
	if err := b.Place(mv, mover); err != nil {
		panic(fmt.Sprintf("minimax: speculative move failed: %v", err))
	}

	defer func() {
		if err := b.Clear(mv); err != nil {
			panic(fmt.Sprintf("minimax: restore failed: %v", err))
		}
	}()

	return next()
}
