package player

import (
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Search delegates to the minimax engine with a fixed depth limit
type Search struct {
	engine *minimax.Engine
}

// Depth must be in [1, minimax.MaxDepth], anything else fails with
// minimax.ErrInvalidSearchConfiguration
func NewSearch(depth int, opts ...minimax.Option) (*Search, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: depth %d must be positive", minimax.ErrInvalidSearchConfiguration, depth)
	}

	engine, err := minimax.NewEngine(minimax.DefaultLimits().SetDepth(depth), opts...)
	if err != nil {
		return nil, err
	}

	return &Search{engine: engine}, nil
}

func (s *Search) Depth() int {
	return s.engine.Limits().Depth
}

func (s *Search) Engine() *minimax.Engine {
	return s.engine
}

// The engine works on a private copy, the caller's board is never touched
func (s *Search) Decide(b *ttt.Board, self ttt.Player) (ttt.Coord, error) {
	mv, err := s.engine.BestMove(b.Clone(), self)
	if err != nil {
		return ttt.Coord{}, fmt.Errorf("search: %w", err)
	}
	return mv, nil
}
