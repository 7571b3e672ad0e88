package player

import (
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Strategy decides where self plays next on b. Implementations must return
// an in-bounds, unoccupied square and must not keep b after returning.
type Strategy interface {
	Decide(b *ttt.Board, self ttt.Player) (ttt.Coord, error)
}

// Player binds an identity to a strategy. Symbol and Color are display hints
// for the rendering layer, the core never reads them.
type Player struct {
	ID       ttt.Player
	Name     string
	Symbol   string
	Color    string
	Strategy Strategy
}

func New(id ttt.Player, name, symbol string, strategy Strategy) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Symbol:   symbol,
		Strategy: strategy,
	}
}

// Set the display color, any value understood by the renderer
func (p *Player) WithColor(color string) *Player {
	p.Color = color
	return p
}

func (p *Player) Decide(b *ttt.Board) (ttt.Coord, error) {
	mv, err := p.Strategy.Decide(b, p.ID)
	if err != nil {
		return ttt.Coord{}, fmt.Errorf("player %s: %w", p.Name, err)
	}
	return mv, nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Symbol)
}
