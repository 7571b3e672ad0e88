package game

import (
	"github.com/IlikeChooros/go-minimax/pkg/player"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Listener observes a game, all callbacks run on the goroutine driving it
type Listener interface {
	// called before the active player is asked for a move
	OnTurn(g *Game)
	// called after a move was applied to the board
	OnMoveMade(g *Game, p *player.Player, mv ttt.Coord)
	// called once, after the game reached a terminal state
	OnFinished(g *Game)
}

type NopListener struct{}

func (NopListener) OnTurn(*Game)                                {}
func (NopListener) OnMoveMade(*Game, *player.Player, ttt.Coord) {}
func (NopListener) OnFinished(*Game)                            {}
