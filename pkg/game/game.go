package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/IlikeChooros/go-minimax/pkg/player"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type State int

const (
	StateTurn State = iota
	StateTerminal
)

func (s State) String() string {
	if s == StateTerminal {
		return "terminal"
	}
	return "turn"
}

var (
	ErrGameOver       = errors.New("game is already finished")
	ErrInvalidPlayers = errors.New("invalid players")
	ErrIllegalMove    = errors.New("strategy returned an illegal move")
)

// Game is the turn controller. It owns the live board, asks the active player
// for a move, applies it and toggles the active player until the board is
// terminal.
type Game struct {
	ID       uuid.UUID
	board    *ttt.Board
	players  [2]*player.Player
	active   int
	state    State
	outcome  ttt.Outcome
	moves    []ttt.Coord
	listener Listener
	logger   *slog.Logger
}

type Option func(*Game)

func WithListener(listener Listener) Option {
	return func(g *Game) {
		if listener != nil {
			g.listener = listener
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Start the game from a given position instead of an empty board
func WithBoard(b *ttt.Board) Option {
	return func(g *Game) {
		if b != nil {
			g.board = b.Clone()
		}
	}
}

// New creates a game where first moves first. The players must carry
// different participant ids.
func New(first, second *player.Player, opts ...Option) (*Game, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("%w: missing player", ErrInvalidPlayers)
	}

	if !first.ID.Valid() || !second.ID.Valid() || first.ID == second.ID {
		return nil, fmt.Errorf("%w: ids %d and %d", ErrInvalidPlayers, first.ID, second.ID)
	}

	g := &Game{
		ID:       uuid.New(),
		board:    ttt.NewBoard(),
		players:  [2]*player.Player{first, second},
		state:    StateTurn,
		moves:    make([]ttt.Coord, 0, ttt.Squares),
		listener: NopListener{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.logger = g.logger.With("component", "game", "game", g.ID.String())

	// The starting position may already be finished
	if g.outcome = g.board.Outcome(); g.outcome.Terminal() {
		g.state = StateTerminal
	}

	return g, nil
}

// Copy of the live board
func (g *Game) Board() *ttt.Board {
	return g.board.Clone()
}

func (g *Game) Players() [2]*player.Player {
	return g.players
}

func (g *Game) Active() *player.Player {
	return g.players[g.active]
}

func (g *Game) IsActive(p *player.Player) bool {
	return g.state == StateTurn && g.players[g.active] == p
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Outcome() ttt.Outcome {
	return g.outcome
}

// Player with given id, nil if none
func (g *Game) Player(id ttt.Player) *player.Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Moves played so far, in order
func (g *Game) Moves() []ttt.Coord {
	return append([]ttt.Coord(nil), g.moves...)
}

// Step runs a single transition from Turn(p): ask p for a move, apply it and
// either finish the game or hand the turn to the other player.
func (g *Game) Step() error {
	if g.state == StateTerminal {
		return ErrGameOver
	}

	p := g.players[g.active]
	g.listener.OnTurn(g)

	mv, err := p.Decide(g.board.Clone())
	if err != nil {
		return fmt.Errorf("failed to decide: %w", err)
	}

	if err = g.board.Place(mv, p.ID); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIllegalMove, p.Name, err)
	}

	g.moves = append(g.moves, mv)
	g.logger.Debug("move made", "player", p.Name, "move", mv, "ply", len(g.moves))
	g.listener.OnMoveMade(g, p, mv)

	g.outcome = g.board.Outcome()
	if g.outcome.Terminal() {
		g.state = StateTerminal
		g.logger.Info("game finished", "outcome", g.outcome.String(), "moves", len(g.moves))
		g.listener.OnFinished(g)
		return nil
	}

	// explicit toggle, never re-derived from the player list
	g.active ^= 1
	return nil
}

// Play steps until the game is over and returns its outcome
func (g *Game) Play() (ttt.Outcome, error) {
	for g.state == StateTurn {
		if err := g.Step(); err != nil {
			return g.outcome, err
		}
	}
	return g.outcome, nil
}

// Play a full game between first and second and return its outcome
func Play(first, second *player.Player, opts ...Option) (ttt.Outcome, error) {
	g, err := New(first, second, opts...)
	if err != nil {
		return ttt.Outcome{}, err
	}
	return g.Play()
}
