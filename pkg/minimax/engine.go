package minimax

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var (
	ErrInvalidSearchConfiguration = errors.New("invalid search configuration")
	ErrNoMoves                    = errors.New("no legal moves")
)

// Returned on an empty board when the opening shortcut is enabled. Every
// opening move draws under perfect play, so the first square is as good as any.
var OpeningMove = ttt.Coord{Row: 0, Col: 0}

// Engine picks moves with minimax and alpha-beta pruning. It is not safe for
// concurrent use, each goroutine needs its own Engine.
type Engine struct {
	limits   Limits
	pruning  bool
	opening  bool
	stats    SearchStats
	listener StatsListener
	logger   *slog.Logger
}

type Option func(*Engine)

// Disable pruning to get a plain exhaustive minimax, mostly useful to verify
// that pruning does not change the result
func WithPruning(enabled bool) Option {
	return func(e *Engine) {
		e.pruning = enabled
	}
}

// Toggle the fixed reply on an empty board (enabled by default)
func WithOpeningShortcut(enabled bool) Option {
	return func(e *Engine) {
		e.opening = enabled
	}
}

func WithListener(listener StatsListener) Option {
	return func(e *Engine) {
		e.listener = listener
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func NewEngine(limits *Limits, opts ...Option) (*Engine, error) {
	if limits == nil {
		limits = DefaultLimits()
	}

	if err := limits.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		limits:  *limits,
		pruning: true,
		opening: true,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

func (e *Engine) Limits() Limits {
	return e.limits
}

// Statistics of the last BestMove call
func (e *Engine) Stats() SearchStats {
	return e.stats
}

func (e *Engine) StatsListener() *StatsListener {
	return &e.listener
}

// BestMove returns the best square for self, assuming self moves next on b.
//
// The engine mutates b while searching and restores it before returning, so b
// must not be used by anyone else during the call. Pass a clone to keep a live
// board untouched.
func (e *Engine) BestMove(b *ttt.Board, self ttt.Player) (ttt.Coord, error) {
	result, err := e.search(b, self)
	if err != nil {
		return ttt.Coord{}, err
	}
	return result.move, nil
}

func (e *Engine) search(b *ttt.Board, self ttt.Player) (searchResult, error) {
	if !self.Valid() {
		return searchResult{}, fmt.Errorf("%w: unknown player %d", ErrInvalidSearchConfiguration, self)
	}

	if b.Outcome().Terminal() {
		return searchResult{}, fmt.Errorf("%w: board %v is terminal", ErrNoMoves, b)
	}

	e.stats = SearchStats{}
	start := time.Now()

	var result searchResult
	if e.opening && b.EmptyCount() == ttt.Squares {
		result = searchResult{move: OpeningMove}
		e.stats.Shortcut = true
	} else {
		result = e.root(b, self)
	}

	e.stats.Move = result.move
	e.stats.Elapsed = time.Since(start)
	e.logger.Debug("search finished",
		"player", self, "move", result.move, "nodes", e.stats.Nodes,
		"cutoffs", e.stats.Cutoffs, "depth", e.limits.Depth, "shortcut", e.stats.Shortcut)
	e.listener.invokeStop(e.stats)

	return result, nil
}
