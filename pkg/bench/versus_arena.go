package bench

/*
Arena benchmark subpackage, plays a series of games between two player
configurations and tallies the outcomes.
*/

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-minimax/pkg/game"
	"github.com/IlikeChooros/go-minimax/pkg/player"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var ErrInvalidSetup = errors.New("invalid arena setup")

type VersusArena struct {
	VersusArenaStats
	Player1  PlayerFactory
	Player2  PlayerFactory
	NGames   int
	NThreads int
	// Randomly swap who moves first on every game, otherwise player 1 always starts
	Alternate bool
	logger    *slog.Logger
}

func NewVersusArena(p1, p2 PlayerFactory) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 1,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (va *VersusArena) Setup(nGames, nThreads int, alternate bool) *VersusArena {
	va.NGames = nGames
	va.NThreads = nThreads
	va.Alternate = alternate
	return va
}

func (va *VersusArena) WithLogger(logger *slog.Logger) *VersusArena {
	if logger != nil {
		va.logger = logger
	}
	return va
}

// Run plays NGames spread equally over NThreads workers and blocks until
// they finish. Cancelling ctx stops workers before their next game; the
// summary then covers only the finished games.
func (va *VersusArena) Run(ctx context.Context, listener ListenerLike) (VersusSummaryInfo, error) {
	if va.NGames <= 0 || va.NThreads <= 0 {
		return VersusSummaryInfo{}, fmt.Errorf("%w: %d games on %d threads", ErrInvalidSetup, va.NGames, va.NThreads)
	}

	if va.Player1 == nil || va.Player2 == nil {
		return VersusSummaryInfo{}, fmt.Errorf("%w: missing player factory", ErrInvalidSetup)
	}

	if listener == nil {
		listener = DefaultListener{}
	}

	va.reset()
	log := va.logger.With("component", "arena")
	nThreads := min(va.NThreads, va.NGames)

	type seats struct {
		p1, p2 *player.Player
		rand   *rand.Rand
		games  int
	}

	// Create every player up front, so a failing factory leaves no worker running
	workers := make([]seats, nThreads)
	nGames := va.NGames / nThreads
	rest := va.NGames % nThreads
	for id := range workers {
		w := &workers[id]
		w.games = nGames
		if rest > 0 {
			w.games++
			rest--
		}

		var err error
		w.rand = rand.New(rand.NewSource(player.SeedGeneratorFn() + int64(id)))
		if w.p1, err = va.Player1(Seat{ID: ttt.Cross, Worker: id, Rand: w.rand}); err != nil {
			return VersusSummaryInfo{}, fmt.Errorf("failed to create player 1: %w", err)
		}
		if w.p2, err = va.Player2(Seat{ID: ttt.Circle, Worker: id, Rand: w.rand}); err != nil {
			return VersusSummaryInfo{}, fmt.Errorf("failed to create player 2: %w", err)
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for id, w := range workers {
		group.Go(func() error {
			return va.worker(groupCtx, id, w.games, w.rand, listener, w.p1, w.p2)
		})
	}

	err := group.Wait()
	summary := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          nThreads,
		P1Name:           workers[0].p1.Name,
		P2Name:           workers[0].p2.Name,
	}

	log.Info("arena finished",
		"games", summary.TotalGames, "p1_wins", summary.P1Wins,
		"p2_wins", summary.P2Wins, "draws", summary.Draws)
	listener.Summary(summary)

	if err != nil {
		return summary, fmt.Errorf("arena stopped: %w", err)
	}
	return summary, nil
}

func (va *VersusArena) worker(ctx context.Context, id, nGames int, r *rand.Rand,
	listener ListenerLike, p1, p2 *player.Player,
) error {
	log := va.logger.With("component", "arena", "worker", id)
	local := VersusArenaStats{}

	// A cancelled worker still reports the games it finished
	finishWork := func(finished int) {
		listener.OnFinishedWork(VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: finished,
			P1Wins:        local.P1Wins(),
			P2Wins:        local.P2Wins(),
			Draws:         local.Draws(),
		})
	}

	for i := range nGames {
		select {
		case <-ctx.Done():
			finishWork(i)
			return ctx.Err()
		default:
			// continue
		}

		first, second := p1, p2
		if va.Alternate && r.Intn(2) == 1 {
			first, second = p2, p1
		}

		g, err := game.New(first, second, game.WithLogger(va.logger))
		if err != nil {
			return err
		}

		outcome, err := g.Play()
		if err != nil {
			log.Error("game failed", "game", g.ID.String(), "error", err)
			return fmt.Errorf("worker %d game %d: %w", id, i, err)
		}

		result := toArenaResult(outcome, p1)
		firstWon := outcome.Winner == first.ID
		va.add(result, firstWon)
		local.add(result, firstWon)

		listener.OnFinishedGame(VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i + 1,
			Moves:         g.Moves(),
			Outcome:       outcome,
			P1Wins:        local.P1Wins(),
			P2Wins:        local.P2Wins(),
			Draws:         local.Draws(),
		})
	}

	finishWork(nGames)
	return nil
}
