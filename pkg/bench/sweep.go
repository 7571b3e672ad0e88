package bench

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/IlikeChooros/go-minimax/pkg/player"
)

// Result of the random bot against a search bot limited to Depth
type SweepPoint struct {
	Depth   int               `json:"depth"`
	Summary VersusSummaryInfo `json:"summary"`
}

func RandomFactory(name string) PlayerFactory {
	return func(seat Seat) (*player.Player, error) {
		return player.New(seat.ID, name, "", player.NewRandom(seat.Rand)), nil
	}
}

func SearchFactory(name string, depth int) PlayerFactory {
	return func(seat Seat) (*player.Player, error) {
		strategy, err := player.NewSearch(depth)
		if err != nil {
			return nil, err
		}
		return player.New(seat.ID, name, "", strategy), nil
	}
}

// DepthSweep plays nGames of a random bot (player 1, always first) against a
// search bot for every depth and reports the tallies per depth.
func DepthSweep(ctx context.Context, depths []int, nGames, nThreads int, logger *slog.Logger) ([]SweepPoint, error) {
	points := make([]SweepPoint, 0, len(depths))

	for _, depth := range depths {
		arena := NewVersusArena(RandomFactory("random"), SearchFactory(fmt.Sprintf("search-%d", depth), depth)).
			Setup(nGames, nThreads, false).
			WithLogger(logger)

		summary, err := arena.Run(ctx, nil)
		if err != nil {
			return points, fmt.Errorf("depth %d: %w", depth, err)
		}

		points = append(points, SweepPoint{Depth: depth, Summary: summary})
	}

	return points, nil
}
