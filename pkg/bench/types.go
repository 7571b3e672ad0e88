package bench

import (
	"math/rand"
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/player"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// Seat given to a PlayerFactory: the participant id the player must carry,
// the worker it will play on and that worker's random generator
type Seat struct {
	ID     ttt.Player
	Worker int
	Rand   *rand.Rand
}

// Builds a fresh player for one worker, players are never shared between workers
type PlayerFactory func(seat Seat) (*player.Player, error)

type VersusArenaStats struct {
	p1Wins           atomic.Uint32
	p2Wins           atomic.Uint32
	draws            atomic.Uint32
	firstToMoveWins  atomic.Uint32
	secondToMoveWins atomic.Uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(vas.p1Wins.Load())
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(vas.p2Wins.Load())
}

func (vas *VersusArenaStats) Draws() int {
	return int(vas.draws.Load())
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(vas.firstToMoveWins.Load())
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(vas.secondToMoveWins.Load())
}

func (vas *VersusArenaStats) reset() {
	vas.p1Wins.Store(0)
	vas.p2Wins.Store(0)
	vas.draws.Store(0)
	vas.firstToMoveWins.Store(0)
	vas.secondToMoveWins.Store(0)
}

func (vas *VersusArenaStats) add(result VersusMatchResult, firstWon bool) {
	switch result {
	case VersusDraw:
		vas.draws.Add(1)
		return
	case VersusPl1Win:
		vas.p1Wins.Add(1)
	case VersusPl2Win:
		vas.p2Wins.Add(1)
	}

	if firstWon {
		vas.firstToMoveWins.Add(1)
	} else {
		vas.secondToMoveWins.Add(1)
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	Moves         []ttt.Coord
	Outcome       ttt.Outcome
	P1Wins        int
	P2Wins        int
	Draws         int
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

// maps a game outcome to which arena player won
func toArenaResult(outcome ttt.Outcome, p1 *player.Player) VersusMatchResult {
	if outcome.Status != ttt.StatusWin {
		return VersusDraw
	}

	if outcome.Winner == p1.ID {
		return VersusPl1Win
	}
	return VersusPl2Win
}
