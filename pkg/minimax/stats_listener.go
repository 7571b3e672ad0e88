package minimax

import (
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Counters collected during a single BestMove call
type SearchStats struct {
	Move     ttt.Coord     `json:"move"`
	Nodes    uint64        `json:"nodes"`
	Cutoffs  uint64        `json:"cutoffs"`
	MaxPly   int           `json:"max_ply"`
	Elapsed  time.Duration `json:"elapsed"`
	Shortcut bool          `json:"shortcut"`
}

// Listener function callback, receives the statistics of the finished search
type ListenerFunc func(SearchStats)

type StatsListener struct {
	// called when the search returns a move
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach 'on search end' callback, called once per BestMove call
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeStop(stats SearchStats) {
	if listener.onStop != nil {
		listener.onStop(stats)
	}
}
