package minimax

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Maximum number of plies in a 3x3 game, a depth limit of MaxDepth never cuts the search
const MaxDepth int = ttt.Squares

type Limits struct {
	Depth int `json:"depth"`
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

func DefaultLimits() *Limits {
	return &Limits{
		Depth: MaxDepth,
	}
}

// Set the maximum depth of the search, counted in plies after the candidate move
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	return l
}

// Unlimited reports whether the depth limit can ever be reached
func (l *Limits) Unlimited() bool {
	return l.Depth >= MaxDepth
}

func (l *Limits) Validate() error {
	if l.Depth < 0 || l.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d not in [0, %d]", ErrInvalidSearchConfiguration, l.Depth, MaxDepth)
	}
	return nil
}
