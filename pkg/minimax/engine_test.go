package minimax

import (
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, layout string) *ttt.Board {
	t.Helper()

	b, err := ttt.ParseBoard(layout)
	require.NoError(t, err)
	return b
}

func mustEngine(t *testing.T, depth int, opts ...Option) *Engine {
	t.Helper()

	e, err := NewEngine(DefaultLimits().SetDepth(depth), opts...)
	require.NoError(t, err)
	return e
}

func TestNewEngine(t *testing.T) {
	t.Run("Accepts every depth in range", func(t *testing.T) {
		for depth := 0; depth <= MaxDepth; depth++ {
			e, err := NewEngine(DefaultLimits().SetDepth(depth))
			require.NoError(t, err)
			assert.Equal(t, depth, e.Limits().Depth)
		}
	})

	t.Run("Rejects out of range depths", func(t *testing.T) {
		for _, depth := range []int{-1, MaxDepth + 1, 100} {
			_, err := NewEngine(DefaultLimits().SetDepth(depth))
			assert.ErrorIs(t, err, ErrInvalidSearchConfiguration, "depth %d", depth)
		}
	})

	t.Run("Nil limits search the full tree", func(t *testing.T) {
		e, err := NewEngine(nil)
		require.NoError(t, err)
		assert.True(t, e.limits.Unlimited())
		assert.Equal(t, "{\"depth\":9}\n", e.Limits().String())
	})
}

func TestEngine_BestMove(t *testing.T) {
	t.Run("Completes the top row", func(t *testing.T) {
		for depth := 1; depth <= MaxDepth; depth++ {
			// Given: cross owns two squares of the top row
			b := mustParse(t, "XX. ... ...")
			e := mustEngine(t, depth)

			// When: searching for cross
			mv, err := e.BestMove(b, ttt.Cross)

			// Then: the top-right corner wins the game
			require.NoError(t, err)
			require.Equal(t, ttt.Coord{Row: 0, Col: 2}, mv, "depth %d", depth)
			require.NoError(t, b.Place(mv, ttt.Cross))
			assert.Equal(t, ttt.Cross, b.Winner())
		}
	})

	t.Run("Takes a one-move win over a block", func(t *testing.T) {
		// Given: both sides threaten a row, circle to move
		b := mustParse(t, "XX. OO. X..")
		e := mustEngine(t, MaxDepth)

		// When: searching for circle
		mv, err := e.BestMove(b, ttt.Circle)

		// Then: circle wins instead of blocking
		require.NoError(t, err)
		assert.Equal(t, ttt.Coord{Row: 1, Col: 2}, mv)
	})

	t.Run("Blocks the only threat", func(t *testing.T) {
		// Given: cross threatens the left column
		b := mustParse(t, "XO. X.. ...")
		e := mustEngine(t, MaxDepth)

		// When: searching for circle
		mv, err := e.BestMove(b, ttt.Circle)

		// Then: circle blocks at the bottom-left corner
		require.NoError(t, err)
		assert.Equal(t, ttt.Coord{Row: 2, Col: 0}, mv)
	})

	t.Run("Returns a legal move when every move loses", func(t *testing.T) {
		// Given: cross has two open threats, circle cannot win in one
		b := mustParse(t, "XX. X.O .O.")
		e := mustEngine(t, MaxDepth)

		// When: searching for circle
		result, err := e.search(b, ttt.Circle)

		// Then: a legal square is still returned, with a losing score
		require.NoError(t, err)
		assert.True(t, b.InBounds(result.move))
		assert.False(t, b.Occupied(result.move))
		assert.Negative(t, result.score)
		// All candidates lose equally fast, the first one is kept
		assert.Equal(t, ttt.Coord{Row: 0, Col: 2}, result.move)
	})

	t.Run("Leaves the board as it found it", func(t *testing.T) {
		// Given: a position in the middle of a game
		b := mustParse(t, "X.. .O. ..X")
		before := *b
		e := mustEngine(t, MaxDepth)

		// When: searching
		_, err := e.BestMove(b, ttt.Circle)

		// Then: the board is unchanged
		require.NoError(t, err)
		assert.Equal(t, before, *b)
	})

	t.Run("Fails on terminal boards", func(t *testing.T) {
		e := mustEngine(t, MaxDepth)

		_, err := e.BestMove(mustParse(t, "XXX OO. ..."), ttt.Circle)
		assert.ErrorIs(t, err, ErrNoMoves)

		_, err = e.BestMove(mustParse(t, "XOX XOO OXX"), ttt.Circle)
		assert.ErrorIs(t, err, ErrNoMoves)
	})

	t.Run("Rejects unknown players", func(t *testing.T) {
		e := mustEngine(t, MaxDepth)

		_, err := e.BestMove(ttt.NewBoard(), ttt.None)
		assert.ErrorIs(t, err, ErrInvalidSearchConfiguration)
	})
}

func TestEngine_Opening(t *testing.T) {
	t.Run("Shortcut returns the documented square", func(t *testing.T) {
		for depth := 0; depth <= MaxDepth; depth++ {
			e := mustEngine(t, depth)

			for range 3 {
				mv, err := e.BestMove(ttt.NewBoard(), ttt.Cross)
				require.NoError(t, err)
				assert.Equal(t, OpeningMove, mv)
				assert.True(t, e.Stats().Shortcut)
				assert.Zero(t, e.Stats().Nodes)
			}
		}
	})

	t.Run("Full search agrees with the shortcut", func(t *testing.T) {
		// Given: the shortcut is disabled
		e := mustEngine(t, MaxDepth, WithOpeningShortcut(false))

		// When: searching the empty board
		result, err := e.search(ttt.NewBoard(), ttt.Cross)

		// Then: every opening draws, so the first square is chosen
		require.NoError(t, err)
		assert.Equal(t, OpeningMove, result.move)
		assert.Equal(t, 0, result.score)
		assert.False(t, e.Stats().Shortcut)
		assert.Positive(t, e.Stats().Nodes)
	})
}

func TestEngine_DepthLimit(t *testing.T) {
	// Given: circle must block (2,0), but a zero depth engine cannot see the threat
	b := mustParse(t, "XO. X.. ...")
	shallow := mustEngine(t, 0)
	deep := mustEngine(t, 1)

	// When: both engines search for circle
	shallowMove, err := shallow.BestMove(b, ttt.Circle)
	require.NoError(t, err)
	deepMove, err := deep.BestMove(b, ttt.Circle)
	require.NoError(t, err)

	// Then: the shallow one plays the first empty square, the deeper one blocks
	assert.Equal(t, ttt.Coord{Row: 0, Col: 2}, shallowMove)
	assert.Equal(t, ttt.Coord{Row: 2, Col: 0}, deepMove)
	assert.LessOrEqual(t, shallow.Stats().MaxPly, 1)
}

func TestEngine_StatsListener(t *testing.T) {
	var calls []SearchStats
	listener := NewStatsListener()
	listener.OnStop(func(stats SearchStats) {
		calls = append(calls, stats)
	})

	e := mustEngine(t, MaxDepth, WithListener(listener))
	mv, err := e.BestMove(mustParse(t, "X.. .O. ..."), ttt.Cross)
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, mv, calls[0].Move)
	assert.Equal(t, e.Stats(), calls[0])
	assert.Positive(t, calls[0].Nodes)
	assert.Positive(t, calls[0].Cutoffs)
}

// Collects every position reachable under alternating play, Cross first
func reachable(b *ttt.Board, turn ttt.Player, seen map[ttt.Board]ttt.Player) {
	if _, ok := seen[*b]; ok {
		return
	}
	seen[*b] = turn

	if b.Outcome().Terminal() {
		return
	}

	moves := b.EmptySquares()
	for _, mv := range moves.Slice() {
		_ = b.Place(mv, turn)
		reachable(b, turn.Opponent(), seen)
		_ = b.Clear(mv)
	}
}

func TestEngine_PruningMatchesExhaustive(t *testing.T) {
	positions := make(map[ttt.Board]ttt.Player)
	reachable(ttt.NewBoard(), ttt.Cross, positions)
	require.Len(t, positions, 5478)

	check := func(t *testing.T, b ttt.Board, turn ttt.Player, depth int) {
		pruned := mustEngine(t, depth, WithOpeningShortcut(false))
		exhaustive := mustEngine(t, depth, WithOpeningShortcut(false), WithPruning(false))

		want, err := exhaustive.search(&b, turn)
		require.NoError(t, err)
		got, err := pruned.search(&b, turn)
		require.NoError(t, err)

		require.Equal(t, want, got, "board %v depth %d", &b, depth)
		require.LessOrEqual(t, pruned.Stats().Nodes, exhaustive.Stats().Nodes)
		require.Zero(t, exhaustive.Stats().Cutoffs)
	}

	// Every non-terminal position against every depth limit
	checked := 0
	for b, turn := range positions {
		if b.Outcome().Terminal() {
			continue
		}
		for depth := 0; depth <= MaxDepth; depth++ {
			check(t, b, turn, depth)
			checked++
		}
	}
	assert.Equal(t, 4520*(MaxDepth+1), checked)
}
