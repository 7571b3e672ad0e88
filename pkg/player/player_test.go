package player

import (
	"bufio"
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetSeedGeneratorFn(func() int64 {
		return 42
	})
	fmt.Printf("Using seed %d\n", SeedGeneratorFn())

	os.Exit(m.Run())
}

func mustParse(t *testing.T, layout string) *ttt.Board {
	t.Helper()

	b, err := ttt.ParseBoard(layout)
	require.NoError(t, err)
	return b
}

func TestRandom_Decide(t *testing.T) {
	t.Run("Only picks empty squares", func(t *testing.T) {
		// Given: a board with a single pattern of free squares
		b := mustParse(t, "XO. OX. .XO")
		strategy := NewRandom(nil)

		for range 100 {
			// When: the random strategy decides
			mv, err := strategy.Decide(b, ttt.Cross)

			// Then: the square is always free
			require.NoError(t, err)
			require.False(t, b.Occupied(mv), "move %v", mv)
			require.True(t, b.InBounds(mv))
		}
	})

	t.Run("Covers every empty square", func(t *testing.T) {
		b := mustParse(t, "X.. ... ..O")
		strategy := NewRandom(rand.New(rand.NewSource(7)))

		seen := make(map[ttt.Coord]int)
		for range 2000 {
			mv, err := strategy.Decide(b, ttt.Circle)
			require.NoError(t, err)
			seen[mv]++
		}

		assert.Len(t, seen, 7)
		for mv, n := range seen {
			// uniform would be ~285 per square
			assert.Greater(t, n, 150, "move %v", mv)
		}
	})

	t.Run("Fails on a full board", func(t *testing.T) {
		_, err := NewRandom(nil).Decide(mustParse(t, "XOX XOO OXX"), ttt.Cross)
		assert.ErrorIs(t, err, ErrNoMoves)
	})
}

func TestNewSearch(t *testing.T) {
	t.Run("Valid depths", func(t *testing.T) {
		for depth := 1; depth <= minimax.MaxDepth; depth++ {
			s, err := NewSearch(depth)
			require.NoError(t, err)
			assert.Equal(t, depth, s.Depth())
		}
	})

	t.Run("Invalid depths are rejected eagerly", func(t *testing.T) {
		for _, depth := range []int{-3, 0, minimax.MaxDepth + 1} {
			s, err := NewSearch(depth)
			assert.ErrorIs(t, err, minimax.ErrInvalidSearchConfiguration, "depth %d", depth)
			assert.Nil(t, s)
		}
	})
}

func TestSearch_Decide(t *testing.T) {
	// Given: circle can win on the middle row
	b := mustParse(t, "XX. OO. X..")
	before := *b
	s, err := NewSearch(minimax.MaxDepth)
	require.NoError(t, err)

	// When: the search strategy decides for circle
	mv, err := s.Decide(b, ttt.Circle)

	// Then: it wins and the live board is untouched
	require.NoError(t, err)
	assert.Equal(t, ttt.Coord{Row: 1, Col: 2}, mv)
	assert.Equal(t, before, *b)
	assert.Positive(t, s.Engine().Stats().Nodes)

	_, err = s.Decide(mustParse(t, "XXX OO. ..."), ttt.Circle)
	assert.ErrorIs(t, err, minimax.ErrNoMoves)
}

func TestInteractive_Decide(t *testing.T) {
	t.Run("Re-prompts until a legal square is given", func(t *testing.T) {
		// Given: input with garbage, out of range, occupied and finally a free square
		in := strings.NewReader("hello\n1\n3 0\n0 0\n0 x\n  2   1 \n")
		out := &bytes.Buffer{}
		b := mustParse(t, "X.. ... ...")
		strategy := NewInteractive(in, out).SetPrompt("> ")

		// When: deciding
		mv, err := strategy.Decide(b, ttt.Circle)

		// Then: the first legal pair is returned and every rejection was reported
		require.NoError(t, err)
		assert.Equal(t, ttt.Coord{Row: 2, Col: 1}, mv)
		assert.Equal(t, 5, strings.Count(out.String(), "Invalid coordinate"))
		assert.Equal(t, 6, strings.Count(out.String(), "> "))
	})

	t.Run("Closed input", func(t *testing.T) {
		strategy := NewInteractive(strings.NewReader("9 9\n"), &bytes.Buffer{})

		_, err := strategy.Decide(ttt.NewBoard(), ttt.Cross)

		assert.ErrorIs(t, err, ErrInputClosed)
	})
}

func TestPlayer_Decide(t *testing.T) {
	p := New(ttt.Circle, "bot", "O", NewRandom(nil)).WithColor("red")

	mv, err := p.Decide(mustParse(t, "XXX XXX XX."))
	require.NoError(t, err)
	assert.Equal(t, ttt.Coord{Row: 2, Col: 2}, mv)
	assert.Equal(t, "bot (O)", p.String())
	assert.Equal(t, "red", p.Color)

	_, err = p.Decide(mustParse(t, "XXX XXX XXX"))
	require.ErrorIs(t, err, ErrNoMoves)
	assert.Contains(t, err.Error(), "player bot")
}

func TestInteractive_SharedScanner(t *testing.T) {
	// Given: two interactive players reading the same input
	scanner := bufio.NewScanner(strings.NewReader("0 0\n1 1\n"))
	first := NewInteractiveScanner(scanner, &bytes.Buffer{})
	second := NewInteractiveScanner(scanner, &bytes.Buffer{})
	b := ttt.NewBoard()

	// When: each decides once
	mv1, err := first.Decide(b, ttt.Cross)
	require.NoError(t, err)
	mv2, err := second.Decide(b, ttt.Circle)
	require.NoError(t, err)

	// Then: they consume consecutive lines
	assert.Equal(t, ttt.Coord{Row: 0, Col: 0}, mv1)
	assert.Equal(t, ttt.Coord{Row: 1, Col: 1}, mv2)
}
