package render

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-minimax/pkg/game"
	"github.com/IlikeChooros/go-minimax/pkg/player"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

const rowSeparator = "-------------"

// Renderer owns the terminal styling state. Open it before the first game and
// Close it when done, nothing outside this package touches the terminal.
type Renderer struct {
	out     *termenv.Output
	restore func() error
	clear   bool
}

// Open prepares w for colored output. Pass termenv.WithProfile(termenv.Ascii)
// to get plain text.
func Open(w io.Writer, opts ...termenv.OutputOption) (*Renderer, error) {
	out := termenv.NewOutput(w, opts...)

	restore, err := termenv.EnableVirtualTerminalProcessing(out)
	if err != nil {
		return nil, fmt.Errorf("failed to enable virtual terminal: %w", err)
	}

	return &Renderer{out: out, restore: restore}, nil
}

// Clear the screen before every redraw
func (r *Renderer) SetClearScreen(clear bool) *Renderer {
	r.clear = clear
	return r
}

func (r *Renderer) Close() error {
	r.out.Reset()
	if r.restore != nil {
		return r.restore()
	}
	return nil
}

func (r *Renderer) Output() *termenv.Output {
	return r.out
}

func (r *Renderer) colored(text, color string) string {
	style := r.out.String(text)
	if color != "" {
		style = style.Foreground(r.out.Color(color))
	}
	return style.String()
}

// Board draws the grid, each square shows its owner's colored symbol
func (r *Renderer) Board(b *ttt.Board, players [2]*player.Player) string {
	builder := strings.Builder{}
	builder.WriteString(rowSeparator + "\n")

	for row := range ttt.Size {
		builder.WriteString("| ")
		for col := range ttt.Size {
			cell := " "
			if owner := b.At(ttt.Coord{Row: row, Col: col}); owner != ttt.None {
				cell = r.symbol(owner, players)
			}
			builder.WriteString(cell + " | ")
		}
		builder.WriteString("\n" + rowSeparator + "\n")
	}

	return builder.String()
}

func (r *Renderer) symbol(owner ttt.Player, players [2]*player.Player) string {
	for _, p := range players {
		if p != nil && p.ID == owner {
			return r.colored(p.Symbol, p.Color)
		}
	}

	if owner == ttt.Cross {
		return "X"
	}
	return "O"
}

// Player name prefixed with '>' when it's that player's turn
func (r *Renderer) PlayerLine(p *player.Player, active bool) string {
	marker := " "
	if active {
		marker = ">"
	}
	return marker + r.colored(p.Name, p.Color)
}

func (r *Renderer) Result(outcome ttt.Outcome, players [2]*player.Player) string {
	if outcome.Status != ttt.StatusWin {
		return "Nobody wins..."
	}

	for _, p := range players {
		if p.ID == outcome.Winner {
			return r.colored(p.Name, p.Color) + " wins !"
		}
	}
	return outcome.String()
}

func (r *Renderer) draw(g *game.Game) {
	if r.clear {
		r.out.ClearScreen()
	}

	players := g.Players()
	fmt.Fprint(r.out, r.Board(g.Board(), players))
	for _, p := range players {
		fmt.Fprintln(r.out, r.PlayerLine(p, g.IsActive(p)))
	}
}

// Listener redrawing the game on every turn, attach with game.WithListener
func (r *Renderer) Listener() game.Listener {
	return &gameView{r: r}
}

type gameView struct {
	game.NopListener
	r *Renderer
}

func (v *gameView) OnTurn(g *game.Game) {
	v.r.draw(g)
}

func (v *gameView) OnFinished(g *game.Game) {
	v.r.draw(g)
	fmt.Fprintln(v.r.out, v.r.Result(g.Outcome(), g.Players()))
}

// Style of a single player
type Style struct {
	Color  string
	Symbol string
}

var (
	coolPalette = []string{"8", "4", "6", "12", "14", "2", "10"}
	warmPalette = []string{"13", "9", "11", "15", "5", "1", "7", "3"}
)

// PickStyles assigns a cool and a warm color, and shuffles X and O between the
// two players
func PickStyles(r *rand.Rand) (Style, Style) {
	first := Style{Color: coolPalette[r.Intn(len(coolPalette))], Symbol: "X"}
	second := Style{Color: warmPalette[r.Intn(len(warmPalette))], Symbol: "O"}

	if r.Intn(2) == 1 {
		first.Symbol, second.Symbol = second.Symbol, first.Symbol
	}
	return first, second
}

// Apply the style to p
func (s Style) Apply(p *player.Player) *player.Player {
	p.Symbol = s.Symbol
	p.Color = s.Color
	return p
}
