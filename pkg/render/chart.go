package render

import (
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
)

const barWidth = 40

// Chart draws one bar per depth with the share of games won by player 1
func (r *Renderer) Chart(points []bench.SweepPoint) string {
	builder := strings.Builder{}
	builder.WriteString("depth | player 1 wins\n")

	for _, point := range points {
		total := max(point.Summary.TotalGames, 1)
		wins := point.Summary.P1Wins
		width := wins * barWidth / total

		bar := r.out.String(strings.Repeat("#", width)).Foreground(r.out.Color("2")).String()
		fmt.Fprintf(&builder, "%5d | %s %d/%d\n", point.Depth, bar, wins, point.Summary.TotalGames)
	}

	return builder.String()
}
