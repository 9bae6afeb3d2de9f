package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/afuste/dueltrack/internal/domain"
)

var (
	meBarColor      = drawing.ColorFromHex("2d6cdf")
	contactBarColor = drawing.ColorFromHex("e8833a")
)

// RenderWinsChart draws a PNG bar chart of duel wins per game, two bars per
// game (me vs contact). Errors when the report holds no duels at all, since
// an all-zero chart has no drawable range.
func RenderWinsChart(rep *domain.ScoreReport, me, contact string) ([]byte, error) {
	meTotal, contactTotal, ties := rep.Totals()
	if meTotal+contactTotal+ties == 0 {
		return nil, fmt.Errorf("no duels to chart")
	}

	var bars []chart.Value
	for _, game := range rep.Games {
		gs := rep.PerGame[game]
		bars = append(bars,
			chart.Value{
				Label: fmt.Sprintf("%s\n%s", game, me),
				Value: float64(gs.Me),
				Style: chart.Style{FillColor: meBarColor, StrokeColor: meBarColor},
			},
			chart.Value{
				Label: fmt.Sprintf("%s\n%s", game, contact),
				Value: float64(gs.Contact),
				Style: chart.Style{FillColor: contactBarColor, StrokeColor: contactBarColor},
			},
		)
	}

	graph := chart.BarChart{
		Title:    "Duel wins by game",
		Width:    900,
		Height:   450,
		BarWidth: 48,
		Bars:     bars,
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
