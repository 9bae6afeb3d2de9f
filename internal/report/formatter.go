package report

import (
	"fmt"
	"strings"

	"github.com/afuste/dueltrack/internal/domain"
	"github.com/afuste/dueltrack/internal/msgcat"
	"github.com/afuste/dueltrack/internal/util"
)

// Formatter renders score reports and record dumps into terminal-friendly
// text blocks. All user-derived names pass through markdown sanitizing
// before rendering.
type Formatter struct {
	cat *msgcat.Catalog
}

func NewFormatter(cat *msgcat.Catalog) *Formatter {
	return &Formatter{cat: cat}
}

func (f *Formatter) icon(g domain.Game) string {
	if ic := f.cat.Text("games.icons." + string(g)); ic != "" {
		return ic
	}
	return f.cat.Text("games.fallback_icon")
}

// ScoreReport renders the full head-to-head report: per-game counters, duel
// lines, and the aggregate total.
func (f *Formatter) ScoreReport(rep *domain.ScoreReport, me, contact string) string {
	me = util.SanitizeMarkdown(strings.TrimSpace(me))
	contact = util.SanitizeMarkdown(strings.TrimSpace(contact))

	var sb strings.Builder
	sb.WriteString(f.cat.Text("report.title"))
	sb.WriteString("\n")
	if line, err := f.cat.Render("report.identity", map[string]any{"Name": me}); err == nil {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for _, game := range rep.Games {
		gs := rep.PerGame[game]
		sb.WriteString(fmt.Sprintf("\n%s %s — %d:%d", f.icon(game), game, gs.Me, gs.Contact))
		if gs.Tie > 0 {
			sb.WriteString(fmt.Sprintf(" (%d ties)", gs.Tie))
		}
		sb.WriteString("\n")

		if len(gs.Duels) == 0 {
			sb.WriteString("  ")
			sb.WriteString(f.cat.Text("report.no_duels"))
			sb.WriteString("\n")
			continue
		}
		for _, d := range gs.Duels {
			sb.WriteString(fmt.Sprintf("  #%-6d %6s  %6s  %s\n",
				d.PuzzleNum,
				domain.FormatDuration(d.MyTime),
				domain.FormatDuration(d.ContactTime),
				f.winnerMark(d.Winner, me, contact)))
		}
	}

	meTotal, contactTotal, ties := rep.Totals()
	if line, err := f.cat.Render("report.totals", map[string]any{
		"Me": meTotal, "Contact": contactTotal, "Ties": ties,
	}); err == nil {
		sb.WriteString("\n")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (f *Formatter) winnerMark(w domain.Winner, me, contact string) string {
	switch w {
	case domain.WinnerMe:
		return "✅ " + me
	case domain.WinnerContact:
		return "✅ " + contact
	default:
		return "🤝 tie"
	}
}

// Records renders a result set as a plain table, for the extract command.
func (f *Formatter) Records(rs domain.ResultSet) string {
	if len(rs) == 0 {
		return "no results\n"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-24s %-12s %8s %8s  %s\n", "SENDER", "GAME", "PUZZLE", "TIME", "DATE"))
	for _, r := range rs {
		date := "-"
		if r.Date != nil {
			date = r.Date.Format("2006-01-02")
		}
		sb.WriteString(fmt.Sprintf("%-24s %-12s %8d %8s  %s\n",
			util.SanitizeMarkdown(r.Sender), r.Game, r.PuzzleNum,
			domain.FormatDuration(r.TimeSec), date))
	}
	return sb.String()
}
