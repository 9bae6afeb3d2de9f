package extract

import (
	"strings"

	"github.com/afuste/dueltrack/internal/dates"
	"github.com/afuste/dueltrack/internal/domain"
	"github.com/afuste/dueltrack/internal/token"
)

// Row is one record of a tabular message export. Fields missing from the
// source table arrive as empty strings; a row is never rejected outright.
type Row struct {
	Sender         string
	Content        string
	Date           string
	ConversationID string
}

// Extractor turns raw message text into game results using a fixed grammar.
type Extractor struct {
	grammar *token.Grammar
}

func New(grammar *token.Grammar) *Extractor {
	return &Extractor{grammar: grammar}
}

// FromTable scans each row's content for the first result token. A row
// contributes at most one result even when its content holds several tokens;
// rows without a token contribute nothing. Dates that fail to parse are
// nil, not an error.
func (e *Extractor) FromTable(rows []Row) domain.ResultSet {
	var results domain.ResultSet
	for _, row := range rows {
		m, ok := e.grammar.FindFirst(row.Content)
		if !ok {
			continue
		}
		results = append(results, domain.GameResult{
			Sender:    strings.TrimSpace(row.Sender),
			Date:      dates.Parse(row.Date),
			Game:      m.Game,
			PuzzleNum: m.PuzzleNum,
			TimeSec:   m.TimeSec,
		})
	}
	return results
}
