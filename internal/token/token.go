package token

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/afuste/dueltrack/internal/domain"
)

// Match is one recognized game-result token inside a larger text.
type Match struct {
	Game      domain.Game
	PuzzleNum int
	TimeSec   int
	Start     int // byte offset of the match in the source text
}

// Grammar recognizes result tokens of the shape
//
//	Tango n.º 240 | 0:46      Queens nº 400 | 1:32
//	Mini Sudoku n.º 193 | 1:41    Zip #78 | 0:13
//
// for a fixed game list. Matching is case-insensitive; seconds are not
// range-checked against 60 (pass-through numeric parsing).
type Grammar struct {
	re        *regexp.Regexp
	canonical map[string]domain.Game
}

// New builds a grammar over the given game labels. Longer labels are tried
// first so a label never matches inside a longer label it is a prefix of.
func New(games []domain.Game) *Grammar {
	labels := make([]string, len(games))
	canonical := make(map[string]domain.Game, len(games))
	for i, g := range games {
		labels[i] = string(g)
		canonical[strings.ToLower(string(g))] = g
	}
	sort.SliceStable(labels, func(i, j int) bool { return len(labels[i]) > len(labels[j]) })
	for i, l := range labels {
		labels[i] = regexp.QuoteMeta(l)
	}

	pattern := `(?i)(` + strings.Join(labels, "|") + `)` +
		`\s+(?:n\.?[º°]|#)\s*(\d+)` +
		`\s*\|\s*(\d+):(\d+)`
	return &Grammar{re: regexp.MustCompile(pattern), canonical: canonical}
}

// Default covers the standard four-game set.
func Default() *Grammar {
	return New(domain.DefaultGames())
}

// FindAll returns every token in text, in left-to-right order.
func (g *Grammar) FindAll(text string) []Match {
	idxs := g.re.FindAllStringSubmatchIndex(text, -1)
	if idxs == nil {
		return nil
	}
	matches := make([]Match, 0, len(idxs))
	for _, loc := range idxs {
		matches = append(matches, g.match(text, loc))
	}
	return matches
}

// FindFirst returns the first token in text, if any.
func (g *Grammar) FindFirst(text string) (Match, bool) {
	loc := g.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Match{}, false
	}
	return g.match(text, loc), true
}

func (g *Grammar) match(text string, loc []int) Match {
	label := text[loc[2]:loc[3]]
	game, ok := g.canonical[strings.ToLower(label)]
	if !ok {
		// Unreachable given the fixed alternation; keep the raw label.
		game = domain.Game(label)
	}
	puzzle, _ := strconv.Atoi(text[loc[4]:loc[5]])
	minutes, _ := strconv.Atoi(text[loc[6]:loc[7]])
	seconds, _ := strconv.Atoi(text[loc[8]:loc[9]])
	return Match{
		Game:      game,
		PuzzleNum: puzzle,
		TimeSec:   minutes*60 + seconds,
		Start:     loc[0],
	}
}
