package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/afuste/dueltrack/internal/domain"
)

// speakerMarker is an occurrence of a participant's message header at a byte
// offset in the transcript. Ephemeral, only used during one parse.
type speakerMarker struct {
	pos  int
	name string
}

// headerRe matches the "Full Name   HH:MM" message-header shape: name, a run
// of 2+ spaces, and a time at the end of the line. The single-space
// transition line "Name sent ... at HH:MM" is deliberately not matched.
var headerRe = regexp.MustCompile(`(?m)^(.+?)\s{2,}\d{1,2}:\d{2}\s*$`)

// FromTranscript parses a whole pasted conversation. Every line starting
// with one of the two names (case-insensitive, followed by whitespace)
// becomes a speaker marker; each result token is attributed to the nearest
// preceding marker. Tokens before the first marker are dropped.
//
// The returned flag reports whether any marker was found at all, so a caller
// can tell misspelled names apart from "right names, no results yet".
func (e *Extractor) FromTranscript(text, nameA, nameB string) (domain.ResultSet, bool) {
	var markers []speakerMarker
	for _, name := range []string{nameA, nameB} {
		if strings.TrimSpace(name) == "" {
			continue
		}
		re := speakerRe(name)
		for _, loc := range re.FindAllStringIndex(text, -1) {
			markers = append(markers, speakerMarker{pos: loc[0], name: name})
		}
	}
	sort.Slice(markers, func(i, j int) bool {
		if markers[i].pos != markers[j].pos {
			return markers[i].pos < markers[j].pos
		}
		return markers[i].name < markers[j].name
	})
	namesDetected := len(markers) > 0

	var results domain.ResultSet
	for _, m := range e.grammar.FindAll(text) {
		// Last marker strictly before the token.
		i := sort.Search(len(markers), func(i int) bool { return markers[i].pos >= m.Start })
		if i == 0 {
			continue
		}
		results = append(results, domain.GameResult{
			Sender:    markers[i-1].name,
			Game:      m.Game,
			PuzzleNum: m.PuzzleNum,
			TimeSec:   m.TimeSec,
		})
	}
	return results, namesDetected
}

func speakerRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^` + regexp.QuoteMeta(name) + `\s`)
}

// DetectSpeakers lists the distinct speaker names of a transcript in order
// of first appearance, using the message-header line shape.
func DetectSpeakers(text string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range headerRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
