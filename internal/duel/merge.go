package duel

import (
	"sort"

	"github.com/afuste/dueltrack/internal/domain"
)

type resultKey struct {
	sender string
	game   domain.Game
	puzzle int
}

// Merge unions the tabular (primary) and transcript (secondary) result sets,
// keeping the best time per (sender, game, puzzle).
//
// An empty secondary returns primary untouched, in its original order. The
// general path stable-sorts the concatenation ascending by time and keeps
// the first record per key, so the lowest time always survives and ties fall
// to whichever record appeared first in the concatenation. Merged output is
// therefore ordered by time, not chronologically — a documented property.
func Merge(primary, secondary domain.ResultSet) domain.ResultSet {
	if len(secondary) == 0 {
		return primary
	}
	combined := make(domain.ResultSet, 0, len(primary)+len(secondary))
	combined = append(combined, primary...)
	combined = append(combined, secondary...)
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].TimeSec < combined[j].TimeSec
	})

	seen := make(map[resultKey]struct{}, len(combined))
	merged := make(domain.ResultSet, 0, len(combined))
	for _, r := range combined {
		k := resultKey{sender: r.Sender, game: r.Game, puzzle: r.PuzzleNum}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, r)
	}
	return merged
}
