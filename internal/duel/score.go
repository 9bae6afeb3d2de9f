package duel

import (
	"sort"

	"github.com/afuste/dueltrack/internal/domain"
)

// Score computes head-to-head results between me and contact for each game
// independently. For every puzzle number both participants solved, the
// strictly lower time wins the duel; equal times tie. Duels are reported in
// ascending puzzle order. A nil games slice scores the default game set.
//
// The two name arguments are caller-assigned roles, not privileged
// identities: swapping them swaps the counters and flips each winner.
func Score(results domain.ResultSet, me, contact string, games []domain.Game) *domain.ScoreReport {
	if games == nil {
		games = domain.DefaultGames()
	}
	report := domain.NewScoreReport(games)

	for _, game := range games {
		mine := bestTimes(results, me, game)
		theirs := bestTimes(results, contact, game)

		shared := make([]int, 0, len(mine))
		for puzzle := range mine {
			if _, ok := theirs[puzzle]; ok {
				shared = append(shared, puzzle)
			}
		}
		sort.Ints(shared)

		gs := report.PerGame[game]
		for _, puzzle := range shared {
			myTime, contactTime := mine[puzzle], theirs[puzzle]
			var winner domain.Winner
			switch {
			case myTime < contactTime:
				winner = domain.WinnerMe
				gs.Me++
			case contactTime < myTime:
				winner = domain.WinnerContact
				gs.Contact++
			default:
				winner = domain.WinnerTie
				gs.Tie++
			}
			gs.Duels = append(gs.Duels, domain.Duel{
				PuzzleNum:   puzzle,
				MyTime:      myTime,
				ContactTime: contactTime,
				Winner:      winner,
			})
		}
	}
	return report
}

// bestTimes collapses one participant's results for a game to the minimum
// time per puzzle. The merger already dedups per (sender, game, puzzle), but
// collapsing again here keeps the scorer correct on un-merged input too.
func bestTimes(results domain.ResultSet, sender string, game domain.Game) map[int]int {
	best := make(map[int]int)
	for _, r := range results {
		if r.Sender != sender || r.Game != game {
			continue
		}
		if cur, ok := best[r.PuzzleNum]; !ok || r.TimeSec < cur {
			best[r.PuzzleNum] = r.TimeSec
		}
	}
	return best
}
