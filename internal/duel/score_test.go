package duel

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afuste/dueltrack/internal/domain"
)

func TestScoreSingleDuel(t *testing.T) {
	results := domain.ResultSet{
		{Sender: "Ana", Game: domain.GameTango, PuzzleNum: 1, TimeSec: 40},
		{Sender: "Luis", Game: domain.GameTango, PuzzleNum: 1, TimeSec: 50},
	}
	rep := Score(results, "Ana", "Luis", nil)

	tango := rep.PerGame[domain.GameTango]
	require.Equal(t, 1, tango.Me)
	require.Equal(t, 0, tango.Contact)
	require.Equal(t, 0, tango.Tie)
	require.Len(t, tango.Duels, 1)
	require.Equal(t, domain.Duel{PuzzleNum: 1, MyTime: 40, ContactTime: 50, Winner: domain.WinnerMe}, tango.Duels[0])

	for _, g := range []domain.Game{domain.GameQueens, domain.GameZip, domain.GameMiniSudoku} {
		require.Empty(t, rep.PerGame[g].Duels)
	}
}

func TestScoreSymmetry(t *testing.T) {
	results := domain.ResultSet{
		{Sender: "Ana", Game: domain.GameTango, PuzzleNum: 1, TimeSec: 40},
		{Sender: "Luis", Game: domain.GameTango, PuzzleNum: 1, TimeSec: 50},
		{Sender: "Ana", Game: domain.GameZip, PuzzleNum: 7, TimeSec: 25},
		{Sender: "Luis", Game: domain.GameZip, PuzzleNum: 7, TimeSec: 25},
		{Sender: "Ana", Game: domain.GameQueens, PuzzleNum: 3, TimeSec: 99},
		{Sender: "Luis", Game: domain.GameQueens, PuzzleNum: 3, TimeSec: 80},
	}
	fwd := Score(results, "Ana", "Luis", nil)
	rev := Score(results, "Luis", "Ana", nil)

	for _, g := range fwd.Games {
		f, r := fwd.PerGame[g], rev.PerGame[g]
		require.Equal(t, f.Me, r.Contact, "game %s", g)
		require.Equal(t, f.Contact, r.Me, "game %s", g)
		require.Equal(t, f.Tie, r.Tie, "game %s", g)
		require.Len(t, r.Duels, len(f.Duels))
		for i, fd := range f.Duels {
			rd := r.Duels[i]
			require.Equal(t, fd.PuzzleNum, rd.PuzzleNum)
			require.Equal(t, fd.MyTime, rd.ContactTime)
			require.Equal(t, fd.ContactTime, rd.MyTime)
			switch fd.Winner {
			case domain.WinnerMe:
				require.Equal(t, domain.WinnerContact, rd.Winner)
			case domain.WinnerContact:
				require.Equal(t, domain.WinnerMe, rd.Winner)
			default:
				require.Equal(t, domain.WinnerTie, rd.Winner)
			}
		}
	}
}

func TestScoreNoSharedPuzzles(t *testing.T) {
	results := domain.ResultSet{
		{Sender: "Ana", Game: domain.GameZip, PuzzleNum: 1, TimeSec: 10},
		{Sender: "Luis", Game: domain.GameZip, PuzzleNum: 2, TimeSec: 12},
	}
	rep := Score(results, "Ana", "Luis", nil)
	zip := rep.PerGame[domain.GameZip]
	require.Zero(t, zip.Me)
	require.Zero(t, zip.Contact)
	require.Zero(t, zip.Tie)
	require.Empty(t, zip.Duels)
}

func TestScoreCollapsesDuplicateAttempts(t *testing.T) {
	// Duplicate attempts at the same puzzle collapse to the best time even
	// when the input was never merged.
	results := domain.ResultSet{
		{Sender: "Ana", Game: domain.GameQueens, PuzzleNum: 3, TimeSec: 50},
		{Sender: "Ana", Game: domain.GameQueens, PuzzleNum: 3, TimeSec: 45},
		{Sender: "Luis", Game: domain.GameQueens, PuzzleNum: 3, TimeSec: 47},
	}
	rep := Score(results, "Ana", "Luis", nil)
	queens := rep.PerGame[domain.GameQueens]
	require.Len(t, queens.Duels, 1)
	require.Equal(t, 45, queens.Duels[0].MyTime)
	require.Equal(t, domain.WinnerMe, queens.Duels[0].Winner)
}

func TestScoreDuelsAscendingByPuzzle(t *testing.T) {
	results := domain.ResultSet{
		{Sender: "Ana", Game: domain.GameZip, PuzzleNum: 9, TimeSec: 10},
		{Sender: "Luis", Game: domain.GameZip, PuzzleNum: 9, TimeSec: 11},
		{Sender: "Ana", Game: domain.GameZip, PuzzleNum: 2, TimeSec: 10},
		{Sender: "Luis", Game: domain.GameZip, PuzzleNum: 2, TimeSec: 9},
		{Sender: "Ana", Game: domain.GameZip, PuzzleNum: 5, TimeSec: 8},
		{Sender: "Luis", Game: domain.GameZip, PuzzleNum: 5, TimeSec: 8},
	}
	rep := Score(results, "Ana", "Luis", nil)
	duels := rep.PerGame[domain.GameZip].Duels
	require.Len(t, duels, 3)
	require.True(t, sort.SliceIsSorted(duels, func(i, j int) bool {
		return duels[i].PuzzleNum < duels[j].PuzzleNum
	}))

	me, contact, tie := rep.Totals()
	require.Equal(t, 1, me)
	require.Equal(t, 1, contact)
	require.Equal(t, 1, tie)
}

func TestScoreCustomGameList(t *testing.T) {
	games := []domain.Game{"Crossclimb"}
	results := domain.ResultSet{
		{Sender: "Ana", Game: "Crossclimb", PuzzleNum: 1, TimeSec: 30},
		{Sender: "Luis", Game: "Crossclimb", PuzzleNum: 1, TimeSec: 20},
	}
	rep := Score(results, "Ana", "Luis", games)
	require.Equal(t, games, rep.Games)
	require.Equal(t, 1, rep.PerGame["Crossclimb"].Contact)
}
