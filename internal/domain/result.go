package domain

import (
	"fmt"
	"time"
)

// Game is the canonical label of a LinkedIn mini-game, e.g. "Tango".
type Game string

const (
	GameTango      Game = "Tango"
	GameQueens     Game = "Queens"
	GameZip        Game = "Zip"
	GameMiniSudoku Game = "Mini Sudoku"
)

// DefaultGames returns the recognized game set in display order. Callers may
// substitute their own list; every component that groups by game takes the
// list as input rather than assuming this one.
func DefaultGames() []Game {
	return []Game{GameTango, GameQueens, GameZip, GameMiniSudoku}
}

// GameResult is one extracted puzzle result. Immutable once created.
// Date is nil when the source carried no parseable date (transcripts never
// carry one).
type GameResult struct {
	Sender    string
	Date      *time.Time
	Game      Game
	PuzzleNum int
	TimeSec   int
}

// ResultSet is an ordered collection of results. Uniqueness per
// (sender, game, puzzle) only holds after merging.
type ResultSet []GameResult

type Winner string

const (
	WinnerMe      Winner = "me"
	WinnerContact Winner = "contact"
	WinnerTie     Winner = "tie"
)

// Duel is one shared-puzzle comparison between the two participants.
type Duel struct {
	PuzzleNum   int
	MyTime      int
	ContactTime int
	Winner      Winner
}

// GameScore holds the head-to-head counters and duel list for a single game.
type GameScore struct {
	Me      int
	Contact int
	Tie     int
	Duels   []Duel
}

// ScoreReport groups per-game scores, keyed and ordered by the game list the
// scorer was given.
type ScoreReport struct {
	Games   []Game
	PerGame map[Game]*GameScore
}

func NewScoreReport(games []Game) *ScoreReport {
	r := &ScoreReport{Games: games, PerGame: make(map[Game]*GameScore, len(games))}
	for _, g := range games {
		r.PerGame[g] = &GameScore{}
	}
	return r
}

// Totals sums the per-game counters across all games.
func (r *ScoreReport) Totals() (me, contact, tie int) {
	for _, g := range r.Games {
		gs := r.PerGame[g]
		me += gs.Me
		contact += gs.Contact
		tie += gs.Tie
	}
	return me, contact, tie
}

// FormatDuration renders total seconds as m:ss, e.g. 125 -> "2:05".
// Tokens parsed with seconds >= 60 round-trip to a different but equivalent
// display ("1:75" parses to 135s and prints as "2:15"); accepted quirk.
func FormatDuration(totalSeconds int) string {
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
