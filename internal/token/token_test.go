package token

import (
	"strings"
	"testing"

	"github.com/afuste/dueltrack/internal/domain"
)

func TestFindFirstFormats(t *testing.T) {
	g := Default()
	tests := []struct {
		text    string
		game    domain.Game
		puzzle  int
		timeSec int
	}{
		{"Tango n.º 240 | 0:46", domain.GameTango, 240, 46},
		{"Queens n.º 400 | 1:32", domain.GameQueens, 400, 92},
		{"Mini Sudoku n.º 193 | 1:41", domain.GameMiniSudoku, 193, 101},
		{"Zip #78 | 0:13", domain.GameZip, 78, 13},
		{"zip # 9|0:30", domain.GameZip, 9, 30},
		{"TANGO nº 5 | 1:02", domain.GameTango, 5, 62},
		{"mini sudoku n° 7 | 10:05", domain.GameMiniSudoku, 7, 605},
	}
	for _, tt := range tests {
		m, ok := g.FindFirst(tt.text)
		if !ok {
			t.Fatalf("no match in %q", tt.text)
		}
		if m.Game != tt.game || m.PuzzleNum != tt.puzzle || m.TimeSec != tt.timeSec {
			t.Fatalf("%q: got %+v", tt.text, m)
		}
	}
}

func TestNoMatch(t *testing.T) {
	g := Default()
	for _, text := range []string{
		"",
		"Tango 240 | 0:46",        // no puzzle marker
		"Pinpoint #10 | 0:30",     // unknown game
		"Zip #78 0:13",            // missing pipe
		"played tango yesterday",  // no token at all
		"Queens n.º twelve | 1:00", // non-numeric puzzle
	} {
		if _, ok := g.FindFirst(text); ok {
			t.Fatalf("unexpected match in %q", text)
		}
	}
}

func TestStartOffset(t *testing.T) {
	g := Default()
	text := "hello there Tango n.º 1 | 0:10 bye"
	m, ok := g.FindFirst(text)
	if !ok {
		t.Fatal("no match")
	}
	if want := strings.Index(text, "Tango"); m.Start != want {
		t.Fatalf("start = %d, want %d", m.Start, want)
	}
}

func TestFindAllLeftToRight(t *testing.T) {
	g := Default()
	text := "Zip #1 | 0:05 and later Queens n.º 2 | 1:00 and Zip #3 | 0:07"
	ms := g.FindAll(text)
	if len(ms) != 3 {
		t.Fatalf("got %d matches, want 3", len(ms))
	}
	if ms[0].Game != domain.GameZip || ms[1].Game != domain.GameQueens || ms[2].Game != domain.GameZip {
		t.Fatalf("wrong order: %+v", ms)
	}
	if !(ms[0].Start < ms[1].Start && ms[1].Start < ms[2].Start) {
		t.Fatalf("offsets not ascending: %+v", ms)
	}
}

func TestLongerLabelWinsOverPrefix(t *testing.T) {
	g := New([]domain.Game{"Zip", "Zip Pro"})
	m, ok := g.FindFirst("Zip Pro #3 | 0:10")
	if !ok {
		t.Fatal("no match")
	}
	if m.Game != "Zip Pro" {
		t.Fatalf("game = %q, want %q (shorter label matched inside longer one)", m.Game, "Zip Pro")
	}
}

func TestSecondsNotRangeChecked(t *testing.T) {
	g := Default()
	m, ok := g.FindFirst("Tango n.º 1 | 1:75")
	if !ok {
		t.Fatal("no match")
	}
	if m.TimeSec != 135 {
		t.Fatalf("timeSec = %d, want 135", m.TimeSec)
	}
}
