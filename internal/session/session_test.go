package session

import (
	"testing"

	"github.com/afuste/dueltrack/internal/domain"
)

func TestAccumulator(t *testing.T) {
	acc := NewAccumulator()
	if acc.Len() != 0 || len(acc.Combined()) != 0 {
		t.Fatal("fresh accumulator not empty")
	}

	id1 := acc.Add(domain.ResultSet{{Sender: "Ana", Game: domain.GameZip, PuzzleNum: 1, TimeSec: 10}})
	id2 := acc.Add(domain.ResultSet{
		{Sender: "Luis", Game: domain.GameZip, PuzzleNum: 1, TimeSec: 12},
		{Sender: "Ana", Game: domain.GameTango, PuzzleNum: 2, TimeSec: 40},
	})
	if id1 == id2 {
		t.Fatal("fragment IDs must be distinct")
	}
	if acc.Len() != 2 {
		t.Fatalf("Len = %d, want 2", acc.Len())
	}

	combined := acc.Combined()
	if len(combined) != 3 {
		t.Fatalf("combined %d records, want 3", len(combined))
	}
	// Submission order preserved.
	if combined[0].Sender != "Ana" || combined[1].Sender != "Luis" {
		t.Fatalf("order broken: %+v", combined)
	}

	acc.Reset()
	if acc.Len() != 0 || len(acc.Combined()) != 0 {
		t.Fatal("reset did not clear fragments")
	}
}

func TestAccumulatorKeepsEmptyBatches(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(nil)
	if acc.Len() != 1 {
		t.Fatal("empty submissions must still be recorded")
	}
	if len(acc.Combined()) != 0 {
		t.Fatal("empty batch leaked records")
	}
}
