package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/afuste/dueltrack/internal/domain"
)

// Fragment is one batch of manually-submitted results (a single transcript
// parse), tagged so a caller can report or drop individual submissions.
type Fragment struct {
	ID      uuid.UUID
	Records domain.ResultSet
}

// Accumulator collects transcript submissions across repeated parses. It is
// caller-owned state: the extraction, merge and score operations themselves
// stay stateless, and whatever accumulates between calls lives here.
type Accumulator struct {
	mu        sync.Mutex
	fragments []Fragment
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add appends a batch of records and returns its fragment ID. Empty batches
// are recorded too, so "parsed but found nothing" submissions stay visible.
func (a *Accumulator) Add(records domain.ResultSet) uuid.UUID {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := uuid.New()
	a.fragments = append(a.fragments, Fragment{ID: id, Records: records})
	return id
}

// Combined concatenates all fragments in submission order.
func (a *Accumulator) Combined() domain.ResultSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out domain.ResultSet
	for _, f := range a.fragments {
		out = append(out, f.Records...)
	}
	return out
}

// Len reports the number of submitted fragments.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.fragments)
}

// Reset drops all accumulated fragments, e.g. when the user identity changes.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fragments = nil
}
