package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/skyview/internal/apod"
)

// Range is an inclusive start/end date pair.
type Range struct {
	Start string
	End   string
}

// String renders the range for headers and logs.
func (r Range) String() string {
	if r.Start == "" && r.End == "" {
		return ""
	}
	if r.Start == r.End {
		return r.Start
	}
	return r.Start + " → " + r.End
}

// Snapshot is the latest authoritative fetch outcome.
type Snapshot struct {
	Records             []apod.Record
	Range               Range
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Store sequences fetches. Only the most recently begun request may change
// the snapshot; responses to superseded requests are dropped.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	latest   uint64
	pending  Range
	inFlight bool
}

// Begin registers a new request for r and returns its ID. Any request begun
// earlier becomes stale.
func (s *Store) Begin(r Range) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	s.pending = r
	s.inFlight = true
	return s.latest
}

// Resolve records the outcome of request id. It reports false, and changes
// nothing, when id has been superseded. On error the previous records are
// kept and the error recorded.
func (s *Store) Resolve(id uint64, records []apod.Record, err error) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.latest || !s.inFlight {
		return s.snapshotLocked(), false
	}
	s.inFlight = false

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return s.snapshotLocked(), true
	}

	s.snapshot.Records = cloneRecords(records)
	s.snapshot.Range = s.pending
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return s.snapshotLocked(), true
}

// InFlight reports whether the latest request is still unresolved.
func (s *Store) InFlight() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight
}

// Pending returns the range of the latest request.
func (s *Store) Pending() Range {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(records []apod.Record) []apod.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]apod.Record, len(records))
	copy(dup, records)
	return dup
}
