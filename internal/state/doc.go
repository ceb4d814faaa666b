// Package state sequences APOD fetches for the UI.
//
// # Overview
//
// Fetches run as Bubble Tea commands on their own goroutines, so more than one
// can be outstanding when the user submits a new date range before the last
// one answered. Store makes the most recent request the only authoritative
// one. It is the single place where network results meet the presentation
// state in package gallery.
//
// # Architecture
//
// The package sits between the fetch commands and the model's Update loop:
//
//	Fetch command (goroutine):        Update loop:
//	┌────────────────────────┐       ┌─────────────────────────┐
//	│ id := store.Begin(r)   │       │                         │
//	│ client.FetchRange(...) │       │                         │
//	│        ↓               │       │                         │
//	│ fetchResultMsg{id,...} │──────→│ store.Resolve(id, ...)  │
//	└────────────────────────┘ (msg) │   ok → controller       │
//	                                  │   stale → dropped      │
//	                                  └─────────────────────────┘
//
// Begin is called when the command is built, so the ID is fixed before the
// request leaves. Resolve is called from Update with whatever came back.
//
// # Core Types
//
// Range:
//   - Inclusive Start/End date keys (YYYY-MM-DD)
//   - String renders "start → end", or a single date when both match
//
// Snapshot:
//   - Records and Range of the last successful fetch
//   - HasData, LastUpdated, LastError, ConsecutiveFailures
//   - Returned by value with the record slice cloned
//
// Store:
//   - Zero value ready to use
//   - Tracks the latest request ID, the pending range and whether that
//     request is still in flight
//
// # Sequencing
//
// Every Begin increments the request counter and makes every earlier ID
// stale:
//
//	a := store.Begin(jan)      // a = 1
//	b := store.Begin(feb)      // b = 2, a is now stale
//	store.Resolve(b, feb, nil) // applied, ok = true
//	store.Resolve(a, jan, nil) // dropped, ok = false
//
// Order of arrival does not matter. If a answers after b, it is still
// dropped; if a answers first, it is dropped too and b is applied when it
// lands. InFlight stays true until the latest request resolves.
//
// # Resolve Semantics
//
//	// Success: replace the data
//	store.Resolve(id, records, nil)
//	→ snapshot.Records = clone(records)
//	→ snapshot.Range = pending range
//	→ snapshot.HasData = true
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Failure: keep the data, record the error
//	store.Resolve(id, nil, err)
//	→ snapshot.Records = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// Either way LastUpdated is set. A failure never empties a gallery the user
// is already looking at; the header shows the error next to the old list.
//
// # Copies
//
// Resolve stores a clone of the records it is handed, and Snapshot hands out
// another clone. Nothing outside the store can change what it holds, and a
// snapshot stays valid after later fetches.
//
// # Concurrency
//
// Store uses a sync.RWMutex. Begin and Resolve take the write lock; Snapshot,
// InFlight and Pending take the read lock. The lock is never held across
// network I/O or rendering.
//
// # Usage Example
//
//	store := &state.Store{}
//
//	// building the command
//	id := store.Begin(r)
//	cmd := func() tea.Msg {
//		records, err := client.FetchRange(ctx, r.Start, r.End)
//		return fetchResultMsg{id: id, records: records, err: err}
//	}
//
//	// in Update
//	if snap, ok := store.Resolve(msg.id, msg.records, msg.err); ok {
//		controller.OnFetchResult(snap.Records, msg.err)
//	}
//
// The CLI list command goes through the same calls via app.Fetch, with a
// single request and no chance of staleness.
//
// # Testing Considerations
//
//   - No constructor; &state.Store{} is ready
//   - Snapshot returns the zero Snapshot before any resolve
//   - Stale IDs can be produced deterministically with two Begin calls
package state
