package gallery

import (
	"slices"

	"github.com/five82/skyview/internal/apod"
)

// State is the whole presentation state: raw collection, derivation inputs,
// the derived list and navigation. It is a value; every transition returns a
// new State and leaves the receiver untouched. Slices held by a State are
// never written after construction.
type State struct {
	raw     []apod.Record
	loaded  bool
	query   Query
	view    ViewMode
	derived []apod.Record
	nav     Nav
	pending string
}

// NewState returns the initial state: nothing loaded, default ordering, list
// view, detail closed.
func NewState() State {
	return State{
		query:   DefaultQuery(),
		view:    ViewList,
		derived: []apod.Record{},
		nav:     Closed(),
	}
}

// WithCollection replaces the raw collection. Navigation resets to Closed
// because a new range invalidates the old key space; search, sort and view
// carry over. A deep link received before the first collection is resolved
// against the new list instead.
func (s State) WithCollection(records []apod.Record) State {
	s.raw = Dedupe(records)
	s.loaded = true
	pending := s.pending
	s.pending = ""
	s.nav = Closed()
	s = s.rederive()
	if pending != "" {
		s = s.resolve(pending)
	}
	return s
}

// WithQuery replaces every derivation input at once.
func (s State) WithQuery(q Query) State {
	if q.Property == "" {
		q.Property = SortByDate
	}
	if q.Order == "" {
		q.Order = Descending
	}
	s.query = q
	return s.rederive()
}

// WithSearch changes the title filter.
func (s State) WithSearch(text string) State {
	q := s.query
	q.Search = text
	return s.WithQuery(q)
}

// WithSortProperty changes the sort key.
func (s State) WithSortProperty(p SortProperty) State {
	q := s.query
	q.Property = p
	return s.WithQuery(q)
}

// WithSortOrder changes the sort direction.
func (s State) WithSortOrder(o SortOrder) State {
	q := s.query
	q.Order = o
	return s.WithQuery(q)
}

// ToggleSortOrder flips the sort direction.
func (s State) ToggleSortOrder() State {
	return s.WithSortOrder(s.query.Order.Toggle())
}

// CycleSortProperty moves to the next sort key.
func (s State) CycleSortProperty() State {
	return s.WithSortProperty(s.query.Property.Next())
}

// WithViewMode changes how items are projected. Membership and order are
// unaffected.
func (s State) WithViewMode(v ViewMode) State {
	s.view = v
	return s
}

// ToggleViewMode flips between list and gallery.
func (s State) ToggleViewMode() State {
	return s.WithViewMode(s.view.Toggle())
}

// Select opens the detail view for key. Keys outside the current derived
// list are ignored.
func (s State) Select(key string) State {
	if indexOf(s.derived, key) < 0 {
		return s
	}
	s.nav = OpenAt(key)
	return s
}

// Close returns to the list.
func (s State) Close() State {
	s.nav = Closed()
	s.pending = ""
	return s
}

// Prev moves to the element before the current one; no-op at the start.
func (s State) Prev() State { return s.step(-1) }

// Next moves to the element after the current one; no-op at the end.
func (s State) Next() State { return s.step(1) }

// Navigate applies a state resolved from a location. A key in the derived
// list opens; a key that is loaded but filtered out closes the detail; a key
// missing from the collection renders as not found. Before any collection
// has arrived the key is remembered and resolved by WithCollection.
func (s State) Navigate(n Nav) State {
	if n.Mode == ModeClosed || n.Key == "" {
		return s.Close()
	}
	if !s.loaded {
		s.pending = n.Key
		s.nav = NotFoundAt(n.Key)
		return s
	}
	return s.resolve(n.Key)
}

func (s State) step(delta int) State {
	if s.nav.Mode != ModeOpen {
		return s
	}
	i := indexOf(s.derived, s.nav.Key)
	if i < 0 {
		s.nav = Closed()
		return s
	}
	j := i + delta
	if j < 0 || j >= len(s.derived) {
		return s
	}
	s.nav = OpenAt(s.derived[j].Date)
	return s
}

func (s State) resolve(key string) State {
	switch {
	case indexOf(s.derived, key) >= 0:
		s.nav = OpenAt(key)
	case s.InCollection(key):
		s.nav = Closed()
	default:
		s.nav = NotFoundAt(key)
	}
	return s
}

// rederive recomputes the derived list and closes the detail view when its
// key fell out of it. A not-found key is resolved again once loaded.
func (s State) rederive() State {
	s.derived = Derive(s.raw, s.query)
	switch s.nav.Mode {
	case ModeOpen:
		if indexOf(s.derived, s.nav.Key) < 0 {
			s.nav = Closed()
		}
	case ModeNotFound:
		if s.loaded {
			s = s.resolve(s.nav.Key)
		}
	}
	return s
}

// Query returns the derivation inputs.
func (s State) Query() Query { return s.query }

// ViewMode returns the current view mode.
func (s State) ViewMode() ViewMode { return s.view }

// Nav returns the navigation state.
func (s State) Nav() Nav { return s.nav }

// Loaded reports whether any collection has been received.
func (s State) Loaded() bool { return s.loaded }

// Pending returns a deep-linked key still waiting for the first collection.
func (s State) Pending() string { return s.pending }

// Len returns the size of the derived list.
func (s State) Len() int { return len(s.derived) }

// RawLen returns the size of the raw collection.
func (s State) RawLen() int { return len(s.raw) }

// Records returns a copy of the derived list.
func (s State) Records() []apod.Record { return slices.Clone(s.derived) }

// At returns the derived element at i.
func (s State) At(i int) (apod.Record, bool) {
	if i < 0 || i >= len(s.derived) {
		return apod.Record{}, false
	}
	return s.derived[i], true
}

// IndexOf returns the position of key in the derived list, or -1.
func (s State) IndexOf(key string) int { return indexOf(s.derived, key) }

// InCollection reports whether key is in the raw collection, filtered or not.
func (s State) InCollection(key string) bool { return indexOf(s.raw, key) >= 0 }

// Current returns the record shown in the detail view.
func (s State) Current() (apod.Record, bool) {
	if s.nav.Mode != ModeOpen {
		return apod.Record{}, false
	}
	return s.At(indexOf(s.derived, s.nav.Key))
}

// Position returns the 1-based position of the open record and the derived
// list length. Position is zero when nothing is open.
func (s State) Position() (int, int) {
	if s.nav.Mode != ModeOpen {
		return 0, len(s.derived)
	}
	return indexOf(s.derived, s.nav.Key) + 1, len(s.derived)
}

// HasPrev reports whether Prev would move.
func (s State) HasPrev() bool {
	pos, _ := s.Position()
	return pos > 1
}

// HasNext reports whether Next would move.
func (s State) HasNext() bool {
	pos, n := s.Position()
	return pos > 0 && pos < n
}

// Location returns the path for the current navigation state.
func (s State) Location() string { return s.nav.Location() }
