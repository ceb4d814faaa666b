// Package history is an in-memory, browser-style location stack. It is the
// history collaborator of gallery.Controller in the terminal UI.
package history

import (
	"strings"

	"github.com/five82/skyview/internal/gallery"
)

// Entry is one location in the stack. Background is the list location shown
// beneath a detail entry; it is empty for list entries.
type Entry struct {
	Path       string
	Background string
}

// IsDetail reports whether the entry overlays a detail view.
func (e Entry) IsDetail() bool { return e.Background != "" }

// Stack is a linear history with a cursor. Pushing discards forward entries.
type Stack struct {
	entries []Entry
	cursor  int
}

var _ gallery.History = (*Stack)(nil)

// New returns a stack whose only entry is initial, or the list path when
// initial is empty.
func New(initial string) *Stack {
	path := strings.TrimSpace(initial)
	if path == "" {
		path = gallery.ListPath
	}
	entry := Entry{Path: path}
	if gallery.ResolveFromLocation(path).IsOpen() {
		entry.Background = gallery.ListPath
	}
	return &Stack{entries: []Entry{entry}}
}

// Push appends e after the cursor.
func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries[:s.cursor+1], e)
	s.cursor = len(s.entries) - 1
}

// PushDetail pushes the detail location for key. The background is inherited
// from the current entry so stepping between details keeps the same list
// underneath.
func (s *Stack) PushDetail(key string) {
	cur := s.Current()
	background := cur.Path
	if cur.IsDetail() {
		background = cur.Background
	}
	s.Push(Entry{Path: gallery.DetailPath(key), Background: background})
}

// PushList pushes the list location.
func (s *Stack) PushList() {
	background := s.Current().Background
	if background == "" {
		background = gallery.ListPath
	}
	s.Push(Entry{Path: background})
}

// Location returns the current path.
func (s *Stack) Location() string { return s.Current().Path }

// Current returns the entry under the cursor.
func (s *Stack) Current() Entry { return s.entries[s.cursor] }

// Back moves the cursor one entry back.
func (s *Stack) Back() (Entry, bool) {
	if s.cursor == 0 {
		return s.Current(), false
	}
	s.cursor--
	return s.Current(), true
}

// Forward moves the cursor one entry forward.
func (s *Stack) Forward() (Entry, bool) {
	if s.cursor >= len(s.entries)-1 {
		return s.Current(), false
	}
	s.cursor++
	return s.Current(), true
}

// CanBack reports whether Back would move.
func (s *Stack) CanBack() bool { return s.cursor > 0 }

// CanForward reports whether Forward would move.
func (s *Stack) CanForward() bool { return s.cursor < len(s.entries)-1 }

// Len returns the number of entries.
func (s *Stack) Len() int { return len(s.entries) }
