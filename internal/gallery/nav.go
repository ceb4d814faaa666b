package gallery

import (
	"strings"
)

// Mode is the navigation state of the detail overlay.
type Mode int

const (
	// ModeClosed shows the list with no detail overlay.
	ModeClosed Mode = iota
	// ModeOpen shows the detail overlay for Nav.Key.
	ModeOpen
	// ModeNotFound shows a "not found" overlay for a key that was linked to
	// but is not in the current derived list.
	ModeNotFound
)

func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeNotFound:
		return "not-found"
	default:
		return "closed"
	}
}

// Nav is the navigation state: whether a detail view is shown and for which
// record key.
type Nav struct {
	Mode Mode
	Key  string
}

// Closed returns the list-only state.
func Closed() Nav { return Nav{Mode: ModeClosed} }

// OpenAt returns the detail state for key.
func OpenAt(key string) Nav { return Nav{Mode: ModeOpen, Key: key} }

// NotFoundAt returns the missing-record state for key.
func NotFoundAt(key string) Nav { return Nav{Mode: ModeNotFound, Key: key} }

// IsOpen reports whether a record is being shown.
func (n Nav) IsOpen() bool { return n.Mode == ModeOpen }

// Location returns the path a history entry for n carries.
func (n Nav) Location() string {
	if n.Mode == ModeClosed || n.Key == "" {
		return ListPath
	}
	return DetailPath(n.Key)
}

const (
	// ListPath is the location of the list view.
	ListPath     = "/"
	detailPrefix = "/apod/"
)

// DetailPath returns the location of the detail view for key.
func DetailPath(key string) string {
	return detailPrefix + key
}

// History is the navigation collaborator the controller pushes entries to.
type History interface {
	PushDetail(key string)
	PushList()
	Location() string
}

// ResolveFromLocation parses a path of the form /apod/{date} into an open
// state. The root path, and anything it does not recognise, resolves to
// Closed.
func ResolveFromLocation(path string) Nav {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p != ListPath {
		p = strings.TrimRight(p, "/")
	}
	if !strings.HasPrefix(p, detailPrefix) {
		return Closed()
	}
	key := strings.TrimPrefix(p, detailPrefix)
	if key == "" || strings.Contains(key, "/") {
		return Closed()
	}
	return OpenAt(key)
}
