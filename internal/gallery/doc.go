// Package gallery is the presentation state engine behind the APOD browser.
//
// # Overview
//
// Everything the UI shows about the collection is computed here, purely and
// synchronously. The package never performs I/O and never sees a terminal:
//
//   - Derive filters the raw collection by a case-insensitive title match and
//     orders it by date or title (locale-aware collation), ascending or
//     descending.
//   - Project maps a record plus the list/gallery view mode to render
//     parameters.
//   - State is the navigation state machine. It tracks whether the detail view
//     is open and for which record, by date key rather than slice index, so it
//     survives re-derivation.
//   - Controller owns one State and keeps a History collaborator in step.
//
// # Derived List
//
//	raw ──Dedupe──> collection ──filter(Search)──> matches ──sort(Property, Order)──> derived
//
// Dedupe keeps the first record for each date. The filter is a substring
// match on the lowercased title; an empty search matches everything. Sorting
// is stable:
//
//   - date: parsed calendar dates compare chronologically. Keys that do not
//     parse sort after every valid date, among themselves by trimmed text,
//     so the order is total for any input.
//   - title: golang.org/x/text/collate with English rules, ignoring case.
//     Equal titles keep their input order.
//
// Descending order reverses the comparator rather than the output, so ties
// stay in input order both ways. Derive never mutates its input and always
// returns a fresh, non-nil slice; an empty collection or a search with no
// match yields an empty list, never an error.
//
// # View Projection
//
//	Project(r, ViewGallery) → grid, cover, ThumbnailHeight rows
//	Project(r, ViewList)    → stacked, contain, natural height
//
// Media is image for media_type "image" and embed otherwise. Source is the HD
// URL for images when present, else the plain URL. Switching view mode never
// changes which records are listed or their order.
//
// # State Transitions
//
//	Closed   --Select(key)--> Open(key)        key must be in the derived list
//	Open     --Close-------> Closed
//	NotFound --Close-------> Closed
//	Open     --Prev/Next---> Open(neighbour)   no-op at either end
//	Open     --(derive)----> Open | Closed     closes when key fell out
//	*        --Navigate----> Open | Closed | NotFound
//
// Navigate applies a location coming back from history. It opens a key in
// the derived list, closes the detail for a key that is loaded but filtered
// out (the same outcome as a re-derivation dropping it), and renders
// NotFound only for a key missing from the collection altogether.
// Re-derivation resolves a NotFound key again, so it cannot outlive the
// reason for it.
//
// Positions are looked up by key in the freshly derived list on every call;
// no index is cached between transitions.
//
// # Value Semantics
//
// State is a value. Transitions return a new State and never write through to
// the old one, so any State a caller holds remains a consistent snapshot:
//
//	s := gallery.NewState().WithCollection(records)
//	open := s.Select("2024-01-02")
//	next := open.Next()
//	// s is still Closed, open still shows 2024-01-02
//
// # Deep Links
//
// A location can arrive before any data, e.g. skyview --open /apod/2024-01-02.
// Navigate then records the key as pending and renders NotFound; the first
// WithCollection resolves it against the new list instead of resetting to
// Closed. Later collections always reset navigation to Closed, while search,
// sort and view mode carry over.
//
// # History
//
// Controller pushes entries to a History collaborator when a user transition
// changes navigation:
//
//	Open(k) or NotFound(k) → PushDetail(k)
//	Closed                 → PushList()
//
// Locations coming back from history (back, forward, reload) go through
// Restore and ResolveFromLocation, which map /apod/{date} (trailing slash
// tolerated) to Open(date) and everything else to Closed. Restore never
// pushes, so walking history does not grow it.
//
//	ctrl := gallery.NewController(stack)
//	ctrl.OnFetchResult(records, nil)
//	ctrl.Select("2024-01-02")          // pushes /apod/2024-01-02
//	ctrl.Apply(gallery.State.Next)     // pushes /apod/2024-01-01
//	e, _ := stack.Back()
//	ctrl.Restore(e.Path)               // no push
//
// # Errors
//
// Nothing here returns an error except the flag parsers (ParseSortProperty,
// ParseSortOrder, ParseViewMode). OnFetchResult passes a fetch error back to
// the caller untouched and leaves the state as it was.
package gallery
