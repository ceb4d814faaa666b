// Package ui provides skyview's terminal interface.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model (Model) styled with Lipgloss. It owns
// no presentation rules of its own: the derived list, view projection and
// detail navigation all live in package gallery, and every user action is a
// gallery transition applied through gallery.Controller so the in-memory
// history stays in step. What the model keeps itself is purely visual: the
// list cursor, scroll offsets, the search box, overlays and the theme.
//
// # Package Structure
//
// The package is organized into focused files:
//
//   - app.go: Model, Options, Update dispatch, fetch commands and Run
//   - browse.go: list and gallery rendering, list cursor, search box
//   - detail.go: detail modal with a scrolling explanation viewport
//   - header.go: status bar and context-sensitive command bar
//   - modal.go: Modal interface and the date range form
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings (bubbles/key) for bubbles/help
//   - theme.go: color themes and the gallery card band gradient
//   - layout.go: widths, gaps and breakpoints
//   - strings.go, style_helpers.go: truncation, wrapping, background fill
//
// # Screen Layout
//
//	┌────────────────────────────────────────────────────────────┐
//	│ skyview  2024-01-01 → 2024-01-07  Showing: 7 of 7  Sort: … │  header
//	│ / search                                                   │  search line (while searching)
//	│ 2024-01-07  Title of the picture ......................  ▣ │
//	│ 2024-01-06  A longer title that wraps onto a second        │  list or gallery
//	│             line in list view                            ▶ │
//	│ enter open  / search  s sort  o order  v view  ...  T:Nebula│  command bar
//	└────────────────────────────────────────────────────────────┘
//
// The detail view, NotFound message, range form and help overlay are drawn
// centred over the same frame with lipgloss.Place.
//
// # View Types
//
//   - List: one row per record, titles wrapped to natural height
//   - Gallery: a grid of fixed-height cards; titles cropped to fill, the
//     colour band blended per record from the theme's BandFrom to BandTo
//     (go-colorful, Lab space) by day of year
//   - Detail: title, date, position ("2 of 7"), media line and the
//     explanation wrapped with reflow in a bubbles viewport
//   - NotFound: "APOD not found for date: KEY" for locations naming a date
//     outside the loaded collection
//
// # Event Flow
//
//  1. New builds the controller and history stack, restoring --open
//  2. Init starts the spinner and the first fetch
//  3. Fetch results arrive as fetchResultMsg and go through state.Store;
//     stale ones are logged and dropped
//  4. Key presses are dispatched by surface: modal, search box, global keys,
//     then detail or list
//  5. refresh realigns the cursor, scroll offset, viewport and the
//     enabled state of the history keys after every message
//
// # Fetching
//
// Fetches run as tea.Cmds. Each one registers with state.Store and carries
// the returned request ID; a result whose ID has been superseded is dropped,
// so only the most recent range ever reaches the gallery. A failed fetch
// keeps the current list and shows "Failed to load NASA APOD." in the
// header.
//
// # Keyboard
//
// List: j/k move, enter opens, / searches titles, s cycles the sort
// property, o flips the order, v toggles list/gallery, r picks a date range.
// Detail: ←/h and →/l step through the current list, y copies the media URL,
// esc or q closes. Everywhere: [ and ] walk history, T cycles the theme
// (saved to prefs), ? shows help, ctrl+c quits.
//
// The history keys are disabled while there is nothing to step to, which
// also hides them from the command bar.
//
// # Search
//
// Typing in the search box applies the filter on every keystroke. Enter
// leaves the box and keeps the filter; esc clears it. The cursor follows
// the first match when its record is filtered out.
//
// # Themes
//
// Nebula (default), Kanagawa and Daylight. T cycles them and writes the
// choice through package prefs; a failed save shows a status message and is
// logged, but the theme still changes for the session.
//
// # Testing
//
// Tests drive Model directly: construct it with a fake apod.Fetcher, send a
// WindowSizeMsg, run the fetch command synchronously and feed its message
// back through Update, then press keys and inspect the controller state and
// View output. No terminal or tea.Program is involved.
package ui
