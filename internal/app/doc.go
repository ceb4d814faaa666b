// Package app is skyview's composition root.
//
// # Overview
//
// This package wires configuration, logging, the APOD client, the fetch
// store and the UI together. The cobra commands in package commands call
// into it and nothing else depends on it.
//
// # Architecture
//
// Setup does the work shared by every command:
//
//  1. Load configuration from ~/.config/skyview/config.toml (or --config)
//  2. Open the JSON log file
//  3. Build the APOD HTTP client
//
// Run adds what only the TUI needs:
//
//  4. Resolve the date range from --start/--end or the default range_days
//  5. Load the saved theme from prefs
//  6. Start the Bubble Tea program and block until the user quits or the
//     context is cancelled
//
// # Components
//
//   - app.go: Options, Env, Setup, ResolveRange and Run
//   - fetch.go: Fetch, a single store-sequenced request used by the CLI
//
// # Data Flow
//
//	Run()
//	 ├─> config.Load()        ~/.config/skyview/config.toml + NASA_API_KEY
//	 ├─> logging.New()        ~/.local/state/skyview/skyview.log
//	 ├─> apod.NewClient()     api.nasa.gov
//	 ├─> ResolveRange()       --start/--end or the last range_days days
//	 ├─> prefs.Load()         theme
//	 └─> ui.Run()             TUI (blocks)
//
//	skyview list / non-TTY root
//	 ├─> Setup()
//	 ├─> ResolveRange()
//	 └─> Fetch()              store.Begin → client.FetchRange → store.Resolve
//
// The non-interactive commands use Setup and Fetch directly. Fetch sequences
// a single request through state.Store exactly as the TUI does, so both
// paths log and record failures the same way:
//
//	{"level":"INFO","msg":"fetch started","request":1,"range":"2024-01-01 → 2024-01-07"}
//	{"level":"INFO","msg":"fetch resolved","request":1,"records":7}
//
// # Date Ranges
//
// ResolveRange takes the clock as an argument. With neither flag set it
// returns the range_days days ending today. With either flag set both are
// required, must be real YYYY-MM-DD dates, must be in order, and may not lie
// after today, since the archive has nothing for future days.
//
// # Lifecycle
//
// Env.Close closes the log file. Callers defer it right after Setup
// succeeds; it is nil-safe and may be called twice. Cancellation comes from
// the signal-aware context built in cmd/skyview and reaches both the HTTP
// requests and the Bubble Tea program.
//
// # Error Handling
//
// Configuration, log file and client errors are fatal and returned from
// Setup wrapped as "load config", "open log" and "init apod client". Range
// errors are returned before any request is made. Fetch failures are not
// fatal: they are recorded in the snapshot and shown to the user.
package app
