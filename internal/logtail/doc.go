// Package logtail reads back skyview's own log file.
//
// # Overview
//
// skyview logs to a JSON file because the TUI owns the terminal. This package
// turns that file back into something a person can read. It backs the
// `skyview logs` command.
//
// # Reading
//
// Read scans the file line by line and keeps only the last N lines in a
// sliding window, so a long-lived log never has to fit in the result:
//
//	lines, err := logtail.Read(cfg.LogFile, 50)
//
// A maxLines of zero or less returns every line. A missing file returns no
// lines and no error, which is the normal state before the first run. Lines
// up to 1 MiB are accepted.
//
// # Parsing
//
// Parse decodes one line written by package logging:
//
//	{"time":"2024-01-02T03:04:05Z","level":"WARN","msg":"fetch failed","request":3}
//	→ Entry{Time: 2024-01-02 03:04:05, Level: WARN, Msg: "fetch failed",
//	        Attrs: {"request": 3}}
//
// The time, level and msg keys are lifted into fields; everything else stays
// in Attrs, and AttrString renders it as sorted key=value pairs. A line that
// is not JSON (a panic trace, a hand edit) comes back with only Raw set.
//
// # Filtering
//
// ParseAll decodes a batch and keeps entries at or above a minimum level.
// Blank lines are skipped. Raw lines always pass, since their level is
// unknown:
//
//	entries := logtail.ParseAll(lines, slog.LevelWarn)
//
// # Error Handling
//
// Read wraps open and scan failures ("open log", "read log"). Parse never
// fails; it degrades to Raw.
package logtail
