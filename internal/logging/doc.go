// Package logging provides skyview's structured logger.
//
// # Overview
//
// The TUI owns the terminal while it runs, so logs go to a file as JSON lines
// (log/slog's JSON handler). Each line carries time, level, msg and any
// key/value attributes:
//
//	{"time":"...","level":"INFO","msg":"fetch resolved","request":3,"records":7}
//
// Logger embeds *slog.Logger, so callers use Info, Debug, Warn and Error
// directly and pass Logger.Logger to code that takes a plain *slog.Logger.
//
// # Levels
//
// ParseLevel accepts debug, info, warn (or warning) and error in any case and
// falls back to info. Records below the configured level are dropped by the
// handler before formatting.
//
// # Files
//
// New creates parent directories and opens the file for appending, so runs
// accumulate in one log that `skyview logs` reads back through package
// logtail. An empty path yields a logger that discards everything. Close is
// safe to call more than once.
//
//	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
//	if err != nil {
//		return fmt.Errorf("open log: %w", err)
//	}
//	defer logger.Close()
package logging
