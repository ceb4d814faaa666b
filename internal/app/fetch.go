package app

import (
	"context"
	"log/slog"

	"github.com/five82/skyview/internal/apod"
	"github.com/five82/skyview/internal/state"
)

// Fetch runs one request for r through store and returns the resulting
// snapshot. The snapshot's LastError is set when the request failed.
func Fetch(ctx context.Context, store *state.Store, f apod.Fetcher, r state.Range, logger *slog.Logger) state.Snapshot {
	id := store.Begin(r)
	logger.Info("fetch started", "request", id, "range", r.String())

	records, err := f.FetchRange(ctx, r.Start, r.End)
	snap, _ := store.Resolve(id, records, err)
	if err != nil {
		logger.Error("fetch failed", "request", id, "range", r.String(), "error", err)
		return snap
	}
	logger.Info("fetch resolved", "request", id, "records", len(snap.Records))
	return snap
}
