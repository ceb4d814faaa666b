package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/skyview/internal/apod"
	"github.com/five82/skyview/internal/state"
)

func TestResolveRange(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end string
		want       state.Range
		wantErr    bool
	}{
		{name: "defaults to last days", want: state.Range{Start: "2024-03-04", End: "2024-03-10"}},
		{name: "explicit", start: "2024-01-01", end: " 2024-01-05 ", want: state.Range{Start: "2024-01-01", End: "2024-01-05"}},
		{name: "missing end", start: "2024-01-01", wantErr: true},
		{name: "reversed", start: "2024-02-01", end: "2024-01-01", wantErr: true},
		{name: "ends today", start: "2024-03-08", end: "2024-03-10", want: state.Range{Start: "2024-03-08", End: "2024-03-10"}},
		{name: "ends tomorrow", start: "2024-03-08", end: "2024-03-11", wantErr: true},
		{name: "bad format", start: "01/01/2024", end: "2024-01-05", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRange(tt.start, tt.end, 7, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveRange returned %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveRange returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ResolveRange = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetup_BuildsEnvFromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NASA_API_KEY", "")
	logPath := filepath.Join(dir, "logs", "skyview.log")
	cfgPath := filepath.Join(dir, "config.toml")
	body := "base_url = \"http://127.0.0.1:9\"\nlog_file = \"" + filepath.ToSlash(logPath) + "\"\nrange_days = 3\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	env, err := Setup(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	t.Cleanup(func() { _ = env.Close() })

	if env.Config.RangeDays != 3 {
		t.Fatalf("RangeDays = %d, want 3", env.Config.RangeDays)
	}
	if env.Client == nil || env.Logger == nil {
		t.Fatalf("env = %+v, want client and logger", env)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestSetup_InvalidConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("range_days = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Setup(Options{ConfigPath: cfgPath}); err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Setup error = %v, want load config error", err)
	}
}

type stubFetcher struct {
	records []apod.Record
	err     error
}

func (s stubFetcher) FetchRange(context.Context, string, string) ([]apod.Record, error) {
	return s.records, s.err
}

func (s stubFetcher) FetchDate(context.Context, string) (apod.Record, error) {
	return apod.Record{}, s.err
}

func TestFetch_RecordsSuccessAndFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	store := &state.Store{}
	r := state.Range{Start: "2024-01-01", End: "2024-01-02"}

	snap := Fetch(context.Background(), store, stubFetcher{records: []apod.Record{{Date: "2024-01-01"}}}, r, logger)
	if !snap.HasData || len(snap.Records) != 1 || snap.Range != r {
		t.Fatalf("snapshot = %+v, want one record for %v", snap, r)
	}

	snap = Fetch(context.Background(), store, stubFetcher{err: errors.New("boom")}, r, logger)
	if snap.LastError == nil || snap.ConsecutiveFailures != 1 {
		t.Fatalf("snapshot = %+v, want recorded failure", snap)
	}
	if len(snap.Records) != 1 {
		t.Fatalf("failed fetch should keep previous records")
	}
	if !strings.Contains(buf.String(), `"msg":"fetch failed"`) {
		t.Fatalf("log = %q, want fetch failed entry", buf.String())
	}
}
