package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"
)

// Entry is one decoded line of skyview's JSON log.
type Entry struct {
	Time  time.Time
	Level slog.Level
	Msg   string
	Attrs map[string]any
	Raw   string // set, and the other fields left zero, when the line is not JSON
}

// Read returns at most maxLines lines from the end of the file at path.
// A missing file yields no lines and no error. maxLines <= 0 reads all.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if maxLines > 0 && len(lines) > maxLines {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// Parse decodes one JSON log line written by package logging.
func Parse(line string) Entry {
	var fields map[string]any
	if err := json.Unmarshal([]byte(line), &fields); err != nil {
		return Entry{Raw: line}
	}

	var e Entry
	if s, ok := fields[slog.TimeKey].(string); ok {
		e.Time, _ = time.Parse(time.RFC3339Nano, s)
	}
	if s, ok := fields[slog.LevelKey].(string); ok {
		_ = e.Level.UnmarshalText([]byte(s))
	}
	e.Msg, _ = fields[slog.MessageKey].(string)

	delete(fields, slog.TimeKey)
	delete(fields, slog.LevelKey)
	delete(fields, slog.MessageKey)
	if len(fields) > 0 {
		e.Attrs = fields
	}
	return e
}

// ParseAll decodes lines and keeps entries at or above min. Lines that are
// not JSON are always kept.
func ParseAll(lines []string, min slog.Level) []Entry {
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e := Parse(line)
		if e.Raw == "" && e.Level < min {
			continue
		}
		out = append(out, e)
	}
	return out
}

// AttrString renders the attributes as sorted key=value pairs.
func (e Entry) AttrString() string {
	if len(e.Attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Attrs[k]))
	}
	return strings.Join(parts, " ")
}
