// Package printers renders APOD records for the non-interactive commands.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/skyview/internal/apod"
	"github.com/five82/skyview/internal/gallery"
	"github.com/five82/skyview/internal/logtail"
)

// DefaultWidth is the wrap width for explanations.
const DefaultWidth = 80

// maxTitleWidth caps the title column before uitable wraps it.
const maxTitleWidth = 60

// PrettyPrint writes human-readable output.
type PrettyPrint struct {
	Out   io.Writer
	Width int
}

// New returns a PrettyPrint writing to out, or to color.Output when out is nil.
func New(out io.Writer) *PrettyPrint {
	if out == nil {
		out = color.Output
	}
	return &PrettyPrint{Out: out, Width: DefaultWidth}
}

// Title prints a bold underlined heading followed by a faint count.
func (pp *PrettyPrint) Title(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.Out, title)
	noun := "pictures"
	if count == 1 {
		noun = "picture"
	}
	_, _ = c.Fprintf(pp.Out, " - %d %s\n", count, noun)
}

// Records prints one table row per record.
func (pp *PrettyPrint) Records(records []apod.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.Out, " none\n")
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	date := color.New(color.FgHiYellow).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = maxTitleWidth
	tbl.Wrap = true
	tbl.AddRow(bold("DATE"), bold("MEDIA"), bold("TITLE"))
	for _, r := range records {
		tbl.AddRow(date(r.Date), mediaLabel(r), r.Title)
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
}

// Detail prints a single record with its wrapped explanation.
func (pp *PrettyPrint) Detail(r apod.Record) {
	width := pp.Width
	if width <= 0 {
		width = DefaultWidth
	}
	p := gallery.Project(r, gallery.ViewList)

	_, _ = color.New(color.Bold, color.Underline).Fprintln(pp.Out, r.Title)
	_, _ = color.New(color.Faint).Fprintln(pp.Out, r.Date)
	_, _ = fmt.Fprintf(pp.Out, "%s %s\n\n", mediaLabel(r), color.CyanString(p.Source))
	_, _ = fmt.Fprintln(pp.Out, wordwrap.String(strings.TrimSpace(r.Explanation), width))
}

// LogEntries prints decoded log lines, one per row, colored by level.
func (pp *PrettyPrint) LogEntries(entries []logtail.Entry) {
	if len(entries) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.Out, " no log entries\n")
		return
	}

	faint := color.New(color.Faint)
	for _, e := range entries {
		if e.Raw != "" {
			_, _ = fmt.Fprintln(pp.Out, e.Raw)
			continue
		}
		ts := "-"
		if !e.Time.IsZero() {
			ts = e.Time.Local().Format("2006-01-02 15:04:05")
		}
		_, _ = faint.Fprint(pp.Out, ts+" ")
		_, _ = levelColor(e.Level).Fprintf(pp.Out, "%-5s ", e.Level.String())
		_, _ = fmt.Fprint(pp.Out, e.Msg)
		if attrs := e.AttrString(); attrs != "" {
			_, _ = faint.Fprint(pp.Out, " "+attrs)
		}
		_, _ = fmt.Fprintln(pp.Out)
	}
}

func levelColor(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return color.New(color.FgRed, color.Bold)
	case l >= slog.LevelWarn:
		return color.New(color.FgYellow)
	case l >= slog.LevelInfo:
		return color.New(color.FgCyan)
	default:
		return color.New(color.Faint)
	}
}

func mediaLabel(r apod.Record) string {
	if r.IsImage() {
		return color.GreenString(string(gallery.MediaImage))
	}
	return color.BlueString(string(gallery.MediaEmbed))
}

// JSON writes v as indented JSON.
func JSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
