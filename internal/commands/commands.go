// Package commands defines skyview's cobra command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/skyview/internal/app"
	"github.com/five82/skyview/internal/gallery"
	"github.com/five82/skyview/internal/printers"
	"github.com/five82/skyview/internal/state"
)

// BuildInfo is stamped in by the linker.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions are the flags shared by every command.
type rootOptions struct {
	app.Options

	view string
}

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runTUI starts the interactive gallery. Replaced in tests.
var runTUI = app.Run

// now is the clock used for default ranges. Replaced in tests.
var now = time.Now

// New builds the root command.
func New(info BuildInfo) *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "skyview",
		Short: "Browse NASA's Astronomy Picture of the Day in the terminal.",
		Long: `skyview fetches a range of Astronomy Pictures of the Day and lets you
search, sort and page through them. Without --start/--end it shows the last
range_days days (7 by default). When stdout is not a terminal the list is
printed instead of starting the interactive gallery.`,
		Example: `
skyview
skyview --start 2024-01-01 --end 2024-01-31
skyview --open /apod/2024-01-02
skyview --view gallery
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ro.view != "" {
				v, err := gallery.ParseViewMode(ro.view)
				if err != nil {
					return err
				}
				ro.View = v
			}
			if !isTerminal() {
				return runList(cmd.Context(), cmd.OutOrStdout(), ro, listOptions{})
			}
			return runTUI(cmd.Context(), ro.Options)
		},
	}

	cmd.PersistentFlags().StringVar(&ro.ConfigPath, "config", "", "Config file (default ~/.config/skyview/config.toml).")
	cmd.PersistentFlags().StringVar(&ro.PrefsPath, "prefs", "", "Preferences file (default ~/.config/skyview/prefs.toml).")
	cmd.PersistentFlags().StringVar(&ro.Start, "start", "", "First date of the range, YYYY-MM-DD.")
	cmd.PersistentFlags().StringVar(&ro.End, "end", "", "Last date of the range, YYYY-MM-DD.")
	cmd.Flags().StringVar(&ro.OpenPath, "open", "", "Open a detail on start, e.g. /apod/2024-01-02.")
	cmd.Flags().StringVar(&ro.view, "view", "", "Initial view mode: list or gallery.")

	AddCommands(cmd, ro, info)
	return cmd
}

// AddCommands attaches the subcommands.
func AddCommands(topLevel *cobra.Command, ro *rootOptions, info BuildInfo) {
	addList(topLevel, ro)
	addShow(topLevel, ro)
	addLogs(topLevel, ro)
	addVersion(topLevel, info)
}

// listOptions are the derivation flags of the list command.
type listOptions struct {
	Search string
	Sort   string
	Order  string
	JSON   bool
}

func (lo listOptions) query() (gallery.Query, error) {
	q := gallery.DefaultQuery()
	q.Search = lo.Search
	if lo.Sort != "" {
		p, err := gallery.ParseSortProperty(lo.Sort)
		if err != nil {
			return q, err
		}
		q.Property = p
	}
	if lo.Order != "" {
		o, err := gallery.ParseSortOrder(lo.Order)
		if err != nil {
			return q, err
		}
		q.Order = o
	}
	return q, nil
}

func runList(ctx context.Context, out io.Writer, ro *rootOptions, lo listOptions) error {
	q, err := lo.query()
	if err != nil {
		return err
	}

	env, err := app.Setup(ro.Options)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	r, err := app.ResolveRange(ro.Start, ro.End, env.Config.RangeDays, now())
	if err != nil {
		return err
	}

	snap := app.Fetch(ctx, &state.Store{}, env.Client, r, env.Logger.Logger)
	if snap.LastError != nil {
		return fmt.Errorf("failed to load NASA APOD: %w", snap.LastError)
	}

	records := gallery.Derive(gallery.Dedupe(snap.Records), q)
	if lo.JSON {
		return printers.JSON(out, records)
	}

	pp := printers.New(colorable(out))
	pp.Title(r.String(), len(records))
	pp.Records(records)
	return nil
}

// colorable routes stdout through color.Output so Windows consoles get ANSI
// translation; other writers are used as given.
func colorable(out io.Writer) io.Writer {
	if out == os.Stdout {
		return color.Output
	}
	return out
}
