package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/skyview/internal/apod"
	"github.com/five82/skyview/internal/config"
	"github.com/five82/skyview/internal/gallery"
	"github.com/five82/skyview/internal/logging"
	"github.com/five82/skyview/internal/prefs"
	"github.com/five82/skyview/internal/state"
	"github.com/five82/skyview/internal/ui"
)

// Options configure a skyview session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/skyview/prefs.toml
	Start      string
	End        string
	OpenPath   string // deep link such as /apod/2024-01-02
	View       gallery.ViewMode
}

// Env holds the dependencies shared by the TUI and the CLI commands.
type Env struct {
	Config config.Config
	Client *apod.Client
	Logger *logging.Logger
}

// Setup loads configuration, opens the log file and builds the API client.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	client, err := apod.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout())
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("init apod client: %w", err)
	}

	return &Env{Config: cfg, Client: client, Logger: logger}, nil
}

// Close releases the log file.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	return e.Logger.Close()
}

// ResolveRange turns the --start/--end flags into a validated range. With
// neither set it covers the last days days ending at now.
func ResolveRange(start, end string, days int, now time.Time) (state.Range, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		s, e := apod.RangeEndingAt(now, days)
		return state.Range{Start: s, End: e}, nil
	}
	if err := apod.ValidateRange(start, end, now); err != nil {
		return state.Range{}, err
	}
	return state.Range{Start: start, End: end}, nil
}

// Run boots the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	r, err := ResolveRange(opts.Start, opts.End, env.Config.RangeDays, time.Now())
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	env.Logger.Info("starting tui", "range", r.String(), "open", opts.OpenPath, "view", opts.View, "theme", userPrefs.Theme)

	return ui.Run(ui.Options{
		Context:   ctx,
		Fetcher:   env.Client,
		Store:     &state.Store{},
		Logger:    env.Logger.Logger,
		Range:     r,
		OpenPath:  opts.OpenPath,
		View:      opts.View,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	})
}
