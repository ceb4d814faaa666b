package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyview/internal/apod"
	"github.com/five82/skyview/internal/gallery"
	"github.com/five82/skyview/internal/history"
	"github.com/five82/skyview/internal/prefs"
	"github.com/five82/skyview/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   apod.Fetcher
	Store     *state.Store
	Logger    *slog.Logger
	Range     state.Range
	OpenPath  string
	View      gallery.ViewMode
	ThemeName string
	PrefsPath string

	// Copy writes text to the system clipboard. Defaults to clipboard.WriteAll.
	Copy func(string) error

	// Now supplies the date that caps the range form. Defaults to time.Now.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx       context.Context
	fetcher   apod.Fetcher
	store     *state.Store
	logger    *slog.Logger
	prefsPath string
	copy      func(string) error
	now       func() time.Time

	// Presentation state
	ctrl *gallery.Controller
	hist *history.Stack

	// UI state
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	theme   Theme
	width   int
	height  int
	ready   bool

	// List state. cursor is a record key so it survives re-derivation.
	cursor     string
	listOffset int

	// Search
	searching bool
	search    textinput.Model

	// Detail. detailKey is the record the viewport was last filled for.
	detail    viewport.Model
	detailKey string

	// Overlays
	showHelp bool
	modal    Modal

	// Fetch state
	initial  state.Range
	snapshot state.Snapshot
	status   string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	start := gallery.ResolveFromLocation(opts.OpenPath).Location()
	hist := history.New(start)
	ctrl := gallery.NewController(hist)
	ctrl.Restore(start)
	if opts.View != "" {
		ctrl.Apply(func(s gallery.State) gallery.State { return s.WithViewMode(opts.View) })
	}

	search := textinput.New()
	search.Placeholder = "Search titles..."
	search.Prompt = "/ "
	search.CharLimit = 100

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		store:     store,
		logger:    logger,
		prefsPath: opts.PrefsPath,
		copy:      copyFn,
		now:       nowFn,
		ctrl:      ctrl,
		hist:      hist,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		theme:     GetTheme(themeName),
		search:    search,
		detail:    viewport.New(0, 0),
		initial:   opts.Range,
	}
	m.applyTheme()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(m.initial))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		next, cmd := m.handleKey(msg)
		next.refresh()
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchResultMsg:
		m.handleFetchResult(msg)
		m.refresh()
		return m, nil

	case rangeSubmittedMsg:
		return m, m.fetch(state.Range(msg))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	contentHeight := maxInt(m.height-chromeHeight, 1)
	var content string
	switch {
	case m.modal != nil:
		content = m.modal.View(m.theme, m.width, contentHeight)
	case m.ctrl.State().Nav().Mode != gallery.ModeClosed:
		content = m.renderDetail(contentHeight)
	default:
		content = m.renderBrowse(contentHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderCommandBar(),
		content,
	)
}

// handleKey processes keyboard input. Overlays take keys first, then the
// search box, then the detail modal, then the list.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		m.modal = next
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.historyStep(m.hist.Back)
		return m, nil
	case key.Matches(msg, m.keys.Forward):
		m.historyStep(m.hist.Forward)
		return m, nil
	}

	if m.ctrl.State().Nav().Mode != gallery.ModeClosed {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
		m.status = "Could not save theme"
	}
}

// applyTheme pushes theme colors into the bubbles components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText

	bg := lipgloss.Color(m.theme.Surface)
	m.help.Styles.ShortKey = styles.AccentText.Background(bg)
	m.help.Styles.ShortDesc = styles.MutedText.Background(bg)
	m.help.Styles.ShortSeparator = styles.FaintText.Background(bg)
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}

// historyStep moves through history with step and restores the location.
func (m *Model) historyStep(step func() (history.Entry, bool)) {
	entry, ok := step()
	if !ok {
		return
	}
	m.logger.Debug("history restore", "path", entry.Path)
	if nav := m.ctrl.Restore(entry.Path).Nav(); nav.IsOpen() {
		m.cursor = nav.Key
	}
}

// refresh normalizes derived UI state after any change: the list cursor,
// its scroll offset and the detail viewport.
func (m *Model) refresh() {
	st := m.ctrl.State()

	m.keys.Back.SetEnabled(m.hist.CanBack())
	m.keys.Forward.SetEnabled(m.hist.CanForward())

	if nav := st.Nav(); nav.IsOpen() {
		m.cursor = nav.Key
	}
	if st.IndexOf(m.cursor) < 0 {
		m.cursor = ""
		if first, ok := st.At(0); ok {
			m.cursor = first.Date
		}
	}

	if !m.ready {
		return
	}
	m.scrollToCursor(maxInt(m.height-chromeHeight-m.searchLineHeight(), 1))
	m.updateDetailViewport()
}

// Messages

type fetchResultMsg struct {
	id      uint64
	rng     state.Range
	records []apod.Record
	err     error
	took    time.Duration
}

// Commands

// fetch registers a request with the store and returns the command that
// performs it. Only the most recent request's result is applied.
func (m Model) fetch(r state.Range) tea.Cmd {
	if m.fetcher == nil {
		return nil
	}
	id := m.store.Begin(r)
	m.logger.Info("fetch started", "request", id, "start", r.Start, "end", r.End)
	return fetchCmd(m.ctx, m.fetcher, id, r)
}

func fetchCmd(ctx context.Context, f apod.Fetcher, id uint64, r state.Range) tea.Cmd {
	return func() tea.Msg {
		started := time.Now()
		records, err := f.FetchRange(ctx, r.Start, r.End)
		return fetchResultMsg{id: id, rng: r, records: records, err: err, took: time.Since(started)}
	}
}

func (m *Model) handleFetchResult(msg fetchResultMsg) {
	snap, ok := m.store.Resolve(msg.id, msg.records, msg.err)
	if !ok {
		m.logger.Debug("stale fetch dropped", "request", msg.id, "range", msg.rng.String())
		return
	}
	m.snapshot = snap
	if err := m.ctrl.OnFetchResult(snap.Records, msg.err); err != nil {
		m.logger.Error("fetch failed", "request", msg.id, "range", msg.rng.String(),
			"error", err, "failures", snap.ConsecutiveFailures)
		return
	}
	m.listOffset = 0
	m.logger.Info("fetch resolved", "request", msg.id, "range", msg.rng.String(),
		"records", len(snap.Records), "took", msg.took.String())
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
