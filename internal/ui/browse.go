package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyview/internal/apod"
	"github.com/five82/skyview/internal/gallery"
	"github.com/five82/skyview/internal/state"
)

// handleListKey processes keyboard input while no detail is open.
func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	st := m.ctrl.State()
	idx := maxInt(st.IndexOf(m.cursor), 0)
	rowStep := 1
	if st.ViewMode() == gallery.ViewGallery {
		rowStep = gridColumns(m.width)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if st.Query().Search != "" {
			m.search.SetValue("")
			m.ctrl.Search("")
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(st.Query().Search)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.CycleSort):
		m.ctrl.Apply(gallery.State.CycleSortProperty)

	case key.Matches(msg, m.keys.ToggleSort):
		m.ctrl.Apply(gallery.State.ToggleSortOrder)

	case key.Matches(msg, m.keys.ToggleView):
		m.ctrl.Apply(gallery.State.ToggleViewMode)
		m.listOffset = 0

	case key.Matches(msg, m.keys.DateRange):
		m.modal = newRangeForm(m.currentRange(), m.now())

	case key.Matches(msg, m.keys.Open):
		if m.cursor != "" {
			m.ctrl.Select(m.cursor)
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(idx - rowStep)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(idx + rowStep)
	case key.Matches(msg, m.keys.Left):
		if st.ViewMode() == gallery.ViewGallery {
			m.moveCursor(idx - 1)
		}
	case key.Matches(msg, m.keys.Right):
		if st.ViewMode() == gallery.ViewGallery {
			m.moveCursor(idx + 1)
		}
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(st.Len() - 1)
	}

	return m, nil
}

// handleSearchKey feeds keys to the search box. The filter is applied on
// every keystroke; enter keeps it, esc clears it.
func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.ctrl.Search("")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.ctrl.State().Query().Search {
		m.ctrl.Search(value)
	}
	return m, cmd
}

// moveCursor puts the cursor on the record at index i, clamped to the list.
func (m *Model) moveCursor(i int) {
	st := m.ctrl.State()
	if st.Len() == 0 {
		return
	}
	i = maxInt(0, minInt(i, st.Len()-1))
	if r, ok := st.At(i); ok {
		m.cursor = r.Date
	}
}

// currentRange is the range the form should start from.
func (m Model) currentRange() state.Range {
	if m.store.InFlight() {
		return m.store.Pending()
	}
	if m.snapshot.HasData {
		return m.snapshot.Range
	}
	return m.initial
}

func (m Model) searchLineHeight() int {
	if m.searching || m.ctrl.State().Query().Search != "" {
		return 1
	}
	return 0
}

// scrollToCursor adjusts listOffset so the cursor is visible in height rows.
func (m *Model) scrollToCursor(height int) {
	st := m.ctrl.State()
	idx := st.IndexOf(m.cursor)
	if idx < 0 {
		m.listOffset = 0
		return
	}

	if st.ViewMode() == gallery.ViewGallery {
		cols := gridColumns(m.width)
		visibleRows := maxInt((height+CardRowGap)/(gallery.ThumbnailHeight+CardRowGap), 1)
		row := idx / cols
		first := m.listOffset / cols
		if row < first {
			first = row
		}
		if row >= first+visibleRows {
			first = row - visibleRows + 1
		}
		m.listOffset = first * cols
		return
	}

	if m.listOffset > idx {
		m.listOffset = idx
	}
	records := st.Records()
	for m.listOffset < idx && m.linesBetween(records, m.listOffset, idx) > height {
		m.listOffset++
	}
}

func (m Model) linesBetween(records []apod.Record, from, to int) int {
	total := 0
	for i := from; i <= to && i < len(records); i++ {
		total += len(m.listTitleLines(records[i]))
	}
	return total
}

// renderBrowse renders the search line and the list or gallery below it.
func (m Model) renderBrowse(height int) string {
	var b strings.Builder
	if lines := m.searchLineHeight(); lines > 0 {
		b.WriteString(m.renderSearchLine())
		b.WriteString("\n")
		height -= lines
	}

	st := m.ctrl.State()
	var body string
	switch {
	case st.Len() == 0:
		body = m.renderEmpty(height)
	case st.ViewMode() == gallery.ViewGallery:
		body = m.renderGrid(height)
	default:
		body = m.renderList(height)
	}
	b.WriteString(lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body))
	return b.String()
}

func (m Model) renderSearchLine() string {
	styles := m.theme.Styles()
	if m.searching {
		return m.search.View()
	}
	q := m.ctrl.State().Query().Search
	return styles.AccentText.Render("/ ") + styles.Text.Render(q) +
		styles.FaintText.Render("  (esc clears)")
}

func (m Model) renderEmpty(height int) string {
	styles := m.theme.Styles()
	st := m.ctrl.State()

	var msg string
	switch {
	case m.store.InFlight() && !st.Loaded():
		msg = m.spinner.View() + " Fetching pictures..."
	case !st.Loaded() && m.snapshot.LastError != nil:
		msg = "Nothing loaded. Press r to choose a date range."
	case st.RawLen() == 0:
		msg = "No pictures in this date range."
	default:
		msg = fmt.Sprintf("No titles match %q.", st.Query().Search)
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, styles.MutedText.Render(msg))
}

// listTitleWidth is the room left for the title between date and badge.
func (m Model) listTitleWidth() int {
	return maxInt(m.width-listMarkerWidth-listDateWidth-listBadgeWidth-2, 10)
}

// listTitleLines lays out the title of r for the list view. List rows have
// natural height, so the whole title is kept.
func (m Model) listTitleLines(r apod.Record) []string {
	return wrapText(r.Title, m.listTitleWidth())
}

func (m Model) renderList(height int) string {
	st := m.ctrl.State()
	records := st.Records()
	styles := m.theme.Styles()

	var lines []string
	for i := m.listOffset; i < len(records) && len(lines) < height; i++ {
		lines = append(lines, m.renderListRow(records[i], records[i].Date == m.cursor, styles)...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderListRow(r apod.Record, selected bool, styles Styles) []string {
	p := gallery.Project(r, gallery.ViewList)
	titleLines := m.listTitleLines(r)
	titleWidth := m.listTitleWidth()

	badge := string(p.Media)
	marker := "  "
	if selected {
		marker = "▸ "
	}

	rows := make([]string, 0, len(titleLines))
	for i, title := range titleLines {
		lead := strings.Repeat(" ", listMarkerWidth+listDateWidth)
		tail := ""
		if i == 0 {
			lead = marker + padRight(r.Date, listDateWidth)
			tail = badge
		}
		if selected {
			line := lead + padRight(title, titleWidth) + "  " + padRight(tail, listBadgeWidth)
			rows = append(rows, styles.Selected.Width(m.width).Render(line))
			continue
		}
		badgeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.MediaColor(r.IsImage())))
		rows = append(rows, styles.MutedText.Render(lead)+
			styles.Text.Render(padRight(title, titleWidth))+"  "+
			badgeStyle.Render(tail))
	}
	return rows
}

func (m Model) renderGrid(height int) string {
	st := m.ctrl.State()
	records := st.Records()
	cols := gridColumns(m.width)
	gap := strings.Repeat(" ", CardGap)

	var rows []string
	used := 0
	for start := m.listOffset; start < len(records); start += cols {
		if used > 0 && used+gallery.ThumbnailHeight > height {
			break
		}
		end := minInt(start+cols, len(records))
		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}
			cards = append(cards, m.renderCard(records[i], records[i].Date == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		used += gallery.ThumbnailHeight + CardRowGap
	}
	return strings.Join(rows, strings.Repeat("\n", CardRowGap+1))
}

// renderCard draws one fixed-height gallery card: a color band, the title
// cropped to fill the remaining space, then date and media badge.
func (m Model) renderCard(r apod.Record, selected bool) string {
	p := gallery.Project(r, gallery.ViewGallery)

	bandStyle := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.BandColor(r)))
	bandLine := bandStyle.Render(strings.Repeat(" ", CardWidth))
	band := strings.TrimSuffix(strings.Repeat(bandLine+"\n", BandHeight), "\n")

	bodyHeight := p.Height - BandHeight
	inner := CardWidth - 2
	titleRows := maxInt(bodyHeight-1, 1)

	bg, fg := m.theme.Surface, m.theme.Text
	if selected {
		bg, fg = m.theme.SelectionBg, m.theme.SelectionText
	}

	title := wrapText(r.Title, inner)
	if p.Fit == gallery.FitCover && len(title) > titleRows {
		title = title[:titleRows]
		last := title[titleRows-1]
		title[titleRows-1] = truncateText(last+" …", inner)
	}
	for len(title) < titleRows {
		title = append(title, "")
	}

	meta := padRight(r.Date, inner-len(p.Media)) + string(p.Media)
	body := lipgloss.NewStyle().
		Width(CardWidth).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Padding(0, 1).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Render(strings.Join(append(title, meta), "\n"))

	return band + "\n" + body
}
