package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyview/internal/gallery"
)

// Rows the detail modal spends outside the explanation viewport: border,
// padding, title, meta, media, and the hint line with its spacers.
const detailChromeRows = 2 + 2 + 3 + 1 + 2

// handleDetailKey processes keyboard input while the detail modal is shown.
func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.Apply(gallery.State.Close)
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.Apply(gallery.State.Prev)
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Apply(gallery.State.Next)
	case key.Matches(msg, m.keys.CopyURL):
		m.copyCurrentURL()
	case key.Matches(msg, m.keys.ScrollUp):
		m.detail.ScrollUp(1)
	case key.Matches(msg, m.keys.ScrollDn):
		m.detail.ScrollDown(1)
	}
	return m, nil
}

// copyCurrentURL puts the open record's media URL on the clipboard.
func (m *Model) copyCurrentURL() {
	st := m.ctrl.State()
	r, ok := st.Current()
	if !ok {
		return
	}
	src := gallery.Project(r, st.ViewMode()).Source
	if src == "" {
		m.status = "No URL to copy"
		return
	}
	if err := m.copy(src); err != nil {
		m.logger.Warn("clipboard copy failed", "error", err)
		m.status = "Copy failed"
		return
	}
	m.status = "Copied " + truncateText(src, 48)
}

func (m Model) detailWidth() int {
	return maxInt(minInt(m.width-4, LayoutDetailMaxWidth), 20)
}

// detailInnerWidth is the text width inside border and padding.
func (m Model) detailInnerWidth() int {
	return m.detailWidth() - 2 - 4
}

// updateDetailViewport fills the viewport with the open record's wrapped
// explanation. Scroll resets when the record changes.
func (m *Model) updateDetailViewport() {
	r, ok := m.ctrl.State().Current()
	if !ok {
		m.detailKey = ""
		m.detail.SetContent("")
		return
	}

	inner := m.detailInnerWidth()
	lines := wrapText(r.Explanation, inner)
	maxRows := maxInt(m.height-chromeHeight-detailChromeRows, 1)

	m.detail.Width = inner
	m.detail.Height = minInt(len(lines), maxRows)
	m.detail.SetContent(strings.Join(lines, "\n"))
	if r.Date != m.detailKey {
		m.detail.GotoTop()
		m.detailKey = r.Date
	}
}

// renderDetail renders the modal for the current navigation state.
func (m Model) renderDetail(height int) string {
	st := m.ctrl.State()
	nav := st.Nav()
	styles := m.theme.Styles()
	inner := m.detailInnerWidth()

	var b strings.Builder
	switch {
	case nav.Mode == gallery.ModeNotFound && st.Pending() != "" && m.store.InFlight():
		b.WriteString(m.spinner.View() + " " + styles.MutedText.Render("Loading APOD for "+nav.Key+"..."))

	case nav.Mode == gallery.ModeNotFound:
		b.WriteString(styles.WarningText.Render("APOD not found for date: " + nav.Key))
		b.WriteString("\n\n")
		b.WriteString(styles.FaintText.Render("esc close · [ back"))

	default:
		r, ok := st.Current()
		if !ok {
			return ""
		}
		pos, total := st.Position()
		p := gallery.Project(r, st.ViewMode())

		b.WriteString(styles.AccentText.Bold(true).Render(truncateText(r.Title, inner)))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%s · %d of %d", r.Date, pos, total)))
		b.WriteString("\n")
		badge := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.MediaColor(r.IsImage()))).Render(string(p.Media))
		b.WriteString(badge + " " + styles.InfoText.Render(truncateText(p.Source, inner-len(p.Media)-1)))
		b.WriteString("\n\n")
		b.WriteString(styles.Text.Render(m.detail.View()))
		b.WriteString("\n\n")
		b.WriteString(m.detailHints(st, styles))
	}

	box := styles.Modal.
		Width(m.detailWidth()).
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Render(b.String())
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

// detailHints shows the modal's keys, dimming moves that would be no-ops.
func (m Model) detailHints(st gallery.State, styles Styles) string {
	hint := func(enabled bool, text string) string {
		if enabled {
			return styles.MutedText.Render(text)
		}
		return styles.FaintText.Strikethrough(true).Render(text)
	}
	parts := []string{
		hint(st.HasPrev(), "← prev"),
		hint(st.HasNext(), "→ next"),
		styles.MutedText.Render("y copy url"),
		styles.MutedText.Render("esc close"),
	}
	if !m.detail.AtTop() || !m.detail.AtBottom() {
		parts = append(parts, styles.FaintText.Render(fmt.Sprintf("%3.f%%", m.detail.ScrollPercent()*100)))
	}
	return strings.Join(parts, "  ")
}
