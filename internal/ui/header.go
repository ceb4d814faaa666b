package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/skyview/internal/gallery"
)

// loadErrorText is shown whenever the latest fetch failed.
const loadErrorText = "Failed to load NASA APOD."

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	st := m.ctrl.State()

	parts := []string{bg.Render("skyview", styles.Logo)}

	if r := m.currentRange(); r.String() != "" {
		parts = append(parts, bg.Render(r.String(), styles.InfoText))
	}

	if m.store.InFlight() {
		parts = append(parts, bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+
			bg.Render("Loading...", styles.WarningText))
	}

	if st.Loaded() {
		count := fmt.Sprintf("%d of %d", st.Len(), st.RawLen())
		if compact {
			parts = append(parts, bg.Render(count, styles.Text))
		} else {
			parts = append(parts, bg.Render("Showing:", styles.MutedText)+bg.Space()+bg.Render(count, styles.Text))
		}
	}

	q := st.Query()
	sortText := string(q.Property) + " " + orderArrow(q.Order)
	viewText := string(st.ViewMode())
	if compact {
		parts = append(parts, bg.Render(sortText, styles.AccentText), bg.Render(viewText, styles.AccentText))
	} else {
		parts = append(parts,
			bg.Render("Sort:", styles.MutedText)+bg.Space()+bg.Render(sortText, styles.AccentText),
			bg.Render("View:", styles.MutedText)+bg.Space()+bg.Render(viewText, styles.AccentText),
		)
	}

	if m.snapshot.LastError != nil && !m.store.InFlight() {
		text := bg.Render(loadErrorText, styles.DangerText)
		if !compact {
			text += bg.Space() + bg.Render(truncateText(m.snapshot.LastError.Error(), 60), styles.MutedText)
		}
		parts = append(parts, text)
	}

	if m.status != "" {
		parts = append(parts, bg.Render(m.status, styles.SuccessText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
}

func orderArrow(o gallery.SortOrder) string {
	if o == gallery.Ascending {
		return "↑"
	}
	return "↓"
}

// renderCommandBar renders the key hints for the current context.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	hints := m.help.ShortHelpView(m.contextBindings())
	theme := bg.Render("T", styles.AccentText) + bg.Render(":", styles.FaintText) + bg.Render(m.theme.Name, styles.FaintText)

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join([]string{hints, theme}, bg.Spaces(3)))
}

// contextBindings picks the command bar bindings for the active surface.
func (m Model) contextBindings() []key.Binding {
	switch {
	case m.modal != nil:
		return []key.Binding{m.keys.Tab, m.keys.Confirm, m.keys.Cancel}
	case m.searching:
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	case m.ctrl.State().Nav().Mode != gallery.ModeClosed:
		return m.keys.DetailHelp()
	default:
		return m.keys.ShortHelp()
	}
}
