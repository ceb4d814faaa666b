package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/skyview/internal/apod"
	"github.com/five82/skyview/internal/state"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// rangeSubmittedMsg carries a validated range out of the range form.
type rangeSubmittedMsg state.Range

// rangeForm asks for a start and end date.
type rangeForm struct {
	inputs [2]textinput.Model
	focus  int
	err    string
	today  time.Time
}

var _ Modal = (*rangeForm)(nil)

func newRangeForm(current state.Range, today time.Time) *rangeForm {
	f := &rangeForm{today: today}
	labels := [2]string{"start", "end"}
	values := [2]string{current.Start, current.End}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = apod.DateLayout
		ti.Prompt = padRight(labels[i], 6) + " "
		ti.CharLimit = len(apod.DateLayout)
		ti.Width = len(apod.DateLayout) + 1
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

// Range returns the trimmed input values.
func (f *rangeForm) Range() state.Range {
	return state.Range{
		Start: strings.TrimSpace(f.inputs[0].Value()),
		End:   strings.TrimSpace(f.inputs[1].Value()),
	}
}

func (f *rangeForm) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Cancel):
		return f, nil, true

	case key.Matches(keyMsg, keys.Tab):
		f.setFocus(1 - f.focus)
		return f, nil, false

	case key.Matches(keyMsg, keys.Confirm):
		if f.focus == 0 && strings.TrimSpace(f.inputs[1].Value()) == "" {
			f.setFocus(1)
			return f, nil, false
		}
		r := f.Range()
		if err := apod.ValidateRange(r.Start, r.End, f.today); err != nil {
			f.err = err.Error()
			return f, nil, false
		}
		return f, func() tea.Msg { return rangeSubmittedMsg(r) }, true
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(keyMsg)
	f.err = ""
	return f, cmd, false
}

func (f *rangeForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *rangeForm) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Date range"))
	b.WriteString("\n\n")
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if f.err != "" {
		b.WriteString(styles.DangerText.Render(f.err))
	} else {
		b.WriteString(styles.FaintText.Render("tab switch · enter fetch · esc cancel"))
	}

	box := styles.Modal.Width(40).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
