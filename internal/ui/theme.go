package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/skyview/internal/apod"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, command bar, cards
	SurfaceAlt string // Modals
	FocusBg    string // Focused card

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Gallery card bands are blended between these two by day of year.
	BandFrom string
	BandTo   string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Modal    lipgloss.Style
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
// This ensures styled text has explicit backgrounds instead of transparent/inherit.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	return Styles{
		Background:  s.Background.Background(bg),
		Surface:     s.Surface.Background(bg),
		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),
		Header:      s.Header.Background(bg),
		Logo:        s.Logo.Background(bg),
		Selected:    s.Selected,
		Modal:       s.Modal.BorderBackground(bg).Background(bg),
	}
}

// BandColor returns the gallery card band color for r. Dates spread across
// the theme's band gradient by day of year; records without a usable date
// sit in the middle.
func (t Theme) BandColor(r apod.Record) string {
	from, err := colorful.Hex(t.BandFrom)
	if err != nil {
		return t.Accent
	}
	to, err := colorful.Hex(t.BandTo)
	if err != nil {
		return t.Accent
	}
	pos := 0.5
	if d, ok := r.ParseDate(); ok {
		pos = float64(d.YearDay()-1) / 365
	}
	return from.BlendLab(to, pos).Clamped().Hex()
}

// MediaColor returns the badge color for a media type.
func (t Theme) MediaColor(isImage bool) string {
	if isImage {
		return t.Success
	}
	return t.Info
}

// Theme definitions

var themes = map[string]Theme{
	"Nebula":   nebulaTheme(),
	"Kanagawa": kanagawaTheme(),
	"Daylight": daylightTheme(),
}

var themeOrder = []string{"Nebula", "Kanagawa", "Daylight"}

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nebulaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nebulaTheme() Theme {
	return Theme{
		Name: "Nebula",

		Background: "#0b0e1a",
		Surface:    "#141a2e",
		SurfaceAlt: "#1c2340",
		FocusBg:    "#263058",

		SelectionBg:   "#3b3f8f",
		SelectionText: "#eef0ff",

		Border:      "#2e3760",
		BorderFocus: "#8c7cf0",

		Text:    "#dfe3f5",
		Muted:   "#8e95b8",
		Faint:   "#5f6689",
		Accent:  "#8c7cf0", // violet
		Success: "#7bd88f",
		Warning: "#f5c26b",
		Danger:  "#f0627a",
		Info:    "#62c6f0",

		BandFrom: "#2b1b5a", // deep violet
		BandTo:   "#d9577a", // emission pink
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#2A2A37", // sumiInk4

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Border:      "#54546D", // sumiInk6
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue

		BandFrom: "#223249", // waveBlue1
		BandTo:   "#957FB8", // oniViolet
	}
}

func daylightTheme() Theme {
	return Theme{
		Name: "Daylight",

		Background: "#f8fafc",
		Surface:    "#e2e8f0",
		SurfaceAlt: "#f1f5f9",
		FocusBg:    "#cbd5e1",

		SelectionBg:   "#0284c7",
		SelectionText: "#f8fafc",

		Border:      "#94a3b8",
		BorderFocus: "#0284c7",

		Text:    "#0f172a",
		Muted:   "#475569",
		Faint:   "#64748b",
		Accent:  "#0369a1",
		Success: "#15803d",
		Warning: "#b45309",
		Danger:  "#b91c1c",
		Info:    "#0e7490",

		BandFrom: "#7dd3fc", // morning sky
		BandTo:   "#fb923c", // sunset
	}
}
