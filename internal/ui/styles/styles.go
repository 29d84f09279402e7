// Package styles defines the visual appearance for the KeySummon TUI.
// Using Catppuccin Mocha color palette for a modern, aesthetic look.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha color palette
var (
	Mauve    = lipgloss.Color("#CBA6F7")
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Yellow   = lipgloss.Color("#F9E2AF")
	Green    = lipgloss.Color("#A6E3A1")
	Sapphire = lipgloss.Color("#74C7EC")
	Blue     = lipgloss.Color("#89B4FA")

	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface1 = lipgloss.Color("#45475A")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1E1E2E")
	Mantle   = lipgloss.Color("#181825")
)

// Semantic colors (using the palette)
var (
	Primary     = Mauve
	Accent      = Sapphire
	Danger      = Red
	Warning     = Peach
	Success     = Green
	Info        = Blue
	TextCol     = Text
	TextMuted   = Subtext0
	Border      = Surface1
	BorderFocus = Mauve
)

// Base styles
var (
	// BorderStyle for panels
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	// FocusedBorderStyle for focused panels
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderFocus)
)

// Panel styles
var (
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			Padding(0, 1)

	PanelTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary).
				Padding(0, 1)
)

// Tab styles
var (
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 2)
)

// List item styles
var (
	ListItem = lipgloss.NewStyle().
			Foreground(TextCol).
			Padding(0, 1)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextCol).
				Background(Surface0).
				Bold(true).
				Padding(0, 1)

	ListItemDim = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1)
)

// StatusBar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(Mantle).
			Padding(0, 1)

	StatusBarKey = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	StatusBarBrand = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Form styles
var (
	FormLabel = lipgloss.NewStyle().
			Foreground(TextMuted)

	FormLabelFocused = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true)

	FormError = lipgloss.NewStyle().
			Foreground(Danger)
)

// Message styles
var (
	MsgSuccess = lipgloss.NewStyle().Foreground(Success)
	MsgError   = lipgloss.NewStyle().Foreground(Danger)
	MsgInfo    = lipgloss.NewStyle().Foreground(TextMuted)
)

// RenderStatusDot returns a colored enabled indicator.
func RenderStatusDot(enabled bool) string {
	if enabled {
		return lipgloss.NewStyle().Foreground(Success).Render("●")
	}
	return lipgloss.NewStyle().Foreground(Overlay0).Render("○")
}

// TruncateWithEllipsis truncates a string to maxLen with ellipsis.
func TruncateWithEllipsis(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
