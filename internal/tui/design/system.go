// Package design defines the dashboard's visual vocabulary. A Theme is an
// explicit value constructed once at startup and passed into every render
// call; nothing in here is mutable process-wide state.
package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Component dimensions shared across renders.
const (
	MinBodyHeight = 4
	MinBodyWidth  = 20
)

// Theme bundles the colors and derived styles for one color scheme.
type Theme struct {
	Name string

	Primary       lipgloss.AdaptiveColor
	Border        lipgloss.AdaptiveColor
	Text          lipgloss.AdaptiveColor
	TextSecondary lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	Success       lipgloss.AdaptiveColor
	Error         lipgloss.AdaptiveColor
	Warning       lipgloss.AdaptiveColor
	Info          lipgloss.AdaptiveColor
	Highlight     lipgloss.AdaptiveColor
	Surface       lipgloss.AdaptiveColor
}

// Default returns the standard dockhand theme.
func Default() Theme {
	return Theme{
		Name: "default",
		Primary: lipgloss.AdaptiveColor{
			Light: "#5A56E0",
			Dark:  "#7571F9",
		},
		Border: lipgloss.AdaptiveColor{
			Light: "#E5E7EB",
			Dark:  "#404040",
		},
		Text: lipgloss.AdaptiveColor{
			Light: "#111827",
			Dark:  "#F9FAFB",
		},
		TextSecondary: lipgloss.AdaptiveColor{
			Light: "#6B7280",
			Dark:  "#9CA3AF",
		},
		TextMuted: lipgloss.AdaptiveColor{
			Light: "#9CA3AF",
			Dark:  "#6B7280",
		},
		Success: lipgloss.AdaptiveColor{
			Light: "#059669",
			Dark:  "#10B981",
		},
		Error: lipgloss.AdaptiveColor{
			Light: "#DC2626",
			Dark:  "#EF4444",
		},
		Warning: lipgloss.AdaptiveColor{
			Light: "#D97706",
			Dark:  "#F59E0B",
		},
		Info: lipgloss.AdaptiveColor{
			Light: "#2563EB",
			Dark:  "#3B82F6",
		},
		Highlight: lipgloss.AdaptiveColor{
			Light: "#EEF2FF",
			Dark:  "#312E81",
		},
		Surface: lipgloss.AdaptiveColor{
			Light: "#F9FAFB",
			Dark:  "#1A1A1A",
		},
	}
}

// fixed builds an AdaptiveColor that renders the same on light and dark
// backgrounds, for the named schemes with a palette of their own.
func fixed(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}

// Blue is a cooler scheme built around blue and cyan accents.
func Blue() Theme {
	return Theme{
		Name:          "blue",
		Primary:       fixed("#2472C8"),
		Border:        fixed("#2472C8"),
		Text:          fixed("#FFFFFF"),
		TextSecondary: fixed("#3B8EEA"),
		TextMuted:     fixed("#808080"),
		Success:       fixed("#0DBC79"),
		Error:         fixed("#CD3131"),
		Warning:       fixed("#E5E510"),
		Info:          fixed("#29B8DB"),
		Highlight:     fixed("#1E3250"),
		Surface:       fixed("#141E32"),
	}
}

// Light is a scheme for light terminal backgrounds.
func Light() Theme {
	return Theme{
		Name:          "light",
		Primary:       fixed("#2472C8"),
		Border:        fixed("#808080"),
		Text:          fixed("#000000"),
		TextSecondary: fixed("#00008B"),
		TextMuted:     fixed("#808080"),
		Success:       fixed("#006400"),
		Error:         fixed("#8B0000"),
		Warning:       fixed("#FF8C00"),
		Info:          fixed("#2472C8"),
		Highlight:     fixed("#ADD8E6"),
		Surface:       fixed("#FAFAFA"),
	}
}

// Dracula follows the Dracula palette.
func Dracula() Theme {
	return Theme{
		Name:          "dracula",
		Primary:       fixed("#8BE9FD"),
		Border:        fixed("#6272A4"),
		Text:          fixed("#F8F8F2"),
		TextSecondary: fixed("#8BE9FD"),
		TextMuted:     fixed("#6272A4"),
		Success:       fixed("#50FA7B"),
		Error:         fixed("#FF5555"),
		Warning:       fixed("#FFFF87"),
		Info:          fixed("#BD93F9"),
		Highlight:     fixed("#44475A"),
		Surface:       fixed("#44475A"),
	}
}

// Gruvbox follows the Gruvbox dark palette.
func Gruvbox() Theme {
	return Theme{
		Name:          "gruvbox",
		Primary:       fixed("#8EC07C"),
		Border:        fixed("#665C54"),
		Text:          fixed("#EBDBB2"),
		TextSecondary: fixed("#BDAE93"),
		TextMuted:     fixed("#928374"),
		Success:       fixed("#8EC07C"),
		Error:         fixed("#FB4934"),
		Warning:       fixed("#FABD2F"),
		Info:          fixed("#83A598"),
		Highlight:     fixed("#504945"),
		Surface:       fixed("#3C3836"),
	}
}

// ForName resolves a configured theme name. Unknown names fall back to the
// default theme.
func ForName(name string) Theme {
	switch name {
	case "blue":
		return Blue()
	case "light":
		return Light()
	case "dracula":
		return Dracula()
	case "gruvbox":
		return Gruvbox()
	default:
		return Default()
	}
}

// TabActive styles the label of the selected tab.
func (t Theme) TabActive() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Padding(0, 1)
}

// TabInactive styles the labels of unselected tabs.
func (t Theme) TabInactive() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.TextSecondary).
		Padding(0, 1)
}

// Panel frames a view body.
func (t Theme) Panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

// PanelTitle styles the title row inside a panel.
func (t Theme) PanelTitle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)
}

// SelectedRow highlights the row under the cursor.
func (t Theme) SelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Highlight).
		Bold(true)
}

// Row styles an unselected row.
func (t Theme) Row() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Text)
}

// Placeholder styles empty/loading bodies.
func (t Theme) Placeholder() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Italic(true)
}

// HelpBar styles the key legend line.
func (t Theme) HelpBar() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.TextSecondary)
}

// Modal frames the image inspect overlay.
func (t Theme) Modal() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)
}

// Label styles field names inside detail output.
func (t Theme) Label() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Info).
		Bold(true)
}

// StatusBar styles the bottom bar; kind selects the accent color.
func (t Theme) StatusBar(kind StatusKind) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	switch kind {
	case StatusSuccess:
		return base.Foreground(t.Success)
	case StatusError:
		return base.Foreground(t.Error)
	case StatusWarning:
		return base.Foreground(t.Warning)
	case StatusInfo:
		return base.Foreground(t.Info)
	default:
		return base.Foreground(t.TextSecondary)
	}
}

// StatusKind selects the accent of a status bar message.
type StatusKind int

const (
	StatusNeutral StatusKind = iota
	StatusInfo
	StatusSuccess
	StatusWarning
	StatusError
)
