package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of the stopwatch widget.
type Styles struct {
	Title          lipgloss.Style
	Display        lipgloss.Style
	RunningDisplay lipgloss.Style
	Button         lipgloss.Style
	FocusedButton  lipgloss.Style
	DisabledButton lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles builds widget styles from a color scheme.
func NewStyles(scheme ColorScheme) Styles {
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.TextPrimary)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Border)).
		Padding(0, 2)

	display := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.TextPrimary)).
		Padding(1, 2)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Primary)),
		Display:        display,
		RunningDisplay: display.Foreground(lipgloss.Color(scheme.Success)),
		Button:         button,
		FocusedButton: button.
			BorderForeground(lipgloss.Color(scheme.Selected)).
			Foreground(lipgloss.Color(scheme.Selected)).
			Bold(true),
		DisabledButton: button.
			BorderForeground(lipgloss.Color(scheme.TextMuted)).
			Foreground(lipgloss.Color(scheme.TextMuted)).
			Faint(true),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextSecondary)),
	}
}

// DefaultStyles returns the styles of the default theme.
func DefaultStyles() Styles {
	scheme, err := GetColorSchemeForTheme(DefaultThemeName)
	if err != nil {
		return NewStyles(ColorScheme{})
	}
	return NewStyles(*scheme)
}
