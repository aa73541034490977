package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-wordwrap"

	"github.com/cloudposse/stopwatch/pkg/terminal"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	newline    = "\n"
	hintIndent = "    "
	hintMarker = "hint: "
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose adds the full error chain with stack traces.
	Verbose bool

	// Color controls color output: "auto", "always", or "never".
	Color string

	// NoColor carries --no-color into "auto" mode.
	NoColor bool

	// MaxLineLength is the maximum length before wrapping (default: 80).
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose:       false,
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format formats an error for display, followed by any hints attached
// with errors.WithHint.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config)

	errorStyle := lipgloss.NewStyle()
	hintStyle := lipgloss.NewStyle()
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color("#FF0000"))
		hintStyle = hintStyle.Foreground(lipgloss.Color("#808080"))
	}

	var output strings.Builder

	mainMsg := "Error: " + err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		output.WriteString(errorStyle.Render(wrapText(mainMsg, config.MaxLineLength)))
	} else {
		output.WriteString(errorStyle.Render(mainMsg))
	}

	hints := errors.GetAllHints(err)
	if len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString(newline)
			output.WriteString(hintIndent + hintStyle.Render(hintMarker+hint))
		}
	}

	if config.Verbose {
		output.WriteString(newline + newline)
		output.WriteString(formatStackTrace(err, useColor))
	}

	return output.String()
}

// shouldUseColor determines if color output should be used.
func shouldUseColor(config FormatterConfig) bool {
	switch config.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return terminal.NewConfig(config.NoColor).ShouldUseColor(terminal.IsTerminal(os.Stderr))
	}
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}
	return wordwrap.WrapString(strings.Join(strings.Fields(text), " "), uint(width))
}

// formatStackTrace formats the full error chain with stack traces.
func formatStackTrace(err error, useColor bool) string {
	style := lipgloss.NewStyle()
	if useColor {
		style = style.Foreground(lipgloss.Color("#808080"))
	}

	return style.Render(fmt.Sprintf("%+v", err))
}
