package terminal

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Config holds the color settings from flags, configuration and the
// environment.
type Config struct {
	// NoColor comes from --no-color or settings.terminal.no_color.
	NoColor bool

	EnvNoColor       bool   // NO_COLOR
	EnvCLIColor      string // CLICOLOR
	EnvCLIColorForce bool   // CLICOLOR_FORCE
}

// NewConfig reads the color environment variables and combines them with
// the configured no-color setting.
func NewConfig(noColor bool) Config {
	return Config{
		NoColor:          noColor,
		EnvNoColor:       os.Getenv("NO_COLOR") != "",
		EnvCLIColor:      os.Getenv("CLICOLOR"),
		EnvCLIColorForce: os.Getenv("CLICOLOR_FORCE") != "",
	}
}

// ShouldUseColor determines if color should be used.
// Priority (highest to lowest):
// 1. NO_COLOR env var - disables all color
// 2. CLICOLOR=0 - disables color (unless CLICOLOR_FORCE is set)
// 3. CLICOLOR_FORCE - forces color even for non-TTY
// 4. --no-color flag or settings.terminal.no_color
// 5. Default (true for TTY, false for non-TTY)
func (c Config) ShouldUseColor(isTTY bool) bool {
	if c.EnvNoColor {
		return false
	}
	if c.EnvCLIColor == "0" && !c.EnvCLIColorForce {
		return false
	}
	if c.EnvCLIColorForce {
		return true
	}
	if c.NoColor {
		return false
	}
	return isTTY
}

// Profile returns the color profile to render with. The second return is
// false when profile detection should be left to lipgloss.
func (c Config) Profile(isTTY bool) (termenv.Profile, bool) {
	switch {
	case !c.ShouldUseColor(isTTY):
		return termenv.Ascii, true
	case c.EnvCLIColorForce && !isTTY:
		return termenv.ANSI256, true
	default:
		return termenv.Ascii, false
	}
}

// Apply sets the global lipgloss color profile for output written to w.
func (c Config) Apply(w io.Writer) {
	if profile, ok := c.Profile(IsTerminal(w)); ok {
		lipgloss.SetColorProfile(profile)
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
