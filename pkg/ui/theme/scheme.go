package theme

// ColorScheme defines semantic color mappings for UI elements.
// These are derived from a Theme's ANSI colors.
type ColorScheme struct {
	Primary   string // Main action color
	Secondary string // Supporting accents
	Success   string // Running state
	Warning   string // Warning states
	Error     string // Error states

	TextPrimary   string // Main text
	TextSecondary string // Help and secondary text
	TextMuted     string // Disabled controls

	Border     string // Borders around controls
	Background string // Theme background
	Selected   string // Focused control

	LogDebug   string
	LogInfo    string
	LogWarning string
	LogError   string
}

// GenerateColorScheme creates a semantic color scheme from a Theme.
func GenerateColorScheme(t *Theme) ColorScheme {
	textPrimary := t.White
	if !t.Meta.IsDark {
		textPrimary = t.Black
		if t.Foreground != "" {
			textPrimary = t.Foreground
		}
	}

	return ColorScheme{
		Primary:   t.Blue,
		Secondary: t.Magenta,
		Success:   t.Green,
		Warning:   t.Yellow,
		Error:     t.Red,

		TextPrimary:   textPrimary,
		TextSecondary: t.BrightBlack,
		TextMuted:     t.BrightBlack,

		Border:     t.Blue,
		Background: t.Background,
		Selected:   t.BrightGreen,

		LogDebug:   t.Cyan,
		LogInfo:    t.Blue,
		LogWarning: t.Yellow,
		LogError:   t.Red,
	}
}

// GetColorSchemeForTheme loads a theme by name and generates its color scheme.
func GetColorSchemeForTheme(themeName string) (*ColorScheme, error) {
	t, err := Get(themeName)
	if err != nil {
		return nil, err
	}
	scheme := GenerateColorScheme(t)
	return &scheme, nil
}
