package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
)

const (
	iconActive      = "●"
	iconRecommended = "★"
)

// ListThemesOptions contains options for listing themes.
type ListThemesOptions struct {
	RecommendedOnly bool
	ActiveTheme     string
	// Table selects the bordered table layout used on terminals.
	Table bool
}

// ListThemesResult contains the formatted output for theme listing.
type ListThemesResult struct {
	Output          string
	ThemeCount      int
	ActiveTheme     string
	RecommendedOnly bool
}

// ListThemes generates a formatted list of available themes.
func ListThemes(opts ListThemesOptions) (ListThemesResult, error) {
	themes, err := LoadThemes()
	if err != nil {
		return ListThemesResult{}, err
	}

	if opts.RecommendedOnly {
		themes = filterRecommended(themes, opts.ActiveTheme)
	}

	var output string
	if opts.Table {
		output = formatThemeTable(themes, opts)
	} else {
		output = formatSimpleThemeList(themes, opts)
	}

	return ListThemesResult{
		Output:          output,
		ThemeCount:      len(themes),
		ActiveTheme:     opts.ActiveTheme,
		RecommendedOnly: opts.RecommendedOnly,
	}, nil
}

// filterRecommended returns only recommended themes, but ensures the active theme is included.
func filterRecommended(themes []*Theme, activeTheme string) []*Theme {
	return lo.Filter(themes, func(t *Theme, _ int) bool {
		return IsRecommended(t.Name) || isActive(t, activeTheme)
	})
}

func isActive(t *Theme, activeTheme string) bool {
	if activeTheme == "" {
		return false
	}
	found, ok := FindTheme([]*Theme{t}, activeTheme)
	return ok && found == t
}

func statusIndicator(t *Theme, opts ListThemesOptions) string {
	switch {
	case isActive(t, opts.ActiveTheme):
		return iconActive
	case !opts.RecommendedOnly && IsRecommended(t.Name):
		return iconRecommended
	default:
		return ""
	}
}

func themeType(t *Theme) string {
	if t.Meta.IsDark {
		return "Dark"
	}
	return "Light"
}

func formatSimpleThemeList(themes []*Theme, opts ListThemesOptions) string {
	var b strings.Builder
	for _, t := range themes {
		fmt.Fprintf(&b, "%-2s%-20s %s\n", statusIndicator(t, opts), t.Name, themeType(t))
	}
	return b.String()
}

func formatThemeTable(themes []*Theme, opts ListThemesOptions) string {
	rows := make([][]string, 0, len(themes))
	for _, t := range themes {
		rows = append(rows, []string{statusIndicator(t, opts), t.Name, themeType(t), swatch(t)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("", "Name", "Type", "Palette").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			return style
		}).
		String() + "\n"
}

// swatch renders the theme's primary colors as blocks.
func swatch(t *Theme) string {
	var b strings.Builder
	for _, c := range []string{t.Red, t.Green, t.Yellow, t.Blue, t.Magenta, t.Cyan} {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("█"))
	}
	return b.String()
}
