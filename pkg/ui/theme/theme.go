package theme

import (
	_ "embed"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/stopwatch/errors"
)

// themes.json uses the terminal theme format of https://github.com/charmbracelet/vhs.
//
//go:embed themes.json
var themesJSON []byte

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "default"

// Credit represents theme author information.
type Credit struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Meta holds theme metadata including whether the theme is designed for dark mode
// and optional credit information for the theme's creators or sources.
type Meta struct {
	IsDark  bool      `json:"isDark"`
	Credits *[]Credit `json:"credits,omitempty"`
}

// Theme represents a terminal color theme.
type Theme struct {
	Name          string `json:"name"`
	Black         string `json:"black"`
	Red           string `json:"red"`
	Green         string `json:"green"`
	Yellow        string `json:"yellow"`
	Blue          string `json:"blue"`
	Magenta       string `json:"magenta"`
	Cyan          string `json:"cyan"`
	White         string `json:"white"`
	BrightBlack   string `json:"brightBlack"`
	BrightRed     string `json:"brightRed"`
	BrightGreen   string `json:"brightGreen"`
	BrightYellow  string `json:"brightYellow"`
	BrightBlue    string `json:"brightBlue"`
	BrightMagenta string `json:"brightMagenta"`
	BrightCyan    string `json:"brightCyan"`
	BrightWhite   string `json:"brightWhite"`
	Background    string `json:"background"`
	Foreground    string `json:"foreground"`
	Cursor        string `json:"cursor"`
	Selection     string `json:"selection"`
	Meta          Meta   `json:"meta"`
}

// RecommendedThemes is a curated list of themes that render the stopwatch well.
var RecommendedThemes = []string{
	"default",
	"Dracula",
	"Nord",
}

var (
	loadOnce sync.Once
	loaded   []*Theme
	loadErr  error
)

// IsRecommended checks if a theme is in the recommended list.
func IsRecommended(themeName string) bool {
	for _, recommended := range RecommendedThemes {
		if strings.EqualFold(recommended, themeName) {
			return true
		}
	}
	return false
}

// LoadThemes loads all themes from the embedded JSON file.
func LoadThemes() ([]*Theme, error) {
	loadOnce.Do(func() {
		var themes []*Theme
		if err := json.Unmarshal(themesJSON, &themes); err != nil {
			loadErr = errors.Wrap(err, "failed to unmarshal themes")
			return
		}
		SortThemes(themes)
		loaded = themes
	})
	return loaded, loadErr
}

// SortThemes sorts themes alphabetically by name.
func SortThemes(themes []*Theme) {
	sort.Slice(themes, func(i, j int) bool {
		return strings.ToLower(themes[i].Name) < strings.ToLower(themes[j].Name)
	})
}

// FindTheme searches for a theme by name (case-insensitive).
// Dashes in name match spaces, so "solarized-dark" finds "Solarized Dark".
func FindTheme(themes []*Theme, name string) (*Theme, bool) {
	normalized := strings.ReplaceAll(name, "-", " ")
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) || strings.EqualFold(t.Name, normalized) {
			return t, true
		}
	}
	return nil, false
}

// Get returns the named theme. An empty name selects the default theme.
func Get(name string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}

	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}

	t, ok := FindTheme(themes, name)
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(errUtils.ErrThemeNotFound, "theme %q", name),
			"Run `stopwatch themes` to list available themes. Known themes: %s", strings.Join(Names(), ", "),
		)
	}
	return t, nil
}

// Names returns the names of all embedded themes, sorted.
func Names() []string {
	themes, err := LoadThemes()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}
	return names
}
