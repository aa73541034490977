package theme

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
)

const (
	hexColorLength     = 6
	hexBase            = 16
	intBitSize         = 64
	luminanceThreshold = 0.5

	rgbMaxValue   = 255.0
	srgbThreshold = 0.03928
	srgbDivisor   = 12.92
	srgbOffset    = 0.055
	srgbScale     = 1.055
	srgbExponent  = 2.4

	// WCAG relative luminance weights.
	lumaRed   = 0.2126
	lumaGreen = 0.7152
	lumaBlue  = 0.0722

	white = "#FFFFFF"
	black = "#000000"
)

// levelLabels are four characters wide so log lines stay aligned.
var levelLabels = map[log.Level]string{
	log.DebugLevel: "DEBU",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARN",
	log.ErrorLevel: "ERRO",
	log.FatalLevel: "FATA",
}

// getContrastTextColor returns black or white depending on the WCAG
// relative luminance of bgColor (#RRGGBB or RRGGBB). Unparseable input
// yields white.
func getContrastTextColor(bgColor string) string {
	hex := bgColor
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != hexColorLength {
		return white
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseInt(hex[i*2:i*2+2], hexBase, intBitSize)
		if err != nil {
			return white
		}
		c := float64(v) / rgbMaxValue
		if c <= srgbThreshold {
			channels[i] = c / srgbDivisor
		} else {
			channels[i] = math.Pow((c+srgbOffset)/srgbScale, srgbExponent)
		}
	}

	luminance := lumaRed*channels[0] + lumaGreen*channels[1] + lumaBlue*channels[2]
	if luminance > luminanceThreshold {
		return black
	}
	return white
}

func levelColor(scheme *ColorScheme, level log.Level) string {
	switch level {
	case log.DebugLevel:
		return scheme.LogDebug
	case log.InfoLevel:
		return scheme.LogInfo
	case log.WarnLevel:
		return scheme.LogWarning
	default:
		return scheme.LogError
	}
}

// GetLogStyles returns charm/log styles with badge-like level labels in
// the scheme's colors.
func GetLogStyles(scheme *ColorScheme) *log.Styles {
	if scheme == nil {
		return log.DefaultStyles()
	}

	styles := log.DefaultStyles()
	for level, label := range levelLabels {
		bg := levelColor(scheme, level)
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(label).
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(getContrastTextColor(bg))).
			Bold(true).
			Padding(0, 1)
	}

	muted := lipgloss.Color(scheme.TextMuted)
	styles.Key = lipgloss.NewStyle().Foreground(muted)
	styles.Value = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Primary))
	styles.Timestamp = lipgloss.NewStyle().Foreground(muted).Faint(true)
	styles.Message = lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.TextPrimary))
	styles.Prefix = lipgloss.NewStyle().Foreground(muted).Bold(true)
	styles.Separator = lipgloss.NewStyle().Foreground(muted).Faint(true)

	return styles
}

// GetLogStylesNoColor returns charm/log styles with no colors for --no-color mode.
func GetLogStylesNoColor() *log.Styles {
	styles := &log.Styles{
		Levels: make(map[log.Level]lipgloss.Style, len(levelLabels)),
		Keys:   make(map[string]lipgloss.Style),
		Values: make(map[string]lipgloss.Style),
	}
	for level, label := range levelLabels {
		styles.Levels[level] = lipgloss.NewStyle().SetString(label)
	}
	return styles
}
