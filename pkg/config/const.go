package config

const (
	AppName = "stopwatch"

	// CliConfigFileName is the config file name without extension.
	CliConfigFileName = "stopwatch"
	configFileType    = "yaml"

	EnvPrefix = "STOPWATCH"

	DefaultLogsFile  = "/dev/stderr"
	DefaultLogsLevel = "Warning"
	DefaultTheme     = "default"
)

// Viper keys.
const (
	KeyLogsFile  = "logs.file"
	KeyLogsLevel = "logs.level"
	KeyTheme     = "settings.terminal.theme"
	KeyNoColor   = "settings.terminal.no_color"
	KeyAltScreen = "settings.terminal.alt_screen"
)

// Flag names bound to the keys above.
const (
	FlagConfig    = "config"
	FlagLogsFile  = "logs-file"
	FlagLogsLevel = "logs-level"
	FlagTheme     = "theme"
	FlagNoColor   = "no-color"
	FlagAltScreen = "alt-screen"
	// FlagVerbose only affects error output and has no config key.
	FlagVerbose = "verbose"
)

// flagKeys maps each flag to the config key it overrides.
var flagKeys = map[string]string{
	FlagLogsFile:  KeyLogsFile,
	FlagLogsLevel: KeyLogsLevel,
	FlagTheme:     KeyTheme,
	FlagNoColor:   KeyNoColor,
	FlagAltScreen: KeyAltScreen,
}
