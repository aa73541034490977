package xdg

import (
	"os"
	"path/filepath"

	adrg "github.com/adrg/xdg"
)

const (
	appName = "stopwatch"

	// ConfigHomeOverrideEnv takes precedence over XDG_CONFIG_HOME for the
	// stopwatch only.
	ConfigHomeOverrideEnv = "STOPWATCH_XDG_CONFIG_HOME"
	configHomeEnv         = "XDG_CONFIG_HOME"
)

// ConfigDir returns the stopwatch config directory joined with subpath.
// The base is $STOPWATCH_XDG_CONFIG_HOME, then $XDG_CONFIG_HOME, then the
// platform default. The environment is read on every call. Nothing is
// created on disk.
func ConfigDir(subpath ...string) string {
	base := os.Getenv(ConfigHomeOverrideEnv)
	if base == "" {
		base = os.Getenv(configHomeEnv)
	}
	if base == "" {
		base = adrg.ConfigHome
	}
	return filepath.Join(append([]string{base, appName}, subpath...)...)
}
