package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/stopwatch/errors"
	log "github.com/cloudposse/stopwatch/pkg/logger"
	"github.com/cloudposse/stopwatch/pkg/schema"
	"github.com/cloudposse/stopwatch/pkg/xdg"
)

// Options control where configuration is read from.
type Options struct {
	// ConfigFile is an explicit config file. It must exist when set.
	ConfigFile string

	// SearchPaths are directories searched for stopwatch.yaml, lowest
	// priority first. Nil means DefaultSearchPaths.
	SearchPaths []string

	// Flags are bound over every other source when changed.
	Flags *pflag.FlagSet
}

// DefaultSearchPaths returns the XDG config directory followed by the
// current working directory.
func DefaultSearchPaths() []string {
	paths := []string{xdg.ConfigDir()}
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, wd)
	}
	return paths
}

// Load merges configuration from the following sources (lowest to highest
// priority): defaults, stopwatch.yaml in each search path, the explicit
// config file, STOPWATCH_* environment variables, and changed flags.
func Load(opts Options) (schema.Configuration, error) {
	var cfg schema.Configuration

	v := viper.New()
	v.SetConfigType(configFileType)
	setDefaultConfiguration(v)

	searchPaths := opts.SearchPaths
	if searchPaths == nil {
		searchPaths = DefaultSearchPaths()
	}

	used := ""
	for _, dir := range searchPaths {
		path := filepath.Join(dir, CliConfigFileName+"."+configFileType)
		found, err := mergeConfigFile(v, path)
		if err != nil {
			return cfg, err
		}
		if found {
			used = path
		}
	}

	if opts.ConfigFile != "" {
		found, err := mergeConfigFile(v, opts.ConfigFile)
		if err != nil {
			return cfg, err
		}
		if !found {
			return cfg, errors.WithHint(
				errors.Wrapf(errUtils.ErrLoadConfig, "config file %s does not exist", opts.ConfigFile),
				"Check the path passed to --config",
			)
		}
		used = opts.ConfigFile
	}

	if err := bindEnv(v); err != nil {
		return cfg, err
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return cfg, errors.Mark(errors.Wrap(err, "decode configuration"), errUtils.ErrLoadConfig)
	}

	cfg.ConfigFileUsed = used
	if used == "" {
		log.Debug("stopwatch.yaml was not found, using defaults", "paths", strings.Join(searchPaths, ", "))
	} else {
		log.Debug("Loaded configuration", "file", used)
	}
	return cfg, nil
}

func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault(KeyLogsFile, DefaultLogsFile)
	v.SetDefault(KeyLogsLevel, DefaultLogsLevel)
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyAltScreen, false)
}

// mergeConfigFile merges path into v. A missing file is reported as not
// found rather than as an error.
func mergeConfigFile(v *viper.Viper, path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Trace("config file not found", "file", path)
		return false, nil
	}
	if err != nil {
		return false, errors.Mark(errors.Wrapf(err, "stat %s", path), errUtils.ErrLoadConfig)
	}
	if info.IsDir() {
		return false, errors.Wrapf(errUtils.ErrLoadConfig, "%s is a directory", path)
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return false, errors.WithHint(
			errors.Mark(errors.Wrapf(err, "read %s", path), errUtils.ErrLoadConfig),
			"Config files must be valid YAML",
		)
	}
	return true, nil
}

// bindEnv maps STOPWATCH_LOGS_LEVEL style variables onto keys. The theme
// also answers to the shorter STOPWATCH_THEME.
func bindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv(KeyTheme, EnvPrefix+"_SETTINGS_TERMINAL_THEME", EnvPrefix+"_THEME"); err != nil {
		return errors.Mark(err, errUtils.ErrLoadConfig)
	}
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Mark(errors.Wrapf(err, "bind flag --%s", name), errUtils.ErrLoadConfig)
		}
	}
	return nil
}
