package cmd

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	mouseZone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/stopwatch/errors"
	tui "github.com/cloudposse/stopwatch/internal/tui/stopwatch"
	"github.com/cloudposse/stopwatch/pkg/config"
	log "github.com/cloudposse/stopwatch/pkg/logger"
	"github.com/cloudposse/stopwatch/pkg/schema"
	"github.com/cloudposse/stopwatch/pkg/terminal"
	"github.com/cloudposse/stopwatch/pkg/ui/theme"
)

// exitCodeInterrupted is the POSIX exit code for SIGINT (128 + 2).
const exitCodeInterrupted = 130

var (
	// stopwatchConfig is set by initConfig before any command runs.
	stopwatchConfig schema.Configuration
	// colorScheme is the resolved scheme of the configured theme.
	colorScheme *theme.ColorScheme
	// logCloser releases the log file opened by initConfig.
	logCloser io.Closer

	// errorFormat is how main prints the error Execute returns.
	errorFormat = errUtils.DefaultFormatterConfig()

	// configSearchPaths overrides config.DefaultSearchPaths when non-nil.
	configSearchPaths []string
)

func newRootCmd(runner ProgramRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stopwatch",
		Short: "Run a stopwatch in the terminal",
		Long: `Display elapsed time as MM:SS with Start/Stop and Reset buttons.

Press space or s to start and stop, r to reset, tab to move between the
buttons, enter to press the focused button, and q to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStopwatch(cmd, runner)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(config.FlagConfig, "", "Path to a stopwatch.yaml configuration file")
	flags.String(config.FlagLogsLevel, config.DefaultLogsLevel, "Log level: Trace, Debug, Info, Warning, Off")
	flags.String(config.FlagLogsFile, config.DefaultLogsFile, "Log destination: /dev/stderr, /dev/stdout or a file path")
	flags.String(config.FlagTheme, config.DefaultTheme, "Color theme, see `stopwatch themes`")
	flags.Bool(config.FlagNoColor, false, "Disable color output")
	flags.Bool(config.FlagAltScreen, false, "Run in the alternate screen buffer")
	flags.BoolVar(&errorFormat.Verbose, config.FlagVerbose, false, "Print the full error chain with stack traces")

	rootCmd.AddCommand(newThemesCmd(), newVersionCmd())
	return rootCmd
}

// Execute runs the stopwatch CLI. Cancelling ctx stops a running stopwatch.
func Execute(ctx context.Context) error {
	return newRootCmd(teaRunner{}).ExecuteContext(ctx)
}

// ErrorFormatterConfig returns the error formatting chosen by the last
// Execute: verbose with --verbose, uncolored with --no-color or
// settings.terminal.no_color.
func ErrorFormatterConfig() errUtils.FormatterConfig {
	return errorFormat
}

// Cleanup releases resources acquired while running a command.
func Cleanup() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		log.Warn("Failed to close log file", "error", err)
	}
	logCloser = nil
}

// initConfig loads configuration, resolves the theme and sets up logging.
// An unknown theme is fatal for the stopwatch itself; other commands fall
// back to the default theme.
func initConfig(cmd *cobra.Command) error {
	configFile, err := cmd.Flags().GetString(config.FlagConfig)
	if err != nil {
		return errors.Mark(err, errUtils.ErrLoadConfig)
	}
	// The flag applies even when loading the configuration fails.
	if errorFormat.NoColor, err = cmd.Flags().GetBool(config.FlagNoColor); err != nil {
		return errors.Mark(err, errUtils.ErrLoadConfig)
	}

	cfg, err := config.Load(config.Options{
		ConfigFile:  configFile,
		SearchPaths: configSearchPaths,
		Flags:       cmd.Flags(),
	})
	if err != nil {
		return err
	}

	scheme, themeErr := theme.GetColorSchemeForTheme(cfg.Settings.Terminal.Theme)
	if themeErr != nil {
		if cmd == cmd.Root() {
			return themeErr
		}
		if scheme, err = theme.GetColorSchemeForTheme(theme.DefaultThemeName); err != nil {
			return err
		}
	}

	errorFormat.NoColor = cfg.Settings.Terminal.NoColor
	termCfg := terminal.NewConfig(cfg.Settings.Terminal.NoColor)
	termCfg.Apply(cmd.OutOrStdout())

	Cleanup()
	closer, err := log.Setup(cfg.Logs, scheme, !termCfg.ShouldUseColor(true))
	if err != nil {
		return err
	}
	logCloser = closer

	if themeErr != nil {
		log.Warn("Unknown theme, using the default", "theme", cfg.Settings.Terminal.Theme)
	}
	if cfg.ConfigFileUsed != "" {
		log.Debug("Using configuration", "file", cfg.ConfigFileUsed)
	}

	stopwatchConfig = cfg
	colorScheme = scheme
	return nil
}

func runStopwatch(cmd *cobra.Command, runner ProgramRunner) error {
	zones := mouseZone.New()
	defer zones.Close()

	model := tui.New(
		tui.WithStyles(theme.NewStyles(*colorScheme)),
		tui.WithMouseZones(zones),
	)

	opts := []tea.ProgramOption{tea.WithOutput(cmd.OutOrStdout()), tea.WithMouseCellMotion()}
	if stopwatchConfig.Settings.Terminal.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Debug("Starting stopwatch",
		"theme", stopwatchConfig.Settings.Terminal.Theme,
		"alt_screen", stopwatchConfig.Settings.Terminal.AltScreen,
	)

	final, err := runner.Run(cmd.Context(), model, opts...)
	switch {
	case errors.Is(err, tea.ErrProgramKilled):
		return errUtils.WithExitCode(
			errors.Mark(errors.Wrap(err, "stopwatch interrupted"), errUtils.ErrRunTUI),
			exitCodeInterrupted,
		)
	case err != nil:
		return errors.WithHint(
			errors.Mark(errors.Wrap(err, "run stopwatch"), errUtils.ErrRunTUI),
			"The stopwatch needs an interactive terminal",
		)
	}

	if m, ok := final.(tui.Model); ok {
		log.Info("Stopwatch finished", "elapsed", m.Display())
	}
	return nil
}
