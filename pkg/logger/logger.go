package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/stopwatch/errors"
	"github.com/cloudposse/stopwatch/pkg/schema"
	"github.com/cloudposse/stopwatch/pkg/ui/theme"
)

type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

const (
	// TraceLevel is one step more verbose than debug.
	TraceLevel = log.DebugLevel - 1

	// OffLevel is above every level charm/log emits.
	OffLevel = log.FatalLevel + 1

	stdoutPath = "/dev/stdout"
	stderrPath = "/dev/stderr"

	logFilePerm = 0o644
)

// ParseLogLevel converts a configured level name to a charm/log level.
// An empty string means Info.
func ParseLogLevel(logLevel string) (log.Level, error) {
	if logLevel == "" {
		return log.InfoLevel, nil
	}

	switch LogLevel(logLevel) {
	case LogLevelTrace:
		return TraceLevel, nil
	case LogLevelDebug:
		return log.DebugLevel, nil
	case LogLevelInfo:
		return log.InfoLevel, nil
	case LogLevelWarning:
		return log.WarnLevel, nil
	case LogLevelOff:
		return OffLevel, nil
	default:
		return log.InfoLevel, errors.WithHint(
			errors.Wrapf(errUtils.ErrInvalidLogLevel, "%q", logLevel),
			"Supported log levels are Trace, Debug, Info, Warning, Off",
		)
	}
}

// nopCloser is returned when the log output is a standard stream.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenOutput resolves a configured log file to a writer. The standard
// streams are returned as-is; any other path is opened for appending.
func OpenOutput(file string) (io.Writer, io.Closer, error) {
	switch file {
	case "", stderrPath:
		return os.Stderr, nopCloser{}, nil
	case stdoutPath:
		return os.Stdout, nopCloser{}, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, logFilePerm)
	if err != nil {
		return nil, nil, errors.Mark(errors.Wrapf(err, "open log file %s", file), errUtils.ErrOpenLogFile)
	}
	return f, f, nil
}

// NewLogger builds a charm logger writing to file at level.
func NewLogger(level log.Level, file string) (*log.Logger, io.Closer, error) {
	w, closer, err := OpenOutput(file)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return l, closer, nil
}

// Setup configures the global logger from the logs section of the
// configuration. The returned closer releases the log file, if one was
// opened.
func Setup(cfg schema.Logs, scheme *theme.ColorScheme, noColor bool) (io.Closer, error) {
	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	l, closer, err := NewLogger(level, cfg.File)
	if err != nil {
		return nil, err
	}

	l.SetStyles(styles(scheme, noColor))
	log.SetDefault(l)
	return closer, nil
}

func styles(scheme *theme.ColorScheme, noColor bool) *log.Styles {
	var s *log.Styles
	if noColor {
		s = theme.GetLogStylesNoColor()
	} else {
		s = theme.GetLogStyles(scheme)
	}
	trace := lipgloss.NewStyle().SetString("TRCE")
	if !noColor {
		trace = trace.Faint(true).Padding(0, 1)
	}
	s.Levels[TraceLevel] = trace
	return s
}

// Trace logs at TraceLevel on the default logger.
func Trace(msg any, keyvals ...any) {
	log.Default().Log(TraceLevel, msg, keyvals...)
}

func Debug(msg any, keyvals ...any) {
	log.Default().Debug(msg, keyvals...)
}

func Info(msg any, keyvals ...any) {
	log.Default().Info(msg, keyvals...)
}

func Warn(msg any, keyvals ...any) {
	log.Default().Warn(msg, keyvals...)
}

func Error(msg any, keyvals ...any) {
	log.Default().Error(msg, keyvals...)
}
