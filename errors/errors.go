package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrOpenLogFile     = errors.New("failed to open log file")
	ErrLoadConfig      = errors.New("failed to load configuration")
	ErrThemeNotFound   = errors.New("theme not found")
	ErrRunTUI          = errors.New("stopwatch UI exited with an error")
)
