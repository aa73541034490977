package errors

import (
	"github.com/cockroachdb/errors"
)

// codedError carries the process exit code for the error it wraps.
type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string { return e.err.Error() }

func (e *codedError) Unwrap() error { return e.err }

// WithExitCode makes the process exit with code when err reaches main.
// A nil err stays nil.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &codedError{err: err, code: code}
}

// GetExitCode returns the code attached closest to the top of the chain.
// Errors without one exit with 1, and nil means success.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return 1
}
