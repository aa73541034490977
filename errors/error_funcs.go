package errors

import (
	"io"
	"os"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// PrintErr writes err to w formatted with config and returns its exit
// code. It writes nothing and returns 0 when err is nil.
func PrintErr(err error, w io.Writer, config FormatterConfig) int {
	if err == nil {
		return 0
	}
	_, _ = io.WriteString(w, Format(err, config)+newline)
	return GetExitCode(err)
}
