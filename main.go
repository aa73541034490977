package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/charmbracelet/log"

	"github.com/cloudposse/stopwatch/cmd"
	errUtils "github.com/cloudposse/stopwatch/errors"
)

func main() {
	// The stopwatch redraws in place, so timestamps only add noise to the
	// lines logged before logging is configured.
	log.Default().SetReportTimestamp(false)

	// Use errUtils.OsExit to allow test interception (Go 1.25+ panics on os.Exit in tests).
	errUtils.OsExit(run())
}

// run executes the application and returns an exit code.
// This separation allows cleanup via defer before os.Exit in main().
func run() int {
	// SIGINT and SIGTERM cancel the context, which kills a running stopwatch.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer cmd.Cleanup()

	exitCode := errUtils.PrintErr(cmd.Execute(ctx), os.Stderr, cmd.ErrorFormatterConfig())
	if exitCode != 0 {
		log.Debug("Exiting with exit code", "code", exitCode)
	}
	return exitCode
}
