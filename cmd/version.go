package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cloudposse/stopwatch/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Display the stopwatch version",
		Example: "stopwatch version",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stopwatch %s %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
