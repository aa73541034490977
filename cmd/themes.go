package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cloudposse/stopwatch/pkg/terminal"
	"github.com/cloudposse/stopwatch/pkg/ui/theme"
)

func newThemesCmd() *cobra.Command {
	var recommended bool

	themesCmd := &cobra.Command{
		Use:     "themes",
		Short:   "List available color themes",
		Long:    "Display the color themes the stopwatch can use. The active theme is marked with ●.",
		Example: "stopwatch themes --recommended",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeThemes(cmd.OutOrStdout(), recommended)
		},
	}
	themesCmd.Flags().BoolVar(&recommended, "recommended", false, "Show only recommended themes")
	return themesCmd
}

func executeThemes(out io.Writer, recommended bool) error {
	result, err := theme.ListThemes(theme.ListThemesOptions{
		RecommendedOnly: recommended,
		ActiveTheme:     stopwatchConfig.Settings.Terminal.Theme,
		Table:           terminal.IsTerminal(out),
	})
	if err != nil {
		return err
	}

	countMsg := fmt.Sprintf("%d theme", result.ThemeCount)
	if result.ThemeCount != 1 {
		countMsg += "s"
	}
	if result.RecommendedOnly {
		countMsg += " (recommended). Use without --recommended to see all themes."
	} else {
		countMsg += " available. ★ indicates recommended themes."
	}

	_, err = fmt.Fprintf(out, "%s\n%s\n", result.Output, countMsg)
	return err
}
