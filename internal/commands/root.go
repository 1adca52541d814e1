package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "zakatbook",
		Short:   "Git-backed zakat obligation tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newSnapshotCommand())
	rootCmd.AddCommand(newYearCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newHawlCommand())
	rootCmd.AddCommand(newNisabCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newSettingsCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
