package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/ledger"
)

func newSearchCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find ledger entries by type, recipient or notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			entries, err := ledger.NewService(b.dir, b.settings).ReadAll()
			if err != nil {
				return err
			}

			ids := ledger.Search(entries, strings.Join(args, " "))
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches.")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")

	return cmd
}
