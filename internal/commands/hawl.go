package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/ledger"
	"github.com/zakatbook-dev/zakatbook/internal/snapshot"
	"github.com/zakatbook-dev/zakatbook/internal/zakat"
)

func newHawlCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "hawl",
		Short: "Show the countdown to the next zakat anniversary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			snaps, err := snapshot.Load(b.dir)
			if err != nil {
				return err
			}
			entries, err := ledger.NewService(b.dir, b.settings).ReadAll()
			if err != nil {
				return err
			}

			params := zakat.Params{
				ZakatType:   b.cfg.ZakatType,
				GoldNisabOz: decimal.NewFromFloat(b.cfg.Nisab.GoldOz),
			}
			records, _ := zakat.ComputeYears(snaps.Years(), snaps.Holdings(), entries, params)

			info, ok := zakat.Hawl(records, time.Now().UTC(), b.cfg.Hawl.DueSoonDays)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No zakat years recorded yet.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Last zakat year: %s\n", info.LastDate.Format(dateFormat))
			fmt.Fprintf(out, "Next due:        %s\n", info.NextDue.Format(dateFormat))
			fmt.Fprintf(out, "Days until due:  %d (%s)\n", info.DaysUntil, info.State)
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")

	return cmd
}
