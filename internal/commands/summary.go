package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/ledger"
	"github.com/zakatbook-dev/zakatbook/internal/report"
	"github.com/zakatbook-dev/zakatbook/internal/snapshot"
	"github.com/zakatbook-dev/zakatbook/internal/zakat"
)

func newSummaryCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the derived zakat year table and running balance",
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
			records, warnings := zakat.ComputeYears(snaps.Years(), snaps.Holdings(), entries, params)

			for _, w := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No zakat years recorded yet. Run `zakatbook year add` first.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "YEAR\tNET ASSETS\tNISAB\tDUE\tBROUGHT\tOWED\tPAID\tBALANCE\tSTATUS")
			for _, r := range records {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Date.Format(dateFormat), money(r.NetAssets), money(r.Nisab),
					money(r.ZakatDue), money(r.Brought), money(r.TotalOwed),
					money(r.Paid), money(r.Balance), r.Status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			dash := report.BuildDashboard(records, entries, b.settings.Types(), b.cfg.ZakatType)
			fmt.Fprintf(out, "\nTotal zakat assessed: %s\n", money(dash.TotalOwed))
			fmt.Fprintf(out, "Outstanding: %s\n", money(dash.Outstanding))

			if hawl, ok := zakat.Hawl(records, time.Now().UTC(), b.cfg.Hawl.DueSoonDays); ok {
				fmt.Fprintf(out, "Next zakat due %s (%d days, %s)\n",
					hawl.NextDue.Format(dateFormat), hawl.DaysUntil, hawl.State)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")

	return cmd
}
