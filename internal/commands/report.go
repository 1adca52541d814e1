package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/ledger"
	"github.com/zakatbook-dev/zakatbook/internal/report"
	"github.com/zakatbook-dev/zakatbook/internal/snapshot"
	"github.com/zakatbook-dev/zakatbook/internal/zakat"
)

func newReportCommand() *cobra.Command {
	var repo, recipient, yearStr string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Break down payments by type, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			entries, err := ledger.NewService(b.dir, b.settings).ReadAll()
			if err != nil {
				return err
			}

			var period *report.Period
			if yearStr != "" {
				markerDate, err := parseDate(yearStr)
				if err != nil {
					return err
				}

				snaps, err := snapshot.Load(b.dir)
				if err != nil {
					return err
				}
				params := zakat.Params{
					ZakatType:   b.cfg.ZakatType,
					GoldNisabOz: decimal.NewFromFloat(b.cfg.Nisab.GoldOz),
				}
				records, _ := zakat.ComputeYears(snaps.Years(), snaps.Holdings(), entries, params)

				p, ok := report.PeriodFor(records, markerDate)
				if !ok {
					return fmt.Errorf("no zakat year with marker date %s", yearStr)
				}
				period = &p
			}

			totals := report.ByType(entries, b.settings.Types(), recipient, period)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tTOTAL")
			for _, tt := range totals {
				fmt.Fprintf(tw, "%s\t%s\n", tt.Type, money(tt.Total))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			total, count := report.RecipientSummary(entries, recipient, period)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d payments, %s total\n", count, money(total))
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")
	cmd.Flags().StringVar(&recipient, "recipient", "", "only payments to this recipient")
	cmd.Flags().StringVar(&yearStr, "year", "", "only payments in the zakat year with this marker date")

	cmd.AddCommand(newReportFeesCommand())

	return cmd
}

func newReportFeesCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "fees",
		Short: "Show per-service amounts and fees across all years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			entries, err := ledger.NewService(b.dir, b.settings).ReadAll()
			if err != nil {
				return err
			}

			summaries := report.ServiceFees(entries, b.settings.Services())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SERVICE\tPAYMENTS\tAMOUNT\tFEES")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", s.Service, s.Count, money(s.Amount), money(s.Fees))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")

	return cmd
}
