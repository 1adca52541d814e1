package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/model"
	"github.com/zakatbook-dev/zakatbook/internal/snapshot"
)

func newYearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Manage zakat year markers",
	}

	cmd.AddCommand(newYearAddCommand())

	return cmd
}

func newYearAddCommand() *cobra.Command {
	var repo, dateStr, goldPriceStr, goldOwnedStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open a new zakat year on a marker date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			goldPrice, err := parseAmount("gold-price", goldPriceStr)
			if err != nil {
				return err
			}
			goldOwned, err := parseAmount("gold-owned", goldOwnedStr)
			if err != nil {
				return err
			}

			svc, err := snapshot.Load(b.dir)
			if err != nil {
				return err
			}

			duplicate, err := svc.AddYear(model.YearMarker{
				Date:        date,
				GoldPriceOz: goldPrice,
				GoldOwnedOz: goldOwned,
			})
			if err != nil {
				return err
			}
			if duplicate {
				fmt.Fprintf(cmd.ErrOrStderr(),
					"warning: a year marker for %s already exists; the first one wins in calculations\n",
					date.Format(dateFormat))
			}

			details := fmt.Sprintf("opened zakat year %s (gold %s/oz)", date.Format(dateFormat), money(goldPrice))
			if err := b.recordAction("year", details, date.Format(dateFormat)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Opened zakat year %s\n", date.Format(dateFormat))
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")
	cmd.Flags().StringVar(&dateStr, "date", "", "marker date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&goldPriceStr, "gold-price", "", "gold spot price per troy oz (required)")
	cmd.Flags().StringVar(&goldOwnedStr, "gold-owned", "", "gold owned in troy oz")
	_ = cmd.MarkFlagRequired("gold-price")

	return cmd
}
