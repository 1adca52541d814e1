package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/zakat"
)

func newNisabCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "nisab <gold-price> [silver-price]",
		Short: "Show nisab thresholds for spot prices",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			goldPrice, err := parseAmount("gold price", args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			goldNisab := zakat.Nisab(goldPrice, decimal.NewFromFloat(b.cfg.Nisab.GoldOz))
			fmt.Fprintf(out, "Gold nisab   (%v oz): %s\n", b.cfg.Nisab.GoldOz, money(goldNisab))

			if len(args) == 2 {
				silverPrice, err := parseAmount("silver price", args[1])
				if err != nil {
					return err
				}
				silverNisab := zakat.Nisab(silverPrice, decimal.NewFromFloat(b.cfg.Nisab.SilverOz))
				fmt.Fprintf(out, "Silver nisab (%v oz): %s\n", b.cfg.Nisab.SilverOz, money(silverNisab))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")

	return cmd
}
