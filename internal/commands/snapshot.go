package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/model"
	"github.com/zakatbook-dev/zakatbook/internal/snapshot"
)

func newSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage asset and debt balances for a zakat year",
	}

	cmd.AddCommand(newSnapshotSetCommand())
	cmd.AddCommand(newSnapshotListCommand())

	return cmd
}

func newSnapshotSetCommand() *cobra.Command {
	var repo, dateStr, kind, account, balanceStr string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set one sub-account balance on a marker date",
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
			balance, err := parseAmount("balance", balanceStr)
			if err != nil {
				return err
			}

			svc, err := snapshot.Load(b.dir)
			if err != nil {
				return err
			}

			h := model.Holding{
				Date:    date,
				Kind:    model.HoldingKind(kind),
				Account: account,
				Balance: balance,
			}
			if err := svc.SetHolding(h); err != nil {
				return err
			}

			details := fmt.Sprintf("%s %s = %s on %s", kind, account, money(balance), date.Format(dateFormat))
			if err := b.recordAction("snapshot", details, date.Format(dateFormat)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", details)
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")
	cmd.Flags().StringVar(&dateStr, "date", "", "marker date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&kind, "kind", "", "holding kind: stock, cash or debt (required)")
	cmd.Flags().StringVar(&account, "account", "", "sub-account name (required)")
	cmd.Flags().StringVar(&balanceStr, "balance", "", "balance (required)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("balance")

	return cmd
}

func newSnapshotListCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			svc, err := snapshot.Load(b.dir)
			if err != nil {
				return err
			}

			holdings := svc.Holdings()
			if len(holdings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No balances recorded yet.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tKIND\tACCOUNT\tBALANCE")
			for _, h := range holdings {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					h.Date.Format(dateFormat), h.Kind, h.Account, money(h.Balance))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")

	return cmd
}
