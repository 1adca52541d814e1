package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/ledger"
)

func newAddCommand() *cobra.Command {
	var repo, dateStr, typ, service, recipient, notes, amountStr, feesStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a payment in the ledger",
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
			amount, err := parseAmount("amount", amountStr)
			if err != nil {
				return err
			}
			fees, err := parseAmount("fees", feesStr)
			if err != nil {
				return err
			}

			svc := ledger.NewService(b.dir, b.settings)
			entryID, err := svc.Add(ledger.AddParams{
				Date:      date,
				Type:      typ,
				Service:   service,
				Recipient: recipient,
				Notes:     notes,
				Amount:    amount,
				Fees:      fees,
			})
			if err != nil {
				return err
			}

			details := fmt.Sprintf("%s %s to %s", typ, money(amount), recipient)
			if err := b.recordAction("add", details, entryID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s: %s\n", entryID, details)
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")
	cmd.Flags().StringVar(&dateStr, "date", "", "payment date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&typ, "type", "", "payment type (required)")
	cmd.Flags().StringVar(&service, "service", "", "payment service")
	cmd.Flags().StringVar(&recipient, "recipient", "", "recipient (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount sent (required)")
	cmd.Flags().StringVar(&feesStr, "fees", "", "service fees")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
