package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zakatbook-dev/zakatbook/internal/importer"
	"github.com/zakatbook-dev/zakatbook/internal/ledger"
)

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import payments from service CSV exports in import/",
	}

	cmd.AddCommand(newImportListCommand())
	cmd.AddCommand(newImportRunCommand())

	return cmd
}

func newImportListCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List CSV files waiting in import/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			files, err := importer.Scan(b.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
				return nil
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", f.Name, f.Size)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")

	return cmd
}

func newImportRunCommand() *cobra.Command {
	var repo, format, typ, recipient string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Parse an export and record its payments in the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			fileName := args[0]
			f, err := os.Open(filepath.Join(b.dir, "import", fileName))
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			payments, err := parser.Parse(f)
			f.Close()
			if err != nil {
				return err
			}

			svc := ledger.NewService(b.dir, b.settings)
			imported, skipped := 0, 0
			for _, p := range payments {
				rec := p.Recipient
				if recipient != "" {
					rec = recipient
				}
				entryID, err := svc.Add(ledger.AddParams{
					Date:      p.Date,
					Type:      typ,
					Service:   p.Service,
					Recipient: rec,
					Notes:     p.Notes,
					Amount:    p.Amount,
					Fees:      p.Fees,
				})
				if err != nil {
					skipped++
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s %s: %v\n",
						p.Date.Format(dateFormat), money(p.Amount), err)
					continue
				}
				imported++
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", entryID)
			}

			// The file moves to processed/ even when rows were skipped;
			// re-running would duplicate the rows that did import. Skipped
			// rows are printed above for manual entry.
			if err := importer.MarkProcessed(b.dir, fileName); err != nil {
				return err
			}

			details := fmt.Sprintf("imported %d payments from %s (%d skipped)", imported, fileName, skipped)
			if err := b.recordAction("import", details, fileName); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d payments, skipped %d\n", imported, skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")
	cmd.Flags().StringVar(&format, "format", "remitly", "export format")
	cmd.Flags().StringVar(&typ, "type", "", "payment type for imported rows (required)")
	cmd.Flags().StringVar(&recipient, "recipient", "", "override recipient for all rows")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
