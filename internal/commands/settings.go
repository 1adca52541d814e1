package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage payment type, service and recipient vocabularies",
	}

	cmd.AddCommand(newSettingsShowCommand())
	cmd.AddCommand(newSettingsAddCommand("add-type", "payment type",
		func(b *book, name string) error { return b.settings.AddType(name) }))
	cmd.AddCommand(newSettingsAddCommand("add-service", "service",
		func(b *book, name string) error { return b.settings.AddService(name) }))
	cmd.AddCommand(newSettingsAddCommand("add-recipient", "recipient",
		func(b *book, name string) error { return b.settings.AddRecipient(name) }))

	return cmd
}

func newSettingsShowCommand() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configured vocabularies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Payment types: %s\n", strings.Join(b.settings.Types(), ", "))
			fmt.Fprintf(out, "Services:      %s\n", strings.Join(b.settings.Services(), ", "))
			fmt.Fprintf(out, "Recipients:    %s\n", strings.Join(b.settings.Recipients(), ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")

	return cmd
}

func newSettingsAddCommand(use, what string, add func(b *book, name string) error) *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   use + " <name>",
		Short: "Add a " + what + " to the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(repo)
			if err != nil {
				return err
			}

			name := args[0]
			if err := add(b, name); err != nil {
				return err
			}
			if err := b.saveConfig(); err != nil {
				return err
			}

			details := fmt.Sprintf("added %s %q", what, name)
			if err := b.recordAction("settings", details, name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q\n", what, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "path to the zakat book")

	return cmd
}
