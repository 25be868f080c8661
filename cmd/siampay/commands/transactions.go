package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewTransactionsCommand creates the transactions command group
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Inspect ledger transactions",
		Long:  "List and inspect the credit and debit transactions behind the balance",
	}

	cmd.AddCommand(newTransactionsListCommand())
	cmd.AddCommand(newTransactionsGetCommand())

	return cmd
}

func newTransactionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			transactions, err := client.Transactions().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			return renderCollection(transactions, []string{"id", "type", "amount", "currency", "created"})
		},
	}
}

func newTransactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSACTION_ID",
		Short: "Show a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			transaction, err := client.Transactions().Retrieve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve transaction: %w", err)
			}

			return renderRecord(transaction)
		},
	}
}
