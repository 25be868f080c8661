package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewBalanceCommand creates the balance command
func NewBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		Long:  "Retrieve the current total and transferable balance of the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			balance, err := client.Balance().Retrieve(context.Background())
			if err != nil {
				return fmt.Errorf("failed to retrieve balance: %w", err)
			}

			return renderRecord(balance)
		},
	}
}
