package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the account",
		Long:  "Retrieve the account the secret key belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			account, err := client.Account().Retrieve(context.Background())
			if err != nil {
				return fmt.Errorf("failed to retrieve account: %w", err)
			}

			return renderRecord(account)
		},
	}
}
