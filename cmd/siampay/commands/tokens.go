package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewTokensCommand creates the tokens command group
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Manage card tokens",
		Long: `Create and inspect single-use card tokens.

Token creation talks to the vault endpoint and needs the public key.
Tokenizing raw card numbers from a backend requires PCI compliance;
prefer client-side tokenization in production.`,
	}

	cmd.AddCommand(newTokensCreateCommand())
	cmd.AddCommand(newTokensGetCommand())

	return cmd
}

func newTokensCreateCommand() *cobra.Command {
	var (
		name            string
		number          string
		securityCode    string
		expirationMonth int64
		expirationYear  int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a card token",
		RunE: func(cmd *cobra.Command, args []string) error {
			card := map[string]any{
				"name":             name,
				"number":           number,
				"expiration_month": expirationMonth,
				"expiration_year":  expirationYear,
			}

			if securityCode != "" {
				card["security_code"] = securityCode
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			token, err := client.Tokens().Create(context.Background(), card)
			if err != nil {
				return fmt.Errorf("failed to create token: %w", err)
			}

			return renderRecord(token)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "cardholder name (required)")
	cmd.Flags().StringVar(&number, "number", "", "card number (required)")
	cmd.Flags().StringVar(&securityCode, "security-code", "", "card security code")
	cmd.Flags().Int64Var(&expirationMonth, "expiration-month", 0, "expiration month (required)")
	cmd.Flags().Int64Var(&expirationYear, "expiration-year", 0, "expiration year (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("expiration-month")
	_ = cmd.MarkFlagRequired("expiration-year")

	return cmd
}

func newTokensGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TOKEN_ID",
		Short: "Show a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			token, err := client.Tokens().Retrieve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve token: %w", err)
			}

			return renderRecord(token)
		},
	}
}
