package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewTransfersCommand creates the transfers command group
func NewTransfersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "Manage transfers",
		Long:  "Create, list, inspect, update and cancel transfers to the configured bank account",
	}

	cmd.AddCommand(newTransfersListCommand())
	cmd.AddCommand(newTransfersGetCommand())
	cmd.AddCommand(newTransfersCreateCommand())
	cmd.AddCommand(newTransfersUpdateCommand())
	cmd.AddCommand(newTransfersCancelCommand())

	return cmd
}

func newTransfersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transfers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			transfers, err := client.Transfers().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list transfers: %w", err)
			}

			return renderCollection(transfers, []string{"id", "amount", "currency", "sent", "paid"})
		},
	}
}

func newTransfersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSFER_ID",
		Short: "Show a transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			transfer, err := client.Transfers().Retrieve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve transfer: %w", err)
			}

			return renderRecord(transfer)
		},
	}
}

func newTransfersCreateCommand() *cobra.Command {
	var amount int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a transfer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			transfer, err := client.Transfers().Create(context.Background(), map[string]any{
				"amount": amount,
			})
			if err != nil {
				return fmt.Errorf("failed to create transfer: %w", err)
			}

			return renderRecord(transfer)
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "transfer amount in the smallest currency unit (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTransfersUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update TRANSFER_ID FIELD=VALUE...",
		Short: "Update a pending transfer",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(args[1:])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			transfer, err := client.Transfers().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve transfer: %w", err)
			}

			transfer, err = client.Transfers().Update(ctx, transfer, fields)
			if err != nil {
				return fmt.Errorf("failed to update transfer: %w", err)
			}

			return renderRecord(transfer)
		},
	}
}

func newTransfersCancelCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cancel TRANSFER_ID",
		Short: "Cancel a pending transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really cancel transfer '%s'? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			transfer, err := client.Transfers().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve transfer: %w", err)
			}

			err = client.Transfers().Destroy(ctx, transfer)
			if err != nil {
				return fmt.Errorf("failed to cancel transfer: %w", err)
			}

			fmt.Printf("Successfully cancelled transfer '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "cancel without confirmation")

	return cmd
}
