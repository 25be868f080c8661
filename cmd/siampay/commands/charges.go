package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewChargesCommand creates the charges command group
func NewChargesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charges",
		Short: "Manage charges",
		Long:  "Create, list, inspect, update, capture and refund charges",
	}

	cmd.AddCommand(newChargesListCommand())
	cmd.AddCommand(newChargesGetCommand())
	cmd.AddCommand(newChargesCreateCommand())
	cmd.AddCommand(newChargesUpdateCommand())
	cmd.AddCommand(newChargesCaptureCommand())
	cmd.AddCommand(newChargesRefundCommand())

	return cmd
}

func newChargesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List charges",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			charges, err := client.Charges().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list charges: %w", err)
			}

			return renderCollection(charges, []string{"id", "amount", "currency", "captured", "paid"})
		},
	}
}

func newChargesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CHARGE_ID",
		Short: "Show a charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			charge, err := client.Charges().Retrieve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve charge: %w", err)
			}

			return renderRecord(charge)
		},
	}
}

func newChargesCreateCommand() *cobra.Command {
	var (
		amount   int64
		currency string
		card     string
		customer string
	)

	cmd := &cobra.Command{
		Use:   "create [FIELD=VALUE...]",
		Short: "Create a charge",
		Long:  "Create a charge from a card token or a customer's default card",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(args)
			if err != nil {
				return err
			}

			fields["amount"] = amount
			fields["currency"] = currency

			if card != "" {
				fields["card"] = card
			}

			if customer != "" {
				fields["customer"] = customer
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			charge, err := client.Charges().Create(context.Background(), fields)
			if err != nil {
				return fmt.Errorf("failed to create charge: %w", err)
			}

			return renderRecord(charge)
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "charge amount in the smallest currency unit (required)")
	cmd.Flags().StringVar(&currency, "currency", "thb", "charge currency")
	cmd.Flags().StringVar(&card, "card", "", "card token to charge")
	cmd.Flags().StringVar(&customer, "customer", "", "customer to charge")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newChargesUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update CHARGE_ID FIELD=VALUE...",
		Short: "Update a charge",
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

			charge, err := client.Charges().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve charge: %w", err)
			}

			charge, err = client.Charges().Update(ctx, charge, fields)
			if err != nil {
				return fmt.Errorf("failed to update charge: %w", err)
			}

			return renderRecord(charge)
		},
	}
}

func newChargesCaptureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "capture CHARGE_ID",
		Short: "Capture an authorized charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			charge, err := client.Charges().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve charge: %w", err)
			}

			err = client.Charges().Capture(ctx, charge)
			if err != nil {
				return fmt.Errorf("failed to capture charge: %w", err)
			}

			return renderRecord(charge)
		},
	}
}

func newChargesRefundCommand() *cobra.Command {
	var amount int64

	cmd := &cobra.Command{
		Use:   "refund CHARGE_ID",
		Short: "Refund a charge",
		Long:  "Refund part or all of a captured charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			charge, err := client.Charges().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve charge: %w", err)
			}

			fields := map[string]any{}
			if amount > 0 {
				fields["amount"] = amount
			}

			refund, err := client.Charges().Refund(ctx, charge, fields)
			if err != nil {
				return fmt.Errorf("failed to refund charge: %w", err)
			}

			fmt.Printf("Created refund %s\n", refund.ID())

			return renderRecord(charge)
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to refund (full refund when omitted)")

	return cmd
}
