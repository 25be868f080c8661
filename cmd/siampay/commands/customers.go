package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customers",
		Long:  "Create, list, inspect, update and delete customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customers, err := client.Customers().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return renderCollection(customers, []string{"id", "email", "description"})
		},
	}
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Show a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Retrieve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve customer: %w", err)
			}

			return renderRecord(customer)
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		email       string
		description string
		card        string
	)

	cmd := &cobra.Command{
		Use:   "create [FIELD=VALUE...]",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(args)
			if err != nil {
				return err
			}

			if email != "" {
				fields["email"] = email
			}

			if description != "" {
				fields["description"] = description
			}

			if card != "" {
				fields["card"] = card
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Create(context.Background(), fields)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			return renderRecord(customer)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&description, "description", "", "customer description")
	cmd.Flags().StringVar(&card, "card", "", "card token to attach")

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update CUSTOMER_ID FIELD=VALUE...",
		Short: "Update a customer",
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

			customer, err := client.Customers().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve customer: %w", err)
			}

			customer, err = client.Customers().Update(ctx, customer, fields)
			if err != nil {
				return fmt.Errorf("failed to update customer: %w", err)
			}

			return renderRecord(customer)
		},
	}
}

func newCustomersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete customer '%s'? (y/N): ", args[0])

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

			customer, err := client.Customers().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to retrieve customer: %w", err)
			}

			err = client.Customers().Destroy(ctx, customer)
			if err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			fmt.Printf("Successfully deleted customer '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
