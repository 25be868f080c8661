package commands

import (
	"fmt"
	"os"
	"slices"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configKeys are the settings the config subcommands may read or write.
var configKeys = []string{"secret_key", "public_key", "api", "vault", "output"}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted SiamPay CLI configuration",
	}

	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value")

			for _, key := range configKeys {
				value := viper.GetString(key)
				if key == "secret_key" || key == "public_key" {
					value = maskKey(value)
				}

				_ = table.Append(key, value)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !slices.Contains(configKeys, key) {
				return fmt.Errorf("%w: %q", ErrConfigKeyUnknown, key)
			}

			fmt.Println(viper.GetString(key))

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set and persist a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !slices.Contains(configKeys, key) {
				return fmt.Errorf("%w: %q", ErrConfigKeyUnknown, key)
			}

			viper.Set(key, value)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

// maskKey hides all but the key prefix and last four characters.
func maskKey(key string) string {
	if key == "" {
		return ""
	}

	if len(key) <= 10 {
		return "***"
	}

	return key[:5] + "..." + key[len(key)-4:]
}
