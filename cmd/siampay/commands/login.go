package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		secretKey string
		publicKey string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store SiamPay API keys",
		Long:  "Verify the given API keys against the account endpoint and store them in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secretKey == "" {
				fmt.Print("Secret key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read secret key: %w", err)
				}

				secretKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			viper.Set("secret_key", secretKey)

			if publicKey != "" {
				viper.Set("public_key", publicKey)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			// Verify the key before persisting anything.
			account, err := client.Account().Retrieve(context.Background())
			if err != nil {
				return fmt.Errorf("failed to verify API key: %w", err)
			}

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in as %s\n", account.GetString("email"))

			return nil
		},
	}

	cmd.Flags().StringVar(&secretKey, "secret-key", "", "secret API key (prompted when omitted)")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "public API key for token operations")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored API keys",
		Long:  "Clear the stored SiamPay API keys from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("secret_key", "")
			viper.Set("public_key", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
