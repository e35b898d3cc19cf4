package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
	"github.com/commonwealth-codeunion/iiko-api/pkg/iikoclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var apiLogin string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the iiko Cloud API",
		Long:  "Verify an apiLogin key against the API and save it to the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoginCommand(apiLogin)
		},
	}

	cmd.Flags().StringVar(&apiLogin, "api-login", "", "apiLogin key (prompted if omitted)")

	return cmd
}

func runLoginCommand(apiLogin string) error {
	if apiLogin == "" {
		apiLogin = viper.GetString("api_login")
	}

	if apiLogin == "" {
		fmt.Print("apiLogin: ")

		keyBytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read apiLogin: %w", err)
		}

		apiLogin = strings.TrimSpace(string(keyBytes))

		fmt.Println()
	}

	config := &iiko.Config{
		APILogin:    apiLogin,
		APIEndpoint: viper.GetString("api"),
	}

	client, err := iikoclient.New(config)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	// Verify the key by performing a token exchange
	ctx := context.Background()

	result, err := client.Authenticate(ctx)
	if err != nil {
		if iiko.IsAuthenticationError(err) {
			return fmt.Errorf("apiLogin rejected by the API: %w", err)
		}

		return fmt.Errorf("failed to authenticate: %w", err)
	}

	err = SaveConfig(&CLIConfig{
		API:      viper.GetString("api"),
		APILogin: apiLogin,
	})
	if err != nil {
		return err
	}

	if result.CorrelationID != "" && viper.GetBool("verbose") {
		fmt.Printf("Authenticated (correlation id: %s)\n", result.CorrelationID)
	} else {
		fmt.Println("Authenticated")
	}

	return nil
}
