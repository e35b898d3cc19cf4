package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/commonwealth-codeunion/iiko-api/internal/constants"
	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
	"github.com/commonwealth-codeunion/iiko-api/pkg/iikoclient"
)

// Common string constants used throughout the commands package.
const (
	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "
)

// CLIConfig is the persisted CLI configuration in ~/.iiko/config.yml.
type CLIConfig struct {
	API      string `yaml:"api,omitempty"`
	APILogin string `yaml:"api_login,omitempty"`
}

// CreateClient builds a client from viper configuration (flags, env, config
// file) and authenticates it.
func CreateClient(ctx context.Context) (iiko.Client, error) {
	apiLogin := viper.GetString("api_login")
	if apiLogin == "" {
		return nil, iiko.ErrAPILoginRequired
	}

	config := &iiko.Config{
		APILogin:    apiLogin,
		APIEndpoint: viper.GetString("api"),
		Debug:       viper.GetBool("verbose"),
	}

	client, err := iikoclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	_, err = client.Authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	return client, nil
}

// SaveConfig persists the CLI configuration to ~/.iiko/config.yml.
func SaveConfig(config *CLIConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".iiko")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(configPath, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// StandardJSONRenderer writes data to stdout as indented JSON.
func StandardJSONRenderer(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data to stdout as YAML.
func StandardYAMLRenderer(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() {
		_ = encoder.Close()
	}()

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}
