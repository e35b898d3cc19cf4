// Package iikoclient provides the main entry point for creating iiko Cloud API clients
package iikoclient

import (
	"fmt"
	"strings"

	"github.com/commonwealth-codeunion/iiko-api/internal/client"
	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
)

// New creates a new iiko Cloud API client from the given configuration.
// The returned client is unauthenticated; call Authenticate before any
// resource method. Construction performs no network I/O.
func New(config *iiko.Config) (iiko.Client, error) {
	if config == nil {
		return nil, iiko.ErrConfigRequired
	}

	if strings.TrimSpace(config.APILogin) == "" {
		return nil, iiko.ErrAPILoginRequired
	}

	// Normalize API endpoint
	if config.APIEndpoint != "" {
		apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
		if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
			apiEndpoint = "https://" + apiEndpoint
		}

		config.APIEndpoint = apiEndpoint
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPILogin creates a new client with just an apiLogin, using the
// production endpoint and default configuration.
func NewWithAPILogin(apiLogin string) (iiko.Client, error) {
	return New(&iiko.Config{
		APILogin: apiLogin,
	})
}
