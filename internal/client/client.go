// Package client implements the iiko.Client interface: the session-aware
// client plus the per-resource clients built on top of the shared transport.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/commonwealth-codeunion/iiko-api/internal/auth"
	"github.com/commonwealth-codeunion/iiko-api/internal/constants"
	"github.com/commonwealth-codeunion/iiko-api/internal/http"
	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
)

// Client implements the iiko.Client interface.
type Client struct {
	httpClient *http.Client
	session    *auth.Session
	apiLogin   string
	baseURL    string
	logger     iiko.Logger

	// Resource clients
	organizations iiko.OrganizationsClient
	menus         iiko.MenusClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *iiko.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new iiko Cloud API client in the unauthenticated state.
// The apiLogin is validated here: blank or whitespace-only values fail
// before any network capability exists.
func New(config *iiko.Config) (*Client, error) {
	if config == nil {
		return nil, iiko.ErrConfigRequired
	}

	if strings.TrimSpace(config.APILogin) == "" {
		return nil, iiko.ErrAPILoginRequired
	}

	baseURL := config.APIEndpoint
	if baseURL == "" {
		baseURL = constants.DefaultAPIEndpoint
	}

	session := auth.NewSession()
	httpClient := http.NewClient(baseURL, session, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		session:    session,
		apiLogin:   config.APILogin,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Authenticate implements iiko.SessionClient.Authenticate. It always
// performs a fresh token exchange; on success the stored token is replaced,
// on failure the session keeps whatever token it had before.
func (c *Client) Authenticate(ctx context.Context) (*iiko.AccessTokenResponse, error) {
	resp, err := c.httpClient.Post(ctx, constants.AccessTokenPath, &iiko.AccessTokenRequest{
		APILogin: c.apiLogin,
	})
	if err != nil {
		return nil, fmt.Errorf("requesting access token: %w", err)
	}

	var result iiko.AccessTokenResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing access token response: %w", err)
	}

	c.session.Store(result.Token)

	return &result, nil
}

// IsAuthenticated implements iiko.SessionClient.IsAuthenticated.
func (c *Client) IsAuthenticated() bool {
	return c.session.Authenticated()
}

// AccessToken implements iiko.SessionClient.AccessToken.
func (c *Client) AccessToken() (string, bool) {
	return c.session.Token()
}

// Organizations implements iiko.ResourceClients.Organizations.
func (c *Client) Organizations() iiko.OrganizationsClient {
	return c.organizations
}

// Menus implements iiko.ResourceClients.Menus.
func (c *Client) Menus() iiko.MenusClient {
	return c.menus
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.organizations = NewOrganizationsClient(c.httpClient, c.session)
	c.menus = NewMenusClient(c.httpClient, c.session)
}

// loggerAdapter adapts iiko.Logger to http.Logger.
type loggerAdapter struct {
	logger iiko.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
