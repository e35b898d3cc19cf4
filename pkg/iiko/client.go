package iiko

import (
	"context"
	"time"
)

// SessionClient owns the authentication lifecycle of an API session.
type SessionClient interface {
	// Authenticate exchanges the configured apiLogin for a bearer token and
	// stores it for subsequent resource calls. Calling it again performs a
	// fresh exchange and replaces the stored token; a failed call leaves the
	// previously stored token untouched.
	Authenticate(ctx context.Context) (*AccessTokenResponse, error)

	// IsAuthenticated reports whether a token has been stored. Pure read.
	IsAuthenticated() bool

	// AccessToken returns the stored bearer token. ok is false while the
	// client has never authenticated. Pure read.
	AccessToken() (token string, ok bool)
}

// ResourceClients provides access to resource-specific clients. Every
// resource call requires a prior successful Authenticate and fails locally
// with ErrNotAuthenticated otherwise.
type ResourceClients interface {
	Organizations() OrganizationsClient
	Menus() MenusClient
}

// Client is the full iiko Cloud API client surface.
type Client interface {
	SessionClient
	ResourceClients
}

// OrganizationsClient lists the organizations available to the apiLogin.
type OrganizationsClient interface {
	List(ctx context.Context, request *OrganizationsRequest) (*OrganizationsResponse, error)
}

// MenusClient lists and fetches external menus.
type MenusClient interface {
	List(ctx context.Context, request *MenusRequest) (*MenusResponse, error)
	GetByID(ctx context.Context, request *MenuByIDRequest) (*Menu, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an iiko.Client.
//
// APILogin is the only required field. APIEndpoint and HTTPTimeout default
// to the production endpoint and 30 seconds; both are fixed once the client
// is constructed.
//
// Retries are disabled unless RetryMax is set: by default every call is
// exactly one network round trip, and rate-limit responses surface their
// Retry-After value as metadata without any corrective action.
type Config struct {
	// APILogin is the API key issued by iiko for this integration. Blank or
	// whitespace-only values are rejected at construction time.
	APILogin string

	// APIEndpoint: base URL for the iiko Cloud API. iikoclient.New trims a
	// trailing slash and adds "https://" if no scheme is present. Defaults
	// to https://api-ru.iiko.services.
	APIEndpoint string

	// HTTPTimeout bounds every request. On expiry the call fails with a
	// classified generic error rather than hanging. Defaults to 30s.
	HTTPTimeout time.Duration

	// RetryMax: opt-in maximum number of retries for transient failures.
	// Zero keeps the single-round-trip behavior.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string
}
