package constants

import "time"

// API endpoints.
const (
	// DefaultAPIEndpoint is the production iiko Cloud API base URL.
	DefaultAPIEndpoint = "https://api-ru.iiko.services"

	// AccessTokenPath is the authentication endpoint.
	AccessTokenPath = "/api/1/access_token"

	// OrganizationsPath lists organizations.
	OrganizationsPath = "/api/1/organizations"

	// MenuPath lists external menus.
	MenuPath = "/api/2/menu"

	// MenuByIDPath fetches a full external menu document.
	MenuByIDPath = "/api/2/menu/by_id"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless explicitly configured.
const (
	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
