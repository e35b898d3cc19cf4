// Package http wraps the outbound HTTP transport of the iiko Cloud client:
// request building, bearer attachment, and uniform classification of failed
// responses into the pkg/iiko error taxonomy.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/commonwealth-codeunion/iiko-api/internal/constants"
	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
)

// TokenProvider supplies the bearer token attached to outgoing requests.
// ok must be false while no token has been stored yet.
type TokenProvider interface {
	Token() (token string, ok bool)
}

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the transport used by all resource clients.
type Client struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds every request made by the client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig enables opt-in retries for transient failures. Without it
// every call is a single attempt.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		timeout := c.httpClient.Timeout
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = retryMax
		retryClient.RetryWaitMin = waitMin
		retryClient.RetryWaitMax = waitMax
		retryClient.Logger = nil
		// Hand the final response back untouched once retries are exhausted,
		// so it still goes through classification.
		retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

		c.httpClient = retryClient.StandardClient()
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new API transport. tokens may be nil for clients that
// never attach authorization (tests).
func NewClient(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	// Every call is exactly one round trip unless WithRetryConfig replaces
	// the client: retries are disabled entirely so a 5xx or 429 response is
	// classified, never swallowed by the retry policy.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = func(_ context.Context, _ *http.Response, err error) (bool, error) {
		return false, err
	}

	httpClient := retryClient.StandardClient()
	httpClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: httpClient,
		userAgent:  "iiko-api-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and classifies any failure. On a non-2xx status both
// the raw response and the classified error are returned, so callers can
// still inspect status and body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, iiko.ClassifyTransportError(err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, iiko.ClassifyTransportError(err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         httpReq.URL.String(),
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, iiko.ClassifyResponse(resp.StatusCode, resp.Headers, resp.Body)
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}
