package iiko

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Provider error codes attached to classified errors.
const (
	ErrorCodeAuth      = "AUTH_ERROR"
	ErrorCodeRateLimit = "RATE_LIMIT"
)

// UnknownErrorMessage is the last-resort message used when neither the
// response body nor the transport provided one.
const UnknownErrorMessage = "An unknown error occurred"

// Static errors for err113 compliance.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrAPILoginRequired = errors.New("apiLogin is required and must not be blank")
	ErrNotAuthenticated = errors.New("not authenticated: call Authenticate first")
)

// ErrorBody is the structured error payload returned by the iiko Cloud API.
// Details carries whatever the server attached; its shape is not specified.
type ErrorBody struct {
	ErrorCode string      `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`
	Message   string      `json:"message,omitempty"   yaml:"message,omitempty"`
	Details   interface{} `json:"details,omitempty"   yaml:"details,omitempty"`
}

// APIError is the generic classified failure: any non-2xx response that is
// neither an authentication failure nor a rate limit, or a transport failure
// that produced no response at all (StatusCode defaults to 500 then).
type APIError struct {
	Message    string
	StatusCode int
	Code       string
	Body       *ErrorBody

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (status: %d, code: %s)", e.Message, e.StatusCode, e.Code)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// Unwrap exposes the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// AuthenticationError is returned when the server rejects the request as
// unauthenticated (HTTP 401). It is distinct from ErrNotAuthenticated, which
// is raised locally before any network call.
type AuthenticationError struct {
	Message    string
	StatusCode int
	Code       string
	Body       *ErrorBody
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s (status: %d, code: %s)", e.Message, e.StatusCode, e.Code)
}

// RateLimitError is returned on HTTP 429. RetryAfter holds the advisory wait
// in seconds parsed from the Retry-After header, or nil when the header is
// missing or unparseable. The client takes no corrective action on its own.
type RateLimitError struct {
	Message    string
	StatusCode int
	Code       string
	RetryAfter *int
	Body       *ErrorBody
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("%s (status: %d, code: %s, retry after: %ds)", e.Message, e.StatusCode, e.Code, *e.RetryAfter)
	}

	return fmt.Sprintf("%s (status: %d, code: %s)", e.Message, e.StatusCode, e.Code)
}

// ClassifyResponse maps a non-2xx response to exactly one error kind.
// Priority is strict: 401 → AuthenticationError, 429 → RateLimitError,
// anything else → APIError. The body is parsed best-effort; an unparseable
// body is dropped rather than failing classification.
func ClassifyResponse(statusCode int, header http.Header, body []byte) error {
	errBody := parseErrorBody(body)
	message := errorMessage(errBody, statusCode)

	switch statusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{
			Message:    message,
			StatusCode: statusCode,
			Code:       ErrorCodeAuth,
			Body:       errBody,
		}
	case http.StatusTooManyRequests:
		return &RateLimitError{
			Message:    message,
			StatusCode: statusCode,
			Code:       ErrorCodeRateLimit,
			RetryAfter: parseRetryAfter(header),
			Body:       errBody,
		}
	default:
		var code string
		if errBody != nil {
			code = errBody.ErrorCode
		}

		return &APIError{
			Message:    message,
			StatusCode: statusCode,
			Code:       code,
			Body:       errBody,
		}
	}
}

// ClassifyTransportError maps a failure that produced no response (connection
// refused, timeout, cancelled context) to the generic kind with status 500.
func ClassifyTransportError(err error) error {
	message := UnknownErrorMessage
	if err != nil {
		message = err.Error()
	}

	return &APIError{
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		cause:      err,
	}
}

// IsAuthenticationError reports whether err is a server-side authentication
// failure (HTTP 401).
func IsAuthenticationError(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// IsRateLimitError reports whether err is a rate-limit failure (HTTP 429).
func IsRateLimitError(err error) bool {
	rateErr := &RateLimitError{}

	return errors.As(err, &rateErr)
}

// RetryAfterSeconds extracts the advisory retry-after value from a rate-limit
// error. The second return is false when err is not a rate-limit error or the
// server sent no usable Retry-After header.
func RetryAfterSeconds(err error) (int, bool) {
	rateErr := &RateLimitError{}
	if errors.As(err, &rateErr) && rateErr.RetryAfter != nil {
		return *rateErr.RetryAfter, true
	}

	return 0, false
}

func parseErrorBody(body []byte) *ErrorBody {
	if len(body) == 0 {
		return nil
	}

	var errBody ErrorBody

	err := json.Unmarshal(body, &errBody)
	if err != nil {
		return nil
	}

	if errBody.ErrorCode == "" && errBody.Message == "" && errBody.Details == nil {
		return nil
	}

	return &errBody
}

// errorMessage selects the message: structured body first, then the HTTP
// status text, then the literal fallback.
func errorMessage(errBody *ErrorBody, statusCode int) string {
	if errBody != nil && errBody.Message != "" {
		return errBody.Message
	}

	if text := http.StatusText(statusCode); text != "" {
		return text
	}

	return UnknownErrorMessage
}

func parseRetryAfter(header http.Header) *int {
	value := header.Get("Retry-After")
	if value == "" {
		return nil
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	return &seconds
}
