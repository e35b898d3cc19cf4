package iiko_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonwealth-codeunion/iiko-api/pkg/iiko"
)

func TestClassifyResponse_Authentication(t *testing.T) {
	t.Parallel()

	body := []byte(`{"errorCode":"Unauthorized","message":"Authorization failed"}`)

	err := iiko.ClassifyResponse(http.StatusUnauthorized, http.Header{}, body)
	require.Error(t, err)

	authErr := &iiko.AuthenticationError{}
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 401, authErr.StatusCode)
	assert.Equal(t, iiko.ErrorCodeAuth, authErr.Code)
	assert.Equal(t, "Authorization failed", authErr.Message)
	require.NotNil(t, authErr.Body)
	assert.Equal(t, "Unauthorized", authErr.Body.ErrorCode)

	assert.True(t, iiko.IsAuthenticationError(err))
	assert.False(t, iiko.IsRateLimitError(err))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClassifyResponse_RateLimit(t *testing.T) {
	t.Parallel()
	t.Run("with retry-after header", func(t *testing.T) {
		t.Parallel()

		header := http.Header{}
		header.Set("Retry-After", "60")

		err := iiko.ClassifyResponse(http.StatusTooManyRequests, header, nil)
		require.Error(t, err)

		rateErr := &iiko.RateLimitError{}
		require.ErrorAs(t, err, &rateErr)
		assert.Equal(t, 429, rateErr.StatusCode)
		assert.Equal(t, iiko.ErrorCodeRateLimit, rateErr.Code)
		require.NotNil(t, rateErr.RetryAfter)
		assert.Equal(t, 60, *rateErr.RetryAfter)

		seconds, ok := iiko.RetryAfterSeconds(err)
		assert.True(t, ok)
		assert.Equal(t, 60, seconds)
	})

	t.Run("without retry-after header", func(t *testing.T) {
		t.Parallel()

		err := iiko.ClassifyResponse(http.StatusTooManyRequests, http.Header{}, nil)

		rateErr := &iiko.RateLimitError{}
		require.ErrorAs(t, err, &rateErr)
		assert.Nil(t, rateErr.RetryAfter)

		_, ok := iiko.RetryAfterSeconds(err)
		assert.False(t, ok)
	})

	t.Run("unparseable retry-after header", func(t *testing.T) {
		t.Parallel()

		header := http.Header{}
		header.Set("Retry-After", "Wed, 21 Oct 2026 07:28:00 GMT")

		err := iiko.ClassifyResponse(http.StatusTooManyRequests, header, nil)

		rateErr := &iiko.RateLimitError{}
		require.ErrorAs(t, err, &rateErr)
		assert.Nil(t, rateErr.RetryAfter)
	})
}

func TestClassifyResponse_Generic(t *testing.T) {
	t.Parallel()
	t.Run("server error with structured body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"message":"Internal server error"}`)

		err := iiko.ClassifyResponse(http.StatusInternalServerError, http.Header{}, body)
		require.Error(t, err)

		apiErr := &iiko.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, "Internal server error", apiErr.Message)
	})

	t.Run("falls back to status text without body", func(t *testing.T) {
		t.Parallel()

		err := iiko.ClassifyResponse(http.StatusBadGateway, http.Header{}, nil)

		apiErr := &iiko.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 502, apiErr.StatusCode)
		assert.Equal(t, "Bad Gateway", apiErr.Message)
	})

	t.Run("carries provider error code", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"errorCode":"BadRequest","message":"organizationIds required","details":["organizationIds"]}`)

		err := iiko.ClassifyResponse(http.StatusBadRequest, http.Header{}, body)

		apiErr := &iiko.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "BadRequest", apiErr.Code)
		require.NotNil(t, apiErr.Body)
		assert.NotNil(t, apiErr.Body.Details)
	})

	t.Run("unparseable body is dropped", func(t *testing.T) {
		t.Parallel()

		err := iiko.ClassifyResponse(http.StatusBadRequest, http.Header{}, []byte("<html>oops</html>"))

		apiErr := &iiko.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Nil(t, apiErr.Body)
		assert.Equal(t, "Bad Request", apiErr.Message)
	})
}

func TestClassifyResponse_Priority(t *testing.T) {
	t.Parallel()

	// A 401 with a Retry-After header still classifies as authentication.
	header := http.Header{}
	header.Set("Retry-After", "30")

	err := iiko.ClassifyResponse(http.StatusUnauthorized, header, nil)
	assert.True(t, iiko.IsAuthenticationError(err))
	assert.False(t, iiko.IsRateLimitError(err))
}

func TestClassifyTransportError(t *testing.T) {
	t.Parallel()
	t.Run("wraps underlying error", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("dial tcp: connection refused")

		err := iiko.ClassifyTransportError(cause)

		apiErr := &iiko.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, cause.Error(), apiErr.Message)
		require.ErrorIs(t, err, cause)
	})

	t.Run("nil error falls back to the unknown message", func(t *testing.T) {
		t.Parallel()

		err := iiko.ClassifyTransportError(nil)

		apiErr := &iiko.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, iiko.UnknownErrorMessage, apiErr.Message)
		assert.Equal(t, 500, apiErr.StatusCode)
	})
}
