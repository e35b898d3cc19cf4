package auth_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commonwealth-codeunion/iiko-api/internal/auth"
)

func TestSession_StartsUnauthenticated(t *testing.T) {
	t.Parallel()

	session := auth.NewSession()

	assert.False(t, session.Authenticated())

	token, ok := session.Token()
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestSession_StoreTransitionsAndReplaces(t *testing.T) {
	t.Parallel()

	session := auth.NewSession()

	session.Store("first-token")
	assert.True(t, session.Authenticated())

	token, ok := session.Token()
	assert.True(t, ok)
	assert.Equal(t, "first-token", token)

	// A later Store replaces the token; the session never reverts.
	session.Store("second-token")

	token, ok = session.Token()
	assert.True(t, ok)
	assert.Equal(t, "second-token", token)
}

func TestSession_ConcurrentStores(t *testing.T) {
	t.Parallel()

	session := auth.NewSession()

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			session.Store("token")
		}()
	}

	wg.Wait()

	token, ok := session.Token()
	assert.True(t, ok)
	assert.Equal(t, "token", token)
}
