package integration

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ongcloud/backend/tests/testutil"
)

func TestAuthFlow(t *testing.T) {
	srv := NewTestServer(t)

	t.Run("login returns flat bearer token", func(t *testing.T) {
		form := url.Values{}
		form.Set("username", "ana@ejemplo.com")
		form.Set("password", "123")

		w := testutil.DoForm(t, srv.Engine, http.MethodPost, "/auth/token", form)
		testutil.RequireStatus(t, w, http.StatusOK)

		resp := testutil.ParseJSON(t, w)
		assert.Equal(t, "bearer", resp["token_type"])
		assert.NotEmpty(t, resp["access_token"])
		// Flat payload, no envelope
		assert.NotContains(t, resp, "success")
	})

	t.Run("login is case insensitive on email", func(t *testing.T) {
		form := url.Values{}
		form.Set("username", "ANA@ejemplo.com")
		form.Set("password", "123")

		w := testutil.DoForm(t, srv.Engine, http.MethodPost, "/auth/token", form)
		testutil.RequireStatus(t, w, http.StatusOK)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		form := url.Values{}
		form.Set("username", "ana@ejemplo.com")
		form.Set("password", "wrong")

		w := testutil.DoForm(t, srv.Engine, http.MethodPost, "/auth/token", form)
		testutil.RequireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("unknown user gets the same error as wrong password", func(t *testing.T) {
		form := url.Values{}
		form.Set("username", "nadie@ejemplo.com")
		form.Set("password", "123")

		w := testutil.DoForm(t, srv.Engine, http.MethodPost, "/auth/token", form)
		testutil.RequireStatus(t, w, http.StatusUnauthorized)
		assert.Equal(t, "ERR_UNAUTHORIZED", testutil.EnvelopeErrorCode(t, w))
	})

	t.Run("missing credentials is a bad request", func(t *testing.T) {
		w := testutil.DoForm(t, srv.Engine, http.MethodPost, "/auth/token", url.Values{})
		testutil.RequireStatus(t, w, http.StatusBadRequest)
	})

	t.Run("protected route requires a token", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, "/ongs/", nil, "")
		testutil.RequireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, "/ongs/", nil, "not-a-jwt")
		testutil.RequireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired, err := srv.JWT.GenerateTokenWithTTL("ana@ejemplo.com", -time.Minute)
		require.NoError(t, err)

		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, "/ongs/", nil, expired.AccessToken)
		testutil.RequireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("token for a deleted subject is rejected", func(t *testing.T) {
		ghost, err := srv.JWT.GenerateTokenWithTTL("fantasma@ejemplo.com", time.Minute)
		require.NoError(t, err)

		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, "/ongs/", nil, ghost.AccessToken)
		testutil.RequireStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("health is public", func(t *testing.T) {
		w := testutil.DoJSON(t, srv.Engine, http.MethodGet, "/health", nil, "")
		testutil.RequireStatus(t, w, http.StatusOK)
	})
}
