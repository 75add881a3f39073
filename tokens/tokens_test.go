package tokens_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gymstack/gym-admin/tokens"
	"github.com/stretchr/testify/require"
)

func cookieByName(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSetAuthTokens(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)

	tokens.NewStore(w, r).SetAuthTokens("t1", "t2")

	resp := w.Result()
	access := cookieByName(resp, "access_token")
	refresh := cookieByName(resp, "refresh_token")

	require.NotNil(t, access)
	require.Equal(t, "t1", access.Value)
	require.True(t, access.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, access.SameSite)
	require.Equal(t, "/", access.Path)
	require.Equal(t, int(tokens.AccessTokenTTL.Seconds()), access.MaxAge)

	require.NotNil(t, refresh)
	require.Equal(t, "t2", refresh.Value)
	require.True(t, refresh.HttpOnly)
	require.Equal(t, int(tokens.RefreshTokenTTL.Seconds()), refresh.MaxAge)
}

func TestSecureFlagFollowsScheme(t *testing.T) {
	t.Run("plain http", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		tokens.NewStore(w, r).SetAuthTokens("t1", "t2")
		require.False(t, cookieByName(w.Result(), "access_token").Secure)
	})

	t.Run("behind https proxy", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		r.Header.Set("X-Forwarded-Proto", "https")
		tokens.NewStore(w, r).SetAuthTokens("t1", "t2")
		require.True(t, cookieByName(w.Result(), "access_token").Secure)
		require.True(t, cookieByName(w.Result(), "refresh_token").Secure)
	})
}

func TestReadTokens(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/members", nil)
	r.AddCookie(&http.Cookie{Name: "access_token", Value: "t1"})
	r.AddCookie(&http.Cookie{Name: "refresh_token", Value: "t2"})

	store := tokens.NewStore(httptest.NewRecorder(), r)
	require.Equal(t, "t1", store.AccessToken())
	require.Equal(t, "t2", store.RefreshToken())
}

func TestMissingTokensAreEmptyNotError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/members", nil)
	store := tokens.NewStore(httptest.NewRecorder(), r)
	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
}

func TestClearAuthTokensIsIdempotent(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	store := tokens.NewStore(w, r)

	store.ClearAuthTokens()
	store.ClearAuthTokens()

	var cleared int
	for _, c := range w.Result().Cookies() {
		require.Empty(t, c.Value)
		require.Equal(t, -1, c.MaxAge)
		cleared++
	}
	require.Equal(t, 4, cleared) // two cookies, cleared twice, same empty result
}
