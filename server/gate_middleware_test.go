package server_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gymstack/gym-admin/gateway"
	"github.com/gymstack/gym-admin/gateway/gatewaytest"
	"github.com/gymstack/gym-admin/internal/config"
	"github.com/gymstack/gym-admin/server"
	"github.com/gymstack/gym-admin/server/oidcflow"
	"github.com/stretchr/testify/require"
)

// authenticatedRequest builds a request carrying a fresh token pair and
// profile cookie, as a logged-in browser would send.
func authenticatedRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, target, nil)
	r.AddCookie(&http.Cookie{Name: "access_token", Value: gatewaytest.MintAccessToken("u-1", 15*time.Minute)})
	r.AddCookie(&http.Cookie{Name: "refresh_token", Value: gatewaytest.MintAccessToken("u-1", 7*24*time.Hour)})
	r.AddCookie(&http.Cookie{Name: "user", Value: encodeProfileCookie(t, "u-1", "owner@gym.test", "Sam Owner")})
	return r
}

func TestProtectedPages(t *testing.T) {
	fake := gatewaytest.NewFakeBackend()
	fake.Members = []gateway.Member{{ID: "m-1", FirstName: "Ada", LastName: "Lovelace", Memberships: []gateway.Membership{{Status: "Active"}}}}
	srv := newTestServer(t, fake)

	t.Run("anonymous visitor is redirected to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, server.RouteMembers, nil))

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, server.RouteLogin, w.Header().Get("Location"))
	})

	t.Run("authenticated visitor sees the page", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, authenticatedRequest(t, http.MethodGet, server.RouteMembers))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Ada Lovelace")
		require.Contains(t, w.Body.String(), "Sam Owner")
	})

	t.Run("expired access token drops the session", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, server.RouteMembers, nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: gatewaytest.MintAccessToken("u-1", -time.Minute)})
		r.AddCookie(&http.Cookie{Name: "user", Value: encodeProfileCookie(t, "u-1", "owner@gym.test", "Sam Owner")})
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusSeeOther, w.Code)
		location, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		require.Equal(t, server.RouteLogin, location.Path)
		require.Equal(t, "Session expired", location.Query().Get("error"))
		requireClearedCookies(t, w.Result().Cookies())
	})

	t.Run("profile without any token is treated as expired", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, server.RouteHome, nil)
		r.AddCookie(&http.Cookie{Name: "user", Value: encodeProfileCookie(t, "u-1", "owner@gym.test", "Sam Owner")})
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusSeeOther, w.Code)
		location, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		require.Equal(t, server.RouteLogin, location.Path)
	})
}

func TestPublicPages(t *testing.T) {
	fake := gatewaytest.NewFakeBackend()
	fake.Answer = "The gym opens at six."
	srv := newTestServer(t, fake)

	t.Run("login page renders for anonymous visitors", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, server.RouteLogin, nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Sign in")
	})

	t.Run("authenticated visitor is bounced from the login page", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, authenticatedRequest(t, http.MethodGet, server.RouteLogin))

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, server.RouteHome, w.Header().Get("Location"))
	})

	t.Run("register page renders for anonymous visitors", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, server.RouteRegister, nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Create an account")
	})

	t.Run("chat page needs no session", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, server.RouteChat, nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Assistant")
	})

	t.Run("ask proxy answers without a session", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, server.RouteAPIAsk, strings.NewReader(`{"question":"When does the gym open?"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "The gym opens at six.")
	})

	t.Run("ask proxy rejects an empty question", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, server.RouteAPIAsk, strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "question is required")
	})
}

func TestBackendErrorsRenderInPage(t *testing.T) {
	// A dead backend must degrade the page, not break it: the visitor still
	// gets the members page with the transport message in the error banner.
	deadBackend := httptest.NewServer(http.NotFoundHandler())
	deadBackend.Close()

	t.Setenv("ENV", "TEST")
	srv, err := server.New(config.New(), gateway.New(deadBackend.URL), oidcflow.NewInMemoryRepo())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, authenticatedRequest(t, http.MethodGet, server.RouteMembers))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), gateway.TransportErrorMessage)
}
