package profile_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gymstack/gym-admin/profile"
	"github.com/stretchr/testify/require"
)

// roundTrip writes a profile and returns a store reading from the cookies the
// write produced, mimicking a follow-up request.
func roundTrip(t *testing.T, user profile.User) *profile.Store {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	profile.NewStore(w, r).SetUserData(user)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}
	return profile.NewStore(httptest.NewRecorder(), next)
}

func TestSetThenGetUserData(t *testing.T) {
	store := roundTrip(t, profile.User{ID: "u1", Email: "a@b.com", DisplayName: "A B"})

	got := store.GetUserData()
	require.NotNil(t, got)
	require.Equal(t, &profile.User{ID: "u1", Email: "a@b.com", DisplayName: "A B"}, got)
	require.True(t, store.IsAuthenticated())
}

func TestCookieIsSessionScopedAndScriptReadable(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	profile.NewStore(w, r).SetUserData(profile.User{ID: "u1"})

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "user", cookies[0].Name)
	require.False(t, cookies[0].HttpOnly)
	require.Zero(t, cookies[0].MaxAge) // session cookie, dropped when the browser closes
}

func TestGetUserDataMissingReturnsNil(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	store := profile.NewStore(httptest.NewRecorder(), r)
	require.Nil(t, store.GetUserData())
	require.False(t, store.IsAuthenticated())
}

func TestGetUserDataGarbageReturnsNil(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "user", Value: "%%%not-base64%%%"})
	store := profile.NewStore(httptest.NewRecorder(), r)
	require.Nil(t, store.GetUserData())
}

func TestClearUserDataIsIdempotent(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	store := profile.NewStore(w, r)

	store.ClearUserData()
	store.ClearUserData()

	for _, c := range w.Result().Cookies() {
		require.Equal(t, "user", c.Name)
		require.Empty(t, c.Value)
		require.Equal(t, -1, c.MaxAge)
	}
}
