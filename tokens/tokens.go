// Package tokens holds the backend credential pair in HTTP-only cookies on
// behalf of the server layer. Page script can never read either token; the
// only readers are the request handlers that attach the access token to
// backend calls.
package tokens

import (
	"net/http"
	"time"
)

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"

	// AccessTokenTTL matches the backend's short-lived access token.
	AccessTokenTTL = 15 * time.Minute
	// RefreshTokenTTL matches the backend's long-lived refresh token.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Store is a per-request view over the credential cookies.
type Store struct {
	w http.ResponseWriter
	r *http.Request
}

func NewStore(w http.ResponseWriter, r *http.Request) *Store {
	return &Store{w: w, r: r}
}

// SetAuthTokens stores both tokens as HTTP-only, SameSite=Lax cookies with
// per-token max ages. The Secure flag follows the request scheme, so cookies
// are Secure everywhere except plain-HTTP local development.
func (s *Store) SetAuthTokens(access, refresh string) {
	isSecure := isSecureRequest(s.r)

	http.SetCookie(s.w, &http.Cookie{
		Name:     accessCookieName,
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(AccessTokenTTL.Seconds()),
	})

	http.SetCookie(s.w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refresh,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(RefreshTokenTTL.Seconds()),
	})
}

// AccessToken returns the stored access token, or "" if absent. A missing
// token is a normal anonymous state, never an error.
func (s *Store) AccessToken() string {
	return cookieValue(s.r, accessCookieName)
}

// RefreshToken returns the stored refresh token, or "" if absent.
func (s *Store) RefreshToken() string {
	return cookieValue(s.r, refreshCookieName)
}

// ClearAuthTokens deletes both cookies. Safe to call when nothing is stored.
func (s *Store) ClearAuthTokens() {
	clearCookie(s.w, accessCookieName)
	clearCookie(s.w, refreshCookieName)
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:   name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return r.Header.Get("X-Forwarded-Proto") == "https"
}
