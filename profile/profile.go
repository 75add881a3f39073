// Package profile stores the non-sensitive user profile in a client-readable,
// browser-session-scoped cookie. It carries only what the UI needs to greet
// the user; no roles, no password material, no tokens.
package profile

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const userCookieName = "user"

// User is the client-visible subset of the backend account record.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
}

// Store is a per-request view over the user cookie.
type Store struct {
	w http.ResponseWriter
	r *http.Request
}

func NewStore(w http.ResponseWriter, r *http.Request) *Store {
	return &Store{w: w, r: r}
}

// SetUserData serializes and stores the profile, overwriting any previous
// value. The cookie is deliberately not HTTP-only (the profile is public to
// page script) and has no max age, scoping it to the browser session.
func (s *Store) SetUserData(user User) {
	payload, err := json.Marshal(user)
	if err != nil {
		return
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     userCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetUserData returns the stored profile, or nil when nothing is stored or
// the cookie cannot be decoded. It never fails.
func (s *Store) GetUserData() *User {
	cookie, err := s.r.Cookie(userCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var user User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil
	}
	return &user
}

// ClearUserData removes the profile cookie. Safe to call repeatedly.
func (s *Store) ClearUserData() {
	http.SetCookie(s.w, &http.Cookie{
		Name:   userCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// IsAuthenticated reports whether a readable profile is present.
func (s *Store) IsAuthenticated() bool {
	return s.GetUserData() != nil
}
