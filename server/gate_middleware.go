package server

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gymstack/gym-admin/gate"
	"github.com/gymstack/gym-admin/profile"
	"github.com/gymstack/gym-admin/session"
	"github.com/gymstack/gym-admin/tokens"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySession stores the per-request session context
	ContextKeySession ContextKey = "session"
	// ContextKeyRequestID stores the request correlation ID
	ContextKeyRequestID ContextKey = "request_id"
)

// SessionFromContext returns the session context injected by the gate
// middleware, or nil when the route carries no gate.
func SessionFromContext(ctx context.Context) *session.Context {
	sc, _ := ctx.Value(ContextKeySession).(*session.Context)
	return sc
}

// newSessionContext wires a session context to the request's cookies. The
// revoke callback tells the backend to invalidate the refresh token using
// whatever access token the request carried.
func (s *Server) newSessionContext(w http.ResponseWriter, r *http.Request) *session.Context {
	profiles := profile.NewStore(w, r)
	creds := tokens.NewStore(w, r)
	revoke := func(ctx context.Context) error {
		return s.backend.Logout(ctx, creds.AccessToken())
	}
	return session.New(profiles, revoke)
}

// RequireSession gates routes that need an authenticated user. A stored
// profile whose access token has expired is treated as stale: both cookie
// stores are cleared and the user is sent back to login.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			creds := tokens.NewStore(w, r)
			profiles := profile.NewStore(w, r)

			if profiles.IsAuthenticated() && accessTokenExpired(creds.AccessToken()) {
				creds.ClearAuthTokens()
				profiles.ClearUserData()
				http.Redirect(w, r, RouteLogin+"?error=Session+expired", http.StatusSeeOther)
				return
			}

			sc := s.newSessionContext(w, r)
			sc.Hydrate()
			if gate.Dispatch(w, r, gate.EvaluateProtected(sc, RouteLogin)) {
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sc)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireAnonymous gates routes like the login page that an authenticated
// user should never see. They get bounced to the home page instead.
func (s *Server) RequireAnonymous() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sc := s.newSessionContext(w, r)
			sc.Hydrate()
			if gate.Dispatch(w, r, gate.EvaluatePublic(sc, RouteHome)) {
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sc)
			next(w, r.WithContext(ctx))
		}
	}
}

// ShellGateMiddleware applies the shell-level allow-list check before any
// navigational chrome renders. Routes on the allow-list pass untouched.
func (s *Server) ShellGateMiddleware() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sc := s.newSessionContext(w, r)
			sc.Hydrate()
			if gate.Dispatch(w, r, s.shellGate.Evaluate(sc, r.URL.Path)) {
				return
			}
			next(w, r)
		}
	}
}

// accessTokenExpired inspects the exp claim without verifying the signature.
// The backend remains the authority on token validity; this check only exists
// so the UI can drop a session it already knows is dead instead of rendering
// a page full of failed fetches. Opaque or malformed tokens pass through and
// the backend rejects them on the next call.
func accessTokenExpired(token string) bool {
	if token == "" {
		return true
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	expiry, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}
	return expiry.Before(time.Now())
}
