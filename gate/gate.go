// Package gate decides whether a route may render for the current session.
// Decisions are plain values; the side-effecting redirect lives in Dispatch,
// so the decision logic stays unit-testable on its own.
package gate

import "github.com/gymstack/gym-admin/session"

// Action is the kind of decision a gate produces.
type Action int

const (
	// Allow renders the page.
	Allow Action = iota
	// Pending means hydration has not finished; render a neutral loading
	// indicator and never redirect. This prevents both the login-page flash
	// for authenticated users and the protected-content flash for anonymous
	// ones.
	Pending
	// Redirect navigates to Decision.Location and renders nothing further.
	Redirect
)

// Decision is the outcome of evaluating a gate against a session.
type Decision struct {
	Action   Action
	Location string // set only when Action == Redirect
}

func allow() Decision            { return Decision{Action: Allow} }
func pending() Decision          { return Decision{Action: Pending} }
func redirectTo(path string) Decision { return Decision{Action: Redirect, Location: path} }

// EvaluateProtected guards pages that require an authenticated session.
// Anonymous sessions are sent to loginPath; a still-hydrating session is
// Pending, never a redirect.
func EvaluateProtected(sc *session.Context, loginPath string) Decision {
	if sc.IsLoading() {
		return pending()
	}
	if sc.User() == nil {
		return redirectTo(loginPath)
	}
	return allow()
}

// EvaluatePublic guards login/register pages: an authenticated session is
// sent home, everyone else sees the page.
func EvaluatePublic(sc *session.Context, homePath string) Decision {
	if sc.IsLoading() {
		return pending()
	}
	if sc.User() != nil {
		return redirectTo(homePath)
	}
	return allow()
}
