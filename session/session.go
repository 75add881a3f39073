// Package session is the single source of truth for "who is logged in" during
// the lifetime of one request. A Context is constructed per request and passed
// by reference to the route gates and any handler needing identity; nothing
// reads session state through a global.
package session

import (
	"context"
	"time"

	"github.com/gymstack/gym-admin/profile"
	"github.com/rs/zerolog/log"
)

// State is the session lifecycle state.
type State int

const (
	// Hydrating is the initial state, before the profile store has been read.
	Hydrating State = iota
	// Authenticated means a profile was found or Login was called.
	Authenticated
	// Anonymous means hydration found nothing or Logout was called.
	Anonymous
)

// ProfileStore is the persistence the context hydrates from and writes to.
// The production implementation is the cookie store in package profile.
type ProfileStore interface {
	SetUserData(user profile.User)
	GetUserData() *profile.User
	ClearUserData()
}

// RevokeFunc performs the backend logout call. Token clearing on the cookie
// side is the caller's responsibility, triggered by the same logout.
type RevokeFunc func(ctx context.Context) error

// Context owns the session state. Only Context mutates it.
type Context struct {
	profiles ProfileStore
	revoke   RevokeFunc

	state State
	user  *profile.User
}

// New creates a Context in the Hydrating state.
func New(profiles ProfileStore, revoke RevokeFunc) *Context {
	return &Context{
		profiles: profiles,
		revoke:   revoke,
		state:    Hydrating,
	}
}

// Hydrate reads the profile store once and resolves the loading state.
// Subsequent calls are no-ops: once hydration completes, IsLoading never
// becomes true again for this context.
func (c *Context) Hydrate() {
	if c.state != Hydrating {
		return
	}
	if user := c.profiles.GetUserData(); user != nil {
		c.user = user
		c.state = Authenticated
		return
	}
	c.state = Anonymous
}

// IsLoading reports whether the initial hydration pass is still pending.
func (c *Context) IsLoading() bool {
	return c.state == Hydrating
}

// User returns the authenticated profile, or nil.
func (c *Context) User() *profile.User {
	return c.user
}

// IsAuthenticated is derived from User; it is never true while loading.
func (c *Context) IsAuthenticated() bool {
	return c.user != nil
}

// State returns the current lifecycle state.
func (c *Context) State() State {
	return c.state
}

// Login records a successful credential exchange. It must be called only
// after the token store has been written; tokens before profile is the
// ordering contract for the whole login path.
func (c *Context) Login(user profile.User) {
	c.profiles.SetUserData(user)
	u := user
	c.user = &u
	c.state = Authenticated
}

// Logout invokes the backend logout best-effort, then unconditionally clears
// the profile store and moves to Anonymous. A failed backend call is logged
// and swallowed; local state must clear regardless.
func (c *Context) Logout(ctx context.Context) {
	if c.revoke != nil {
		callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := c.revoke(callCtx); err != nil {
			log.Err(err).Msg("Logout: backend logout failed, clearing local session anyway")
		}
	}

	c.profiles.ClearUserData()
	c.user = nil
	c.state = Anonymous
}
