package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"
	"github.com/gymstack/gym-admin/profile"
	"github.com/gymstack/gym-admin/server/oidcflow"
	"github.com/gymstack/gym-admin/tokens"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// getOidcConfig lazily builds and caches the provider handles. Provider
// discovery hits the network, so it happens on first use rather than at
// startup.
func (s *Server) getOidcConfig(ctx context.Context) (*OidcConfig, error) {
	s.oidcLock.RLock()
	cached := s.oidcConfig
	s.oidcLock.RUnlock()
	if cached != nil {
		return cached, nil
	}

	provider, err := oidc.NewProvider(ctx, s.config.GetOidcIssuer())
	if err != nil {
		return nil, fmt.Errorf("[getOidcConfig] failed to create OIDC provider: %w", err)
	}

	oidcConfig := &OidcConfig{
		OidcProvider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     s.config.GetOidcClientID(),
			ClientSecret: s.config.GetOidcClientSecret(),
			Endpoint:     provider.Endpoint(),
			RedirectURL:  s.config.GetBaseURL() + RouteCallback,
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		OidcVerifier: provider.Verifier(&oidc.Config{
			ClientID: s.config.GetOidcClientID(),
		}),
	}

	s.oidcLock.Lock()
	s.oidcConfig = oidcConfig
	s.oidcLock.Unlock()

	return oidcConfig, nil
}

// OidcLoginHandler starts the social login flow: store state and nonce,
// then redirect out to the identity provider.
func (s *Server) OidcLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.config.OidcEnabled() {
			redirectWithError(w, r, RouteLogin, "Social login is not configured")
			return
		}

		oidcConfig, err := s.getOidcConfig(r.Context())
		if err != nil {
			log.Err(err).Msg("OIDC provider discovery failed")
			redirectWithError(w, r, RouteLogin, "Social login is unavailable")
			return
		}

		state := uuid.New().String()
		nonce := generateRandomString(32)
		flow := &oidcflow.LoginFlow{
			Nonce:     nonce,
			ReturnURL: RouteHome,
			CreatedAt: time.Now(),
		}
		if err := s.loginFlows.Upsert(state, flow); err != nil {
			log.Err(err).Msg("failed to store login flow")
			redirectWithError(w, r, RouteLogin, "Social login is unavailable")
			return
		}

		authURL := oidcConfig.OAuth2Config.AuthCodeURL(state, oidc.Nonce(nonce))
		http.Redirect(w, r, authURL, http.StatusSeeOther)
	}
}

// OAuthCallbackHandler completes the social login: verify state and nonce,
// exchange the code, then establish the session the same way a password
// login does, tokens before profile.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.FormValue covers both query params and form_post response mode
		state := r.FormValue("state")
		code := r.FormValue("code")
		errorParam := r.FormValue("error")

		if errorParam != "" {
			redirectWithError(w, r, RouteLogin, "Authorization failed: "+errorParam)
			return
		}
		if code == "" || state == "" {
			redirectWithError(w, r, RouteLogin, "Missing code or state parameter")
			return
		}

		flow, err := s.loginFlows.Get(state)
		if err != nil || flow == nil {
			redirectWithError(w, r, RouteLogin, "Invalid state parameter")
			return
		}
		// Clean up state after use
		_ = s.loginFlows.Delete(state)

		oidcConfig, err := s.getOidcConfig(r.Context())
		if err != nil {
			log.Err(err).Msg("OIDC provider discovery failed")
			redirectWithError(w, r, RouteLogin, "Social login is unavailable")
			return
		}

		oauth2Token, err := oidcConfig.OAuth2Config.Exchange(r.Context(), code)
		if err != nil {
			log.Err(err).Msg("token exchange failed")
			redirectWithError(w, r, RouteLogin, "Social login failed")
			return
		}

		rawIDToken, ok := oauth2Token.Extra("id_token").(string)
		if !ok {
			redirectWithError(w, r, RouteLogin, "No ID token in response")
			return
		}

		idToken, err := oidcConfig.OidcVerifier.Verify(r.Context(), rawIDToken)
		if err != nil {
			log.Err(err).Msg("ID token verification failed")
			redirectWithError(w, r, RouteLogin, "Social login failed")
			return
		}

		var claims struct {
			Nonce string `json:"nonce"`
			Sub   string `json:"sub"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := idToken.Claims(&claims); err != nil {
			redirectWithError(w, r, RouteLogin, "Social login failed")
			return
		}

		// Validate nonce to prevent replay attacks
		if claims.Nonce != flow.Nonce {
			redirectWithError(w, r, RouteLogin, "Invalid nonce")
			return
		}

		creds := tokens.NewStore(w, r)
		creds.SetAuthTokens(oauth2Token.AccessToken, oauth2Token.RefreshToken)

		sc := s.newSessionContext(w, r)
		sc.Login(profile.User{
			ID:          claims.Sub,
			Email:       claims.Email,
			DisplayName: claims.Name,
		})

		returnURL := flow.ReturnURL
		if returnURL == "" {
			returnURL = RouteHome
		}
		redirectSuccess(w, r, returnURL)
	}
}
