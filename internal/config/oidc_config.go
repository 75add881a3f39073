package config

type OidcConfig interface {
	GetOidcIssuer() string
	GetOidcClientID() string
	GetOidcClientSecret() string
	OidcEnabled() bool
}

type Oidc struct{}

var _ OidcConfig = Oidc{}

// GetOidcIssuer returns the issuer URL of the identity provider backing the
// social-login buttons (e.g., "https://accounts.google.com").
func (Oidc) GetOidcIssuer() string {
	return GetEnv("OIDC_ISSUER", "")
}

func (Oidc) GetOidcClientID() string {
	return GetEnv("OIDC_CLIENT_ID", "")
}

func (Oidc) GetOidcClientSecret() string {
	return GetEnv("OIDC_CLIENT_SECRET", "")
}

// OidcEnabled reports whether social login is configured. When false the
// login page renders without the provider buttons.
func (o Oidc) OidcEnabled() bool {
	return o.GetOidcIssuer() != "" && o.GetOidcClientID() != ""
}
