package config

type Config interface {
	EnvConfig
	BackendConfig
	CorsConfig
	OidcConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type BackendConfig interface {
	GetBackendBaseURL() string
	GetDocQABaseURL() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Backend
	Cors
	Oidc
}

func New() Config {
	return mainConfig{}
}
