package config

type Backend struct{}

var _ BackendConfig = Backend{}

// GetBackendBaseURL returns the base URL of the gym-management REST API.
func (Backend) GetBackendBaseURL() string {
	return GetEnv("BACKEND_BASE_URL", "http://localhost:8787/")
}

// GetDocQABaseURL returns the base URL of the document question-answering
// service used by the chat page. Defaults to a separate local service, which
// is how the deployments run it.
func (Backend) GetDocQABaseURL() string {
	return GetEnv("DOCQA_BASE_URL", "http://localhost:8080/")
}
