package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gymstack/gym-admin/gate"
	"github.com/gymstack/gym-admin/gateway"
	"github.com/gymstack/gym-admin/internal/config"
	"github.com/gymstack/gym-admin/server/oidcflow"
	"golang.org/x/oauth2"
)

// OidcConfig bundles the provider handles for the social login flow.
type OidcConfig struct {
	OidcProvider *oidc.Provider
	OAuth2Config *oauth2.Config
	OidcVerifier *oidc.IDTokenVerifier
}

type Server struct {
	env        string // Environment (e.g., "DEV", "PROD")
	mux        *http.ServeMux
	routes     []string
	config     config.Config
	backend    *gateway.Client
	shellGate  *gate.ShellGate
	loginFlows oidcflow.Repo

	oidcConfig *OidcConfig
	oidcLock   sync.RWMutex
}

func New(config config.Config, backend *gateway.Client, loginFlowRepo oidcflow.Repo) (*Server, error) {
	if backend == nil {
		return nil, fmt.Errorf("[Server New] backend client is required")
	}

	s := &Server{
		mux:        http.NewServeMux(),
		config:     config,
		backend:    backend,
		loginFlows: loginFlowRepo,
		shellGate:  gate.NewShellGate(RouteLogin, RouteAuthPage, RouteLogin, RouteChat, RouteRegister),
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
