package gate

import "github.com/gymstack/gym-admin/session"

// ShellGate wraps the whole page shell (sidebar, header). It excludes a fixed
// allow-list of public paths and applies the protected check to every other
// path before the navigational chrome mounts. Per-page gates run the same
// check again; both layers must agree on the allow-list semantics.
type ShellGate struct {
	loginPath   string
	publicPaths map[string]struct{}
}

func NewShellGate(loginPath string, publicPaths ...string) *ShellGate {
	paths := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		paths[p] = struct{}{}
	}
	return &ShellGate{loginPath: loginPath, publicPaths: paths}
}

// IsPublic reports whether the path is on the allow-list.
func (g *ShellGate) IsPublic(path string) bool {
	_, ok := g.publicPaths[path]
	return ok
}

// Evaluate decides whether the shell may mount for the given path.
func (g *ShellGate) Evaluate(sc *session.Context, path string) Decision {
	if g.IsPublic(path) {
		return allow()
	}
	return EvaluateProtected(sc, g.loginPath)
}
