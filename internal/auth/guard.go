package auth

import "strings"

// Page paths.
const (
	HomePath     = "/"
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"
)

// Decision is the outcome of a route check.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide applies the access rules for path:
//   - API routes are never guarded.
//   - The register page is open to everyone.
//   - Signed-in users are sent home from the other auth pages.
//   - Everything else requires a session; the login page is the way in.
func Decide(path string, authenticated bool) Decision {
	switch {
	case path == "/api" || strings.HasPrefix(path, "/api/"):
		return Decision{Allow: true}
	case path == RegisterPath:
		return Decision{Allow: true}
	case isAuthPage(path):
		if authenticated {
			return Decision{RedirectTo: HomePath}
		}
		if path == LoginPath {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: LoginPath}
	case authenticated:
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: LoginPath}
}

func isAuthPage(path string) bool {
	return path == "/auth" || strings.HasPrefix(path, "/auth/")
}
