package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"onbo/internal/auth"
)

// Route paths.
const (
	RegisterRoute = "/api/auth/register"
	SignInRoute   = "/api/auth/callback/credentials"
	SessionRoute  = "/api/auth/session"
	SignOutRoute  = "/api/auth/signout"
	HealthRoute   = "/health"
)

// Authenticator is the credentials backend behind the routes.
// *auth.Provider implements it.
type Authenticator interface {
	Register(name, email, password string) (auth.User, error)
	SignIn(email, password string) (auth.Session, error)
	Session(token string) (auth.Session, error)
	SignOut(token string)
}

var _ Authenticator = (*auth.Provider)(nil)

// NewRouter wires the auth endpoints onto a mux router.
func NewRouter(p Authenticator) *mux.Router {
	h := &handlers{provider: p}

	r := mux.NewRouter()
	r.HandleFunc(HealthRoute, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)
	r.HandleFunc(RegisterRoute, h.register).Methods(http.MethodPost)
	r.HandleFunc(SignInRoute, h.signIn).Methods(http.MethodPost)

	authed := r.PathPrefix("/api/auth").Subrouter()
	authed.Use(requireSession(p))
	authed.HandleFunc("/session", h.session).Methods(http.MethodGet)
	authed.HandleFunc("/signout", h.signOut).Methods(http.MethodPost)
	return r
}
