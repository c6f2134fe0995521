package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"
)

// Server serves the auth API.
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// Listen binds addr and prepares the server. Use ":0" for an ephemeral port.
func Listen(addr string, p Authenticator) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return &Server{
		srv: &http.Server{
			Handler:           NewRouter(p),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln: ln,
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// URL returns the base URL a client on this machine should use.
func (s *Server) URL() string {
	return "http://" + dialAddr(s.ln.Addr())
}

// ShareURL returns the base URL to hand to other machines.
func (s *Server) ShareURL() string {
	return "http://" + shareAddr(s.ln.Addr())
}

// Serve blocks until the server is shut down.
func (s *Server) Serve() error {
	log.Printf("[API] listening on %s", s.Addr())
	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
