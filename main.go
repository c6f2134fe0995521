package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gogpu/gg"

	"onbo/internal/api"
	"onbo/internal/auth"
	"onbo/internal/config"
	"onbo/internal/ui"
)

// Usage:
//
//	onbo                  run the auth API and the desktop app
//	onbo serve            run only the auth API
//	onbo http://host:port run the desktop app against a remote API
func main() {
	cfg, err := config.LoadOrInit(config.Path())
	if err != nil {
		log.Fatalf("Couldn't load config: %v", err)
	}
	if cfg.Log.Debug {
		gg.SetLogger(slog.Default())
	}

	args := os.Args
	switch {
	case len(args) > 1 && args[1] == "serve":
		runServer(cfg)
	case len(args) > 1 && (strings.HasPrefix(args[1], "http://") || strings.HasPrefix(args[1], "https://")):
		runClient(cfg, args[1])
	default:
		runLocal(cfg)
	}
}

func newProvider(cfg config.Config) *auth.Provider {
	p := auth.NewProvider(cfg.Auth.SessionTTL.Duration)
	if cfg.Auth.DemoUser {
		if err := p.SeedDemoUser(); err != nil {
			log.Fatalf("Couldn't seed demo user: %v", err)
		}
	}
	return p
}

func startServer(cfg config.Config) *api.Server {
	srv, err := api.Listen(cfg.Server.Addr, newProvider(cfg))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	go func() {
		if err := srv.Serve(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()
	return srv
}

func stopServer(srv *api.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}

func runLocal(cfg config.Config) {
	log.Println("Starting auth API and whiteboard")
	srv := startServer(cfg)
	defer stopServer(srv)
	ui.RunApp(api.NewClient(srv.URL()), cfg.Canvas)
}

func runServer(cfg config.Config) {
	log.Println("Starting auth API only")
	srv := startServer(cfg)
	log.Printf("Clients can connect with: onbo %s", srv.ShareURL())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	stopServer(srv)
}

func runClient(cfg config.Config, baseURL string) {
	log.Printf("Starting whiteboard against %s", baseURL)
	ui.RunApp(api.NewClient(baseURL), cfg.Canvas)
}
