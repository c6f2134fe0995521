package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"onbo/internal/board"
)

const (
	appDir   = "onbo"
	fileName = "config.toml"

	// EnvPath points at an explicit config file.
	EnvPath = "ONBO_CONFIG"
)

// Config is the on-disk application configuration.
type Config struct {
	Canvas board.Config `toml:"canvas"`
	Server Server       `toml:"server"`
	Auth   Auth         `toml:"auth"`
	Log    Log          `toml:"log"`
}

type Server struct {
	Addr string `toml:"addr"`
}

type Auth struct {
	SessionTTL Duration `toml:"session_ttl"`
	// DemoUser seeds the test@example.com account.
	DemoUser bool `toml:"demo_user"`
}

type Log struct {
	Debug bool `toml:"debug"`
}

// Duration is a time.Duration stored as a string such as "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func Default() Config {
	return Config{
		Canvas: board.DefaultConfig(),
		Server: Server{Addr: "127.0.0.1:3000"},
		Auth: Auth{
			SessionTTL: Duration{24 * time.Hour},
			DemoUser:   true,
		},
	}
}

// Path returns the config file location: $ONBO_CONFIG if set, otherwise
// config.toml under the XDG config directory.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return filepath.Join(configDir(), fileName)
}

// Load reads the config at path. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.Auth.SessionTTL.Duration <= 0 {
		return cfg, fmt.Errorf("read config %s: session_ttl must be positive", path)
	}
	canvas, err := cfg.Canvas.Normalize()
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg.Canvas = canvas
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// LoadOrInit loads the config at path, writing the defaults first if the file
// does not exist yet.
func LoadOrInit(path string) (Config, error) {
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("[CONFIG] initializing %s", path)
		if err := Save(path, Default()); err != nil {
			return Default(), err
		}
	case err != nil:
		return Default(), fmt.Errorf("stat config %s: %w", path, err)
	}
	return Load(path)
}

func configDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), appDir)
}

func xdgOrFallback(xdg string, fallback string) string {
	if dir := os.Getenv(xdg); dir != "" {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	return fallback
}
