package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the email/password pair is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when registering an email that is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidInput is returned for missing or malformed registration fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSessionNotFound is returned for unknown or revoked tokens.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session has expired.
	ErrSessionExpired = errors.New("session expired")
)

// Demo account accepted by the stub provider.
const (
	DemoID       = "1"
	DemoName     = "Test User"
	DemoEmail    = "test@example.com"
	DemoPassword = "password"
)

// User is an account known to the provider.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	passwordHash []byte
}

// Session is an issued login.
type Session struct {
	Token   string    `json:"token"`
	User    User      `json:"user"`
	Expires time.Time `json:"expires"`
}

// Provider is an in-memory credentials provider. It stands in for a real
// user database.
type Provider struct {
	users    map[string]*User // keyed by normalized email
	sessions map[string]*Session
	ttl      time.Duration
	cost     int
	now      func() time.Time
	mu       sync.RWMutex
}

// Option configures a Provider.
type Option func(*Provider)

// WithHashCost sets the bcrypt cost used for stored passwords.
func WithHashCost(cost int) Option {
	return func(p *Provider) { p.cost = cost }
}

// NewProvider creates a provider issuing sessions valid for ttl.
func NewProvider(ttl time.Duration, opts ...Option) *Provider {
	p := &Provider{
		users:    make(map[string]*User),
		sessions: make(map[string]*Session),
		ttl:      ttl,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SeedDemoUser adds the fixed test account.
func (p *Provider) SeedDemoUser() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), p.cost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users[DemoEmail] = &User{ID: DemoID, Name: DemoName, Email: DemoEmail, passwordHash: hash}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account.
func (p *Provider) Register(name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || password == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return User{}, ErrInvalidInput
		}
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.users[email]; ok {
		return User{}, ErrUserExists
	}
	u := &User{ID: uuid.NewString(), Name: name, Email: email, passwordHash: hash}
	p.users[email] = u
	log.Printf("[AUTH] registered %s (%s)", email, u.ID)
	return *u, nil
}

// Authorize checks an email/password pair.
func (p *Provider) Authorize(email, password string) (User, error) {
	p.mu.RLock()
	u, ok := p.users[normalizeEmail(email)]
	p.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return *u, nil
}

// SignIn authorizes the credentials and issues a session token.
func (p *Provider) SignIn(email, password string) (Session, error) {
	u, err := p.Authorize(email, password)
	if err != nil {
		log.Printf("[AUTH] sign-in rejected for %s", normalizeEmail(email))
		return Session{}, err
	}
	s := &Session{
		Token:   uuid.NewString(),
		User:    u,
		Expires: p.now().Add(p.ttl),
	}
	p.mu.Lock()
	p.sessions[s.Token] = s
	p.mu.Unlock()
	log.Printf("[AUTH] signed in %s", u.Email)
	return *s, nil
}

// Session looks up a token. Expired sessions are dropped.
func (p *Provider) Session(token string) (Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if !p.now().Before(s.Expires) {
		delete(p.sessions, token)
		return Session{}, ErrSessionExpired
	}
	return *s, nil
}

// SignOut revokes a token. Unknown tokens are ignored.
func (p *Provider) SignOut(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sessions, token)
}
