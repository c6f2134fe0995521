package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"onbo/internal/auth"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()
	p := auth.NewProvider(time.Hour, auth.WithHashCost(bcrypt.MinCost))
	require.NoError(t, p.SeedDemoUser())
	srv := httptest.NewServer(NewRouter(p))
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + HealthRoute)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+RegisterRoute, "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRegisterAndSignIn(t *testing.T) {
	_, c := newTestServer(t)
	ctx := context.Background()

	msg, err := c.Register(ctx, RegisterRequest{Name: "Taro", Email: "taro@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, msgUserCreated, msg)

	_, err = c.Register(ctx, RegisterRequest{Name: "Taro", Email: "taro@example.com", Password: "pw"})
	var rej *ErrRejected
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, http.StatusConflict, rej.Status)
	assert.Equal(t, errUserExists, rej.Message)

	_, err = c.Register(ctx, RegisterRequest{Email: "x@example.com"})
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, http.StatusBadRequest, rej.Status)

	s, err := c.SignIn(ctx, "taro@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Taro", s.User.Name)
	assert.NotEmpty(t, s.Token)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	_, c := newTestServer(t)

	_, err := c.SignIn(context.Background(), auth.DemoEmail, "wrong")
	assert.True(t, IsUnauthorized(err))
}

func TestSessionAndSignOut(t *testing.T) {
	_, c := newTestServer(t)
	ctx := context.Background()

	s, err := c.SignIn(ctx, auth.DemoEmail, auth.DemoPassword)
	require.NoError(t, err)

	got, err := c.Session(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.DemoID, got.User.ID)
	assert.True(t, s.Expires.Equal(got.Expires))

	require.NoError(t, c.SignOut(ctx, s.Token))
	_, err = c.Session(ctx, s.Token)
	assert.True(t, IsUnauthorized(err))
}

func TestSessionRequiresBearer(t *testing.T) {
	srv, c := newTestServer(t)

	_, err := c.Session(context.Background(), "")
	assert.True(t, IsUnauthorized(err))

	req, err := http.NewRequest(http.MethodGet, srv.URL+SessionRoute, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Basic abc")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServerListenAndShutdown(t *testing.T) {
	p := auth.NewProvider(time.Hour, auth.WithHashCost(bcrypt.MinCost))
	s, err := Listen("127.0.0.1:0", p)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Serve() }()

	resp, err := http.Get(s.URL() + HealthRoute)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, <-done)
}

func TestWildcardBindDialsLoopback(t *testing.T) {
	p := auth.NewProvider(time.Hour, auth.WithHashCost(bcrypt.MinCost))
	s, err := Listen("0.0.0.0:0", p)
	require.NoError(t, err)
	defer s.ln.Close()

	assert.True(t, strings.HasPrefix(s.URL(), "http://127.0.0.1:"), s.URL())
	assert.True(t, strings.HasPrefix(s.ShareURL(), "http://"))
	assert.NotContains(t, s.ShareURL(), "0.0.0.0")
}

func TestLoopbackBindSharesAsIs(t *testing.T) {
	p := auth.NewProvider(time.Hour, auth.WithHashCost(bcrypt.MinCost))
	s, err := Listen("127.0.0.1:0", p)
	require.NoError(t, err)
	defer s.ln.Close()

	assert.Equal(t, s.URL(), s.ShareURL())
}

// failingBackend wraps a provider and fails every sign-in with an internal error.
type failingBackend struct {
	*auth.Provider
}

func (failingBackend) SignIn(string, string) (auth.Session, error) {
	return auth.Session{}, errors.New("user store unavailable at 10.0.0.7:5432")
}

func TestSignInHidesInternalErrors(t *testing.T) {
	srv := httptest.NewServer(NewRouter(failingBackend{auth.NewProvider(time.Hour)}))
	defer srv.Close()

	resp, err := http.Post(srv.URL+SignInRoute, "application/json",
		strings.NewReader(`{"email":"test@example.com","password":"password"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, errSignIn, body.Error)
	assert.NotContains(t, body.Error, "10.0.0.7")
}
