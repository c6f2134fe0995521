package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"onbo/internal/auth"
)

// ErrRejected wraps a non-2xx answer from the server. The message is the
// server's "error" field when present.
type ErrRejected struct {
	Status  int
	Message string
}

func (e *ErrRejected) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request rejected: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("request rejected: %d %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var rej *ErrRejected
	return errors.As(err, &rej) && rej.Status == http.StatusUnauthorized
}

// Client calls the auth API.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates an account and returns the server's message.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, RegisterRoute, "", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	var s auth.Session
	err := c.do(ctx, http.MethodPost, SignInRoute, "", SignInRequest{Email: email, Password: password}, &s)
	return s, err
}

// Session fetches the session behind token.
func (c *Client) Session(ctx context.Context, token string) (auth.Session, error) {
	var s auth.Session
	err := c.do(ctx, http.MethodGet, SessionRoute, token, nil, &s)
	return s, err
}

func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, SignOutRoute, token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &ErrRejected{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
