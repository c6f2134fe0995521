package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"onbo/internal/api"
	"onbo/internal/auth"
	"onbo/internal/board"
)

func TestRouterAppliesGuard(t *testing.T) {
	test.NewTempApp(t)
	authed := false
	var shown []string
	r := NewRouter(func() bool { return authed }, func(o fyne.CanvasObject) {
		shown = append(shown, o.(*widget.Label).Text)
	})
	for _, p := range []string{auth.HomePath, auth.LoginPath, auth.RegisterPath} {
		path := p
		r.Handle(path, func() fyne.CanvasObject { return widget.NewLabel(path) })
	}

	assert.Equal(t, auth.LoginPath, r.Navigate(auth.HomePath))
	assert.Equal(t, auth.RegisterPath, r.Navigate(auth.RegisterPath))

	authed = true
	assert.Equal(t, auth.HomePath, r.Navigate(auth.LoginPath))
	assert.Equal(t, auth.HomePath, r.Current())
	assert.Equal(t, auth.RegisterPath, r.Navigate(auth.RegisterPath))
	assert.Equal(t, auth.RegisterPath, r.Current())

	assert.Equal(t, "", r.Navigate("/missing"))
	assert.Equal(t, []string{auth.LoginPath, auth.RegisterPath, auth.HomePath, auth.RegisterPath}, shown)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	p := auth.NewProvider(time.Hour, auth.WithHashCost(bcrypt.MinCost))
	require.NoError(t, p.SeedDemoUser())
	srv := httptest.NewServer(api.NewRouter(p))
	t.Cleanup(srv.Close)

	a := New(test.NewTempApp(t), api.NewClient(srv.URL), board.Config{Width: 320, Height: 240})
	t.Cleanup(a.Window().Close)
	return a
}

func TestAppSignInFlow(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	assert.Equal(t, auth.LoginPath, a.Router().Navigate(auth.HomePath))
	assert.False(t, a.Authenticated())

	err := a.SignIn(ctx, auth.DemoEmail, "wrong")
	require.Error(t, err)
	assert.Equal(t, msgLoginFailed, loginErrorMessage(err))

	require.NoError(t, a.SignIn(ctx, auth.DemoEmail, auth.DemoPassword))
	assert.True(t, a.Authenticated())
	u, ok := a.User()
	require.True(t, ok)
	assert.Equal(t, auth.DemoName, u.Name)
	assert.Equal(t, auth.HomePath, a.Router().Navigate(auth.HomePath))
	assert.Equal(t, auth.HomePath, a.Router().Navigate(auth.LoginPath))

	require.NoError(t, a.SignOut(ctx))
	assert.False(t, a.Authenticated())
	assert.NoError(t, a.SignOut(ctx))
	assert.Equal(t, auth.LoginPath, a.Router().Navigate(auth.HomePath))
}

func TestAppRegister(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx, "Jiro", "jiro@example.com", "pw"))
	err := a.Register(ctx, "Jiro", "jiro@example.com", "pw")
	require.Error(t, err)
	assert.NotEqual(t, msgUnexpected, registerErrorMessage(err))

	require.NoError(t, a.SignIn(ctx, "jiro@example.com", "pw"))
}

func TestErrorMessages(t *testing.T) {
	transport := errors.New("connection refused")
	assert.Equal(t, msgUnexpected, loginErrorMessage(transport))
	assert.Equal(t, msgUnexpected, registerErrorMessage(transport))

	assert.Equal(t, msgRegistrationFailed,
		registerErrorMessage(&api.ErrRejected{Status: http.StatusInternalServerError}))
	assert.Equal(t, "taken",
		registerErrorMessage(&api.ErrRejected{Status: http.StatusConflict, Message: "taken"}))
	assert.Equal(t, msgLoginFailed,
		loginErrorMessage(&api.ErrRejected{Status: http.StatusUnauthorized}))
}

func TestValidators(t *testing.T) {
	assert.ErrorIs(t, required("  "), errRequired)
	assert.NoError(t, required("x"))
	assert.ErrorIs(t, validEmail(""), errRequired)
	assert.ErrorIs(t, validEmail("nope"), errInvalidEmail)
	assert.NoError(t, validEmail("a@b.c"))
}

func TestStrokeStatus(t *testing.T) {
	assert.Equal(t, "0 strokes", strokeStatus(0))
	assert.Equal(t, "1 stroke", strokeStatus(1))
	assert.Equal(t, "3 strokes", strokeStatus(3))
}
