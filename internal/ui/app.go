package ui

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"onbo/internal/api"
	"onbo/internal/auth"
	"onbo/internal/board"
)

const Title = "onbo - online whiteboard"

// requestTimeout bounds calls to the auth API made from the UI.
const requestTimeout = 10 * time.Second

// App is the desktop front-end: a login/registration flow in front of the
// whiteboard page.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	client  *api.Client
	canvas  board.Config
	router  *Router

	mu      sync.Mutex
	session *auth.Session
}

// New builds the window and its routes. Nothing is shown until Run.
func New(a fyne.App, client *api.Client, canvasCfg board.Config) *App {
	w := a.NewWindow(Title)
	w.Resize(fyne.NewSize(1024, 768))

	ui := &App{
		fyneApp: a,
		window:  w,
		client:  client,
		canvas:  canvasCfg,
	}
	ui.router = NewRouter(ui.Authenticated, w.SetContent)
	ui.router.Handle(auth.HomePath, ui.whiteboardPage)
	ui.router.Handle(auth.LoginPath, ui.loginPage)
	ui.router.Handle(auth.RegisterPath, ui.registerPage)
	return ui
}

// RunApp starts the fyne application and blocks until the window closes.
func RunApp(client *api.Client, canvasCfg board.Config) {
	New(app.NewWithID("dev.onbo.whiteboard"), client, canvasCfg).Run()
}

func (a *App) Run() {
	a.router.Navigate(auth.HomePath)
	a.window.ShowAndRun()
}

func (a *App) Window() fyne.Window { return a.window }
func (a *App) Router() *Router     { return a.router }

// Authenticated reports whether a live session is held.
func (a *App) Authenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil && time.Now().Before(a.session.Expires)
}

// User returns the signed-in user.
func (a *App) User() (auth.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return auth.User{}, false
	}
	return a.session.User, true
}

// SignIn exchanges credentials for a session.
func (a *App) SignIn(ctx context.Context, email, password string) error {
	s, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.session = &s
	a.mu.Unlock()
	log.Printf("[UI] signed in as %s", s.User.Email)
	return nil
}

// Register creates an account. It does not sign in.
func (a *App) Register(ctx context.Context, name, email, password string) error {
	_, err := a.client.Register(ctx, api.RegisterRequest{Name: name, Email: email, Password: password})
	return err
}

// SignOut drops the local session and revokes it on the server.
func (a *App) SignOut(ctx context.Context) error {
	a.mu.Lock()
	s := a.session
	a.session = nil
	a.mu.Unlock()
	if s == nil {
		return nil
	}
	return a.client.SignOut(ctx, s.Token)
}

// background runs work off the UI goroutine and hands its result back to it.
func background(work func(ctx context.Context) error, done func(error)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := work(ctx)
		fyne.Do(func() { done(err) })
	}()
}
