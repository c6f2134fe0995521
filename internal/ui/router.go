package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"onbo/internal/auth"
)

// maxRedirects bounds guard redirect chains.
const maxRedirects = 4

// Page builds the content shown for a path.
type Page func() fyne.CanvasObject

// Router swaps window content by path, checking every navigation against the
// auth guard.
type Router struct {
	pages         map[string]Page
	authenticated func() bool
	show          func(fyne.CanvasObject)
	current       string
}

func NewRouter(authenticated func() bool, show func(fyne.CanvasObject)) *Router {
	return &Router{
		pages:         make(map[string]Page),
		authenticated: authenticated,
		show:          show,
	}
}

func (r *Router) Handle(path string, p Page) {
	r.pages[path] = p
}

// Navigate shows path, or wherever the guard redirects it. It returns the
// path that ended up on screen, or "" if nothing could be shown.
func (r *Router) Navigate(path string) string {
	for i := 0; i <= maxRedirects; i++ {
		d := auth.Decide(path, r.authenticated())
		if d.Allow {
			page, ok := r.pages[path]
			if !ok {
				log.Printf("[UI] no page for %s", path)
				return ""
			}
			r.current = path
			r.show(page())
			return path
		}
		log.Printf("[UI] %s redirected to %s", path, d.RedirectTo)
		path = d.RedirectTo
	}
	log.Printf("[UI] too many redirects, staying on %s", r.current)
	return ""
}

// Current returns the path on screen.
func (r *Router) Current() string { return r.current }
