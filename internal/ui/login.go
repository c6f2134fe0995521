package ui

import (
	"context"
	"errors"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"onbo/internal/api"
	"onbo/internal/auth"
)

const (
	msgLoginFailed        = "Login failed"
	msgRegistrationFailed = "Registration failed"
	msgUnexpected         = "An error occurred"
)

var (
	errRequired     = errors.New("required")
	errInvalidEmail = errors.New("enter a valid email address")
)

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

func validEmail(s string) error {
	if err := required(s); err != nil {
		return err
	}
	if !strings.Contains(s, "@") {
		return errInvalidEmail
	}
	return nil
}

func loginErrorMessage(err error) string {
	if api.IsUnauthorized(err) {
		return msgLoginFailed
	}
	return msgUnexpected
}

func registerErrorMessage(err error) string {
	var rej *api.ErrRejected
	if errors.As(err, &rej) {
		if rej.Message != "" {
			return rej.Message
		}
		return msgRegistrationFailed
	}
	return msgUnexpected
}

func errorLabel() *widget.Label {
	l := widget.NewLabel("")
	l.Importance = widget.DangerImportance
	l.Wrapping = fyne.TextWrapWord
	l.Hide()
	return l
}

func pageHeader(title, subtitle string) fyne.CanvasObject {
	t := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s := widget.NewLabelWithStyle(subtitle, fyne.TextAlignCenter, fyne.TextStyle{})
	return container.NewVBox(t, s)
}

func (a *App) loginPage() fyne.CanvasObject {
	email := widget.NewEntry()
	email.SetPlaceHolder("you@example.com")
	email.Validator = validEmail
	password := widget.NewPasswordEntry()
	password.Validator = required
	errText := errorLabel()

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Email", Widget: email},
			{Text: "Password", Widget: password},
		},
		SubmitText: "Log in",
	}
	form.OnSubmit = func() {
		errText.Hide()
		form.Disable()
		addr, pw := email.Text, password.Text
		background(func(ctx context.Context) error {
			return a.SignIn(ctx, addr, pw)
		}, func(err error) {
			form.Enable()
			if err != nil {
				errText.SetText(loginErrorMessage(err))
				errText.Show()
				return
			}
			a.router.Navigate(auth.HomePath)
		})
	}

	toRegister := widget.NewButton("No account yet? Create one", func() {
		a.router.Navigate(auth.RegisterPath)
	})
	toRegister.Importance = widget.LowImportance

	return formPage(
		pageHeader("Log in", "Log in to your account"),
		form,
		errText,
		toRegister,
	)
}

// formPage centers objects in a fixed-width column.
func formPage(objects ...fyne.CanvasObject) fyne.CanvasObject {
	strut := canvas.NewRectangle(color.Transparent)
	strut.SetMinSize(fyne.NewSize(420, 0))
	return container.NewCenter(container.NewVBox(append([]fyne.CanvasObject{strut}, objects...)...))
}
