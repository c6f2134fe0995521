package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"onbo/internal/auth"
)

func (a *App) registerPage() fyne.CanvasObject {
	name := widget.NewEntry()
	name.Validator = required
	email := widget.NewEntry()
	email.SetPlaceHolder("you@example.com")
	email.Validator = validEmail
	password := widget.NewPasswordEntry()
	password.Validator = required
	errText := errorLabel()

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Name", Widget: name},
			{Text: "Email", Widget: email},
			{Text: "Password", Widget: password},
		},
		SubmitText: "Register",
	}
	form.OnSubmit = func() {
		errText.Hide()
		form.Disable()
		n, addr, pw := name.Text, email.Text, password.Text
		background(func(ctx context.Context) error {
			return a.Register(ctx, n, addr, pw)
		}, func(err error) {
			form.Enable()
			if err != nil {
				errText.SetText(registerErrorMessage(err))
				errText.Show()
				return
			}
			a.router.Navigate(auth.LoginPath)
		})
	}

	toLogin := widget.NewButton("Already have an account? Log in", func() {
		a.router.Navigate(auth.LoginPath)
	})
	toLogin.Importance = widget.LowImportance

	return formPage(
		pageHeader("Create account", "Create a new account"),
		form,
		errText,
		toLogin,
	)
}
