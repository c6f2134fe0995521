package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"onbo/internal/auth"
)

// whiteboardPage is the home page: tool palette, style bar and the board.
// Every visit mounts a fresh board, so leaving the page discards the drawing.
func (a *App) whiteboardPage() fyne.CanvasObject {
	b, err := NewBoardWidget(a.canvas)
	if err != nil {
		log.Printf("[UI] cannot create board: %v", err)
		return widget.NewLabel("The board could not be created: " + err.Error())
	}

	status := widget.NewLabel(strokeStatus(0))
	b.OnChanged = func() {
		status.SetText(strokeStatus(len(b.Surface().Strokes())))
	}

	palette := newToolPalette(b.Tool(), b.SetTool)
	exports := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { a.exportPDF(b) }),
		widget.NewToolbarAction(theme.FileImageIcon(), func() { a.exportPNG(b) }),
	)
	tools := container.NewHBox(
		widget.NewLabel("Tool:"),
		palette,
		widget.NewSeparator(),
		newStyleBar(b, a.confirmClear),
		layout.NewSpacer(),
		exports,
	)

	who := ""
	if u, ok := a.User(); ok {
		who = u.Name
	}
	signOut := widget.NewButtonWithIcon("Sign out", theme.LogoutIcon(), func() {
		background(a.SignOut, func(err error) {
			if err != nil {
				log.Printf("[UI] sign out: %v", err)
			}
			a.router.Navigate(auth.LoginPath)
		})
	})
	header := container.NewHBox(
		widget.NewLabelWithStyle(Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		widget.NewLabel(who),
		signOut,
	)

	return container.NewBorder(
		container.NewVBox(header, tools),
		status, nil, nil,
		container.NewScroll(b),
	)
}

// confirmClear warns that a style change wipes the drawing.
func (a *App) confirmClear(apply, cancel func()) {
	dialog.ShowConfirm("Clear the board?",
		"Changing the color or size clears the current drawing.",
		func(ok bool) {
			if ok {
				apply()
				return
			}
			cancel()
		}, a.window)
}
