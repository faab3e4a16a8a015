package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// newErrorContent lays out an error icon next to the message
func newErrorContent(message string) *fyne.Container {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	return container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, label)
}

// showErrorDialog shows a blocking error dialog titled title
func showErrorDialog(title, message, dismiss string, window fyne.Window) *dialog.CustomDialog {
	d := dialog.NewCustom(title, dismiss, newErrorContent(message), window)
	d.Show()
	return d
}
