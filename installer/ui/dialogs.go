// Package ui shows the installer's blocking modal dialogs. Each dialog runs a
// fyne app of its own: the installer is one-shot and shows exactly one window
// before the process exits.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShowSuccess displays the installation-complete dialog and blocks until it is
// dismissed.
func ShowSuccess(message string) {
	a := app.New()
	w := a.NewWindow("Installation Complete")
	w.Resize(fyne.NewSize(420, 220))
	w.SetFixedSize(true)

	msg := widget.NewLabel(message)
	msg.Alignment = fyne.TextAlignCenter
	msg.Wrapping = fyne.TextWrapWord

	okButton := widget.NewButton("OK", func() {
		a.Quit()
	})

	w.SetContent(container.NewVBox(
		container.NewCenter(krakenLogo()),
		msg,
		container.NewCenter(okButton),
	))
	w.CenterOnScreen()
	w.ShowAndRun()
}

// ShowError displays the installer error dialog, including the formatted stack
// trace handed in by the top-level handler, and blocks until dismissed.
func ShowError(message string) {
	a := app.New()
	w := a.NewWindow("Installer Error")
	w.Resize(fyne.NewSize(560, 400))

	msg := widget.NewLabel(message)
	msg.Wrapping = fyne.TextWrapWord

	closeButton := widget.NewButton("Close", func() {
		a.Quit()
	})

	w.SetContent(container.NewBorder(
		nil,
		container.NewCenter(closeButton),
		nil,
		nil,
		container.NewScroll(msg),
	))
	w.CenterOnScreen()
	w.ShowAndRun()
}

func krakenLogo() *canvas.Image {
	imageSize := fyne.NewSize(64, 64)

	resource := fyne.NewStaticResource("kraken.png", krakenLogoPng)
	image := canvas.NewImageFromResource(resource)
	image.FillMode = canvas.ImageFillContain
	image.SetMinSize(imageSize)
	image.Resize(imageSize)

	return image
}
