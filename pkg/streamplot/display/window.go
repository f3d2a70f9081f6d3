// Package display shows rendered plots in a desktop window.
package display

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/golang/glog"
)

// DefaultAppID is the fyne application identifier.
const DefaultAppID = "com.ukaji3.streamplot"

// Window displays a plot image in a fyne window.
// Show must be called from the main goroutine.
type Window struct {
	// AppID identifies the fyne application.
	AppID string
}

// NewWindow returns a Window using DefaultAppID.
func NewWindow() *Window {
	return &Window{AppID: DefaultAppID}
}

// Show opens a window holding img and blocks until the user closes it.
func (w *Window) Show(title string, img image.Image) error {
	a := app.NewWithID(w.AppID)
	win := a.NewWindow(title)

	bounds := img.Bounds()
	size := fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))

	plotImg := canvas.NewImageFromImage(img)
	plotImg.FillMode = canvas.ImageFillContain
	plotImg.SetMinSize(size)

	win.SetContent(plotImg)
	win.Resize(size)

	glog.V(1).Infof("showing %q until closed", title)
	win.ShowAndRun()
	return nil
}
