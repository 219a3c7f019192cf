package app

import (
	"image"
	"sync/atomic"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/philipparndt/rtweekend/pkg/render"
)

func init() {
	registerBackend("fyne", func(opts Options) Backend {
		return &fyneDisplay{}
	})
}

// fyneDisplay runs the frame loop on its own goroutine and hands each
// finished frame to the UI thread with fyne.DoAndWait.
type fyneDisplay struct {
	window fyne.Window
	rgba   *image.RGBA
	image  *canvas.Image
	quit   atomic.Bool
}

func (d *fyneDisplay) Run(s *Session) error {
	cfg := s.Config()
	a := fyneapp.New()
	d.window = a.NewWindow(cfg.Window.Title)
	d.window.SetMaster()

	d.rgba = s.Framebuffer().RGBA()
	d.image = canvas.NewImageFromImage(d.rgba)
	d.image.FillMode = canvas.ImageFillContain
	d.image.ScaleMode = canvas.ImageScalePixels
	d.image.SetMinSize(fyne.NewSize(float32(cfg.Image.Width*cfg.Window.Scale), float32(cfg.Image.Height*cfg.Window.Scale)))

	d.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			d.quit.Store(true)
			d.window.Close()
		}
	})
	d.window.SetOnClosed(func() {
		d.quit.Store(true)
	})

	d.window.SetContent(d.image)
	d.window.Resize(d.image.MinSize())

	errc := make(chan error, 1)
	go func() {
		errc <- Loop(s, d)
	}()

	d.window.ShowAndRun()
	d.quit.Store(true)

	select {
	case err := <-errc:
		return err
	default:
		return nil
	}
}

func (d *fyneDisplay) QuitRequested() bool {
	return d.quit.Load()
}

func (d *fyneDisplay) Present(fb *render.Framebuffer, title string) error {
	var err error
	fyne.DoAndWait(func() {
		if d.quit.Load() {
			return
		}
		if err = fb.CopyToRGBA(d.rgba.Pix); err != nil {
			return
		}
		d.window.SetTitle(title)
		d.image.Refresh()
	})
	return err
}

func (d *fyneDisplay) Close() {}
