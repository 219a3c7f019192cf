package app

import (
	"github.com/hajimehoshi/ebiten/v2"
)

func init() {
	registerBackend("ebiten", func(opts Options) Backend {
		return &ebitenGame{}
	})
}

// ebitenGame renders in Update and uploads the finished frame in Draw,
// so the framebuffer is never read while a pass is running.
type ebitenGame struct {
	session *Session
	fbImg   *ebiten.Image
	scratch []byte
	title   string
}

func (g *ebitenGame) Run(s *Session) error {
	cfg := s.Config()
	g.session = s
	g.fbImg = ebiten.NewImage(cfg.Image.Width, cfg.Image.Height)
	g.scratch = make([]byte, 4*cfg.Image.Width*cfg.Image.Height)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Image.Width*cfg.Window.Scale, cfg.Image.Height*cfg.Window.Scale)
	return ebiten.RunGame(g)
}

func (g *ebitenGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	stats := g.session.Step()
	if err := g.session.Framebuffer().CopyToRGBA(g.scratch); err != nil {
		return err
	}

	if title := g.session.Title(stats); title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.session.Framebuffer()
	return fb.Width, fb.Height
}
