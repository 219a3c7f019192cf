package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/rtweekend/pkg/render"
)

func init() {
	registerBackend("raylib", func(opts Options) Backend {
		return &raylibDisplay{}
	})
}

// raylibDisplay uploads the framebuffer into a texture and draws it scaled
type raylibDisplay struct {
	texture rl.Texture2D
	pixels  []color.RGBA
	scale   float32
	title   string
}

func (d *raylibDisplay) Run(s *Session) error {
	cfg := s.Config()
	width, height := cfg.Image.Width, cfg.Image.Height
	d.scale = float32(cfg.Window.Scale)

	rl.InitWindow(int32(width*cfg.Window.Scale), int32(height*cfg.Window.Scale), cfg.Window.Title)

	img := rl.GenImageColor(width, height, rl.Black)
	d.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	d.pixels = make([]color.RGBA, width*height)

	return Loop(s, d)
}

func (d *raylibDisplay) Present(fb *render.Framebuffer, title string) error {
	for i, p := range fb.Pix {
		r, g, b := render.UnpackRGB8(p)
		d.pixels[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	rl.UpdateTexture(d.texture, d.pixels)

	if title != d.title {
		rl.SetWindowTitle(title)
		d.title = title
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTextureEx(d.texture, rl.Vector2{X: 0, Y: 0}, 0, d.scale, rl.White)
	rl.EndDrawing()
	return nil
}

func (d *raylibDisplay) Close() {
	rl.UnloadTexture(d.texture)
	rl.CloseWindow()
}
