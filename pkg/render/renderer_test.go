package render

import (
	"slices"
	"testing"
	"time"

	"github.com/philipparndt/rtweekend/pkg/config"
	"github.com/philipparndt/rtweekend/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() *FrameRenderer {
	return NewFrameRenderer(NewCamera(config.Default().Camera))
}

func TestRenderIsIdempotent(t *testing.T) {
	r := newTestRenderer()
	fb := NewFramebuffer(64, 36)

	r.Render(fb)
	first := slices.Clone(fb.Pix)

	// dirty the buffer so stale pixels would show
	for i := range fb.Pix {
		fb.Pix[i] = 0xDEADBEEF
	}
	r.Render(fb)

	assert.Equal(t, first, fb.Pix)
}

func TestRenderDefaultFrame(t *testing.T) {
	cfg := config.Default()
	r := NewFrameRenderer(NewCamera(cfg.Camera))
	fb := NewFramebuffer(cfg.Image.Width, cfg.Image.Height)

	stats := r.Render(fb)
	assert.Equal(t, 640*360, stats.Pixels)

	// the sphere is centered in the view
	center := fb.At(cfg.Image.Width/2, cfg.Image.Height/2)
	assert.NotEqual(t, PackColor(SkyColor(geometry.NewVec3(0, 0, -1))), center)

	// top row looks up (bluer), bottom row looks down (whiter)
	_, _, topB := UnpackRGB8(fb.At(0, 0))
	topR, _, _ := UnpackRGB8(fb.At(0, 0))
	bottomR, _, _ := UnpackRGB8(fb.At(0, cfg.Image.Height-1))
	assert.GreaterOrEqual(t, topB, uint8(0xFE))
	assert.Less(t, topR, bottomR)

	for _, p := range fb.Pix {
		require.Zero(t, p>>24, "top byte must stay zero")
	}
}

func TestRenderSourceOrientationMirrorsRows(t *testing.T) {
	const w, h = 32, 18
	corrected := newTestRenderer()
	source := newTestRenderer()
	source.SetSourceOrientation(true)

	a := NewFramebuffer(w, h)
	b := NewFramebuffer(w, h)
	corrected.Render(a)
	source.Render(b)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.Equal(t, a.At(x, y), b.At(x, h-1-y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCoordinatesInRange(t *testing.T) {
	for _, sourceOrientation := range []bool{false, true} {
		r := newTestRenderer()
		r.SetSourceOrientation(sourceOrientation)

		const w, h = 17, 9
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				u, v := r.Coordinates(x, y, w, h)
				require.GreaterOrEqual(t, u, 0.0)
				require.LessOrEqual(t, u, 1.0)
				require.GreaterOrEqual(t, v, 0.0)
				require.LessOrEqual(t, v, 1.0)
			}
		}

		u0, v0 := r.Coordinates(0, 0, w, h)
		u1, v1 := r.Coordinates(w-1, h-1, w, h)
		cam := r.Camera()
		assert.NotEqual(t, cam.Ray(u0, v0), cam.Ray(u1, v1))
	}
}

func TestCoordinatesOrientation(t *testing.T) {
	r := newTestRenderer()

	_, v := r.Coordinates(0, 0, 10, 10)
	assert.Equal(t, 1.0, v, "row 0 is the top of the viewport")

	r.SetSourceOrientation(true)
	_, v = r.Coordinates(0, 0, 10, 10)
	assert.Equal(t, 0.0, v)
}

func TestRenderUsesShader(t *testing.T) {
	r := newTestRenderer()
	r.SetShader(func(geometry.Ray) geometry.Color3 {
		return geometry.NewVec3(1, 0, 0)
	})
	fb := NewFramebuffer(4, 4)
	r.Render(fb)

	for _, p := range fb.Pix {
		assert.Equal(t, uint32(0xFF0000), p)
	}
}

func TestSetCamera(t *testing.T) {
	r := newTestRenderer()
	cam := NewCamera(config.Camera{
		AspectRatio:    config.AspectRatio{1, 1},
		ViewportHeight: 1,
		FocalLength:    1,
	})
	r.SetCamera(cam)
	assert.Same(t, cam, r.Camera())
}

func TestFrameStatsFPS(t *testing.T) {
	assert.Equal(t, 0.0, FrameStats{}.FPS())
	assert.InDelta(t, 50.0, FrameStats{Elapsed: 20 * time.Millisecond}.FPS(), 1e-9)
}

func TestFillTestPattern(t *testing.T) {
	fb := NewFramebuffer(5, 3)
	FillTestPattern(fb)

	assert.Equal(t, uint32(0x00003F), fb.At(0, 0))
	assert.Equal(t, uint32(0xFF003F), fb.At(4, 0))
	assert.Equal(t, uint32(0x00FF3F), fb.At(0, 2))
	assert.Equal(t, uint32(0xFFFF3F), fb.At(4, 2))
}
