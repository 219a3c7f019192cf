package render

import (
	"time"

	"github.com/philipparndt/rtweekend/pkg/geometry"
)

// Shader computes the color seen along a primary ray
type Shader func(r geometry.Ray) geometry.Color3

// FrameRenderer casts one ray per pixel and writes the shaded result into
// a framebuffer. It keeps no state between frames.
type FrameRenderer struct {
	camera            *Camera
	shader            Shader
	sourceOrientation bool
}

// NewFrameRenderer creates a renderer shading with RayColor
func NewFrameRenderer(camera *Camera) *FrameRenderer {
	return &FrameRenderer{
		camera: camera,
		shader: RayColor,
	}
}

// SetCamera replaces the camera. Call between frames only.
func (r *FrameRenderer) SetCamera(camera *Camera) {
	r.camera = camera
}

// Camera returns the current camera
func (r *FrameRenderer) Camera() *Camera {
	return r.camera
}

// SetShader replaces the shading function
func (r *FrameRenderer) SetShader(shader Shader) {
	r.shader = shader
}

// SetSourceOrientation makes pixel row 0 sample the bottom of the viewport
// (v = y/(height-1)) instead of the top.
func (r *FrameRenderer) SetSourceOrientation(enabled bool) {
	r.sourceOrientation = enabled
}

// Coordinates maps pixel (x, y) of a width x height image to (u, v) in [0,1].
// Both width and height must be at least 2.
func (r *FrameRenderer) Coordinates(x, y, width, height int) (u, v float64) {
	u = float64(x) / float64(width-1)
	if r.sourceOrientation {
		v = float64(y) / float64(height-1)
	} else {
		v = float64(height-1-y) / float64(height-1)
	}
	return u, v
}

// Render overwrites every pixel of fb and reports how long the pass took
func (r *FrameRenderer) Render(fb *Framebuffer) FrameStats {
	start := time.Now()

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			u, v := r.Coordinates(x, y, fb.Width, fb.Height)
			ray := r.camera.Ray(u, v)
			fb.Pix[fb.Index(x, y)] = PackColor(r.shader(ray))
		}
	}

	return FrameStats{
		Elapsed: time.Since(start),
		Pixels:  fb.Width * fb.Height,
	}
}
