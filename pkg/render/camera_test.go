package render

import (
	"testing"

	"github.com/philipparndt/rtweekend/pkg/config"
	"github.com/philipparndt/rtweekend/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestNewViewportDefault(t *testing.T) {
	vp := NewViewport(config.Default().Camera)

	assert.Equal(t, geometry.NewVec3(0, 0, 0), vp.Origin)
	assert.InDelta(t, 32.0/9.0, vp.Horizontal.X(), 1e-12)
	assert.Equal(t, geometry.NewVec3(0, 2, 0), vp.Vertical)
	assert.True(t, vp.LowerLeftCorner.ApproxEqual(geometry.NewVec3(-16.0/9.0, -1, -1)),
		"unexpected lower left corner %v", vp.LowerLeftCorner)
}

func TestNewViewportInvariant(t *testing.T) {
	cam := config.Camera{
		AspectRatio:    config.AspectRatio{4, 3},
		ViewportHeight: 3,
		FocalLength:    2.5,
	}
	vp := NewViewport(cam)

	expected := vp.Origin.
		Sub(vp.Horizontal.Mul(0.5)).
		Sub(vp.Vertical.Mul(0.5)).
		Sub(geometry.NewVec3(0, 0, cam.FocalLength))
	assert.Equal(t, expected, vp.LowerLeftCorner)
	assert.InDelta(t, 4.0, vp.Horizontal.X(), 1e-12)
}

func TestNewViewportIdempotent(t *testing.T) {
	cfg := config.Default().Camera
	assert.Equal(t, NewViewport(cfg), NewViewport(cfg))
	assert.Equal(t, NewCamera(cfg).Viewport(), NewCamera(cfg).Viewport())
}

func TestCameraRayCorners(t *testing.T) {
	cam := NewCamera(config.Default().Camera)
	vp := cam.Viewport()

	bottomLeft := cam.Ray(0, 0)
	assert.Equal(t, vp.Origin, bottomLeft.Origin)
	assert.Equal(t, vp.LowerLeftCorner, bottomLeft.Direction)

	topRight := cam.Ray(1, 1)
	assert.True(t, topRight.Direction.ApproxEqual(geometry.NewVec3(16.0/9.0, 1, -1)),
		"unexpected top right direction %v", topRight.Direction)

	center := cam.Ray(0.5, 0.5)
	assert.Equal(t, geometry.NewVec3(0, 0, -1), center.Direction)
}

func TestCameraConfig(t *testing.T) {
	cfg := config.Default().Camera
	assert.Equal(t, cfg, NewCamera(cfg).Config())
}
