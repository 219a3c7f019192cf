package render

import (
	"github.com/philipparndt/rtweekend/pkg/config"
	"github.com/philipparndt/rtweekend/pkg/geometry"
)

// Viewport is the rectangle rays are cast through, in world space
type Viewport struct {
	Origin          geometry.Point3
	Horizontal      geometry.Direction3
	Vertical        geometry.Direction3
	LowerLeftCorner geometry.Point3
}

// NewViewport derives the viewport basis from the camera configuration.
// The camera sits at the origin looking down -Z.
func NewViewport(cfg config.Camera) Viewport {
	viewportWidth := cfg.AspectRatio.Value() * cfg.ViewportHeight

	origin := geometry.NewVec3(0, 0, 0)
	horizontal := geometry.NewVec3(viewportWidth, 0, 0)
	vertical := geometry.NewVec3(0, cfg.ViewportHeight, 0)
	lowerLeftCorner := origin.
		Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Sub(geometry.NewVec3(0, 0, cfg.FocalLength))

	return Viewport{
		Origin:          origin,
		Horizontal:      horizontal,
		Vertical:        vertical,
		LowerLeftCorner: lowerLeftCorner,
	}
}

// Camera generates primary rays
type Camera struct {
	config   config.Camera
	viewport Viewport
}

// NewCamera creates a pinhole camera for the given configuration
func NewCamera(cfg config.Camera) *Camera {
	return &Camera{
		config:   cfg,
		viewport: NewViewport(cfg),
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() config.Camera {
	return c.config
}

// Viewport returns the camera's viewport basis
func (c *Camera) Viewport() Viewport {
	return c.viewport
}

// Ray returns the ray through normalized screen coordinates (u, v).
// (0,0) is the bottom-left of the viewport and (1,1) the top-right.
func (c *Camera) Ray(u, v float64) geometry.Ray {
	vp := c.viewport
	direction := vp.LowerLeftCorner.
		Add(vp.Horizontal.Mul(u)).
		Add(vp.Vertical.Mul(v)).
		Sub(vp.Origin)

	return geometry.NewRay(vp.Origin, direction)
}
