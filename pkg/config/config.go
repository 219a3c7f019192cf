// Package config holds the immutable render configuration: camera geometry,
// image size and window presentation. Values are built once at startup,
// from defaults, an optional TOML file and command line overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid configuration")

// AspectRatio is written as a [width, height] pair, e.g. [16, 9]
type AspectRatio [2]float64

// Value returns width/height
func (a AspectRatio) Value() float64 {
	return a[0] / a[1]
}

func (a AspectRatio) String() string {
	return fmt.Sprintf("%g:%g", a[0], a[1])
}

// Camera describes the pinhole camera and its viewport
type Camera struct {
	AspectRatio    AspectRatio `toml:"aspect_ratio"`
	ViewportHeight float64     `toml:"viewport_height"`
	FocalLength    float64     `toml:"focal_length"`
}

// Image describes the framebuffer
type Image struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// SourceOrientation maps pixel row 0 to the bottom of the viewport,
	// which shows the scene upside down on a top-down display.
	SourceOrientation bool `toml:"source_orientation"`
}

// Window describes presentation
type Window struct {
	Title string `toml:"title"`
	Scale int    `toml:"scale"`
}

// Config is the complete configuration
type Config struct {
	Camera Camera `toml:"camera"`
	Image  Image  `toml:"image"`
	Window Window `toml:"window"`
}

// Default returns the built-in configuration: 16:9, viewport height 2,
// focal length 1, 640x360 pixels shown at 2x.
func Default() Config {
	return Config{
		Camera: Camera{
			AspectRatio:    AspectRatio{16, 9},
			ViewportHeight: 2.0,
			FocalLength:    1.0,
		},
		Image: Image{
			Width:  640,
			Height: 360,
		},
		Window: Window{
			Title: "Ray Tracing in One Weekend",
			Scale: 2,
		},
	}
}

// Load reads a TOML file on top of the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the ranges the renderer depends on
func (c Config) Validate() error {
	if err := c.Camera.Validate(); err != nil {
		return err
	}
	// u = x/(width-1) and v = y/(height-1) need at least two pixels per axis
	if c.Image.Width < 2 || c.Image.Height < 2 {
		return fmt.Errorf("%w: image must be at least 2x2, got %dx%d", ErrInvalid, c.Image.Width, c.Image.Height)
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("%w: window scale must be >= 1, got %d", ErrInvalid, c.Window.Scale)
	}
	return nil
}

// Validate checks that the camera produces non-degenerate rays
func (c Camera) Validate() error {
	if c.AspectRatio[0] <= 0 || c.AspectRatio[1] <= 0 {
		return fmt.Errorf("%w: aspect ratio must be positive, got %s", ErrInvalid, c.AspectRatio)
	}
	if c.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport height must be positive, got %g", ErrInvalid, c.ViewportHeight)
	}
	if c.FocalLength <= 0 {
		return fmt.Errorf("%w: focal length must be positive, got %g", ErrInvalid, c.FocalLength)
	}
	return nil
}
