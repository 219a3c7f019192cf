package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/rtweekend/pkg/config"
	"github.com/philipparndt/rtweekend/pkg/render"
)

// NewSession builds the camera, renderer and framebuffer for cfg
func NewSession(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	renderer := render.NewFrameRenderer(render.NewCamera(cfg.Camera))
	renderer.SetSourceOrientation(cfg.Image.SourceOrientation)

	return &Session{
		cfg:      cfg,
		renderer: renderer,
		fb:       render.NewFramebuffer(cfg.Image.Width, cfg.Image.Height),
	}, nil
}

// Config returns the active configuration
func (s *Session) Config() config.Config {
	return s.cfg
}

// Framebuffer returns the buffer Step renders into
func (s *Session) Framebuffer() *render.Framebuffer {
	return s.fb
}

// SetTestPattern replaces the scene with the static gradient test image
func (s *Session) SetTestPattern(enabled bool) {
	s.testPattern = enabled
}

// Step applies pending config changes and renders one full frame
func (s *Session) Step() render.FrameStats {
	s.applyPendingReload()

	var stats render.FrameStats
	if s.testPattern {
		start := time.Now()
		render.FillTestPattern(s.fb)
		stats = render.FrameStats{Elapsed: time.Since(start), Pixels: len(s.fb.Pix)}
	} else {
		stats = s.renderer.Render(s.fb)
	}

	s.Frame.last = stats
	s.Frame.count++
	s.Frame.elapsed += stats.Elapsed
	return stats
}

// Title formats the window title with the instantaneous frame rate
func (s *Session) Title(stats render.FrameStats) string {
	return fmt.Sprintf("%s: %.1f fps", s.cfg.Window.Title, stats.FPS())
}

// Frames returns the number of frames rendered
func (s *Session) Frames() int {
	return s.Frame.count
}

// AverageFrameTime returns the mean render time per frame
func (s *Session) AverageFrameTime() time.Duration {
	if s.Frame.count == 0 {
		return 0
	}
	return s.Frame.elapsed / time.Duration(s.Frame.count)
}

// Close releases the change source, if any
func (s *Session) Close() error {
	if s.Reload.source == nil {
		return nil
	}
	err := s.Reload.source.Close()
	s.Reload.source = nil
	return err
}
