package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/rtweekend/pkg/config"
	"github.com/philipparndt/rtweekend/pkg/render"
	"github.com/philipparndt/rtweekend/pkg/watcher"
)

// LoadConfig reads the config file if one is given, otherwise the defaults
func LoadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// setupFileWatcher reloads the camera whenever the config file changes
func (s *Session) setupFileWatcher(configPath string) error {
	// Create file watcher with 500ms debounce
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Watch(configPath); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	fmt.Printf("Watching file for changes: %s\n", configPath)

	s.watchChanges(configPath, fw)
	return nil
}

func (s *Session) watchChanges(configPath string, source changeSource) {
	s.Reload.configPath = configPath
	s.Reload.source = source
}

// applyPendingReload runs at a frame boundary, never during a pass
func (s *Session) applyPendingReload() {
	if s.Reload.source == nil {
		return
	}
	changed, ok := s.Reload.source.Poll()
	if !ok {
		return
	}

	fmt.Printf("\nFile changed: %s\n", changed)
	cfg, err := config.Load(s.Reload.configPath)
	if err != nil {
		fmt.Printf("Error reloading config: %v\n", err)
		return
	}

	s.applyConfig(cfg)
	s.Reload.reloads++
}

// applyConfig swaps in a new camera. The framebuffer and window keep their size.
func (s *Session) applyConfig(cfg config.Config) {
	if cfg.Image.Width != s.cfg.Image.Width || cfg.Image.Height != s.cfg.Image.Height {
		fmt.Printf("Warning: image size change to %dx%d ignored until restart\n", cfg.Image.Width, cfg.Image.Height)
	}
	cfg.Image.Width = s.cfg.Image.Width
	cfg.Image.Height = s.cfg.Image.Height
	cfg.Window = s.cfg.Window

	s.renderer.SetCamera(render.NewCamera(cfg.Camera))
	s.renderer.SetSourceOrientation(cfg.Image.SourceOrientation)
	s.cfg = cfg

	vp := s.renderer.Camera().Viewport()
	fmt.Printf("Camera reloaded: aspect %s, viewport height %g, focal length %g, lower left %v\n",
		cfg.Camera.AspectRatio, cfg.Camera.ViewportHeight, cfg.Camera.FocalLength, vp.LowerLeftCorner)
}
