package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/philipparndt/rtweekend/pkg/config"
	"github.com/philipparndt/rtweekend/pkg/render"
)

// ErrUnknownBackend is returned for a backend name that is not registered
var ErrUnknownBackend = errors.New("unknown backend")

// Options configures a run
type Options struct {
	Config      config.Config
	ConfigPath  string // Watched for changes when Watch is set
	Backend     string
	Watch       bool
	TestPattern bool
	Frames      int // Frame limit for the headless backend
}

// Backend presents frames produced by a Session until quit is requested
type Backend interface {
	Run(s *Session) error
}

// PollingDisplay is a display driven by Loop: the quit state is polled once
// per frame boundary, then a finished frame is handed over for presentation.
type PollingDisplay interface {
	QuitRequested() bool
	Present(fb *render.Framebuffer, title string) error
	Close()
}

var backends = map[string]func(opts Options) Backend{}

func registerBackend(name string, factory func(opts Options) Backend) {
	backends[name] = factory
}

// Backends lists the registered backend names
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBackend looks up a backend by name
func NewBackend(name string, opts Options) (Backend, error) {
	factory, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return factory(opts), nil
}

// Run renders and presents frames until the backend reports quit
func Run(opts Options) error {
	backend, err := NewBackend(opts.Backend, opts)
	if err != nil {
		return err
	}

	s, err := NewSession(opts.Config)
	if err != nil {
		return err
	}
	defer s.Close()
	s.SetTestPattern(opts.TestPattern)

	if opts.Watch {
		if opts.ConfigPath == "" {
			fmt.Println("Warning: --watch needs --config, auto-reload disabled")
		} else if err := s.setupFileWatcher(opts.ConfigPath); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		}
	}

	fmt.Printf("Rendering %dx%d with the %s backend\n", opts.Config.Image.Width, opts.Config.Image.Height, opts.Backend)
	return backend.Run(s)
}

// Loop is the frame loop for polling displays. Each iteration checks the
// quit signal, renders a complete frame and presents it.
func Loop(s *Session, d PollingDisplay) error {
	defer d.Close()

	for !d.QuitRequested() {
		stats := s.Step()
		if err := d.Present(s.Framebuffer(), s.Title(stats)); err != nil {
			return fmt.Errorf("failed to present frame %d: %w", s.Frames(), err)
		}
	}
	return nil
}
