package app

import (
	"time"

	"github.com/philipparndt/rtweekend/pkg/config"
	"github.com/philipparndt/rtweekend/pkg/render"
)

// changeSource delivers config file changes between frames
type changeSource interface {
	Poll() (string, bool)
	Close() error
}

// FrameState holds per-run frame counters
type FrameState struct {
	last    render.FrameStats // Stats of the most recent pass
	count   int               // Frames rendered so far
	elapsed time.Duration     // Sum of render time over all frames
}

// ReloadState holds config file reload state
type ReloadState struct {
	configPath string       // Config file being watched, empty if none
	source     changeSource // Change notifications, nil when not watching
	reloads    int          // Successful reloads applied
}

// Session owns the framebuffer and renderer for one program run. Only the
// goroutine running the frame loop may call its methods.
type Session struct {
	cfg         config.Config
	renderer    *render.FrameRenderer
	fb          *render.Framebuffer
	testPattern bool
	Frame       FrameState
	Reload      ReloadState
}
