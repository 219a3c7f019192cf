package app

import (
	"fmt"

	"github.com/philipparndt/rtweekend/pkg/render"
)

func init() {
	registerBackend("headless", func(opts Options) Backend {
		frames := opts.Frames
		if frames <= 0 {
			frames = 1
		}
		return &headlessDisplay{limit: frames}
	})
}

// headlessDisplay renders a fixed number of frames without a window
type headlessDisplay struct {
	limit     int
	presented int
	lastTitle string
}

func (d *headlessDisplay) Run(s *Session) error {
	if err := Loop(s, d); err != nil {
		return err
	}

	avg := s.AverageFrameTime()
	fps := render.FrameStats{Elapsed: avg}.FPS()
	fmt.Printf("Rendered %d frame(s), average %v per frame (%.1f fps)\n", s.Frames(), avg, fps)
	return nil
}

func (d *headlessDisplay) QuitRequested() bool {
	return d.presented >= d.limit
}

func (d *headlessDisplay) Present(fb *render.Framebuffer, title string) error {
	d.presented++
	d.lastTitle = title
	return nil
}

func (d *headlessDisplay) Close() {}
