package render

import "time"

// FrameStats describes one render pass
type FrameStats struct {
	Elapsed time.Duration // Wall-clock time of the pass
	Pixels  int           // Pixels written
}

// FPS returns the instantaneous frame rate, 0 if nothing was timed
func (s FrameStats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return 1.0 / s.Elapsed.Seconds()
}
