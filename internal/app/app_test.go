package app

import (
	"errors"
	"testing"

	"github.com/philipparndt/rtweekend/pkg/config"
	"github.com/philipparndt/rtweekend/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Image.Width = 32
	cfg.Image.Height = 18
	return cfg
}

// scriptedDisplay quits after a fixed number of frames and records them
type scriptedDisplay struct {
	frames    int
	presented []uint32
	titles    []string
	failAt    int
	closed    bool
}

func (d *scriptedDisplay) QuitRequested() bool {
	return len(d.titles) >= d.frames
}

func (d *scriptedDisplay) Present(fb *render.Framebuffer, title string) error {
	if d.failAt > 0 && len(d.titles)+1 == d.failAt {
		return errors.New("surface lost")
	}
	d.presented = append(d.presented, fb.At(fb.Width/2, fb.Height/2))
	d.titles = append(d.titles, title)
	return nil
}

func (d *scriptedDisplay) Close() {
	d.closed = true
}

func TestBackends(t *testing.T) {
	assert.Equal(t, []string{"ebiten", "fyne", "headless", "raylib"}, Backends())
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := NewBackend("sdl", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.Contains(t, err.Error(), "headless")
}

func TestLoopStopsOnQuit(t *testing.T) {
	s, err := NewSession(smallConfig())
	require.NoError(t, err)

	d := &scriptedDisplay{frames: 3}
	require.NoError(t, Loop(s, d))

	assert.Equal(t, 3, s.Frames())
	assert.Len(t, d.titles, 3)
	assert.True(t, d.closed)
	assert.Equal(t, d.presented[0], d.presented[2], "frames must be identical")
}

func TestLoopQuitBeforeFirstFrame(t *testing.T) {
	s, err := NewSession(smallConfig())
	require.NoError(t, err)

	d := &scriptedDisplay{frames: 0}
	require.NoError(t, Loop(s, d))
	assert.Zero(t, s.Frames())
}

func TestLoopPresentError(t *testing.T) {
	s, err := NewSession(smallConfig())
	require.NoError(t, err)

	d := &scriptedDisplay{frames: 5, failAt: 2}
	err = Loop(s, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surface lost")
	assert.True(t, d.closed)
}

func TestRunHeadless(t *testing.T) {
	err := Run(Options{
		Config:  smallConfig(),
		Backend: "headless",
		Frames:  2,
	})
	assert.NoError(t, err)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Image.Height = 1

	err := Run(Options{Config: cfg, Backend: "headless"})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestHeadlessDisplayFrameLimit(t *testing.T) {
	b, err := NewBackend("headless", Options{Frames: 4})
	require.NoError(t, err)

	s, err := NewSession(smallConfig())
	require.NoError(t, err)
	require.NoError(t, b.Run(s))
	assert.Equal(t, 4, s.Frames())

	d := b.(*headlessDisplay)
	assert.Contains(t, d.lastTitle, "Ray Tracing in One Weekend: ")
}
