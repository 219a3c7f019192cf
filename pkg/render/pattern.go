package render

// FillTestPattern writes a static gradient: red grows left to right,
// green top to bottom, blue fixed at 0.25. Useful to check a display
// backend's channel order and orientation without the tracer.
func FillTestPattern(fb *Framebuffer) {
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r := float64(x) / float64(fb.Width-1)
			g := float64(y) / float64(fb.Height-1)
			b := 0.25

			fb.Set(x, y, PackRGB8(ChannelToByte(r), ChannelToByte(g), ChannelToByte(b)))
		}
	}
}
