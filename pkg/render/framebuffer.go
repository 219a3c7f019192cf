package render

import (
	"fmt"
	"image"
)

// Framebuffer is a row-major buffer of packed 0x00RRGGBB pixels
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFramebuffer allocates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// Index returns the offset of pixel (x, y) in Pix
func (f *Framebuffer) Index(x, y int) int {
	return f.Width*y + x
}

// Set writes a packed pixel
func (f *Framebuffer) Set(x, y int, pixel uint32) {
	f.Pix[f.Index(x, y)] = pixel
}

// At reads a packed pixel
func (f *Framebuffer) At(x, y int) uint32 {
	return f.Pix[f.Index(x, y)]
}

// CopyToRGBA expands the pixels into dst as 8-bit RGBA with opaque alpha.
// dst must hold at least 4*Width*Height bytes.
func (f *Framebuffer) CopyToRGBA(dst []byte) error {
	if len(dst) < 4*len(f.Pix) {
		return fmt.Errorf("destination too small: need %d bytes, got %d", 4*len(f.Pix), len(dst))
	}
	for i, p := range f.Pix {
		j := i * 4
		dst[j+0], dst[j+1], dst[j+2] = UnpackRGB8(p)
		dst[j+3] = 0xFF
	}
	return nil
}

// RGBA returns a copy of the framebuffer as an image
func (f *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	// Pix of a fresh RGBA is exactly 4*Width*Height
	_ = f.CopyToRGBA(img.Pix)
	return img
}
