// Package snapshot writes a rendered framebuffer to an image file.
package snapshot

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/rtweekend/pkg/render"
	"golang.org/x/image/bmp"
)

// Format is an output image format
type Format string

const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// ErrUnknownFormat is returned for formats other than PNG and BMP
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat accepts "png" or "bmp", case-insensitively
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case PNG, BMP:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (expected png or bmp)", ErrUnknownFormat, s)
	}
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode writes fb to w in the given format
func Encode(w io.Writer, fb *render.Framebuffer, format Format) error {
	img := fb.RGBA()

	switch format {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile encodes fb into a new file at path
func WriteFile(path string, fb *render.Framebuffer, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Encode(f, fb, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
