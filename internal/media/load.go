package media

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// LoadImage decodes a BMP or PNG file into an Image. Decode failures (bad
// signature, unsupported color depth, truncated data) surface as descriptive
// errors wrapped with the file name; callers treat them as fatal at startup.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	var src image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		src, err = bmp.Decode(f)
	case ".png":
		src, err = png.Decode(f)
	default:
		return nil, fmt.Errorf("texture %q: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	return FromGoImage(src), nil
}

// FromGoImage converts any stdlib image into the renderer's packed format.
func FromGoImage(src image.Image) *Image {
	bounds := src.Bounds()
	img := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.Set(x, y, Color{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			})
		}
	}
	return img
}
