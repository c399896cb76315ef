// Package texture builds mipmapped textures from raw images and samples them
// with wraparound addressing and optional fixed-point bilinear filtering.
package texture

import "wallcaster/internal/media"

// mipChainLength is the number of levels generated per texture, level 0 being
// the full-resolution image.
const mipChainLength = 4

// Texture is an image plus a chain of progressively half-resolution mipmaps.
// Immutable after construction.
type Texture struct {
	Mipmaps []*media.Image

	Width  int
	Height int
}

// New builds a texture from a base image, generating the mip chain by box
// filtering. The chain stops early if a level would collapse below one texel.
func New(base *media.Image) *Texture {
	mips := make([]*media.Image, 0, mipChainLength)
	mips = append(mips, base)
	for len(mips) < mipChainLength {
		prev := mips[len(mips)-1]
		if prev.Width < 2 || prev.Height < 2 {
			break
		}
		mips = append(mips, minify(prev))
	}
	return &Texture{Mipmaps: mips, Width: base.Width, Height: base.Height}
}

// minify halves an image with a 2x2 box filter.
func minify(img *media.Image) *media.Image {
	out := media.NewImage(img.Width/2, img.Height/2)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			a := img.At(2*x, 2*y)
			b := img.At(2*x+1, 2*y)
			c := img.At(2*x, 2*y+1)
			d := img.At(2*x+1, 2*y+1)
			out.Set(x, y, media.Color{
				R: uint8((int(a.R) + int(b.R) + int(c.R) + int(d.R)) / 4),
				G: uint8((int(a.G) + int(b.G) + int(c.G) + int(d.G)) / 4),
				B: uint8((int(a.B) + int(b.B) + int(c.B) + int(d.B)) / 4),
				A: uint8((int(a.A) + int(b.A) + int(c.A) + int(d.A)) / 4),
			})
		}
	}
	return out
}

// MipLevel maps a view distance to a mip index. The thresholds are one
// shared policy for every render pass.
func MipLevel(distance float64) int {
	switch {
	case distance < 25:
		return 0
	case distance < 50:
		return 1
	case distance < 100:
		return 2
	case distance < 200:
		return 3
	default:
		return 0
	}
}

// Level returns the mipmap for the given view distance. With useMipmap false
// the base level is always returned.
func (t *Texture) Level(distance float64, useMipmap bool) *media.Image {
	if !useMipmap {
		return t.Mipmaps[0]
	}
	level := MipLevel(distance)
	if level >= len(t.Mipmaps) {
		level = len(t.Mipmaps) - 1
	}
	return t.Mipmaps[level]
}
