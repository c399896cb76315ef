package media

import (
	"fmt"
	"math"
)

// Procedural placeholder textures. Levels may reference these by name instead
// of a file path, which keeps the demo level and the tests free of binary
// assets.

// Generate returns the named procedural texture, or an error for an unknown
/// name. Recognized names: "brick", "checker", "stone", "sky".
func Generate(name string) (*Image, error) {
	switch name {
	case "brick":
		return GenerateBrick(64), nil
	case "checker":
		return GenerateChecker(64), nil
	case "stone":
		return GenerateStone(64), nil
	case "sky":
		return GenerateSky(256, 128), nil
	default:
		return nil, fmt.Errorf("unknown generated texture %q", name)
	}
}

// GenerateBrick returns a size x size brick pattern: warm brick courses
// separated by gray mortar lines, rows offset every other course.
func GenerateBrick(size int) *Image {
	img := NewImage(size, size)
	brick := Color{178, 68, 48, 255}
	mortar := Color{168, 160, 152, 255}
	courseH := size / 8
	brickW := size / 4
	for y := 0; y < size; y++ {
		course := y / courseH
		for x := 0; x < size; x++ {
			shift := 0
			if course%2 == 1 {
				shift = brickW / 2
			}
			c := brick
			if y%courseH == 0 || (x+shift)%brickW == 0 {
				c = mortar
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// GenerateChecker returns a size x size two-tone checkerboard with 8x8 cells.
func GenerateChecker(size int) *Image {
	img := NewImage(size, size)
	light := Color{188, 152, 106, 255}
	dark := Color{98, 72, 46, 255}
	cell := size / 8
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, light)
			} else {
				img.Set(x, y, dark)
			}
		}
	}
	return img
}

// GenerateStone returns a size x size mottled gray pattern with a cheap
// deterministic hash standing in for noise.
func GenerateStone(size int) *Image {
	img := NewImage(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := uint32(x*374761393 + y*668265263)
			h = (h ^ (h >> 13)) * 1274126177
			v := uint8(110 + (h^(h>>16))%40)
			img.Set(x, y, Color{v, v, v + 8, 255})
		}
	}
	return img
}

// GenerateSky returns an equirectangular gradient: deep blue at the zenith
// shading to a pale horizon band.
func GenerateSky(width, height int) *Image {
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		// v=0 is the bottom of the sphere, v=1 the top.
		elev := float64(y)/float64(height-1)*2 - 1
		t := math.Abs(elev)
		r := uint8(200 - 140*t)
		g := uint8(220 - 110*t)
		b := uint8(255 - 55*t)
		for x := 0; x < width; x++ {
			img.Set(x, y, Color{r, g, b, 255})
		}
	}
	return img
}
