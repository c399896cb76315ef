package media

// Color is an 8-bit RGBA color sample.
type Color struct {
	R, G, B, A uint8
}

// Image is a row-major pixel buffer with origin at the top left. Images are
// immutable after load; mipmap generation produces new images rather than
// editing in place.
type Image struct {
	Width  int
	Height int
	Pix    []Color
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// At returns the texel at (x, y) without bounds checking; callers wrap
// coordinates first.
func (img *Image) At(x, y int) Color {
	return img.Pix[y*img.Width+x]
}

// Set writes the texel at (x, y). Only mipmap generation and the procedural
// generators use it.
func (img *Image) Set(x, y int, c Color) {
	img.Pix[y*img.Width+x] = c
}
