// Package render is the software rasterizer: per-column wall raycasting with
// a depth buffer, floor/ceiling projection, billboard sprites, and a skybox
// fill, composited in a fixed order into a packed RGBA frame.
package render

import "wallcaster/internal/media"

// depthSentinel marks a pixel nothing has drawn to this frame. The skybox
// pass fills exactly the pixels still holding it.
const depthSentinel = 1.0

// Context owns the per-frame buffers: a packed RGBA color buffer (row-major,
// 4 bytes per pixel, directly presentable), a stencil buffer marking wall
// pixels, and a depth buffer of normalized 0..1 distances. The two render
// quality toggles live here as well so that independent contexts never
// interfere.
type Context struct {
	Width  int
	Height int

	Color   []byte
	Stencil []uint8
	Depth   []float64

	UseMipmap    bool
	UseFiltering bool
}

// NewContext allocates buffers for a width x height frame. Both quality
// toggles start enabled.
func NewContext(width, height int) *Context {
	n := width * height
	ctx := &Context{
		Width:        width,
		Height:       height,
		Color:        make([]byte, n*4),
		Stencil:      make([]uint8, n),
		Depth:        make([]float64, n),
		UseMipmap:    true,
		UseFiltering: true,
	}
	ctx.Clear()
	return ctx
}

// Clear resets stencil and depth to their start-of-frame sentinels and zeroes
// the color buffer. Depth must be reset before any pass runs: the skybox
// draws wherever depth still holds the sentinel.
func (ctx *Context) Clear() {
	for i := range ctx.Color {
		ctx.Color[i] = 0
	}
	for i := range ctx.Stencil {
		ctx.Stencil[i] = 0
	}
	for i := range ctx.Depth {
		ctx.Depth[i] = depthSentinel
	}
}

// SetPixel writes a color at (x, y) without bounds checking.
func (ctx *Context) SetPixel(x, y int, c media.Color) {
	base := (y*ctx.Width + x) * 4
	ctx.Color[base] = c.R
	ctx.Color[base+1] = c.G
	ctx.Color[base+2] = c.B
	ctx.Color[base+3] = c.A
}

// PixelAt returns the color at (x, y); tests use it to inspect frames.
func (ctx *Context) PixelAt(x, y int) media.Color {
	base := (y*ctx.Width + x) * 4
	return media.Color{
		R: ctx.Color[base],
		G: ctx.Color[base+1],
		B: ctx.Color[base+2],
		A: ctx.Color[base+3],
	}
}

// SetStencil marks (x, y) as a wall pixel for this frame.
func (ctx *Context) SetStencil(x, y int) {
	ctx.Stencil[y*ctx.Width+x] = 1
}

// StencilAt reports whether a wall pixel was written at (x, y).
func (ctx *Context) StencilAt(x, y int) bool {
	return ctx.Stencil[y*ctx.Width+x] == 1
}

// SetDepth stores a normalized distance at (x, y).
func (ctx *Context) SetDepth(x, y int, value float64) {
	ctx.Depth[y*ctx.Width+x] = value
}

// DepthAt returns the normalized distance stored at (x, y).
func (ctx *Context) DepthAt(x, y int) float64 {
	return ctx.Depth[y*ctx.Width+x]
}
