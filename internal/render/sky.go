package render

import (
	"math"

	"wallcaster/internal/camera"
	"wallcaster/internal/texture"
)

// renderSky fills every pixel whose depth still holds the untouched sentinel
// with an equirectangular sky sample. It must run after every occluding pass;
// the depth buffer is the record of what they drew.
func (r *Renderer) renderSky(cam *camera.Camera, sky *texture.Texture) {
	width, height := r.ctx.Width, r.ctx.Height
	proj := newProjection(cam, width, height)
	front := cam.Front
	right := cam.Right()
	img := sky.Mipmaps[0]

	r.pool.ParallelFor(0, height, func(y int) {
		// Vertical ray component is shared by the whole scanline.
		vy := float64(height/2-y) * (proj.planeHeight / float64(height))

		for x := 0; x < width; x++ {
			if r.ctx.Depth[y*width+x] != depthSentinel {
				continue
			}

			// Screen column x corresponds to cast ray width-1-x; rebuild the
			// same sheared ray the wall pass used, plus the vertical part.
			offset := proj.rayOffset * float64((width-1-x)-width/2)
			horiz := front.Sub(right.Scale(offset))

			// World ray with up as +Y: (x, z) is the horizontal plane.
			rx, ry, rz := horiz.X, vy, horiz.Y
			norm := math.Sqrt(rx*rx + ry*ry + rz*rz)
			rx, ry, rz = rx/norm, ry/norm, rz/norm

			// Spherical projection to equirectangular UV.
			u := 0.5 + math.Atan2(rz, rx)/(2*math.Pi)
			v := 0.5 + math.Asin(ry)/math.Pi

			r.ctx.SetPixel(x, y, texture.Sample(img, u, v, true))
		}
	})
}
