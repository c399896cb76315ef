package render

import (
	"math"

	"wallcaster/internal/camera"
	"wallcaster/internal/geom"
	"wallcaster/internal/texture"
)

// ceilingHeight is the world height of the ceiling plane, matching the top of
// the wall faces.
const ceilingHeight = wallTop

// renderFloorAndCeiling fills the scanlines below the horizon with the floor
// plane and, when a ceiling texture is bound, mirrors them above the horizon
// with the ceiling plane. Pixels already stencilled by the wall pass are
// skipped. Neither plane writes depth: a floor pixel is always farther than
// any wall that would have stencilled the same cell, so later passes treat
// these cells as holding the far-plane sentinel.
func (r *Renderer) renderFloorAndCeiling(cam *camera.Camera, floor, ceiling *texture.Texture) {
	width, height := r.ctx.Width, r.ctx.Height
	centerX, centerY := width/2, height/2

	// Vertical half-plane projection: one ray per scanline from the horizon
	// down to the bottom edge.
	halfPlaneHeight := math.Tan(cam.FOV / 2)
	halfPlaneWidth := halfPlaneHeight * float64(width) / float64(height)
	numRays := height / 2
	rayOffset := halfPlaneHeight / float64(numRays)

	front := cam.Front
	right := cam.Right()
	down := geom.Vec2{X: 0, Y: -1}

	// Row i below the horizon pairs with its mirror above it; each iteration
	// owns both scanlines, so the fan-out writes disjoint rows.
	r.pool.ParallelFor(0, numRays, func(i int) {
		// View-space ray for this scanline: +x forward, +y up.
		ray := geom.Vec2{X: 1, Y: -(float64(i) * rayOffset)}.Normalized()
		angle := math.Acos(down.Dot(ray))

		// The angle from straight down fixes where the ray meets a horizontal
		// plane: distance = tan(angle) * height above the plane.
		floorDist := math.Tan(angle) * cam.Height
		floorImg := floor.Level(floorDist, r.ctx.UseMipmap)
		floorY := i + centerY

		for x := 0; x < width; x++ {
			if r.ctx.StencilAt(x, floorY) {
				continue
			}
			uv := worldUV(cam.Position, front, right, floorDist, x-centerX, halfPlaneWidth, width)
			r.ctx.SetPixel(x, floorY, texture.Sample(floorImg, uv.X, uv.Y, r.ctx.UseFiltering))
		}

		if ceiling == nil {
			return
		}

		ceilDist := math.Tan(angle) * (ceilingHeight - cam.Height)
		ceilImg := ceiling.Level(ceilDist, r.ctx.UseMipmap)
		ceilY := centerY - 1 - i
		if ceilY < 0 {
			return
		}

		for x := 0; x < width; x++ {
			if r.ctx.StencilAt(x, ceilY) {
				continue
			}
			uv := worldUV(cam.Position, front, right, ceilDist, x-centerX, halfPlaneWidth, width)
			r.ctx.SetPixel(x, ceilY, texture.Sample(ceilImg, uv.X, uv.Y, r.ctx.UseFiltering))
		}
	})
}

// worldUV maps a screen column at a known plane distance to the world-space
// point the pixel sees, which doubles as the texture coordinate.
func worldUV(pos, front, right geom.Vec2, dist float64, lateralPx int, halfPlaneWidth float64, width int) geom.Vec2 {
	lateral := float64(lateralPx) * (halfPlaneWidth / float64(width/2)) * dist
	return pos.Add(front.Scale(dist)).Add(right.Scale(lateral))
}
