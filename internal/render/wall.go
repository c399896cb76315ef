package render

import (
	"wallcaster/internal/camera"
	"wallcaster/internal/geom"
	"wallcaster/internal/level"
	"wallcaster/internal/texture"
)

// Wall faces span world heights wallBottom..wallTop regardless of the
// per-wall height field.
const (
	wallBottom = 0.0
	wallTop    = 2.0
)

// renderWalls casts one ray per screen column, finds the nearest intersecting
// wall for each, then projects and textures the visible vertical extent.
func (r *Renderer) renderWalls(cam *camera.Camera, walls []level.Wall) {
	numRays := r.ctx.Width
	proj := newProjection(cam, r.ctx.Width, r.ctx.Height)

	rayOrigin := cam.Position
	front := cam.Front
	right := cam.Right()

	// Pass 1: nearest wall per column. Columns are independent; each worker
	// writes only its own scratch slots.
	r.pool.ParallelFor(0, numRays, func(i int) {
		r.hits[i] = columnHit{dist: cam.FarPlane}

		offset := proj.rayOffset * float64(i-numRays/2)
		rayDir := front.Sub(right.Scale(offset)).Normalized()
		ray := geom.Segment{
			Start: rayOrigin,
			End:   rayOrigin.Add(rayDir.Scale(cam.FarPlane)),
		}

		for w := range walls {
			point, ok := geom.IntersectionPoint(ray, walls[w].Segment)
			if !ok {
				continue
			}

			eyeDist := rayOrigin.Dist(point)
			// Project onto the view direction: perpendicular distance to the
			// camera plane, which is what keeps verticals straight.
			planeDist := eyeDist * front.Dot(rayDir)

			if planeDist < r.hits[i].dist {
				r.hits[i] = columnHit{
					dist:  planeDist,
					u:     point.Dist(walls[w].Segment.Start),
					color: walls[w].Color,
					tex:   walls[w].Texture,
				}
			}
		}
	})

	// Pass 2: project each column's winning wall onto the screen and write
	// color, depth and stencil. Column i owns screen column width-1-i, so
	// workers again write disjoint pixels.
	halfHeight := r.ctx.Height / 2
	r.pool.ParallelFor(0, numRays, func(i int) {
		hit := r.hits[i]
		if hit.dist >= cam.FarPlane {
			return
		}

		viewTop := (wallTop - cam.Height) / hit.dist
		viewBottom := (wallBottom - cam.Height) / hit.dist
		screenTop := int(viewTop * float64(r.ctx.Height) / proj.planeHeight)
		screenBottom := int(viewBottom * float64(r.ctx.Height) / proj.planeHeight)

		x := r.ctx.Width - (i + 1)
		depth := hit.dist / cam.FarPlane

		for j := max(-halfHeight, screenBottom) + 1; j < min(halfHeight, screenTop); j++ {
			c := hit.color
			if hit.tex != nil {
				// Inverse-perspective vertical mapping: the world height seen
				// at face row j of this column.
				v := cam.Height + float64(j)*(proj.planeHeight/float64(r.ctx.Height))*hit.dist
				img := hit.tex.Level(hit.dist, r.ctx.UseMipmap)
				c = texture.Sample(img, hit.u, v, r.ctx.UseFiltering)
			}

			y := halfHeight - j
			r.ctx.SetPixel(x, y, c)
			r.ctx.SetStencil(x, y)
			r.ctx.SetDepth(x, y, depth)
		}
	})
}
