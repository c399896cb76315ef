package render

import (
	"wallcaster/internal/camera"
	"wallcaster/internal/level"
	"wallcaster/internal/media"
	"wallcaster/internal/texture"
)

// keyColor is rendered as fully transparent in sprite textures.
var keyColor = media.Color{R: 0, G: 255, B: 255, A: 255}

// renderSprites projects each billboard sprite to a screen-space quad and
// fills it with per-pixel depth testing. Sprites are drawn one after another
// in list order; the depth buffer, not sorting, resolves their visibility.
// Within one sprite the fill fans out across columns, so no two workers ever
// share a depth cell.
func (r *Renderer) renderSprites(cam *camera.Camera, sprites []level.Sprite) {
	width, height := r.ctx.Width, r.ctx.Height
	proj := newProjection(cam, width, height)
	front := cam.Front
	right := cam.Right()

	for s := range sprites {
		sprite := &sprites[s]

		rel := sprite.Position.Sub(cam.Position)
		planeDist := rel.Dot(front)
		if planeDist <= 0 {
			// Behind the camera plane.
			continue
		}
		lateral := rel.Dot(right)

		// Perspective scale: screen pixels per world unit at this depth.
		pxPerUnit := float64(height) / (proj.planeHeight * planeDist)

		screenSize := int(sprite.Size * pxPerUnit)
		if screenSize < 1 {
			continue
		}

		centerX := width/2 + int(lateral/planeDist*float64(width)/proj.planeWidth)
		left := centerX - screenSize/2

		bottomView := (sprite.Height - cam.Height) / planeDist
		bottom := height/2 - int(bottomView*float64(height)/proj.planeHeight)
		top := bottom - screenSize

		x0 := max(left, 0)
		x1 := min(left+screenSize, width)
		if x0 >= x1 {
			continue
		}

		depth := planeDist / cam.FarPlane
		img := sprite.Texture.Mipmaps[0]

		r.pool.ParallelFor(x0, x1, func(x int) {
			u := float64(x-left) / float64(screenSize)
			for y := max(top, 0); y < min(bottom, height); y++ {
				idx := y*width + x
				if r.ctx.Depth[idx] <= depth {
					continue
				}

				v := float64(y-top) / float64(screenSize)
				c := texture.Sample(img, u, v, false)
				if c.R == keyColor.R && c.G == keyColor.G && c.B == keyColor.B {
					continue
				}

				r.ctx.SetPixel(x, y, c)
				r.ctx.Depth[idx] = depth
			}
		})
	}
}
