package render

import (
	"testing"

	"wallcaster/internal/level"
	"wallcaster/internal/media"
)

var (
	floorBrown = media.Color{R: 120, G: 80, B: 40, A: 255}
	ceilGray   = media.Color{R: 90, G: 90, B: 90, A: 255}
)

func TestFloorFillsBelowHorizon(t *testing.T) {
	r := NewRenderer(64, 48, 2)
	defer r.Stop()

	r.renderFloorAndCeiling(testCamera(), solidTexture(floorBrown), nil)

	horizon := r.ctx.Height / 2
	for y := 0; y < r.ctx.Height; y++ {
		for x := 0; x < r.ctx.Width; x++ {
			got := r.ctx.PixelAt(x, y)
			if y >= horizon {
				if got != floorBrown {
					t.Fatalf("floor pixel (%d,%d) = %v, want %v", x, y, got, floorBrown)
				}
			} else if got != (media.Color{}) {
				t.Fatalf("pixel (%d,%d) above horizon written without a ceiling", x, y)
			}
		}
	}
}

func TestCeilingMirrorsFloor(t *testing.T) {
	r := NewRenderer(64, 48, 2)
	defer r.Stop()

	r.renderFloorAndCeiling(testCamera(), solidTexture(floorBrown), solidTexture(ceilGray))

	horizon := r.ctx.Height / 2
	for y := 0; y < horizon; y++ {
		for x := 0; x < r.ctx.Width; x++ {
			if got := r.ctx.PixelAt(x, y); got != ceilGray {
				t.Fatalf("ceiling pixel (%d,%d) = %v, want %v", x, y, got, ceilGray)
			}
		}
	}
}

func TestFloorWritesNoDepth(t *testing.T) {
	r := NewRenderer(64, 48, 2)
	defer r.Stop()

	r.renderFloorAndCeiling(testCamera(), solidTexture(floorBrown), solidTexture(ceilGray))

	for i, d := range r.ctx.Depth {
		if d != depthSentinel {
			t.Fatalf("depth[%d] = %v, floor and ceiling must leave depth alone", i, d)
		}
	}
}

func TestFloorSkipsStencilledPixels(t *testing.T) {
	r := NewRenderer(64, 48, 2)
	defer r.Stop()
	cam := testCamera()

	// A wide wall this close stencils every floor scanline, so the floor pass
	// must end up writing nothing below the horizon.
	r.renderWalls(cam, []level.Wall{flatWall(-2, 1.5, 2, 1.5, red)})
	r.renderFloorAndCeiling(cam, solidTexture(floorBrown), nil)

	for y := r.ctx.Height / 2; y < r.ctx.Height; y++ {
		for x := 0; x < r.ctx.Width; x++ {
			if !r.ctx.StencilAt(x, y) {
				t.Fatalf("expected (%d,%d) stencilled by the wall", x, y)
			}
			if got := r.ctx.PixelAt(x, y); got != red {
				t.Fatalf("floor overwrote stencilled pixel (%d,%d): %v", x, y, got)
			}
		}
	}
}
