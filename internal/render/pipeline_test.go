package render

import (
	"testing"

	"wallcaster/internal/level"
	"wallcaster/internal/media"
)

var skyBlue = media.Color{R: 110, G: 170, B: 240, A: 255}

func TestRenderFrameComposition(t *testing.T) {
	r := NewRenderer(100, 80, 2)
	defer r.Stop()
	cam := testCamera()

	lvl := &level.Level{
		Walls: []level.Wall{flatWall(-0.3, 2, 0.3, 2, red)},
		Floor: solidTexture(floorBrown),
		Sky:   solidTexture(skyBlue),
	}
	r.RenderFrame(cam, lvl)

	horizon := r.ctx.Height / 2
	wallPixels, skyPixels, floorPixels := 0, 0, 0
	for y := 0; y < r.ctx.Height; y++ {
		for x := 0; x < r.ctx.Width; x++ {
			got := r.ctx.PixelAt(x, y)
			switch {
			case r.ctx.StencilAt(x, y):
				wallPixels++
				if got != red {
					t.Fatalf("stencilled pixel (%d,%d) = %v, want wall color", x, y, got)
				}
				if d := r.ctx.DepthAt(x, y); d >= depthSentinel {
					t.Fatalf("stencilled pixel (%d,%d) has depth %v", x, y, d)
				}
			case y >= horizon:
				floorPixels++
				if got != floorBrown {
					t.Fatalf("open floor pixel (%d,%d) = %v, want floor color", x, y, got)
				}
			default:
				skyPixels++
				if got != skyBlue {
					t.Fatalf("open sky pixel (%d,%d) = %v, want sky color", x, y, got)
				}
			}
			if got.A != 255 {
				t.Fatalf("pixel (%d,%d) left transparent", x, y)
			}
		}
	}
	if wallPixels == 0 || skyPixels == 0 || floorPixels == 0 {
		t.Fatalf("composition missing a layer: wall=%d sky=%d floor=%d",
			wallPixels, skyPixels, floorPixels)
	}
}

func TestRenderFrameEmptyLevel(t *testing.T) {
	r := NewRenderer(64, 48, 2)
	defer r.Stop()

	lvl := &level.Level{
		Floor: solidTexture(floorBrown),
		Sky:   solidTexture(skyBlue),
	}
	r.RenderFrame(testCamera(), lvl)

	horizon := r.ctx.Height / 2
	for y := 0; y < r.ctx.Height; y++ {
		for x := 0; x < r.ctx.Width; x++ {
			if r.ctx.StencilAt(x, y) {
				t.Fatalf("stencil set at (%d,%d) with no walls", x, y)
			}
			want := skyBlue
			if y >= horizon {
				want = floorBrown
			}
			if got := r.ctx.PixelAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	// Nothing occluding was drawn, so every depth cell keeps its sentinel.
	for i, d := range r.ctx.Depth {
		if d != depthSentinel {
			t.Fatalf("depth[%d] = %v, want sentinel", i, d)
		}
	}
}

func TestRenderFrameClearsBetweenFrames(t *testing.T) {
	r := NewRenderer(64, 48, 2)
	defer r.Stop()
	cam := testCamera()

	withWall := &level.Level{
		Walls: []level.Wall{flatWall(-2, 1.5, 2, 1.5, red)},
		Floor: solidTexture(floorBrown),
		Sky:   solidTexture(skyBlue),
	}
	empty := &level.Level{
		Floor: solidTexture(floorBrown),
		Sky:   solidTexture(skyBlue),
	}

	r.RenderFrame(cam, withWall)
	r.RenderFrame(cam, empty)

	for y := 0; y < r.ctx.Height; y++ {
		for x := 0; x < r.ctx.Width; x++ {
			if r.ctx.StencilAt(x, y) {
				t.Fatalf("stale stencil at (%d,%d) after clear", x, y)
			}
			if got := r.ctx.PixelAt(x, y); got == red {
				t.Fatalf("stale wall pixel at (%d,%d) after clear", x, y)
			}
		}
	}
}
