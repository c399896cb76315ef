package render

import (
	"math"
	"testing"

	"wallcaster/internal/camera"
	"wallcaster/internal/geom"
	"wallcaster/internal/level"
	"wallcaster/internal/media"
)

// testCamera returns a camera at the origin facing +Y with a 60 degree field
// of view, which keeps the trigonometry in the assertions simple.
func testCamera() *camera.Camera {
	cam := camera.New()
	cam.FOV = math.Pi / 3
	cam.FarPlane = 100
	cam.Height = 1
	return cam
}

func flatWall(x0, y0, x1, y1 float64, c media.Color) level.Wall {
	return level.Wall{
		Segment: geom.Segment{Start: geom.Vec2{X: x0, Y: y0}, End: geom.Vec2{X: x1, Y: y1}},
		Height:  1,
		Color:   c,
	}
}

var red = media.Color{R: 200, G: 0, B: 0, A: 255}

func TestWallDepthCenterAndMiss(t *testing.T) {
	r := NewRenderer(200, 100, 2)
	defer r.Stop()
	cam := testCamera()

	// A short wall two units straight ahead. Its angular extent covers the
	// screen center but not the edge columns.
	walls := []level.Wall{flatWall(-0.2, 2, 0.2, 2, red)}
	r.renderWalls(cam, walls)

	centerY := r.ctx.Height / 2

	// Cast ray width/2 has zero lateral offset and owns screen column
	// width-1-width/2 = 99.
	centerDepth := r.ctx.DepthAt(99, centerY)
	wantDepth := 2.0 / cam.FarPlane
	if math.Abs(centerDepth-wantDepth) > 1e-6 {
		t.Errorf("center depth = %v, want %v", centerDepth, wantDepth)
	}
	if !r.ctx.StencilAt(99, centerY) {
		t.Error("center wall pixel not stencilled")
	}
	if got := r.ctx.PixelAt(99, centerY); got != red {
		t.Errorf("center wall pixel = %v, want %v", got, red)
	}

	// The edge columns look past the wall: far-plane sentinel, no stencil.
	for _, x := range []int{0, 1, r.ctx.Width - 2, r.ctx.Width - 1} {
		if d := r.ctx.DepthAt(x, centerY); d != depthSentinel {
			t.Errorf("edge column %d depth = %v, want sentinel", x, d)
		}
		if r.ctx.StencilAt(x, centerY) {
			t.Errorf("edge column %d unexpectedly stencilled", x)
		}
	}
}

func TestWallNearestWins(t *testing.T) {
	r := NewRenderer(200, 100, 2)
	defer r.Stop()
	cam := testCamera()

	near := flatWall(-1, 2, 1, 2, red)
	far := flatWall(-1, 4, 1, 4, media.Color{G: 200, A: 255})

	// Order in the list must not matter; the minimum distance wins.
	r.renderWalls(cam, []level.Wall{far, near})

	centerY := r.ctx.Height / 2
	wantDepth := 2.0 / cam.FarPlane
	if d := r.ctx.DepthAt(99, centerY); math.Abs(d-wantDepth) > 1e-6 {
		t.Errorf("depth with occluded wall = %v, want %v", d, wantDepth)
	}
	if got := r.ctx.PixelAt(99, centerY); got != red {
		t.Errorf("occluded wall bled through: %v", got)
	}
}

func TestWallBeyondFarPlaneIgnored(t *testing.T) {
	r := NewRenderer(100, 80, 2)
	defer r.Stop()
	cam := testCamera()
	cam.FarPlane = 10

	r.renderWalls(cam, []level.Wall{flatWall(-5, 50, 5, 50, red)})

	for x := 0; x < r.ctx.Width; x++ {
		if d := r.ctx.DepthAt(x, r.ctx.Height/2); d != depthSentinel {
			t.Fatalf("column %d drew a wall beyond the far plane (depth %v)", x, d)
		}
	}
}

func TestWallEmptyListKeepsSentinels(t *testing.T) {
	r := NewRenderer(64, 48, 2)
	defer r.Stop()

	r.renderWalls(testCamera(), nil)

	for i, d := range r.ctx.Depth {
		if d != depthSentinel {
			t.Fatalf("pixel %d depth = %v, want sentinel", i, d)
		}
	}
	for i, s := range r.ctx.Stencil {
		if s != 0 {
			t.Fatalf("pixel %d stencilled with no walls", i)
		}
	}
}

func TestWallVerticalExtentScalesWithDistance(t *testing.T) {
	r := NewRenderer(200, 100, 2)
	defer r.Stop()
	cam := testCamera()

	r.renderWalls(cam, []level.Wall{flatWall(-1, 2, 1, 2, red)})
	nearRows := stencilledRows(r.ctx, 99)

	r.ctx.Clear()
	r.renderWalls(cam, []level.Wall{flatWall(-1, 8, 1, 8, red)})
	farRows := stencilledRows(r.ctx, 99)

	if nearRows == 0 || farRows == 0 {
		t.Fatalf("wall columns empty: near=%d far=%d", nearRows, farRows)
	}
	if farRows >= nearRows {
		t.Errorf("farther wall drew taller: near=%d rows, far=%d rows", nearRows, farRows)
	}
}

// stencilledRows counts the wall pixels written in one screen column.
func stencilledRows(ctx *Context, x int) int {
	count := 0
	for y := 0; y < ctx.Height; y++ {
		if ctx.StencilAt(x, y) {
			count++
		}
	}
	return count
}
