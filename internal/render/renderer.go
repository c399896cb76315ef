package render

import (
	"math"

	"wallcaster/internal/camera"
	"wallcaster/internal/level"
	"wallcaster/internal/media"
	"wallcaster/internal/texture"
	"wallcaster/internal/threading/core"
)

// Renderer drives the rasterizer passes for one frame context. Column and row
// loops fan out across the worker pool; every worker writes a disjoint slice
// of the buffers, so the passes need no locking.
type Renderer struct {
	ctx  *Context
	pool *core.WorkerPool

	// Per-column scratch rebuilt by the wall pass each frame: nearest wall
	// distance, its surface, and the ray hit offset along the wall.
	hits []columnHit
}

// columnHit records the nearest wall a column's ray intersected.
type columnHit struct {
	dist  float64 // camera-plane (perpendicular) distance
	u     float64 // hit offset along the wall, horizontal texture coordinate
	color media.Color
	tex   *texture.Texture
}

// projection fixes the per-column linear ray spacing for a camera and screen.
// The lateral offset being linear in screen distance from center (not in
// angle) is what makes the projection planar instead of fisheye.
type projection struct {
	planeHeight float64 // 2 * tan(fov/2)
	planeWidth  float64
	rayOffset   float64 // planeWidth / columns
}

func newProjection(cam *camera.Camera, width, height int) projection {
	p := projection{planeHeight: 2 * math.Tan(cam.FOV/2)}
	p.planeWidth = p.planeHeight * float64(width) / float64(height)
	p.rayOffset = p.planeWidth / float64(width)
	return p
}

// NewRenderer creates a renderer with its own frame context and a started
// worker pool. A workers count of zero or less uses the CPU count.
func NewRenderer(width, height, workers int) *Renderer {
	pool := core.NewWorkerPool(workers)
	pool.Start()
	return &Renderer{
		ctx:  NewContext(width, height),
		pool: pool,
		hits: make([]columnHit, width),
	}
}

// Context exposes the renderer's frame context for presentation and for the
// quality toggles.
func (r *Renderer) Context() *Context {
	return r.ctx
}

// Stop shuts down the renderer's worker pool.
func (r *Renderer) Stop() {
	r.pool.Stop()
}

// RenderFrame rasterizes one frame: clear, then walls, floor/ceiling,
// sprites, sky, in that order. The order is load-bearing: the floor pass
// reads the wall stencil, the sprite pass depth-tests against walls, and the
// sky pass fills only pixels whose depth is still untouched. Each pass joins
// its workers before the next starts.
func (r *Renderer) RenderFrame(cam *camera.Camera, lvl *level.Level) {
	r.ctx.Clear()
	r.renderWalls(cam, lvl.Walls)
	r.renderFloorAndCeiling(cam, lvl.Floor, lvl.Ceiling)
	r.renderSprites(cam, lvl.Sprites)
	r.renderSky(cam, lvl.Sky)
}
