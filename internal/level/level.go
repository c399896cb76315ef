// Package level owns the world data the renderer consumes each frame: wall
// segments, billboard sprites, and the texture set they reference. Levels are
// loaded once at startup and treated as immutable snapshots during rendering.
package level

import (
	"wallcaster/internal/geom"
	"wallcaster/internal/media"
	"wallcaster/internal/texture"
)

// Wall is a vertical line segment in the 2D map. Height is carried per wall
// but the rasterizer currently renders a uniform 0..2 face for every wall.
// Color is the flat-shade fallback and the top-down overlay color; Texture,
// when set, takes precedence in the first-person view.
type Wall struct {
	Segment geom.Segment
	Height  float64
	Color   media.Color
	Texture *texture.Texture
}

// Sprite is a camera-facing billboard at a world position. Size is the
// world-space diameter of its quad and Height the offset of the quad's bottom
// edge above the floor plane.
type Sprite struct {
	Texture  *texture.Texture
	Position geom.Vec2
	Size     float64
	Height   float64
}

// Level bundles everything a frame renders. Ceiling may be nil, in which case
// the upper half of the screen is left to the skybox.
type Level struct {
	Walls   []Wall
	Sprites []Sprite

	Floor   *texture.Texture
	Ceiling *texture.Texture
	Sky     *texture.Texture
}
