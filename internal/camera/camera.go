package camera

import (
	"math"

	"wallcaster/internal/geom"
)

// Camera is the first-person viewpoint the renderer reads each frame. The
// renderer never mutates it; Update is called once per frame by the input
// layer before rendering starts.
type Camera struct {
	Position geom.Vec2
	Front    geom.Vec2 // unit-length heading
	Velocity geom.Vec2

	FOV      float64 // horizontal field of view, radians
	FarPlane float64 // maximum ray-cast distance
	Height   float64 // eye height above the floor plane

	HeadBob bool
}

// frictionEpsilon is the speed below which velocity starts halving toward a
// full stop instead of staying constant.
const frictionEpsilon = 0.01

// New returns a camera at the origin facing +Y with a 90 degree field of
// view, matching the reference defaults.
func New() *Camera {
	return &Camera{
		Front:    geom.Vec2{X: 0, Y: 1},
		FOV:      math.Pi / 2,
		FarPlane: 100,
		Height:   1,
	}
}

// Right returns the unit vector pointing toward the right edge of the view.
func (c *Camera) Right() geom.Vec2 { return c.Front.Right() }

// Rotate turns the heading counter-clockwise by angle radians.
func (c *Camera) Rotate(angle float64) {
	c.Front = c.Front.Rotated(angle).Normalized()
}

// Update advances the camera one frame: integrate velocity into position,
// decay velocity toward zero to emulate friction, and apply the cosmetic
// head bob when enabled.
func (c *Camera) Update() {
	c.Position = c.Position.Add(c.Velocity)

	if c.Velocity.Len() < frictionEpsilon {
		c.Velocity = geom.Vec2{}
	} else {
		c.Velocity = c.Velocity.Scale(0.5)
	}

	if c.HeadBob {
		c.Height = 1 + 0.15*math.Sin(2*c.Position.Len())
	}
}

// Transform returns the camera's local-to-world matrix: first column the left
// vector, second the heading, third the position. The top-down overlay uses
// it to place the view frustum in map space.
func (c *Camera) Transform() geom.Mat3 {
	left := geom.Vec2{X: c.Front.Y, Y: -c.Front.X}
	m := geom.Identity()
	m[0][0] = left.X
	m[0][1] = left.Y
	m[1][0] = c.Front.X
	m[1][1] = c.Front.Y
	m[2][0] = c.Position.X
	m[2][1] = c.Position.Y
	return m
}
