package game

import (
	"image/color"

	"wallcaster/internal/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// overlayScale is the map-to-screen scale of the top-down debug view, in
// pixels per world unit.
const overlayScale = 50.0

// drawOverlay renders the top-down debug view on top of the frame: every wall
// in its level color and the camera's view line in red, all placed by the
// same homogeneous transform.
func (g *Game) drawOverlay(screen *ebiten.Image) {
	viewMatrix := geom.Identity()
	viewMatrix[0][0] = overlayScale
	viewMatrix[1][1] = -overlayScale // screen y grows downward
	viewMatrix[2][0] = float64(g.config.GetScreenWidth() / 2)
	viewMatrix[2][1] = float64(g.config.GetScreenHeight() / 2)

	// The heading line is defined in camera-local space (origin, straight
	// ahead) and placed in the world by the camera's own transform.
	cam := g.camera
	camToWorld := cam.Transform()
	cameraLine := geom.Segment{
		Start: camToWorld.Apply(geom.Vec2{}),
		End:   camToWorld.Apply(geom.Vec2{X: 0, Y: cam.FarPlane}),
	}
	drawWorldLine(screen, viewMatrix, cameraLine, color.RGBA{255, 0, 0, 255})

	for _, wall := range g.level.Walls {
		c := color.RGBA{wall.Color.R, wall.Color.G, wall.Color.B, 255}
		drawWorldLine(screen, viewMatrix, wall.Segment, c)
	}
}

// drawWorldLine transforms a world segment into screen space and strokes it.
func drawWorldLine(screen *ebiten.Image, m geom.Mat3, seg geom.Segment, c color.Color) {
	a := m.Apply(seg.Start)
	b := m.Apply(seg.End)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, false)
}
