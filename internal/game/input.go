package game

import (
	"wallcaster/internal/game/keytracker"
	"wallcaster/internal/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputHandler polls the keyboard once per frame and turns it into camera
// state and render-quality toggles. The renderer never touches input devices
// itself.
type InputHandler struct {
	game *Game
	keys *keytracker.Tracker
}

// NewInputHandler creates an input handler bound to the game.
func NewInputHandler(game *Game) *InputHandler {
	return &InputHandler{game: game, keys: keytracker.New()}
}

// HandleInput processes all input for the current frame.
func (ih *InputHandler) HandleInput() {
	ih.handleMovement()
	ih.handleCameraAdjust()
	ih.handleRenderToggles()
	ih.handleUIToggles()
}

// handleMovement sets the camera velocity from WASD and rotates with the
// arrow keys. Velocity decays via the camera's own friction once keys are
// released.
func (ih *InputHandler) handleMovement() {
	cam := ih.game.camera
	left := geom.Vec2{X: cam.Front.Y, Y: -cam.Front.X}

	var direction geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		direction = direction.Add(cam.Front)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		direction = direction.Sub(cam.Front)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		direction = direction.Add(left)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		direction = direction.Sub(left)
	}

	if direction.Len() > 0.1 {
		cam.Velocity = direction.Normalized().Scale(ih.game.config.GetMoveSpeed())
	}

	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		cam.Rotate(-ih.game.config.GetRotSpeed())
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		cam.Rotate(ih.game.config.GetRotSpeed())
	}
}

// handleCameraAdjust tweaks field of view and eye height.
func (ih *InputHandler) handleCameraAdjust() {
	cam := ih.game.camera

	if ebiten.IsKeyPressed(ebiten.KeyKPAdd) || ebiten.IsKeyPressed(ebiten.KeyEqual) {
		cam.FOV += 0.01
	}
	if ebiten.IsKeyPressed(ebiten.KeyKPSubtract) || ebiten.IsKeyPressed(ebiten.KeyMinus) {
		cam.FOV -= 0.01
	}

	// Manual eye height only makes sense with the head bob off; the bob
	// overwrites Height every frame.
	if !cam.HeadBob {
		if ebiten.IsKeyPressed(ebiten.KeyQ) {
			cam.Height += 0.01
		}
		if ebiten.IsKeyPressed(ebiten.KeyE) {
			cam.Height -= 0.01
		}
	}
}

// handleRenderToggles drives the two frame-context quality flags.
func (ih *InputHandler) handleRenderToggles() {
	ctx := ih.game.renderer.Context()

	if ebiten.IsKeyPressed(ebiten.KeyM) {
		ctx.UseMipmap = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyN) {
		ctx.UseMipmap = false
	}
	if ebiten.IsKeyPressed(ebiten.KeyB) {
		ctx.UseFiltering = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyP) {
		ctx.UseFiltering = false
	}
}

// handleUIToggles flips the overlay and FPS displays on key presses.
func (ih *InputHandler) handleUIToggles() {
	if ih.keys.JustPressed(ebiten.KeyTab) {
		ih.game.showOverlay = !ih.game.showOverlay
	}
	if ih.keys.JustPressed(ebiten.KeyF1) {
		ih.game.showFPS = !ih.game.showFPS
	}
}
