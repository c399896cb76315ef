// Package game wires the renderer to Ebiten: it polls input, advances the
// camera once per frame, runs the render pipeline, and presents the finished
// color buffer.
package game

import (
	"fmt"

	"wallcaster/internal/camera"
	"wallcaster/internal/config"
	"wallcaster/internal/level"
	"wallcaster/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game is the top-level ebiten.Game. It owns the single long-lived mutable
// state (camera, frame context); the level is an immutable snapshot shared
// with the renderer.
type Game struct {
	config   *config.Config
	level    *level.Level
	camera   *camera.Camera
	renderer *render.Renderer
	input    *InputHandler

	showOverlay bool
	showFPS     bool
}

// New creates a game for the given configuration and level.
func New(cfg *config.Config, lvl *level.Level) *Game {
	cam := camera.New()
	cam.FOV = cfg.GetFOV()
	cam.FarPlane = cfg.Camera.FarPlane
	cam.HeadBob = cfg.Camera.HeadBob

	r := render.NewRenderer(cfg.GetScreenWidth(), cfg.GetScreenHeight(), cfg.Render.Workers)
	r.Context().UseMipmap = cfg.Render.UseMipmap
	r.Context().UseFiltering = cfg.Render.UseFiltering

	g := &Game{
		config:   cfg,
		level:    lvl,
		camera:   cam,
		renderer: r,
	}
	g.input = NewInputHandler(g)
	return g
}

// Update handles input and advances the camera. Rendering reads the camera
// only after Update returns, so the single-writer-then-single-reader
// discipline holds within each frame.
func (g *Game) Update() error {
	g.input.HandleInput()
	g.camera.Update()
	return nil
}

// Draw runs the render pipeline and uploads the packed color buffer.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.RenderFrame(g.camera, g.level)
	screen.WritePixels(g.renderer.Context().Color)

	if g.showOverlay {
		g.drawOverlay(screen)
	}
	if g.showFPS {
		ctx := g.renderer.Context()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\nmipmap: %v  filtering: %v",
			ebiten.ActualFPS(), ctx.UseMipmap, ctx.UseFiltering))
	}
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}
