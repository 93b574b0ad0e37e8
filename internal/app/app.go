// Package app wires the robot session together: joint state, the event
// loop, the cannon animator, keyboard handling and the scene. It is shared
// by the interactive viewer and the headless renderer.
package app

import (
	"image"
	"log/slog"
	"time"

	"robot-renderer/internal/anim"
	"robot-renderer/internal/config"
	"robot-renderer/internal/eventloop"
	"robot-renderer/internal/input"
	"robot-renderer/internal/mesh"
	"robot-renderer/internal/robot"
	"robot-renderer/internal/scene"
)

// App is one interactive session. It is single-threaded: every method must
// be called from the goroutine that drives the loop.
type App struct {
	Scene      *scene.Scene
	Joints     robot.Joints
	Loop       *eventloop.Loop
	Cannon     *anim.Cannon
	Controller *input.Controller

	Supersample int

	width, height int
}

// New builds a session from a resolved config, with the loop clock at start.
func New(cfg config.Config, start time.Time) *App {
	meshes := mesh.NewCache(cfg.Slices, cfg.Stacks)
	sc := scene.New(robot.NewDimensions(cfg.RootScale()), meshes)
	sc.Ground = cfg.GroundEnabled()

	a := &App{
		Scene:       sc,
		Joints:      robot.DefaultJoints(),
		Loop:        eventloop.New(start),
		Supersample: cfg.Supersample,
	}
	a.Cannon = anim.NewCannon(a.Loop, &a.Joints)
	a.Cannon.Period = time.Duration(cfg.CannonPeriod)
	a.Cannon.Step = cfg.CannonStep
	a.Controller = input.NewController(a.Loop, &a.Joints, a.Cannon)
	a.Controller.Step = cfg.AngleStep

	a.Resize(cfg.Width, cfg.Height)
	return a
}

// Size returns the viewport size.
func (a *App) Size() (int, int) {
	return a.width, a.height
}

// Resize changes the viewport. Only the projection's aspect ratio follows;
// the view transform and the pose are untouched. It reports whether the
// size changed.
func (a *App) Resize(w, h int) bool {
	if w <= 0 || h <= 0 || (w == a.width && h == a.height) {
		return false
	}
	a.width, a.height = w, h
	a.Scene.Camera.Resize(w, h)
	a.Loop.PostRedisplay()
	slog.Debug("app: resize", "width", w, "height", h, "aspect", a.Scene.Camera.Aspect())
	return true
}

// Advance moves the loop clock to now, running due animation ticks.
func (a *App) Advance(now time.Time) {
	a.Loop.Advance(now)
}

// Apply replays a key script onto the session.
func (a *App) Apply(actions []input.Action) {
	input.Replay(actions, a.Controller, a.Loop)
}

// Render draws the current pose at the viewport size.
func (a *App) Render() *image.NRGBA {
	return a.Scene.Render(a.Joints, a.width, a.height, a.Supersample)
}

// Frame renders only if a redraw was requested since the last call.
func (a *App) Frame() (*image.NRGBA, bool) {
	if !a.Loop.TakeRedisplay() {
		return nil, false
	}
	return a.Render(), true
}
