package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"lumen/internal/assets"
	"lumen/internal/graphics"
	"lumen/internal/input"
	"lumen/internal/logging"
	"lumen/internal/render"
	"lumen/internal/scene"
	"lumen/internal/window"
)

const (
	moveSpeed  = 6.0 // units per second
	boostScale = 3.0
	lookSpeed  = 0.1 // degrees per pixel
)

// App owns the frame loop and the pieces it drives each iteration: input,
// scene update, render, present.
type App struct {
	window   *window.Window
	renderer *render.Renderer
	scene    *scene.Scene
	camera   *graphics.Camera
	input    *input.Manager
	watcher  *assets.Watcher
	shaders  []*graphics.Shader
	limiter  *FPSLimiter
}

type Options struct {
	Window   *window.Window
	Renderer *render.Renderer
	Scene    *scene.Scene
	Camera   *graphics.Camera
	Input    *input.Manager
	Watcher  *assets.Watcher // optional, enables shader hot reload
	Shaders  []*graphics.Shader
	FPSLimit int
}

func New(opts Options) *App {
	return &App{
		window:   opts.Window,
		renderer: opts.Renderer,
		scene:    opts.Scene,
		camera:   opts.Camera,
		input:    opts.Input,
		watcher:  opts.Watcher,
		shaders:  opts.Shaders,
		limiter:  NewFPSLimiter(opts.FPSLimit),
	}
}

// Run drives the frame loop until the window closes or quit is pressed.
// Render errors are unrecoverable and terminate the process.
func (a *App) Run() {
	last := glfw.GetTime()

	for !a.window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		a.drainAssetEvents()
		a.handleInput(dt)

		a.scene.Update(dt)
		if err := a.renderer.Render(a.scene); err != nil {
			logging.Fatal("render failed: %v", err)
		}

		a.window.SwapBuffers()
		a.input.PostUpdate()
		a.limiter.Wait()
	}
}

// drainAssetEvents reloads any shader whose source file changed on disk. A
// failed reload keeps the previous program running.
func (a *App) drainAssetEvents() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path := <-a.watcher.Events:
			for _, sh := range a.shaders {
				if !sh.UsesFile(path) {
					continue
				}
				if err := sh.Reload(); err != nil {
					logging.Error("reloading shader after change to %s: %v", path, err)
				} else {
					logging.Info("reloaded shader for %s", path)
				}
			}
		default:
			return
		}
	}
}

func (a *App) handleInput(dt float64) {
	if a.input.JustPressed(input.ActionQuit) {
		a.window.RequestClose()
		return
	}
	if a.input.JustPressed(input.ActionToggleWireframe) {
		a.renderer.ToggleWireframe()
	}

	speed := float32(moveSpeed * dt)
	if a.input.IsActive(input.ActionSpeedBoost) {
		speed *= boostScale
	}

	var forward, strafe, vertical float32
	if a.input.IsActive(input.ActionMoveForward) {
		forward += speed
	}
	if a.input.IsActive(input.ActionMoveBackward) {
		forward -= speed
	}
	if a.input.IsActive(input.ActionMoveRight) {
		strafe += speed
	}
	if a.input.IsActive(input.ActionMoveLeft) {
		strafe -= speed
	}
	if a.input.IsActive(input.ActionMoveUp) {
		vertical += speed
	}
	if a.input.IsActive(input.ActionMoveDown) {
		vertical -= speed
	}
	a.camera.Move(forward, strafe, vertical)

	dx, dy := a.input.MouseDelta()
	if dx != 0 || dy != 0 {
		a.camera.Rotate(float32(dx)*lookSpeed, float32(dy)*lookSpeed)
	}
}

// Shutdown tears the scene down and releases GPU and watcher resources.
func (a *App) Shutdown() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logging.Warn("closing asset watcher: %v", err)
		}
	}
	a.scene.Teardown()
	a.renderer.Dispose()
}
