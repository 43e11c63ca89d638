package window

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lumen/internal/config"
	"lumen/internal/logging"
)

// Window wraps the GLFW window and the GL context bound to it.
type Window struct {
	handle *glfw.Window
}

// Open initializes GLFW, creates the window and makes its GL context
// current. The caller must be locked to the main OS thread.
func Open(cfg config.Window) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	var monitor *glfw.Monitor
	width, height := cfg.Width, cfg.Height
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
	}

	handle, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	handle.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("initializing gl bindings: %w", err)
	}

	// With v-sync off the frame limiter paces frames instead.
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	logging.Info("opened %dx%d window, renderer %s", width, height,
		gl.GoStr(gl.GetString(gl.RENDERER)))

	return &Window{handle: handle}, nil
}

// Handle exposes the underlying GLFW window for callback installation.
func (w *Window) Handle() *glfw.Window {
	return w.handle
}

// AspectRatio returns the framebuffer aspect ratio.
func (w *Window) AspectRatio() float32 {
	width, height := w.handle.GetFramebufferSize()
	if height == 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// OnResize registers a framebuffer-size callback and updates the viewport.
func (w *Window) OnResize(fn func(width, height int)) {
	w.handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		if fn != nil {
			fn(width, height)
		}
	})
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *Window) RequestClose() {
	w.handle.SetShouldClose(true)
}

func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

// Close destroys the window and shuts GLFW down.
func (w *Window) Close() {
	w.handle.Destroy()
	glfw.Terminate()
}
