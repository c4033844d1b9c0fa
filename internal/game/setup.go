package game

import (
	"kinetic-sculpture/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Default window dimensions
const (
	WinWidth  = 1280
	WinHeight = 720
)

// SetupWindow creates the GL 4.1 core window and initializes the bindings.
// The cursor is captured immediately; the demo has no menu state.
func SetupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(WinWidth, WinHeight, "Kinetic Sculpture", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	if config.GetVSync() {
		glfw.SwapInterval(1)
	} else {
		// No V-Sync; the FPS limiter paces frames
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}
