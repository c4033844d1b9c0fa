package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupInputHandlers wires the GLFW callbacks to the input manager, the
// camera and the viewport-dependent render state.
func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	// Mouse look
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		app.camera.HandleMouseMovement(xpos, ypos)
	})

	// Scroll zoom
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		app.camera.HandleScroll(yoff)
	})

	// Keyboard actions
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

		// Overlay layout uses window (logical) coordinates, so pass those
		winW, winH := w.GetSize()
		app.camera.SetViewport(winW, winH)
		app.render.UpdateViewport(winW, winH)
		// NOTE: Do not render here. Rely on SetRefreshCallback for smooth resizing on macOS.
	})

	// Repaint during live resize
	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
