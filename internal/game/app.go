package game

import (
	"log"
	"time"

	"kinetic-sculpture/internal/camera"
	"kinetic-sculpture/internal/graphics"
	"kinetic-sculpture/internal/graphics/renderables/markers"
	"kinetic-sculpture/internal/graphics/renderables/overlay"
	"kinetic-sculpture/internal/graphics/renderables/sculpture"
	"kinetic-sculpture/internal/graphics/renderer"
	"kinetic-sculpture/internal/input"
	"kinetic-sculpture/internal/profiling"
	"kinetic-sculpture/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// App owns the window, the simulation state and the renderer, and drives the
// single-threaded frame loop.
type App struct {
	window       *glfw.Window
	inputManager *input.Manager

	scene   *scene.Scene
	camera  *camera.Camera
	mesh    *graphics.CubeMesh
	render  *renderer.Renderer
	overlay *overlay.Overlay

	fpsLimiter *FPSLimiter
	lastTime   time.Time

	frames       int
	lastFPSCheck time.Time
}

// NewApp builds the scene, camera and renderer. Requires a current GL context.
func NewApp(window *glfw.Window, im *input.Manager) *App {
	width, height := window.GetSize()

	// One static cube VBO shared by the lighting and marker passes
	mesh := graphics.NewCubeMesh()

	overlayRenderer := overlay.NewOverlay(width, height)
	r := renderer.NewRenderer(
		sculpture.NewSculpture(mesh),
		markers.NewMarkers(mesh),
		overlayRenderer,
	)

	return &App{
		window:       window,
		inputManager: im,
		scene:        scene.New(),
		camera:       camera.New(width, height),
		mesh:         mesh,
		render:       r,
		overlay:      overlayRenderer,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		lastFPSCheck: time.Now(),
	}
}

// Run executes the frame loop until the window is closed.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	a.processInput(dt)
	a.camera.Update(dt)
	a.scene.Update(dt)

	func() { defer profiling.Track("renderer.Render")(); a.render.Render(a.camera, a.scene, dt) }()

	a.window.SwapBuffers()

	a.frames++
	if time.Since(a.lastFPSCheck) >= time.Second {
		a.overlay.SetFPS(a.frames)
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}

	// Check if frame took too long (> 16ms)
	processingDuration := time.Since(startTick)
	if processingDuration > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait(a.scene.Clock.Paused())
}

func (a *App) processInput(dt float64) {
	im := a.inputManager

	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionTogglePause) {
		a.scene.Clock.TogglePause()
	}
	if im.JustPressed(input.ActionToggleOverlay) {
		a.overlay.Toggle()
	}

	if im.IsActive(input.ActionMoveForward) {
		a.camera.MoveForward(dt)
	}
	if im.IsActive(input.ActionMoveBackward) {
		a.camera.MoveBackward(dt)
	}
	if im.IsActive(input.ActionMoveLeft) {
		a.camera.MoveLeft(dt)
	}
	if im.IsActive(input.ActionMoveRight) {
		a.camera.MoveRight(dt)
	}
}

// RefreshRender repaints during window refresh events so resizing stays smooth
func (a *App) RefreshRender() {
	a.render.Render(a.camera, a.scene, 0)
	a.window.SwapBuffers()
}

// Cleanup releases GPU resources. Safe to call once after the loop exits.
func (a *App) Cleanup() {
	a.render.Dispose()
	a.mesh.Delete()
}
