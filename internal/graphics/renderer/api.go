package renderer

import (
	"kinetic-sculpture/internal/camera"
	"kinetic-sculpture/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame context for all renderables
type RenderContext struct {
	Camera *camera.Camera
	Scene  *scene.Scene
	DT     float64

	// Animation time and the point light positions derived from it, computed
	// once per frame so both draw passes agree.
	AnimTime float32
	LightPos [scene.PointLightCount]mgl32.Vec3
	View     mgl32.Mat4
	Proj     mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
