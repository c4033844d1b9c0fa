package renderer

import (
	"log"

	"kinetic-sculpture/internal/camera"
	"kinetic-sculpture/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
}

// NewRenderer creates a new renderer with the given renderables. A renderable
// that fails to initialize (for example a shader compile error) is reported
// and skipped; the remaining features keep rendering.
func NewRenderer(rs ...Renderable) *Renderer {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)

	active := make([]Renderable, 0, len(rs))
	for _, r := range rs {
		if err := r.Init(); err != nil {
			log.Printf("renderer: feature %T disabled: %v", r, err)
			continue
		}
		active = append(active, r)
	}

	return &Renderer{renderables: active}
}

// Render draws one frame of the scene as seen from the camera.
func (r *Renderer) Render(cam *camera.Camera, s *scene.Scene, dt float64) {
	gl.ClearColor(0.04, 0.04, 0.08, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	t := s.Clock.Time()
	ctx := RenderContext{
		Camera:   cam,
		Scene:    s,
		DT:       dt,
		AnimTime: t,
		LightPos: s.Rig.Positions(t),
		View:     cam.ViewMatrix(),
		Proj:     cam.ProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// UpdateViewport forwards a framebuffer resize to all renderables
func (r *Renderer) UpdateViewport(width, height int) {
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
