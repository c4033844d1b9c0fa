// Package markers draws a small flat-colored cube at each point light's
// position so the orbits are visible.
package markers

import (
	"path/filepath"

	"kinetic-sculpture/internal/graphics"
	renderer "kinetic-sculpture/internal/graphics/renderer"
	"kinetic-sculpture/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/marker"

	markerScale = 0.25
)

var (
	MarkerVertShader = filepath.Join(ShadersDir, "marker.vert")
	MarkerFragShader = filepath.Join(ShadersDir, "marker.frag")
)

// Markers implements the light marker pass
type Markers struct {
	shader *graphics.Shader
	mesh   *graphics.CubeMesh
	vao    uint32
}

// NewMarkers creates the marker renderable over the shared cube mesh
func NewMarkers(mesh *graphics.CubeMesh) *Markers {
	return &Markers{mesh: mesh}
}

// Init compiles the flat-color program and builds the position-only VAO
func (m *Markers) Init() error {
	var err error
	m.shader, err = graphics.NewShader(MarkerVertShader, MarkerFragShader)
	if err != nil {
		return err
	}
	m.vao = m.mesh.VAOPositionOnly()
	return nil
}

// Render draws one marker cube per point light
func (m *Markers) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderMarkers")()

	m.shader.Use()
	m.shader.SetMatrix4("projection", &ctx.Proj[0])
	m.shader.SetMatrix4("view", &ctx.View[0])

	gl.BindVertexArray(m.vao)
	for i, pos := range ctx.LightPos {
		color := ctx.Scene.Rig.Lights[i].Color
		m.shader.SetVector3("lightColor", color.X(), color.Y(), color.Z())

		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
			Mul4(mgl32.Scale3D(markerScale, markerScale, markerScale))
		m.shader.SetMatrix4("model", &model[0])

		gl.DrawArrays(gl.TRIANGLES, 0, graphics.CubeVertexCount)
	}
}

// Dispose cleans up GL resources. The shared mesh is owned by the caller.
func (m *Markers) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}

// SetViewport is a no-op; projection comes from the render context
func (m *Markers) SetViewport(width, height int) {}
