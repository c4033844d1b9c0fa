// Package sculpture renders the animated cube grid with the Phong lighting
// program: one directional light, four orbiting point lights and the
// camera-mounted spotlight.
package sculpture

import (
	"fmt"
	"path/filepath"

	"kinetic-sculpture/internal/graphics"
	renderer "kinetic-sculpture/internal/graphics/renderer"
	"kinetic-sculpture/internal/profiling"
	"kinetic-sculpture/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/sculpture"
)

var (
	SculptureVertShader = filepath.Join(ShadersDir, "sculpture.vert")
	SculptureFragShader = filepath.Join(ShadersDir, "sculpture.frag")
)

// Sculpture implements the lighting pass over the cube field
type Sculpture struct {
	shader *graphics.Shader
	mesh   *graphics.CubeMesh
	vao    uint32
}

// NewSculpture creates the sculpture renderable over the shared cube mesh
func NewSculpture(mesh *graphics.CubeMesh) *Sculpture {
	return &Sculpture{mesh: mesh}
}

// Init compiles the Phong program and builds the pos+normal VAO
func (s *Sculpture) Init() error {
	var err error
	s.shader, err = graphics.NewShader(SculptureVertShader, SculptureFragShader)
	if err != nil {
		return err
	}
	s.vao = s.mesh.VAOWithNormals()
	return nil
}

// Render uploads the frame's lighting state and draws all grid cells
func (s *Sculpture) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderSculpture")()

	s.shader.Use()
	s.shader.SetMatrix4("projection", &ctx.Proj[0])
	s.shader.SetMatrix4("view", &ctx.View[0])

	pos := ctx.Camera.Position
	s.shader.SetVector3("viewPos", pos.X(), pos.Y(), pos.Z())

	s.setMaterial(ctx.Scene.Material)
	s.setDirLight(ctx.Scene.Sun)
	for i := range ctx.LightPos {
		s.setPointLight(i, ctx.Scene.Rig.Lights[i], ctx.LightPos[i])
	}
	s.setSpotLight(ctx)

	gl.BindVertexArray(s.vao)
	field := ctx.Scene.Field
	for row := 0; row < field.Size; row++ {
		for col := 0; col < field.Size; col++ {
			model := field.Cell(row, col, ctx.AnimTime).ModelMatrix()
			s.shader.SetMatrix4("model", &model[0])
			gl.DrawArrays(gl.TRIANGLES, 0, graphics.CubeVertexCount)
		}
	}
}

// Dispose cleans up GL resources. The shared mesh is owned by the caller.
func (s *Sculpture) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

// SetViewport is a no-op; projection comes from the render context
func (s *Sculpture) SetViewport(width, height int) {}

func (s *Sculpture) setMaterial(m scene.Material) {
	s.shader.SetVector3("matDiffuse", m.Diffuse.X(), m.Diffuse.Y(), m.Diffuse.Z())
	s.shader.SetVector3("matSpecular", m.Specular.X(), m.Specular.Y(), m.Specular.Z())
	s.shader.SetFloat("matShininess", m.Shininess)
}

func (s *Sculpture) setDirLight(d scene.DirLight) {
	s.shader.SetVector3("dirLight.direction", d.Direction.X(), d.Direction.Y(), d.Direction.Z())
	s.shader.SetVector3("dirLight.ambient", d.Ambient.X(), d.Ambient.Y(), d.Ambient.Z())
	s.shader.SetVector3("dirLight.diffuse", d.Diffuse.X(), d.Diffuse.Y(), d.Diffuse.Z())
	s.shader.SetVector3("dirLight.specular", d.Specular.X(), d.Specular.Y(), d.Specular.Z())
}

func (s *Sculpture) setPointLight(i int, l scene.PointLight, pos mgl32.Vec3) {
	base := fmt.Sprintf("pointLights[%d].", i)
	ambient := l.Color.Mul(0.05)
	s.shader.SetVector3(base+"position", pos.X(), pos.Y(), pos.Z())
	s.shader.SetFloat(base+"constant", l.Constant)
	s.shader.SetFloat(base+"linear", l.Linear)
	s.shader.SetFloat(base+"quadratic", l.Quadratic)
	s.shader.SetVector3(base+"ambient", ambient.X(), ambient.Y(), ambient.Z())
	s.shader.SetVector3(base+"diffuse", l.Color.X(), l.Color.Y(), l.Color.Z())
	s.shader.SetVector3(base+"specular", l.Color.X(), l.Color.Y(), l.Color.Z())
}

func (s *Sculpture) setSpotLight(ctx renderer.RenderContext) {
	sp := ctx.Scene.Spot
	pos := ctx.Camera.Position
	dir := ctx.Camera.Front
	s.shader.SetVector3("spotLight.position", pos.X(), pos.Y(), pos.Z())
	s.shader.SetVector3("spotLight.direction", dir.X(), dir.Y(), dir.Z())
	s.shader.SetFloat("spotLight.cutOff", sp.CutOff)
	s.shader.SetFloat("spotLight.outerCutOff", sp.OuterCutOff)
	s.shader.SetFloat("spotLight.constant", sp.Constant)
	s.shader.SetFloat("spotLight.linear", sp.Linear)
	s.shader.SetFloat("spotLight.quadratic", sp.Quadratic)
	s.shader.SetVector3("spotLight.ambient", sp.Ambient.X(), sp.Ambient.Y(), sp.Ambient.Z())
	s.shader.SetVector3("spotLight.diffuse", sp.Diffuse.X(), sp.Diffuse.Y(), sp.Diffuse.Z())
	s.shader.SetVector3("spotLight.specular", sp.Specular.X(), sp.Specular.Y(), sp.Specular.Z())
}
