package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PointLightCount is the number of orbiting point lights; it must match
// NR_POINT_LIGHTS in the sculpture fragment shader.
const PointLightCount = 4

// PointLight holds the fixed parameters of one orbiting light. Its position
// is never stored; it is derived from the animation time every frame.
type PointLight struct {
	Radius     float32
	BaseHeight float32
	Speed      float32 // signed rad/s; sign encodes orbit direction
	Color      mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

// LightRig is the set of orbiting point lights.
type LightRig struct {
	Lights [PointLightCount]PointLight
}

// NewLightRig returns the rig with its hand-tuned orbit parameters. The
// literal values define the visual identity of the piece; do not retune.
func NewLightRig() LightRig {
	radii := [PointLightCount]float32{8, 11, 9, 6.5}
	heights := [PointLightCount]float32{3, 1.5, 5, 2.5}
	speeds := [PointLightCount]float32{0.7, -0.5, 1.1, -0.9}
	colors := [PointLightCount]mgl32.Vec3{
		{1, 0.25, 0.25},
		{0.25, 1, 0.25},
		{0.25, 0.25, 1},
		{1, 0.8, 0.2},
	}

	var rig LightRig
	for i := range rig.Lights {
		rig.Lights[i] = PointLight{
			Radius:     radii[i],
			BaseHeight: heights[i],
			Speed:      speeds[i],
			Color:      colors[i],
			Constant:   1.0,
			Linear:     0.07,
			Quadratic:  0.017,
		}
	}
	return rig
}

// Position computes light i's world position at animation time t. The orbit
// phase is offset a quarter turn per light, and the vertical bob phase is
// offset by the light index, so the lights stay desynchronized.
func (r *LightRig) Position(i int, t float32) mgl32.Vec3 {
	l := r.Lights[i]
	a := l.Speed*t + float32(i)*(2*math.Pi/PointLightCount)
	return mgl32.Vec3{
		l.Radius * cos32(a),
		l.BaseHeight + 1.5*sin32(0.7*t+float32(i)),
		l.Radius * sin32(a),
	}
}

// Positions computes all point light positions at animation time t.
func (r *LightRig) Positions(t float32) [PointLightCount]mgl32.Vec3 {
	var out [PointLightCount]mgl32.Vec3
	for i := range out {
		out[i] = r.Position(i, t)
	}
	return out
}

// DirLight is the fixed directional fill light.
type DirLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// NewDirLight returns the dim bluish key light shining down across the grid.
func NewDirLight() DirLight {
	return DirLight{
		Direction: mgl32.Vec3{-0.3, -1, -0.4},
		Ambient:   mgl32.Vec3{0.04, 0.04, 0.06},
		Diffuse:   mgl32.Vec3{0.2, 0.2, 0.3},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
	}
}

// SpotLight is the camera-mounted cone light. Position and direction are
// taken from the camera at upload time; only the cone and falloff are fixed.
// CutOff and OuterCutOff are cosines of the half-angles.
type SpotLight struct {
	CutOff      float32
	OuterCutOff float32
	Constant    float32
	Linear      float32
	Quadratic   float32
	Ambient     mgl32.Vec3
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
}

// NewSpotLight returns the headlamp with a 12.5°/17.5° cone.
func NewSpotLight() SpotLight {
	return SpotLight{
		CutOff:      cos32(mgl32.DegToRad(12.5)),
		OuterCutOff: cos32(mgl32.DegToRad(17.5)),
		Constant:    1.0,
		Linear:      0.05,
		Quadratic:   0.012,
		Ambient:     mgl32.Vec3{0, 0, 0},
		Diffuse:     mgl32.Vec3{1, 1, 1},
		Specular:    mgl32.Vec3{1, 1, 1},
	}
}

// Material describes the Phong response of the sculpture cubes.
type Material struct {
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// NewMaterial returns the glossy blue-gray cube material.
func NewMaterial() Material {
	return Material{
		Diffuse:   mgl32.Vec3{0.2, 0.45, 0.7},
		Specular:  mgl32.Vec3{0.8, 0.85, 0.9},
		Shininess: 96,
	}
}

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }
