// Package scene holds the simulation state of the kinetic sculpture: the
// pausable animation clock, the orbiting light rig, the cube field and the
// fixed light/material descriptors. Everything here is plain arithmetic over
// the animation time; nothing touches the GPU.
package scene

// Scene is the explicit simulation state passed into update and render.
type Scene struct {
	Clock    Clock
	Rig      LightRig
	Field    Field
	Sun      DirLight
	Spot     SpotLight
	Material Material
}

// New builds the scene with its default rig, field and lighting.
func New() *Scene {
	return &Scene{
		Rig:      NewLightRig(),
		Field:    NewField(),
		Sun:      NewDirLight(),
		Spot:     NewSpotLight(),
		Material: NewMaterial(),
	}
}

// Update advances the animation clock by dt seconds of wall-clock time.
func (s *Scene) Update(dt float64) {
	s.Clock.Advance(dt)
}
