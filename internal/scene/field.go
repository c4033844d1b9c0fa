package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid dimensions of the sculpture field.
const (
	GridSize = 10
	Spacing  = 2.2
)

// Field is the grid of animated cubes. Cells hold no state; every transform
// is a closed-form function of (row, col, t).
type Field struct {
	Size    int
	Spacing float32
}

// NewField returns the 10x10 field centered at the origin.
func NewField() Field {
	return Field{Size: GridSize, Spacing: Spacing}
}

// CellTransform is one cube's transform for a single frame.
type CellTransform struct {
	Position mgl32.Vec3
	Spin     float32 // degrees about +Y
	Scale    float32
}

// Cell computes the transform of the cube at (row, col) for animation time t.
// Height superposes a radial wave with two directional waves so the motion
// never looks perfectly symmetric; spin and breathing scale are phase-shifted
// by the cell's distance from the grid center.
func (f Field) Cell(row, col int, t float32) CellTransform {
	off := float32(f.Size-1) * f.Spacing * 0.5
	x := float32(col)*f.Spacing - off
	z := float32(row)*f.Spacing - off
	d := float32(math.Sqrt(float64(x*x + z*z)))

	y := 2.0*sin32(0.55*d-2.0*t) +
		0.8*sin32(0.5*x+1.3*t) +
		0.8*cos32(0.5*z-1.1*t)

	return CellTransform{
		Position: mgl32.Vec3{x, y, z},
		Spin:     50.0*t + 12.0*d,
		Scale:    0.88 + 0.12*sin32(3.0*t+d),
	}
}

// ModelMatrix composes the cell transform as translate * rotateY * scale.
// Translation must be applied outermost; the scale is uniform, so its order
// relative to the rotation does not matter.
func (c CellTransform) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Spin)))
	return m.Mul4(mgl32.Scale3D(c.Scale, c.Scale, c.Scale))
}
