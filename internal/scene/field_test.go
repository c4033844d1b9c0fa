package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// Reference heights recomputed in float64, independent of the float32 path.
func refCell(row, col int, t float64) (x, y, z, d float64) {
	off := float64(GridSize-1) * Spacing / 2
	x = float64(col)*Spacing - off
	z = float64(row)*Spacing - off
	d = math.Sqrt(x*x + z*z)
	y = 2.0*math.Sin(0.55*d-2.0*t) +
		0.8*math.Sin(0.5*x+1.3*t) +
		0.8*math.Cos(0.5*z-1.1*t)
	return
}

func TestCellOriginCornerAtTimeZero(t *testing.T) {
	f := NewField()
	got := f.Cell(0, 0, 0)

	x, y, z, _ := refCell(0, 0, 0)
	if math.Abs(x+9.9) > 1e-6 || math.Abs(z+9.9) > 1e-6 {
		t.Fatalf("reference corner at (%v, %v), want (-9.9, -9.9)", x, z)
	}

	if math.Abs(float64(got.Position.X())-x) > 1e-4 {
		t.Errorf("x = %v, want %v", got.Position.X(), x)
	}
	if math.Abs(float64(got.Position.Y())-y) > 1e-4 {
		t.Errorf("y = %v, want %v", got.Position.Y(), y)
	}
	if math.Abs(float64(got.Position.Z())-z) > 1e-4 {
		t.Errorf("z = %v, want %v", got.Position.Z(), z)
	}
}

func TestCellMatchesReferenceAcrossGrid(t *testing.T) {
	f := NewField()
	times := []float32{0, 0.5, 2.75, 31.4}

	for _, tm := range times {
		for row := 0; row < f.Size; row++ {
			for col := 0; col < f.Size; col++ {
				got := f.Cell(row, col, tm)
				x, y, z, d := refCell(row, col, float64(tm))

				if math.Abs(float64(got.Position.X())-x) > 1e-4 {
					t.Fatalf("cell (%d,%d): x = %v, want %v", row, col, got.Position.X(), x)
				}
				if math.Abs(float64(got.Position.Z())-z) > 1e-4 {
					t.Fatalf("cell (%d,%d): z = %v, want %v", row, col, got.Position.Z(), z)
				}
				if math.Abs(float64(got.Position.Y())-y) > 1e-4 {
					t.Fatalf("cell (%d,%d) t=%v: y = %v, want %v", row, col, tm, got.Position.Y(), y)
				}
				spin := 50.0*float64(tm) + 12.0*d
				if math.Abs(float64(got.Spin)-spin) > 1e-2 {
					t.Fatalf("cell (%d,%d) t=%v: spin = %v, want %v", row, col, tm, got.Spin, spin)
				}
				scale := 0.88 + 0.12*math.Sin(3.0*float64(tm)+d)
				if math.Abs(float64(got.Scale)-scale) > 1e-4 {
					t.Fatalf("cell (%d,%d) t=%v: scale = %v, want %v", row, col, tm, got.Scale, scale)
				}
			}
		}
	}
}

func TestCellDeterministic(t *testing.T) {
	f := NewField()
	a := f.Cell(3, 7, 1.6180339)
	b := f.Cell(3, 7, 1.6180339)
	if a != b {
		t.Errorf("identical inputs produced different transforms: %+v vs %+v", a, b)
	}
}

func TestRadialDistanceExtremes(t *testing.T) {
	f := NewField()

	dist := func(row, col int) float64 {
		p := f.Cell(row, col, 0).Position
		return math.Hypot(float64(p.X()), float64(p.Z()))
	}

	var maxD float64
	for row := 0; row < f.Size; row++ {
		for col := 0; col < f.Size; col++ {
			if d := dist(row, col); d > maxD {
				maxD = d
			}
		}
	}

	// The four corners share the maximum distance
	corners := [][2]int{{0, 0}, {0, 9}, {9, 0}, {9, 9}}
	for _, c := range corners {
		if d := dist(c[0], c[1]); math.Abs(d-maxD) > 1e-4 {
			t.Errorf("corner (%d,%d): d = %v, want grid max %v", c[0], c[1], d, maxD)
		}
	}

	// An even grid has no exact center cell; the nearest cells sit at a
	// small but nonzero distance
	for _, c := range [][2]int{{4, 4}, {5, 5}} {
		d := dist(c[0], c[1])
		if d == 0 {
			t.Errorf("cell (%d,%d): d = 0, want nonzero", c[0], c[1])
		}
		if d > Spacing {
			t.Errorf("cell (%d,%d): d = %v, want < spacing %v", c[0], c[1], d, float64(Spacing))
		}
	}
}

func TestModelMatrixTranslatesOutermost(t *testing.T) {
	f := NewField()
	ct := f.Cell(2, 8, 4.2)

	// The cube center must land exactly on the cell position regardless of
	// spin and scale
	origin := ct.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(origin[0]-ct.Position.X())) > 1e-5 ||
		math.Abs(float64(origin[1]-ct.Position.Y())) > 1e-5 ||
		math.Abs(float64(origin[2]-ct.Position.Z())) > 1e-5 {
		t.Errorf("transformed origin %v, want %v", origin, ct.Position)
	}
}

func BenchmarkFieldFrameTransforms(b *testing.B) {
	f := NewField()
	var sink float32
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := float32(i) * 0.016
		for row := 0; row < f.Size; row++ {
			for col := 0; col < f.Size; col++ {
				m := f.Cell(row, col, t).ModelMatrix()
				sink += m[12]
			}
		}
	}
	_ = sink
}
