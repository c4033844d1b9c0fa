package scene

import (
	"math"
	"testing"
)

func TestLightPositionStaysOnOrbitCircle(t *testing.T) {
	rig := NewLightRig()
	times := []float32{0, 0.37, 1.5, 12.25, 100}

	for i := range rig.Lights {
		r := float64(rig.Lights[i].Radius)
		for _, tm := range times {
			p := rig.Position(i, tm)
			horiz := math.Sqrt(float64(p.X()*p.X() + p.Z()*p.Z()))
			if math.Abs(horiz-r) > 1e-3 {
				t.Errorf("light %d at t=%v: horizontal distance %v, want radius %v", i, tm, horiz, r)
			}
		}
	}
}

func TestLightPhasesEvenlySpacedAtStart(t *testing.T) {
	rig := NewLightRig()

	// At t=0 light i sits at phase i*90° around its circle
	for i := range rig.Lights {
		r := float64(rig.Lights[i].Radius)
		angle := float64(i) * math.Pi / 2
		p := rig.Position(i, 0)
		if math.Abs(float64(p.X())-r*math.Cos(angle)) > 1e-3 {
			t.Errorf("light %d: x = %v, want %v", i, p.X(), r*math.Cos(angle))
		}
		if math.Abs(float64(p.Z())-r*math.Sin(angle)) > 1e-3 {
			t.Errorf("light %d: z = %v, want %v", i, p.Z(), r*math.Sin(angle))
		}
	}
}

func TestLightBobStaysWithinBand(t *testing.T) {
	rig := NewLightRig()
	for i := range rig.Lights {
		base := rig.Lights[i].BaseHeight
		for tm := float32(0); tm < 20; tm += 0.1 {
			y := rig.Position(i, tm).Y()
			if y < base-1.5-1e-4 || y > base+1.5+1e-4 {
				t.Fatalf("light %d at t=%v: y = %v outside [%v, %v]", i, tm, y, base-1.5, base+1.5)
			}
		}
	}
}

func TestLightPositionDeterministic(t *testing.T) {
	rig := NewLightRig()
	for i := range rig.Lights {
		a := rig.Position(i, 3.7)
		b := rig.Position(i, 3.7)
		if a != b {
			t.Errorf("light %d: %v != %v for identical inputs", i, a, b)
		}
	}
}
