package camera

import (
	"math"
	"testing"
)

func TestPitchClampedUnderExtremeMouseMotion(t *testing.T) {
	c := New(1280, 720)

	// First event only seeds the cursor position
	c.HandleMouseMovement(0, 0)

	// Repeated hard upward motion must never push pitch past 89 degrees
	for i := 1; i <= 50; i++ {
		c.HandleMouseMovement(0, float64(-i*10000))
		if c.Pitch > 89.0 {
			t.Fatalf("pitch = %v after %d events, want <= 89", c.Pitch, i)
		}
	}
	if c.Pitch != 89.0 {
		t.Errorf("pitch = %v, want saturation at 89", c.Pitch)
	}

	// And hard downward motion saturates at -89
	c.HandleMouseMovement(0, 1e9)
	if c.Pitch != -89.0 {
		t.Errorf("pitch = %v, want saturation at -89", c.Pitch)
	}
}

func TestFrontStaysUnitLength(t *testing.T) {
	c := New(1280, 720)
	c.HandleMouseMovement(0, 0)

	motions := [][2]float64{{35, -12}, {-400, 250}, {1234, -5678}, {3, 3}}
	for _, m := range motions {
		c.HandleMouseMovement(m[0], m[1])
		if l := c.Front.Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("front length = %v after motion %v, want 1", l, m)
		}
	}
}

func TestFirstMouseEventDoesNotRotate(t *testing.T) {
	c := New(1280, 720)
	yaw, pitch := c.Yaw, c.Pitch

	c.HandleMouseMovement(5000, -5000)

	if c.Yaw != yaw || c.Pitch != pitch {
		t.Errorf("first event rotated camera: yaw %v->%v, pitch %v->%v", yaw, c.Yaw, pitch, c.Pitch)
	}
}

func TestMovementUsesFixedFlySpeed(t *testing.T) {
	c := New(1280, 720)

	// Initial front is -Z, so one second forward covers 5 units
	c.MoveForward(1.0)
	if z := c.Position.Z(); math.Abs(float64(z)-15) > 1e-5 {
		t.Errorf("z = %v after 1s forward, want 15", z)
	}

	c.MoveBackward(0.5)
	if z := c.Position.Z(); math.Abs(float64(z)-17.5) > 1e-5 {
		t.Errorf("z = %v after 0.5s backward, want 17.5", z)
	}

	// Strafing moves along the right vector, leaving z untouched
	c.MoveRight(0.2)
	if x := c.Position.X(); math.Abs(float64(x)-1) > 1e-5 {
		t.Errorf("x = %v after 0.2s right, want 1", x)
	}
	c.MoveLeft(0.2)
	if x := c.Position.X(); math.Abs(float64(x)) > 1e-5 {
		t.Errorf("x = %v after strafing back, want 0", x)
	}
}

func TestZoomClampedThroughTween(t *testing.T) {
	c := New(1280, 720)

	// Zoom in far past the lower bound, let the tween settle
	c.HandleScroll(1000)
	c.Update(1.0)
	if z := c.Zoom(); z != 1.0 {
		t.Errorf("zoom = %v after extreme zoom-in, want 1", z)
	}

	// Zoom out far past the upper bound
	c.HandleScroll(-1000)
	c.Update(1.0)
	if z := c.Zoom(); z != 90.0 {
		t.Errorf("zoom = %v after extreme zoom-out, want 90", z)
	}
}

func TestZoomTweenMovesTowardTarget(t *testing.T) {
	c := New(1280, 720)

	c.HandleScroll(-10) // target 55
	c.Update(0.05)      // partway through the tween
	z := c.Zoom()
	if z <= 45 || z >= 55 {
		t.Errorf("zoom = %v mid-tween, want strictly between 45 and 55", z)
	}

	c.Update(1.0)
	if got := c.Zoom(); got != 55 {
		t.Errorf("zoom = %v after tween, want 55", got)
	}
}
