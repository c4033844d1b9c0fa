// Package camera implements the free-fly camera: WASD translation along the
// view direction, mouse look with a clamped pitch, and a scroll-driven zoom
// that tweens toward its target instead of snapping.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	moveSpeed   = 5.0
	sensitivity = 0.1

	minPitch = -89.0
	maxPitch = 89.0

	minZoom = 1.0
	maxZoom = 90.0
	// How long a scroll step takes to settle on the new FOV.
	zoomTweenDuration = 0.15

	nearPlane = 0.1
	farPlane  = 120.0
)

// Camera is the fly camera. Front is kept unit length at all times.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw   float64
	Pitch float64

	zoom       float32
	zoomTarget float32
	zoomTween  *gween.Tween

	aspect float32

	FirstMouse bool
	lastX      float64
	lastY      float64
}

// New returns a camera hovering behind the sculpture, looking down -Z.
func New(width, height int) *Camera {
	return &Camera{
		Position:   mgl32.Vec3{0, 8, 20},
		Front:      mgl32.Vec3{0, 0, -1},
		Up:         mgl32.Vec3{0, 1, 0},
		Yaw:        -90,
		Pitch:      0,
		zoom:       45,
		zoomTarget: 45,
		aspect:     float32(width) / float32(height),
		FirstMouse: true,
	}
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the perspective projection at the current zoom.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), c.aspect, nearPlane, farPlane)
}

// SetViewport updates the aspect ratio after a framebuffer resize.
func (c *Camera) SetViewport(width, height int) {
	if height == 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

// Zoom returns the current field of view in degrees.
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// Update advances the zoom tween by dt seconds.
func (c *Camera) Update(dt float64) {
	if c.zoomTween == nil {
		return
	}
	v, done := c.zoomTween.Update(float32(dt))
	c.zoom = v
	if done {
		c.zoomTween = nil
	}
}

// MoveForward translates along the view direction at the fixed fly speed.
func (c *Camera) MoveForward(dt float64) {
	c.Position = c.Position.Add(c.Front.Mul(float32(moveSpeed * dt)))
}

// MoveBackward translates against the view direction.
func (c *Camera) MoveBackward(dt float64) {
	c.Position = c.Position.Sub(c.Front.Mul(float32(moveSpeed * dt)))
}

// MoveLeft strafes along the negative right vector.
func (c *Camera) MoveLeft(dt float64) {
	right := c.Front.Cross(c.Up).Normalize()
	c.Position = c.Position.Sub(right.Mul(float32(moveSpeed * dt)))
}

// MoveRight strafes along the right vector.
func (c *Camera) MoveRight(dt float64) {
	right := c.Front.Cross(c.Up).Normalize()
	c.Position = c.Position.Add(right.Mul(float32(moveSpeed * dt)))
}

// HandleMouseMovement applies a cursor position event to yaw and pitch.
// The first event only seeds the last-position state so the view does not
// jerk when the cursor is captured.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.FirstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.FirstMouse = false
		return
	}

	xoffset := (xpos - c.lastX) * sensitivity
	yoffset := (c.lastY - ypos) * sensitivity
	c.lastX = xpos
	c.lastY = ypos

	c.Yaw += xoffset
	c.Pitch += yoffset

	// Constrain pitch to avoid gimbal flip at the poles
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < minPitch {
		c.Pitch = minPitch
	}

	c.updateFront()
}

// HandleScroll retargets the zoom and starts a tween toward it. The target
// is clamped, so the tween can never leave the valid FOV range.
func (c *Camera) HandleScroll(yoff float64) {
	c.zoomTarget -= float32(yoff)
	if c.zoomTarget < minZoom {
		c.zoomTarget = minZoom
	}
	if c.zoomTarget > maxZoom {
		c.zoomTarget = maxZoom
	}
	c.zoomTween = gween.New(c.zoom, c.zoomTarget, zoomTweenDuration, ease.OutQuad)
}

func (c *Camera) updateFront() {
	yaw := mgl32.DegToRad(float32(c.Yaw))
	pitch := mgl32.DegToRad(float32(c.Pitch))
	fx := float32(math.Cos(float64(yaw)) * math.Cos(float64(pitch)))
	fy := float32(math.Sin(float64(pitch)))
	fz := float32(math.Sin(float64(yaw)) * math.Cos(float64(pitch)))
	c.Front = mgl32.Vec3{fx, fy, fz}.Normalize()
}
