// Package camera implements a free-fly first-person camera.
//
// Orientation is driven by relative pointer motion (yaw/pitch), while
// translation is driven by the set of movement actions held each tick and
// integrated over elapsed time.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera tracks a viewpoint looking from position towards target.
type Camera struct {
	// Fixed at construction
	fov float32
	far float32
	up  mgl32.Vec3

	// Position and derived look target
	position mgl32.Vec3
	target   mgl32.Vec3

	speed float32

	// Euler angles in radians. Yaw is unbounded, pitch is clamped by ApplyLook.
	yaw   float32
	pitch float32
}

// New creates a camera with the given horizontal field of view (degrees)
// and far plane distance.
func New(fov, far float32) *Camera {
	return &Camera{
		fov:      fov,
		far:      far,
		up:       mgl32.Vec3{0, 1, 0},
		position: mgl32.Vec3{0, 0, 1},
		target:   mgl32.Vec3{0, 0, 0},
		speed:    DefaultSpeed,
	}
}

// ViewMatrix returns the right-handed look-at matrix for the current state.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.up)
}

// Projection returns a perspective matrix for the given aspect ratio,
// spanning NearPlane to the camera's far distance.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(VerticalFOV(c.fov, aspect), aspect, NearPlane, c.far)
}

// VerticalFOV converts a horizontal field of view in degrees to the vertical
// field of view in radians for the given aspect ratio.
func VerticalFOV(horizontalDeg, aspect float32) float32 {
	if aspect <= 0 {
		return mgl32.DegToRad(horizontalDeg)
	}
	half := math.Tan(float64(mgl32.DegToRad(horizontalDeg)) / 2)
	return float32(2 * math.Atan(half/float64(aspect)))
}

// SetSpeed replaces the movement speed. No bounds are applied.
func (c *Camera) SetSpeed(speed float32) {
	c.speed = speed
}

// Speed returns the movement speed in units per second
func (c *Camera) Speed() float32 {
	return c.speed
}

// FOV returns the horizontal field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// Far returns the far plane distance
func (c *Camera) Far() float32 {
	return c.far
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Target returns the point the camera looks at
func (c *Camera) Target() mgl32.Vec3 {
	return c.target
}

// Up returns the world up vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Orientation returns yaw and pitch in radians
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// AddLookDelta accumulates into yaw and pitch. Pitch is not clamped until
// ApplyLook runs.
func (c *Camera) AddLookDelta(deltaYaw, deltaPitch float32) {
	c.yaw += deltaYaw
	c.pitch += deltaPitch
}

// ApplyLook clamps pitch and re-derives the target from yaw and pitch.
func (c *Camera) ApplyLook() {
	c.pitch = mgl32.Clamp(c.pitch, -MaxPitch, MaxPitch)
	c.target = c.position.Add(c.Forward())
}

// Look applies a relative yaw/pitch change and updates the target.
func (c *Camera) Look(deltaYaw, deltaPitch float32) {
	c.AddLookDelta(deltaYaw, deltaPitch)
	c.ApplyLook()
}

// Forward returns the unit look direction for the current yaw and pitch.
// Yaw 0, pitch 0 faces +Z.
func (c *Camera) Forward() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(c.yaw))
	sp, cp := math.Sincos(float64(c.pitch))

	return normalizeOrZero(mgl32.Vec3{
		float32(sy * cp),
		float32(sp),
		float32(cy * cp),
	})
}

// Update moves the camera along its current basis for every held action.
// Opposing actions cancel; a zero net direction leaves the camera in place.
func (c *Camera) Update(held Movement, deltaTime float32) {
	forward := normalizeOrZero(c.target.Sub(c.position))
	right := normalizeOrZero(forward.Cross(c.up))
	up := normalizeOrZero(c.up)

	var direction mgl32.Vec3
	if held.Has(MoveForward) {
		direction = direction.Add(forward)
	}
	if held.Has(MoveBackward) {
		direction = direction.Sub(forward)
	}
	if held.Has(MoveLeft) {
		direction = direction.Sub(right)
	}
	if held.Has(MoveRight) {
		direction = direction.Add(right)
	}
	if held.Has(MoveUp) {
		direction = direction.Add(up)
	}
	if held.Has(MoveDown) {
		direction = direction.Sub(up)
	}

	if direction.LenSqr() > 0 {
		c.translate(direction.Normalize().Mul(c.speed * deltaTime))
	}
}

// translate moves position and target together, so the look direction is kept.
func (c *Camera) translate(delta mgl32.Vec3) {
	c.position = c.position.Add(delta)
	c.target = c.target.Add(delta)
}

func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() == 0 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}
