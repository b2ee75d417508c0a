package camera

import "math"

// Camera constants
const (
	// Movement speed in units per second
	DefaultSpeed = 10.0

	// Radians of yaw/pitch per pixel of pointer motion
	DefaultSensitivity = 0.001

	// Field of view (horizontal, degrees) and far plane distance
	DefaultFOV = 90.0
	DefaultFar = 10000.0

	// Near clipping plane
	NearPlane = 0.1

	// Keeps the look direction short of straight up/down
	PitchEpsilon = 0.001
	MaxPitch     = math.Pi/2 - PitchEpsilon
)
