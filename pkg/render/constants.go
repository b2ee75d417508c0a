package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
)

// Frame constants
const (
	// Seconds of frames averaged per FPS readout
	FPSWindow = 0.5
)

// ClearColor is visible only where the skybox does not cover the screen
var ClearColor = mgl32.Vec4{0.05, 0.05, 0.1, 1.0}
