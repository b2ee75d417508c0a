// Package skybox holds the CPU side of the skybox: cube geometry sized to
// the camera's far plane, the face table and face image loading.
package skybox

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	VerticesPerFace = 4
	VertexCount     = VerticesPerFace * 6
	IndexCount      = 6 * 2 * 3

	// Floats per vertex in VertexData (position only)
	FloatsPerVertex = 3
)

// quad layout for each face, as signs of x, y, z at ±far/2.
// Order: Front, Right, Back, Left, Bottom, Top.
var cornerSigns = [VertexCount][3]float32{
	// Front
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	// Right
	{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1},
	// Back
	{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1},
	// Left
	{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1},
	// Bottom
	{-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {1, -1, 1},
	// Top
	{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1},
}

// Vertices returns the 24 cube corners at ±far/2. Faces do not share
// vertices.
func Vertices(far float32) []mgl32.Vec3 {
	half := far / 2
	vertices := make([]mgl32.Vec3, VertexCount)
	for i, s := range cornerSigns {
		vertices[i] = mgl32.Vec3{s[0] * half, s[1] * half, s[2] * half}
	}
	return vertices
}

// VertexData returns Vertices flattened for upload to a vertex buffer.
func VertexData(far float32) []float32 {
	data := make([]float32, 0, VertexCount*FloatsPerVertex)
	for _, v := range Vertices(far) {
		data = append(data, v[0], v[1], v[2])
	}
	return data
}

// Indices returns the triangle list for the cube, two triangles per face,
// wound so clockwise-culling keeps the inside visible.
func Indices() []uint16 {
	indices := make([]uint16, 0, IndexCount)
	for face := 0; face < 6; face++ {
		b := uint16(face * VerticesPerFace)
		indices = append(indices,
			b, b+2, b+1,
			b, b+3, b+2,
		)
	}
	return indices
}
