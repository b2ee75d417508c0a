package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Attribute describes one float vertex attribute
type Attribute struct {
	Index      uint32
	Components int32
}

// Mesh is an indexed triangle list with interleaved float attributes
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved vertex data and uint16 indices. Attributes are
// laid out in the order given.
func NewMesh(vertices []float32, indices []uint16, attributes ...Attribute) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	var stride int32
	for _, a := range attributes {
		stride += a.Components * 4
	}
	offset := 0
	for _, a := range attributes {
		vao.SetVertexAttribPointer(a.Index, a.Components, gl.FLOAT, false, stride, offset)
		offset += int(a.Components) * 4
	}

	// Unbind VAO
	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw renders the mesh with the currently bound program
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
