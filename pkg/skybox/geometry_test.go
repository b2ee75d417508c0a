package skybox

import (
	"testing"
)

func TestVerticesSitOnHalfFar(t *testing.T) {
	const far = 10000
	vertices := Vertices(far)

	if len(vertices) != VertexCount {
		t.Fatalf("expected %d vertices, got %d", VertexCount, len(vertices))
	}
	for i, v := range vertices {
		for axis := 0; axis < 3; axis++ {
			if v[axis] != far/2 && v[axis] != -far/2 {
				t.Errorf("vertex %d axis %d = %v, want ±%v", i, axis, v[axis], far/2)
			}
		}
	}
}

func TestVerticesScaleWithFar(t *testing.T) {
	small := Vertices(500)
	large := Vertices(1000)

	for i := range small {
		if large[i] != small[i].Mul(2) {
			t.Errorf("vertex %d: doubling far gave %v, want %v", i, large[i], small[i].Mul(2))
		}
	}
}

func TestVertexDataMatchesVertices(t *testing.T) {
	data := VertexData(8)
	vertices := Vertices(8)

	if len(data) != VertexCount*FloatsPerVertex {
		t.Fatalf("expected %d floats, got %d", VertexCount*FloatsPerVertex, len(data))
	}
	for i, v := range vertices {
		got := [3]float32{data[i*3], data[i*3+1], data[i*3+2]}
		if got != [3]float32(v) {
			t.Errorf("vertex %d: data %v, want %v", i, got, v)
		}
	}
}

func TestIndices(t *testing.T) {
	indices := Indices()

	if len(indices) != IndexCount {
		t.Fatalf("expected %d indices, got %d", IndexCount, len(indices))
	}
	want := []uint16{0, 2, 1, 0, 3, 2}
	for face := 0; face < 6; face++ {
		base := uint16(face * VerticesPerFace)
		for j, w := range want {
			if got := indices[face*6+j]; got != base+w {
				t.Errorf("face %d index %d = %d, want %d", face, j, got, base+w)
			}
		}
	}
}

func TestTrianglesStayOnTheirFace(t *testing.T) {
	vertices := Vertices(2)
	indices := Indices()

	// Every triangle must lie in one cube plane: some axis is constant.
	for tri := 0; tri < len(indices)/3; tri++ {
		a := vertices[indices[tri*3]]
		b := vertices[indices[tri*3+1]]
		c := vertices[indices[tri*3+2]]

		planar := false
		for axis := 0; axis < 3; axis++ {
			if a[axis] == b[axis] && b[axis] == c[axis] {
				planar = true
			}
		}
		if !planar {
			t.Errorf("triangle %d (%v %v %v) spans more than one face", tri, a, b, c)
		}
	}
}

func TestBoxEnclosesFarPlaneCorners(t *testing.T) {
	// Corners sit at far*sqrt(3)/2, inside the far plane.
	const far = 100
	for i, v := range Vertices(far) {
		if v.Len() >= far {
			t.Errorf("vertex %d at distance %v is beyond far plane %v", i, v.Len(), far)
		}
	}
}
