package meshkit

import "errors"

// MaxVertices is the hard ceiling on the number of vertices in a single
// mesh, fixed by the 16-bit index width of the wire format.
const MaxVertices = 1 << 16

// ErrTooManyVertices reports an attempt to grow a mesh past MaxVertices.
var ErrTooManyVertices = errors.New("meshkit: mesh exceeds 65536 vertices")

// Mesh is an ordered vertex sequence plus an ordered triangle-index
// sequence. Indices are taken in groups of three; each triple names one
// triangle by vertex position. Every index must be smaller than the vertex
// count; NewMesh performs no validation, the caller guarantees
// well-formedness.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// NewMesh creates a mesh from existing vertex and index slices.
// The slices are taken over, not copied.
func NewMesh(vertices []Vertex, indices []uint16) Mesh {
	return Mesh{Vertices: vertices, Indices: indices}
}

// Empty returns the identity mesh: zero vertices, zero indices.
func Empty() Mesh {
	return Mesh{}
}

// IsEmpty reports whether the mesh has no renderable content, i.e. no
// vertices or no indices.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0 || len(m.Indices) == 0
}

// TriangleCount returns the number of complete triangles described by the
// index sequence.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Clone returns a deep copy of the mesh.
func (m Mesh) Clone() Mesh {
	out := Mesh{
		Vertices: make([]Vertex, len(m.Vertices)),
		Indices:  make([]uint16, len(m.Indices)),
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Indices, m.Indices)
	return out
}

// Add returns the combination of two meshes without modifying either:
// m's vertices followed by rhs's vertices, m's indices followed by rhs's
// indices rebased by m's vertex count.
func (m Mesh) Add(rhs Mesh) Mesh {
	out := m.Clone()
	out.Append(&rhs)
	return out
}

// Append combines rhs into m in place, rebasing rhs's indices by m's
// vertex count before the append. rhs is not modified.
//
// The combined vertex count must stay within MaxVertices; past that the
// rebased indices wrap and the mesh is corrupt. Append logs a warning and
// continues. MeshBuilder.AddVertex is the guarded construction path.
func (m *Mesh) Append(rhs *Mesh) {
	base := len(m.Vertices)
	if base+len(rhs.Vertices) > MaxVertices {
		Logger().Warn("combined mesh exceeds 16-bit index range",
			"vertices", base+len(rhs.Vertices), "max", MaxVertices)
	}
	m.Vertices = append(m.Vertices, rhs.Vertices...)
	offset := uint16(base)
	for _, idx := range rhs.Indices {
		m.Indices = append(m.Indices, idx+offset)
	}
}

// Sum combines a sequence of meshes into one, folding Append left to right
// starting from the empty mesh. The input meshes are not modified.
//
// Because rebasing depends only on the vertex count accumulated so far,
// the result is identical to any other grouping of the same sequence.
func Sum(meshes []Mesh) Mesh {
	summed := Empty()
	for i := range meshes {
		summed.Append(&meshes[i])
	}
	return summed
}

// SumRefs is Sum over a sequence of mesh references.
func SumRefs(meshes []*Mesh) Mesh {
	summed := Empty()
	for _, mesh := range meshes {
		summed.Append(mesh)
	}
	return summed
}
