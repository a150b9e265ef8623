package meshkit

// VertexID is an opaque handle naming one vertex emitted through a
// GeometryBuilder. Its width matches the mesh index width.
type VertexID uint16

// Count reports the vertex and index totals accumulated over one
// tessellation run.
type Count struct {
	Vertices uint32
	Indices  uint32
}

// GeometryBuilder is the sink contract a fill tessellator drives while
// triangulating. Begin, End and Abort bracket one run; AddVertex and
// AddTriangle push committed output.
//
// A tessellator must stop and discard the run when AddVertex returns an
// error.
type GeometryBuilder interface {
	// Begin marks the start of a tessellation run.
	Begin()

	// End marks the end of a run and reports the accumulated totals.
	End() Count

	// Abort marks a failed run.
	Abort()

	// AddVertex appends one vertex and returns its handle.
	// Fails with ErrTooManyVertices when the vertex position would not fit
	// in the 16-bit index width.
	AddVertex(p Point) (VertexID, error)

	// AddTriangle appends three vertex handles, in the order given.
	AddTriangle(a, b, c VertexID)
}

// MeshBuilder adapts the GeometryBuilder contract onto a Mesh accumulator.
// Emitted vertices are planar: Z is always 0. Begin and Abort are no-ops
// since the mesh only ever reflects committed output; the caller owns
// discarding the mesh after a failed run.
type MeshBuilder struct {
	mesh *Mesh
}

// NewMeshBuilder creates a builder accumulating into mesh.
func NewMeshBuilder(mesh *Mesh) *MeshBuilder {
	return &MeshBuilder{mesh: mesh}
}

// Begin implements GeometryBuilder.
func (b *MeshBuilder) Begin() {}

// End implements GeometryBuilder.
func (b *MeshBuilder) End() Count {
	return Count{
		Vertices: uint32(len(b.mesh.Vertices)),
		Indices:  uint32(len(b.mesh.Indices)),
	}
}

// Abort implements GeometryBuilder.
func (b *MeshBuilder) Abort() {}

// AddVertex implements GeometryBuilder.
func (b *MeshBuilder) AddVertex(p Point) (VertexID, error) {
	id := len(b.mesh.Vertices)
	if id >= MaxVertices {
		return 0, ErrTooManyVertices
	}
	b.mesh.Vertices = append(b.mesh.Vertices, NewVertex(p, 0))
	return VertexID(id), nil
}

// AddTriangle implements GeometryBuilder.
func (b *MeshBuilder) AddTriangle(a, bb, c VertexID) {
	b.mesh.Indices = append(b.mesh.Indices, uint16(a), uint16(bb), uint16(c))
}
