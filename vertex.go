package meshkit

// VertexByteSize is the exact wire and GPU layout size of one Vertex:
// three little-endian float32 components, tightly packed.
const VertexByteSize = 12

// IndexByteSize is the wire and GPU layout size of one mesh index.
const IndexByteSize = 2

// Vertex is one 3-component floating-point position. Purely positional
// geometry: no normals, UVs, or colors. Copied by value.
type Vertex struct {
	Position [3]float32
}

// NewVertex promotes a 2D point to a vertex at elevation z.
func NewVertex(p Point, z float32) Vertex {
	return Vertex{Position: [3]float32{p.X, p.Y, z}}
}

// Instance describes where and how to draw one copy of a shared mesh.
// Instances are created by the surrounding renderer, not by the geometry
// constructors in this package.
type Instance struct {
	Position  [3]float32
	Direction [2]float32
	Color     [3]float32
}

// InstanceWithColor returns an instance at the origin, facing +X, with the
// given color.
func InstanceWithColor(color [3]float32) Instance {
	return Instance{
		Position:  [3]float32{0, 0, 0},
		Direction: [2]float32{1, 0},
		Color:     color,
	}
}
