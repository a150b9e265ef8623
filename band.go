package meshkit

// Band describes a ribbon region around a path: the path itself plus
// independent left and right offset widths. Bands are read-only inputs;
// extrusion never mutates them.
type Band struct {
	Path       Path
	WidthLeft  float32
	WidthRight float32
}

// FromBand extrudes a band into a ribbon mesh at elevation z.
//
// The path is offset orthogonally to both sides, the offset curves become
// the vertex sequence (left side first), and a quad strip of two triangles
// per segment stitches them together. Paths too short to offset fall back
// to the unshifted path on both sides, yielding a zero-width ribbon.
func FromBand(band *Band, z float32) Mesh {
	left, ok := band.Path.ShiftOrthogonally(-band.WidthLeft)
	if !ok {
		Logger().Debug("band path too short to offset, using unshifted path",
			"points", len(band.Path.Points))
	}
	right, _ := band.Path.ShiftOrthogonally(band.WidthRight)

	return stitchRibbon(left.Points, right.Points, z)
}

// stitchRibbon builds the ribbon mesh between two offset curves.
//
// Right-side indices are clamped to the last valid vertex index: curve
// offsetting can drop or merge points, so the sides may disagree on length,
// and reusing the last right-side vertex degrades gracefully instead of
// indexing out of bounds.
// TODO: decide whether a left/right length mismatch should instead be
// rejected upstream when offset curves gain point merging.
func stitchRibbon(left, right []Point, z float32) Mesh {
	vertices := make([]Vertex, 0, len(left)+len(right))
	for _, p := range left {
		vertices = append(vertices, NewVertex(p, z))
	}
	for _, p := range right {
		vertices = append(vertices, NewVertex(p, z))
	}

	if len(left) < 2 || len(right) == 0 {
		return NewMesh(vertices, nil)
	}
	if len(left) != len(right) {
		Logger().Warn("band offset sides have mismatched point counts",
			"left", len(left), "right", len(right))
	}

	last := len(vertices) - 1
	indices := make([]uint16, 0, (len(left)-1)*6)
	for i := 0; i < len(left)-1; i++ {
		li := i
		ri := min(i+len(left), last)
		riNext := min(i+len(left)+1, last)
		indices = append(indices,
			uint16(li), uint16(ri), uint16(li+1),
			uint16(li+1), uint16(ri), uint16(riNext),
		)
	}
	return NewMesh(vertices, indices)
}
