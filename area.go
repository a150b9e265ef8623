package meshkit

import "fmt"

// Segment is one straight edge of a boundary.
type Segment struct {
	Start, End Point
}

// Primitive is one closed boundary loop, described as a segment sequence
// whose last segment ends where the first begins.
type Primitive struct {
	Boundary []Segment
}

// Area is a filled planar region composed of one or more boundary
// primitives. Additional primitives describe holes or disjoint parts.
// Areas are read-only inputs; tessellation never mutates them.
type Area struct {
	Primitives []Primitive
}

// PathEvents flattens the area's boundary primitives into one combined
// event stream: a MoveTo before the first segment of each primitive, then
// a LineTo for every segment end. Each primitive becomes an independent
// closed subpath.
func (a *Area) PathEvents() []PathEvent {
	var events []PathEvent
	for _, primitive := range a.Primitives {
		for i, segment := range primitive.Boundary {
			if i == 0 {
				events = append(events, MoveTo{Point: segment.Start})
			}
			events = append(events, LineTo{Point: segment.End})
		}
	}
	return events
}

// FillRule selects how self-overlapping boundaries classify interior
// regions.
type FillRule int

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillRule = iota

	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// DefaultTolerance is the default curve flattening tolerance for fill
// tessellation, in geometry units.
const DefaultTolerance = 0.25

// FillOptions configures a fill tessellation run.
type FillOptions struct {
	Rule      FillRule
	Tolerance float32
}

// DefaultFillOptions returns the options used by FromArea.
func DefaultFillOptions() FillOptions {
	return FillOptions{Rule: FillNonZero, Tolerance: DefaultTolerance}
}

// FillTessellator triangulates the interior of a filled region described
// by a path event stream, pushing the result through a GeometryBuilder.
// Implementations must support multiple subpaths in one stream.
//
// The fill subpackage provides the built-in ear-clipping implementation.
type FillTessellator interface {
	Tessellate(events []PathEvent, opts FillOptions, out GeometryBuilder) error
}

// FromArea tessellates the filled interior of an area into a single mesh.
// The resulting mesh is planar: every vertex has Z = 0.
//
// Tessellation failure is fatal for the whole call; no partial mesh is
// ever returned.
func FromArea(area *Area, tess FillTessellator) (Mesh, error) {
	mesh := Empty()
	if err := tess.Tessellate(area.PathEvents(), DefaultFillOptions(), NewMeshBuilder(&mesh)); err != nil {
		return Mesh{}, fmt.Errorf("meshkit: area tessellation failed: %w", err)
	}
	return mesh, nil
}
