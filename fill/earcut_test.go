package fill

import (
	"errors"
	"testing"

	"github.com/gogpu/meshkit"
)

// boundary returns the closed 4-segment boundary of an axis-aligned square.
func boundary(x, y, side float32) []meshkit.Segment {
	p0 := meshkit.Pt(x, y)
	p1 := meshkit.Pt(x+side, y)
	p2 := meshkit.Pt(x+side, y+side)
	p3 := meshkit.Pt(x, y+side)
	return []meshkit.Segment{
		{Start: p0, End: p1},
		{Start: p1, End: p2},
		{Start: p2, End: p3},
		{Start: p3, End: p0},
	}
}

// meshArea returns the total unsigned area covered by the mesh's triangles.
func meshArea(m *meshkit.Mesh) float64 {
	var total float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Position
		b := m.Vertices[m.Indices[i+1]].Position
		c := m.Vertices[m.Indices[i+2]].Position
		cross := float64(b[0]-a[0])*float64(c[1]-a[1]) - float64(b[1]-a[1])*float64(c[0]-a[0])
		if cross < 0 {
			cross = -cross
		}
		total += cross / 2
	}
	return total
}

func TestTessellateUnitSquare(t *testing.T) {
	area := &meshkit.Area{Primitives: []meshkit.Primitive{{Boundary: boundary(0, 0, 1)}}}

	mesh, err := meshkit.FromArea(area, NewTessellator())
	if err != nil {
		t.Fatalf("FromArea() error: %v", err)
	}

	if got := len(mesh.Vertices); got != 4 {
		t.Errorf("vertex count = %d, want 4", got)
	}
	if got := len(mesh.Indices); got != 6 {
		t.Errorf("index count = %d, want 6", got)
	}
	for i, v := range mesh.Vertices {
		if v.Position[2] != 0 {
			t.Errorf("vertex %d Z = %v, want 0", i, v.Position[2])
		}
	}
	if got := meshArea(&mesh); got < 0.999 || got > 1.001 {
		t.Errorf("covered area = %v, want 1", got)
	}
}

func TestTessellateSquareWithHole(t *testing.T) {
	area := &meshkit.Area{Primitives: []meshkit.Primitive{
		{Boundary: boundary(0, 0, 10)},
		{Boundary: boundary(4, 4, 2)},
	}}

	mesh, err := meshkit.FromArea(area, NewTessellator())
	if err != nil {
		t.Fatalf("FromArea() error: %v", err)
	}

	if got := len(mesh.Vertices); got != 8 {
		t.Errorf("vertex count = %d, want 8 (outer ring + hole ring)", got)
	}
	if len(mesh.Indices)%3 != 0 {
		t.Fatalf("index count = %d, not a multiple of 3", len(mesh.Indices))
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Errorf("index %d = %d out of range", i, idx)
		}
	}
	// 10x10 outer minus 2x2 hole.
	if got := meshArea(&mesh); got < 95.99 || got > 96.01 {
		t.Errorf("covered area = %v, want 96", got)
	}
}

func TestTessellateDisjointLoops(t *testing.T) {
	// The second loop lies outside the first; the earcut convention still
	// treats it as a hole, so only the outer ring contributes area. The
	// call must not fail, and all vertices are still committed.
	area := &meshkit.Area{Primitives: []meshkit.Primitive{
		{Boundary: boundary(0, 0, 1)},
		{Boundary: boundary(5, 5, 1)},
	}}

	mesh, err := meshkit.FromArea(area, NewTessellator())
	if err != nil {
		t.Fatalf("FromArea() error: %v", err)
	}
	if got := len(mesh.Vertices); got != 8 {
		t.Errorf("vertex count = %d, want 8", got)
	}
}

func TestTessellateDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		events []meshkit.PathEvent
	}{
		{"no events", nil},
		{"single point", []meshkit.PathEvent{
			meshkit.MoveTo{Point: meshkit.Pt(0, 0)},
		}},
		{"two points", []meshkit.PathEvent{
			meshkit.MoveTo{Point: meshkit.Pt(0, 0)},
			meshkit.LineTo{Point: meshkit.Pt(1, 0)},
			meshkit.LineTo{Point: meshkit.Pt(0, 0)},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := meshkit.Empty()
			err := NewTessellator().Tessellate(tt.events, meshkit.DefaultFillOptions(), meshkit.NewMeshBuilder(&mesh))
			if !errors.Is(err, ErrDegenerateBoundary) {
				t.Errorf("Tessellate() err = %v, want ErrDegenerateBoundary", err)
			}
			if len(mesh.Vertices) != 0 {
				t.Errorf("degenerate input committed %d vertices", len(mesh.Vertices))
			}
		})
	}
}

func TestTessellateDegenerateHole(t *testing.T) {
	events := []meshkit.PathEvent{
		meshkit.MoveTo{Point: meshkit.Pt(0, 0)},
		meshkit.LineTo{Point: meshkit.Pt(10, 0)},
		meshkit.LineTo{Point: meshkit.Pt(10, 10)},
		meshkit.LineTo{Point: meshkit.Pt(0, 0)},
		meshkit.MoveTo{Point: meshkit.Pt(4, 4)},
		meshkit.LineTo{Point: meshkit.Pt(5, 4)},
	}

	mesh := meshkit.Empty()
	err := NewTessellator().Tessellate(events, meshkit.DefaultFillOptions(), meshkit.NewMeshBuilder(&mesh))
	if !errors.Is(err, ErrDegenerateBoundary) {
		t.Errorf("Tessellate() err = %v, want ErrDegenerateBoundary", err)
	}
}
