package meshkit

import (
	"testing"

	"github.com/chewxy/math32"
)

const geomEpsilon = 1e-5

func pointsNear(a, b Point) bool {
	return math32.Abs(a.X-b.X) < geomEpsilon && math32.Abs(a.Y-b.Y) < geomEpsilon
}

func TestShiftOrthogonallyStraight(t *testing.T) {
	path := NewPath(Pt(0, 0), Pt(10, 0))

	shifted, ok := path.ShiftOrthogonally(1)
	if !ok {
		t.Fatal("ShiftOrthogonally returned ok = false for a 2-point path")
	}
	want := []Point{Pt(0, 1), Pt(10, 1)}
	for i, p := range shifted.Points {
		if !pointsNear(p, want[i]) {
			t.Errorf("shifted point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestShiftOrthogonallyCorner(t *testing.T) {
	path := NewPath(Pt(0, 0), Pt(10, 0), Pt(10, 10))

	shifted, ok := path.ShiftOrthogonally(1)
	if !ok {
		t.Fatal("ShiftOrthogonally returned ok = false")
	}

	// Interior point moves along the averaged normal of the two segments.
	diag := math32.Sqrt(2) / 2
	want := []Point{Pt(0, 1), Pt(10-diag, diag), Pt(9, 10)}
	for i, p := range shifted.Points {
		if !pointsNear(p, want[i]) {
			t.Errorf("shifted point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestShiftOrthogonallyDegenerate(t *testing.T) {
	tests := []struct {
		name string
		path Path
	}{
		{"empty", NewPath()},
		{"single point", NewPath(Pt(3, 4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shifted, ok := tt.path.ShiftOrthogonally(2)
			if ok {
				t.Error("ShiftOrthogonally ok = true, want false for degenerate path")
			}
			if len(shifted.Points) != len(tt.path.Points) {
				t.Errorf("fallback has %d points, want %d", len(shifted.Points), len(tt.path.Points))
			}
			for i, p := range shifted.Points {
				if p != tt.path.Points[i] {
					t.Errorf("fallback point %d = %v, want unshifted %v", i, p, tt.path.Points[i])
				}
			}
		})
	}
}

func TestFromBandStraightPath(t *testing.T) {
	band := &Band{
		Path:       NewPath(Pt(0, 0), Pt(10, 0)),
		WidthLeft:  1,
		WidthRight: 1,
	}

	mesh := FromBand(band, 5)

	if got := len(mesh.Vertices); got != 4 {
		t.Fatalf("vertex count = %d, want 4", got)
	}
	if got := mesh.TriangleCount(); got != 2 {
		t.Fatalf("triangle count = %d, want 2", got)
	}
	// Left side offsets to y=-1, right side to y=+1, all at the target Z.
	wantPos := [][3]float32{
		{0, -1, 5}, {10, -1, 5},
		{0, 1, 5}, {10, 1, 5},
	}
	for i, v := range mesh.Vertices {
		for c := range 3 {
			if math32.Abs(v.Position[c]-wantPos[i][c]) > geomEpsilon {
				t.Errorf("vertex %d = %v, want %v", i, v.Position, wantPos[i])
			}
		}
	}
	wantIdx := []uint16{0, 2, 1, 1, 2, 3}
	for i, idx := range mesh.Indices {
		if idx != wantIdx[i] {
			t.Errorf("index %d = %d, want %d", i, idx, wantIdx[i])
		}
	}
}

func TestFromBandDegeneratePath(t *testing.T) {
	band := &Band{
		Path:       NewPath(Pt(3, 4)),
		WidthLeft:  1,
		WidthRight: 1,
	}

	mesh := FromBand(band, 2)

	// Both sides fall back to the unshifted single point: two coincident
	// vertices, no triangles.
	if got := len(mesh.Vertices); got != 2 {
		t.Fatalf("vertex count = %d, want 2", got)
	}
	if len(mesh.Indices) != 0 {
		t.Errorf("indices = %v, want none", mesh.Indices)
	}
	for i, v := range mesh.Vertices {
		if v.Position != [3]float32{3, 4, 2} {
			t.Errorf("vertex %d = %v, want [3 4 2]", i, v.Position)
		}
	}
}

func TestStitchRibbonClampsMismatchedSides(t *testing.T) {
	left := []Point{Pt(0, 1), Pt(5, 1), Pt(10, 1)}
	right := []Point{Pt(0, -1), Pt(10, -1)} // one point fewer

	mesh := stitchRibbon(left, right, 0)

	if got := len(mesh.Vertices); got != 5 {
		t.Fatalf("vertex count = %d, want 5", got)
	}
	if got := mesh.TriangleCount(); got != 4 {
		t.Fatalf("triangle count = %d, want 4", got)
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Errorf("index %d = %d exceeds last vertex %d", i, idx, len(mesh.Vertices)-1)
		}
	}
}

func TestFromBandAsymmetricWidths(t *testing.T) {
	band := &Band{
		Path:       NewPath(Pt(0, 0), Pt(4, 0)),
		WidthLeft:  2,
		WidthRight: 0.5,
	}

	mesh := FromBand(band, 0)

	if !pointsNear(Pt(mesh.Vertices[0].Position[0], mesh.Vertices[0].Position[1]), Pt(0, -2)) {
		t.Errorf("left vertex = %v, want y = -2", mesh.Vertices[0].Position)
	}
	if !pointsNear(Pt(mesh.Vertices[2].Position[0], mesh.Vertices[2].Position[1]), Pt(0, 0.5)) {
		t.Errorf("right vertex = %v, want y = 0.5", mesh.Vertices[2].Position)
	}
}
