package meshkit

import "slices"

// PathEvent represents a single event in a flattened path description.
type PathEvent interface {
	isPathEvent()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathEvent() {}

// LineTo extends the current subpath with a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathEvent() {}

// Path is an open polyline.
type Path struct {
	Points []Point
}

// NewPath creates a path from a point sequence. The slice is taken over,
// not copied.
func NewPath(points ...Point) Path {
	return Path{Points: points}
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	return Path{Points: slices.Clone(p.Points)}
}

// ShiftOrthogonally returns a copy of the path shifted sideways by offset.
// Each point moves along the unit perpendicular of the local direction of
// travel, averaged between the two adjacent segments at interior points.
// Positive offsets shift toward the counter-clockwise side.
//
// Offsetting is undefined for paths with fewer than two points; those
// return an unshifted copy and false.
func (p Path) ShiftOrthogonally(offset float32) (Path, bool) {
	n := len(p.Points)
	if n < 2 {
		return p.Clone(), false
	}

	shifted := make([]Point, n)
	for i, pt := range p.Points {
		var dir Point
		switch {
		case i == 0:
			dir = p.Points[1].Sub(p.Points[0]).Normalize()
		case i == n-1:
			dir = p.Points[n-1].Sub(p.Points[n-2]).Normalize()
		default:
			in := pt.Sub(p.Points[i-1]).Normalize()
			out := p.Points[i+1].Sub(pt).Normalize()
			dir = in.Add(out).Normalize()
		}
		shifted[i] = pt.Add(dir.Perp().Mul(offset))
	}
	return Path{Points: shifted}, true
}
