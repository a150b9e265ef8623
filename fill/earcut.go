// Package fill provides the built-in fill tessellator for meshkit areas.
//
// Boundaries are triangulated by ear clipping via github.com/rclancey/earcut.
// The first closed loop of the event stream is the outer ring; every
// subsequent loop is treated as a hole, per the earcut convention. The fill
// rule in the options is ignored: interior/hole classification comes from
// loop order, not winding.
package fill

import (
	"errors"
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/gogpu/meshkit"
)

// ErrDegenerateBoundary reports a boundary loop with fewer than three
// points, which encloses no area.
var ErrDegenerateBoundary = errors.New("fill: boundary has fewer than 3 points")

// Tessellator implements meshkit.FillTessellator by ear clipping.
// The zero value is ready to use.
type Tessellator struct{}

// NewTessellator creates an ear-clipping tessellator.
func NewTessellator() *Tessellator {
	return &Tessellator{}
}

// Tessellate triangulates the interior of the loops described by events
// and pushes every boundary vertex plus the resulting triangles through
// out. It rejects the whole input when any loop is degenerate or the ear
// clipping fails; no partial output is committed in that case.
func (t *Tessellator) Tessellate(events []meshkit.PathEvent, _ meshkit.FillOptions, out meshkit.GeometryBuilder) error {
	loops := collectLoops(events)
	if len(loops) == 0 {
		return ErrDegenerateBoundary
	}

	var coords []float64
	var holes []int
	for i, loop := range loops {
		if len(loop) < 3 {
			return fmt.Errorf("fill: loop %d: %w", i, ErrDegenerateBoundary)
		}
		if i > 0 {
			holes = append(holes, len(coords)/2)
		}
		for _, p := range loop {
			coords = append(coords, float64(p.X), float64(p.Y))
		}
	}

	triangles, err := earcut.Earcut(coords, holes, 2)
	if err != nil {
		return fmt.Errorf("fill: ear clipping failed: %w", err)
	}

	out.Begin()
	ids := make([]meshkit.VertexID, 0, len(coords)/2)
	for _, loop := range loops {
		for _, p := range loop {
			id, err := out.AddVertex(p)
			if err != nil {
				out.Abort()
				return fmt.Errorf("fill: %w", err)
			}
			ids = append(ids, id)
		}
	}
	for i := 0; i+2 < len(triangles); i += 3 {
		out.AddTriangle(ids[triangles[i]], ids[triangles[i+1]], ids[triangles[i+2]])
	}
	count := out.End()

	meshkit.Logger().Debug("fill tessellation complete",
		"loops", len(loops), "vertices", count.Vertices, "indices", count.Indices)
	return nil
}

// collectLoops splits the event stream into closed loops, dropping the
// explicit closing point a boundary walk emits at the end of each loop.
func collectLoops(events []meshkit.PathEvent) [][]meshkit.Point {
	var loops [][]meshkit.Point
	var current []meshkit.Point
	for _, event := range events {
		switch e := event.(type) {
		case meshkit.MoveTo:
			if len(current) > 0 {
				loops = append(loops, trimClosingPoint(current))
			}
			current = []meshkit.Point{e.Point}
		case meshkit.LineTo:
			current = append(current, e.Point)
		}
	}
	if len(current) > 0 {
		loops = append(loops, trimClosingPoint(current))
	}
	return loops
}

func trimClosingPoint(loop []meshkit.Point) []meshkit.Point {
	if len(loop) > 1 && loop[0] == loop[len(loop)-1] {
		return loop[:len(loop)-1]
	}
	return loop
}
