// Package meshkit turns 2D vector geometry into renderable triangle meshes
// and streams them to a remote rendering client.
//
// # Overview
//
// meshkit provides three things:
//
//   - A compact mesh data model ([Vertex], [Mesh]) with a combination
//     algebra: meshes concatenate with automatic index rebasing, so merged
//     geometry never contains indices that refer across mesh boundaries.
//   - Geometry construction: [FromArea] fills the interior of a set of
//     closed boundary loops via a pluggable [FillTessellator], and
//     [FromBand] extrudes a ribbon mesh along a path with independent
//     left/right widths.
//   - A binary wire protocol: [TransferBatch] serializes a mesh into a
//     single self-describing little-endian message and writes it to an open
//     [MessageChannel].
//
// # Quick Start
//
//	area := &meshkit.Area{Primitives: []meshkit.Primitive{{Boundary: square}}}
//	mesh, err := meshkit.FromArea(area, fill.NewTessellator())
//	if err != nil {
//	    return err
//	}
//
//	road := meshkit.FromBand(&meshkit.Band{Path: path, WidthLeft: 3, WidthRight: 3}, 0.1)
//	mesh.Append(&road)
//
//	batch, err := meshkit.NewBatch(7, &mesh, device, conn)
//
// # Index Width
//
// Mesh indices are 16 bits wide. A single mesh can therefore never hold more
// than [MaxVertices] vertices; this is a structural ceiling baked into the
// wire format, not a configurable parameter. Construction paths that could
// cross it fail with [ErrTooManyVertices] rather than silently wrapping.
//
// # Subpackages
//
// The root package depends only on narrow interfaces for its external
// capabilities. Concrete implementations live in subpackages:
//   - fill: ear-clipping [FillTessellator]
//   - transport: websocket-backed [MessageChannel]
//   - backend/wgpu: [BufferDevice] over gogpu/wgpu HAL
package meshkit
