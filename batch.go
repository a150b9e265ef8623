package meshkit

import (
	"errors"
	"fmt"
)

// BufferID is an opaque handle to a GPU buffer owned by a BufferDevice.
type BufferID uint64

// InvalidBuffer is the zero BufferID, representing no buffer.
const InvalidBuffer BufferID = 0

// BufferUsage is a bitmask specifying how a GPU buffer will be used.
type BufferUsage uint32

// Buffer usage flags.
const (
	// BufferUsageCopySrc marks the buffer as a copy source.
	BufferUsageCopySrc BufferUsage = 1 << iota

	// BufferUsageCopyDst marks the buffer as a copy destination.
	BufferUsageCopyDst

	// BufferUsageIndex marks the buffer as an index buffer.
	BufferUsageIndex

	// BufferUsageVertex marks the buffer as a vertex buffer.
	BufferUsageVertex

	// BufferUsageUniform marks the buffer as a uniform buffer.
	BufferUsageUniform
)

// BufferDevice abstracts the GPU buffer surface batches are created
// against. The host renderer hands meshkit a buffer-capable device; the
// backend/wgpu subpackage provides the HAL-backed implementation.
type BufferDevice interface {
	// CreateBuffer allocates a GPU buffer of size bytes.
	CreateBuffer(size int, usage BufferUsage) (BufferID, error)

	// WriteBuffer writes data into a buffer at the given byte offset.
	WriteBuffer(id BufferID, offset uint64, data []byte)

	// DestroyBuffer releases a buffer.
	DestroyBuffer(id BufferID)
}

// ErrEmptyMesh reports an attempt to create a batch from a mesh with no
// renderable content.
var ErrEmptyMesh = errors.New("meshkit: batch requires a non-empty mesh")

// Batch owns the GPU buffers derived from one mesh, plus the per-instance
// attributes the surrounding renderer appends and clears per frame. The
// buffers are created once at construction and never mutated for that
// mesh's geometry.
type Batch struct {
	VertexBuffer BufferID
	IndexBuffer  BufferID
	Instances    []Instance

	// ClearEveryFrame indicates the renderer wipes Instances at the start
	// of every frame.
	ClearEveryFrame bool

	// FullFrameInstanceEnd marks how many leading instances persist across
	// frames. Negative means no cut-off.
	FullFrameInstanceEnd int

	// IsDecal marks the batch to render as a decal.
	IsDecal bool

	// Frame is the last frame index this batch was touched.
	Frame int
}

// NewBatch transfers the mesh to the remote client and creates its GPU
// buffers. The returned batch clears its instances every frame.
func NewBatch(id uint32, mesh *Mesh, dev BufferDevice, ch MessageChannel) (*Batch, error) {
	if mesh.IsEmpty() {
		return nil, ErrEmptyMesh
	}
	if err := TransferBatch(ch, id, mesh); err != nil {
		return nil, err
	}
	vertexBuf, indexBuf, err := createMeshBuffers(dev, mesh)
	if err != nil {
		return nil, err
	}
	return &Batch{
		VertexBuffer:         vertexBuf,
		IndexBuffer:          indexBuf,
		ClearEveryFrame:      true,
		FullFrameInstanceEnd: -1,
	}, nil
}

// NewIndividualBatch is NewBatch for a mesh drawn as one persistent
// instance, such as a building or a decal, rather than recollected every
// frame.
func NewIndividualBatch(id uint32, mesh *Mesh, instance Instance, isDecal bool, dev BufferDevice, ch MessageChannel) (*Batch, error) {
	if mesh.IsEmpty() {
		return nil, ErrEmptyMesh
	}
	if err := TransferBatch(ch, id, mesh); err != nil {
		return nil, err
	}
	vertexBuf, indexBuf, err := createMeshBuffers(dev, mesh)
	if err != nil {
		return nil, err
	}
	return &Batch{
		VertexBuffer:         vertexBuf,
		IndexBuffer:          indexBuf,
		Instances:            []Instance{instance},
		ClearEveryFrame:      false,
		FullFrameInstanceEnd: -1,
		IsDecal:              isDecal,
	}, nil
}

// Release destroys the batch's GPU buffers. The batch must not be drawn
// afterwards.
func (b *Batch) Release(dev BufferDevice) {
	if b.VertexBuffer != InvalidBuffer {
		dev.DestroyBuffer(b.VertexBuffer)
		b.VertexBuffer = InvalidBuffer
	}
	if b.IndexBuffer != InvalidBuffer {
		dev.DestroyBuffer(b.IndexBuffer)
		b.IndexBuffer = InvalidBuffer
	}
}

// createMeshBuffers allocates and fills the vertex and index buffers for
// one mesh.
func createMeshBuffers(dev BufferDevice, mesh *Mesh) (BufferID, BufferID, error) {
	vertexData := vertexBytes(mesh.Vertices)
	vertexBuf, err := dev.CreateBuffer(len(vertexData), BufferUsageVertex|BufferUsageCopyDst)
	if err != nil {
		return InvalidBuffer, InvalidBuffer, fmt.Errorf("meshkit: vertex buffer: %w", err)
	}
	dev.WriteBuffer(vertexBuf, 0, vertexData)

	indexData := indexBytes(mesh.Indices)
	indexBuf, err := dev.CreateBuffer(len(indexData), BufferUsageIndex|BufferUsageCopyDst)
	if err != nil {
		dev.DestroyBuffer(vertexBuf)
		return InvalidBuffer, InvalidBuffer, fmt.Errorf("meshkit: index buffer: %w", err)
	}
	dev.WriteBuffer(indexBuf, 0, indexData)

	return vertexBuf, indexBuf, nil
}
