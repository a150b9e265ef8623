package meshkit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// MessageCreateBatch is the wire message kind announcing a new mesh batch
// to the remote rendering client.
const MessageCreateBatch uint32 = 13

// batchHeaderSize covers the message kind, batch id, and vertex count.
const batchHeaderSize = 12

// ErrMalformedMessage reports a batch message that cannot be decoded.
var ErrMalformedMessage = errors.New("meshkit: malformed batch message")

// MessageChannel is an already-open bidirectional message connection to
// the remote client. One WriteMessage call delivers one complete message.
//
// A channel is a shared resource: interleaved partial writes from two
// goroutines would corrupt the framing, so concurrent callers must be
// serialized by the surrounding system.
type MessageChannel interface {
	WriteMessage(data []byte) error
}

// EncodeBatch serializes a batch creation message: message kind, batch id,
// vertex count, raw vertex data, index count, raw index data, all
// little-endian and tightly packed.
//
// Returns nil for a mesh with no vertices or no indices; an empty mesh is
// never transferred.
func EncodeBatch(id uint32, mesh *Mesh) []byte {
	if mesh.IsEmpty() {
		return nil
	}

	size := batchHeaderSize + len(mesh.Vertices)*VertexByteSize + 4 + len(mesh.Indices)*IndexByteSize
	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf[0:], MessageCreateBatch)
	binary.LittleEndian.PutUint32(buf[4:], id)
	binary.LittleEndian.PutUint32(buf[8:], uint32(len(mesh.Vertices)))
	off := batchHeaderSize
	off += putVertices(buf[off:], mesh.Vertices)
	binary.LittleEndian.PutUint32(buf[off:], uint32(len(mesh.Indices)))
	off += 4
	putIndices(buf[off:], mesh.Indices)
	return buf
}

// DecodeBatch parses a batch creation message produced by EncodeBatch.
// It is strict: wrong message kind, truncated payloads, and trailing bytes
// all fail with ErrMalformedMessage.
func DecodeBatch(data []byte) (uint32, Mesh, error) {
	if len(data) < batchHeaderSize+4 {
		return 0, Mesh{}, fmt.Errorf("%w: %d bytes", ErrMalformedMessage, len(data))
	}
	if kind := binary.LittleEndian.Uint32(data[0:]); kind != MessageCreateBatch {
		return 0, Mesh{}, fmt.Errorf("%w: unexpected kind %d", ErrMalformedMessage, kind)
	}
	id := binary.LittleEndian.Uint32(data[4:])

	vertexCount := int(binary.LittleEndian.Uint32(data[8:]))
	indexCountOff := batchHeaderSize + vertexCount*VertexByteSize
	if len(data) < indexCountOff+4 {
		return 0, Mesh{}, fmt.Errorf("%w: truncated vertex data", ErrMalformedMessage)
	}
	indexCount := int(binary.LittleEndian.Uint32(data[indexCountOff:]))
	if want := indexCountOff + 4 + indexCount*IndexByteSize; len(data) != want {
		return 0, Mesh{}, fmt.Errorf("%w: length %d, want %d", ErrMalformedMessage, len(data), want)
	}

	mesh := Mesh{
		Vertices: make([]Vertex, vertexCount),
		Indices:  make([]uint16, indexCount),
	}
	off := batchHeaderSize
	for i := range mesh.Vertices {
		for c := range 3 {
			mesh.Vertices[i].Position[c] = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
			off += 4
		}
	}
	off += 4
	for i := range mesh.Indices {
		mesh.Indices[i] = binary.LittleEndian.Uint16(data[off:])
		off += IndexByteSize
	}
	return id, mesh, nil
}

// TransferBatch encodes one (id, mesh) pair and writes it to the channel
// as a single message. Nothing is written for an empty mesh. A failed
// write is fatal to the call; it is not retried or buffered.
func TransferBatch(ch MessageChannel, id uint32, mesh *Mesh) error {
	msg := EncodeBatch(id, mesh)
	if msg == nil {
		return nil
	}
	Logger().Debug("transferring batch",
		"id", id, "vertices", len(mesh.Vertices), "indices", len(mesh.Indices), "bytes", len(msg))
	if err := ch.WriteMessage(msg); err != nil {
		return fmt.Errorf("meshkit: batch %d transfer failed: %w", id, err)
	}
	return nil
}

// putVertices writes the packed little-endian layout of vertices into dst
// and returns the number of bytes written.
func putVertices(dst []byte, vertices []Vertex) int {
	off := 0
	for _, v := range vertices {
		for _, c := range v.Position {
			binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(c))
			off += 4
		}
	}
	return off
}

// putIndices writes the packed little-endian layout of indices into dst
// and returns the number of bytes written.
func putIndices(dst []byte, indices []uint16) int {
	off := 0
	for _, idx := range indices {
		binary.LittleEndian.PutUint16(dst[off:], idx)
		off += IndexByteSize
	}
	return off
}

// vertexBytes returns the packed little-endian layout of the vertex slice,
// as uploaded to GPU vertex buffers.
func vertexBytes(vertices []Vertex) []byte {
	buf := make([]byte, len(vertices)*VertexByteSize)
	putVertices(buf, vertices)
	return buf
}

// indexBytes returns the packed little-endian layout of the index slice.
func indexBytes(indices []uint16) []byte {
	buf := make([]byte, len(indices)*IndexByteSize)
	putIndices(buf, indices)
	return buf
}
