// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu implements the meshkit buffer device over gogpu/wgpu HAL.
package wgpu

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/wgpu/hal"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/meshkit"
)

// Device implements meshkit.BufferDevice using a HAL device and queue.
// It bridges meshkit's opaque buffer IDs to hal.Buffer resources.
//
// Thread Safety: Device is safe for concurrent use from multiple
// goroutines. All resource operations are protected by a mutex.
type Device struct {
	mu     sync.RWMutex
	device hal.Device
	queue  hal.Queue

	// ID generation
	nextID atomic.Uint64

	// Resource tracking maps meshkit IDs to hal buffers
	buffers map[meshkit.BufferID]hal.Buffer
}

var _ meshkit.BufferDevice = (*Device)(nil)

// NewDevice creates a Device wrapping the given HAL device and queue.
func NewDevice(device hal.Device, queue hal.Queue) *Device {
	d := &Device{
		device:  device,
		queue:   queue,
		buffers: make(map[meshkit.BufferID]hal.Buffer),
	}

	// Start ID generation at 1 (0 is meshkit.InvalidBuffer)
	d.nextID.Store(1)

	return d
}

// CreateBuffer creates a GPU buffer.
func (d *Device) CreateBuffer(size int, usage meshkit.BufferUsage) (meshkit.BufferID, error) {
	if size <= 0 {
		return meshkit.InvalidBuffer, fmt.Errorf("wgpu: buffer size must be positive")
	}

	desc := &hal.BufferDescriptor{
		Label: "",
		Size:  uint64(size),
		Usage: convertBufferUsage(usage),
	}

	buffer, err := d.device.CreateBuffer(desc)
	if err != nil {
		return meshkit.InvalidBuffer, fmt.Errorf("wgpu: failed to create buffer: %w", err)
	}

	id := meshkit.BufferID(d.nextID.Add(1) - 1)

	d.mu.Lock()
	d.buffers[id] = buffer
	d.mu.Unlock()

	return id, nil
}

// DestroyBuffer releases a GPU buffer. Unknown IDs are ignored.
func (d *Device) DestroyBuffer(id meshkit.BufferID) {
	d.mu.Lock()
	buffer, ok := d.buffers[id]
	if ok {
		delete(d.buffers, id)
	}
	d.mu.Unlock()

	if ok {
		d.device.DestroyBuffer(buffer)
	}
}

// WriteBuffer writes data to a buffer. Unknown IDs and empty writes are
// ignored.
func (d *Device) WriteBuffer(id meshkit.BufferID, offset uint64, data []byte) {
	d.mu.RLock()
	buffer, ok := d.buffers[id]
	d.mu.RUnlock()

	if ok && len(data) > 0 {
		d.queue.WriteBuffer(buffer, offset, data)
	}
}

// convertBufferUsage converts meshkit buffer usage flags to wgpu types.
func convertBufferUsage(usage meshkit.BufferUsage) types.BufferUsage {
	var result types.BufferUsage

	if usage&meshkit.BufferUsageCopySrc != 0 {
		result |= types.BufferUsageCopySrc
	}
	if usage&meshkit.BufferUsageCopyDst != 0 {
		result |= types.BufferUsageCopyDst
	}
	if usage&meshkit.BufferUsageIndex != 0 {
		result |= types.BufferUsageIndex
	}
	if usage&meshkit.BufferUsageVertex != 0 {
		result |= types.BufferUsageVertex
	}
	if usage&meshkit.BufferUsageUniform != 0 {
		result |= types.BufferUsageUniform
	}

	return result
}
