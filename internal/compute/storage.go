package compute

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// StorageBuffer is a shader storage buffer bound to a fixed binding point
type StorageBuffer struct {
	ID      uint32
	Binding uint32
	// Size in bytes
	Size int
}

// NewIntBuffer uploads data and binds it at binding
func NewIntBuffer(binding uint32, data []int32) *StorageBuffer {
	return newStorageBuffer(binding, len(data)*4, gl.Ptr(data))
}

// NewFloatBuffer uploads data and binds it at binding
func NewFloatBuffer(binding uint32, data []float32) *StorageBuffer {
	return newStorageBuffer(binding, len(data)*4, gl.Ptr(data))
}

// NewEmptyBuffer allocates size bytes at binding without initial contents
func NewEmptyBuffer(binding uint32, size int) *StorageBuffer {
	return newStorageBuffer(binding, size, nil)
}

func newStorageBuffer(binding uint32, size int, data unsafe.Pointer) *StorageBuffer {
	b := &StorageBuffer{Binding: binding, Size: size}
	gl.GenBuffers(1, &b.ID)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, b.ID)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, size, data, gl.STATIC_DRAW)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, b.ID)
	return b
}

// ReadInts maps the buffer and copies out its contents as int32
func (b *StorageBuffer) ReadInts() ([]int32, error) {
	out := make([]int32, b.Size/4)
	if err := b.read(unsafe.Pointer(unsafe.SliceData(out)), len(out)*4); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFloats maps the buffer and copies out its contents as float32
func (b *StorageBuffer) ReadFloats() ([]float32, error) {
	out := make([]float32, b.Size/4)
	if err := b.read(unsafe.Pointer(unsafe.SliceData(out)), len(out)*4); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *StorageBuffer) read(dst unsafe.Pointer, n int) error {
	if n == 0 {
		return nil
	}
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, b.ID)
	ptr := gl.MapBufferRange(gl.SHADER_STORAGE_BUFFER, 0, n, gl.MAP_READ_BIT)
	if ptr == nil {
		return fmt.Errorf("could not map storage buffer %d", b.ID)
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(ptr), n))
	if !gl.UnmapBuffer(gl.SHADER_STORAGE_BUFFER) {
		return fmt.Errorf("storage buffer %d was corrupted while mapped", b.ID)
	}
	return nil
}

// Delete releases the buffer
func (b *StorageBuffer) Delete() {
	if b.ID != 0 {
		gl.DeleteBuffers(1, &b.ID)
		b.ID = 0
	}
}
