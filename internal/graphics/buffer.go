package graphics

import (
	"fmt"

	"glplayground/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexAttrib maps a slice of each vertex onto a shader attribute
type VertexAttrib struct {
	Location uint32
	Size     int32
	// Offset in floats from the start of the vertex
	Offset int
}

// VertexBuffer is a VAO with a single static VBO
type VertexBuffer struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// NewVertexBuffer uploads mesh positions and configures the given attributes.
// With no attributes the whole vertex feeds location 0.
func NewVertexBuffer(mesh scene.Mesh, attribs ...VertexAttrib) (*VertexBuffer, error) {
	if mesh.VertexCount() == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}
	if len(attribs) == 0 {
		attribs = []VertexAttrib{{Location: 0, Size: int32(mesh.Components)}}
	}

	b := &VertexBuffer{Count: int32(mesh.VertexCount())}

	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, mesh.SizeBytes(), gl.Ptr(mesh.Positions), gl.STATIC_DRAW)

	stride := int32(mesh.Components * 4)
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(a.Offset*4))
	}

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return b, nil
}

// Delete releases the VBO and VAO
func (b *VertexBuffer) Delete() {
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
		b.VBO = 0
	}
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
		b.VAO = 0
	}
}
