package graphics

import (
	"glplayground/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Quad draws a textured rectangle covering the viewport
type Quad struct {
	buf *VertexBuffer
}

// NewQuad uploads the fullscreen quad for a shader with "pos" and "uv" inputs
func NewQuad(s *Shader) (*Quad, error) {
	pos, err := s.AttribLocation("pos")
	if err != nil {
		return nil, err
	}
	uv, err := s.AttribLocation("uv")
	if err != nil {
		return nil, err
	}

	buf, err := NewVertexBuffer(scene.FullscreenQuad(),
		VertexAttrib{Location: pos, Size: 2, Offset: 0},
		VertexAttrib{Location: uv, Size: 2, Offset: 2},
	)
	if err != nil {
		return nil, err
	}
	return &Quad{buf: buf}, nil
}

// Draw issues the strip with the currently bound program and texture
func (q *Quad) Draw() {
	gl.BindVertexArray(q.buf.VAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, q.buf.Count)
	gl.BindVertexArray(0)
}

// Delete releases the quad's buffers
func (q *Quad) Delete() {
	q.buf.Delete()
}
