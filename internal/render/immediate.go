package render

import (
	"glplayground/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// ImmediateScene draws colored vertices one call at a time
type ImmediateScene struct {
	Vertices   []scene.ColoredVertex
	ClearColor [4]float32

	// Projection is loaded by Reshape; ScreenSpace selects the pixel ortho
	// mapping instead of identity.
	ScreenSpace bool

	// Spin rotates the model each frame when set
	Spin *scene.Spin
}

// Reshape updates the viewport and projection for a new framebuffer size
func (s *ImmediateScene) Reshape(cmd ImmediateCommands, width, height int) {
	cmd.Viewport(0, 0, int32(width), int32(height))
	if s.ScreenSpace {
		cmd.LoadProjection(scene.ScreenOrtho(width, height))
	} else {
		cmd.LoadProjection(mgl32.Ident4())
	}
}

// Frame issues one frame of immediate-mode calls
func (s *ImmediateScene) Frame(cmd ImmediateCommands) {
	cc := s.ClearColor
	cmd.ClearColor(cc[0], cc[1], cc[2], cc[3])
	cmd.Clear(ColorBufferBit)

	if s.Spin != nil {
		cmd.LoadModelView(s.Spin.Matrix())
	} else {
		cmd.LoadModelView(mgl32.Ident4())
	}

	cmd.Begin(Triangles)
	for _, v := range s.Vertices {
		cmd.Color3f(v.R, v.G, v.B)
		cmd.Vertex2f(v.X, v.Y)
	}
	cmd.End()
	cmd.Flush()
}
