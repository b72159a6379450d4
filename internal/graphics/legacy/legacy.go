// Package legacy drives the fixed-function GL 2.1 pipeline for the immediate-mode demo.
package legacy

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Init loads the GL 2.1 function pointers for the current context
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init failed: %w", err)
	}
	return nil
}

// Version returns the context version string
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Commands forwards render.ImmediateCommands to the current context
type Commands struct{}

func (Commands) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Commands) LoadProjection(m mgl32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&m[0])
	gl.MatrixMode(gl.MODELVIEW)
}

func (Commands) LoadModelView(m mgl32.Mat4) {
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&m[0])
}

func (Commands) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (Commands) Clear(mask uint32) { gl.Clear(mask) }

func (Commands) Begin(mode uint32) { gl.Begin(mode) }

func (Commands) Color3f(r, g, b float32) { gl.Color3f(r, g, b) }

func (Commands) Vertex2f(x, y float32) { gl.Vertex2f(x, y) }

func (Commands) End() { gl.End() }

func (Commands) Flush() { gl.Flush() }
