package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GL enum values used by the render step. They match the GL headers so the
// GL-backed implementations can pass them through unchanged.
const (
	Points    uint32 = 0x0000
	Lines     uint32 = 0x0001
	Triangles uint32 = 0x0004

	ColorBufferBit uint32 = 0x00004000
	DepthBufferBit uint32 = 0x00000100
)

// Shader stage enums, shared by every GL version the binaries load
const (
	VertexShader         uint32 = 0x8B31
	FragmentShader       uint32 = 0x8B30
	GeometryShader       uint32 = 0x8DD9
	TessControlShader    uint32 = 0x8E88
	TessEvaluationShader uint32 = 0x8E87
	ComputeShader        uint32 = 0x91B9
)

// StageName names a shader stage enum for compile errors
func StageName(shaderType uint32) string {
	switch shaderType {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	case GeometryShader:
		return "geometry"
	case TessControlShader:
		return "tess control"
	case TessEvaluationShader:
		return "tess evaluation"
	case ComputeShader:
		return "compute"
	default:
		return fmt.Sprintf("0x%x", shaderType)
	}
}

// Commands is the subset of the programmable pipeline used by a frame
type Commands interface {
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	UseProgram(program uint32)
	BindVertexArray(vao uint32)
	DrawArrays(mode uint32, first, count int32)
}

// ImmediateCommands is the subset of the fixed-function pipeline used by the immediate-mode scene
type ImmediateCommands interface {
	Viewport(x, y, width, height int32)
	LoadProjection(m mgl32.Mat4)
	LoadModelView(m mgl32.Mat4)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Begin(mode uint32)
	Color3f(r, g, b float32)
	Vertex2f(x, y float32)
	End()
	Flush()
}

// Surface presents a finished frame
type Surface interface {
	SwapBuffers()
}

// Window is what the run loop needs from the windowing system
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	PollEvents()
}
