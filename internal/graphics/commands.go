package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Commands forwards render.Commands to the current GL context
type Commands struct{}

func (Commands) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (Commands) Clear(mask uint32) { gl.Clear(mask) }

func (Commands) UseProgram(program uint32) { gl.UseProgram(program) }

func (Commands) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Commands) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

// Viewport maps clip space onto the whole width x height drawable
func Viewport(width, height int) { gl.Viewport(0, 0, int32(width), int32(height)) }

// Init loads the GL 4.1 function pointers for the current context
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init failed: %w", err)
	}
	return nil
}

// Info describes the current context
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// QueryInfo reads the context strings
func QueryInfo() Info {
	return Info{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// CheckError reports the first pending GL error, tagged with desc
func CheckError(desc string) error {
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error in %q: 0x%x", desc, e)
	}
	return nil
}
