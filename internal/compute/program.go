// Package compute runs GL 4.3 compute shaders and transform feedback passes.
package compute

import (
	"fmt"
	"strings"

	"glplayground/internal/graphics"
	"glplayground/internal/render"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Init loads the GL 4.3 function pointers for the current context
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init failed: %w", err)
	}
	return nil
}

// Program is a linked compute program
type Program struct {
	ID uint32
}

// NewProgram compiles and links a single compute stage
func NewProgram(source string) (*Program, error) {
	shader, err := compileShader(source, gl.COMPUTE_SHADER)
	if err != nil {
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, shader)
	gl.LinkProgram(program)
	gl.DeleteShader(shader)

	if err := linkStatus(program); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	return &Program{ID: program}, nil
}

// Use activates the program
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// SetFloat sets a float uniform without binding the program
func (p *Program) SetFloat(name string, value float32) {
	gl.ProgramUniform1f(p.ID, gl.GetUniformLocation(p.ID, gl.Str(name+"\x00")), value)
}

// Dispatch launches x*y*z work groups and waits for storage and image writes to become visible
func (p *Program) Dispatch(x, y, z uint32) error {
	gl.UseProgram(p.ID)
	gl.DispatchCompute(x, y, z)
	gl.MemoryBarrier(gl.SHADER_STORAGE_BARRIER_BIT | gl.BUFFER_UPDATE_BARRIER_BIT |
		gl.SHADER_IMAGE_ACCESS_BARRIER_BIT | gl.TEXTURE_FETCH_BARRIER_BIT)
	return checkError("dispatch compute shader")
}

// Delete releases the program
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(strings.TrimRight(source, "\x00") + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, &graphics.CompileError{Stage: render.StageName(shaderType), Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

func linkStatus(program uint32) error {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return &graphics.CompileError{Stage: "link", Log: strings.TrimRight(log, "\x00")}
	}
	return nil
}

func checkError(desc string) error {
	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error in %q: 0x%x", desc, e)
	}
	return nil
}
