package graphics

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"glplayground/internal/render"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrMissingAttribute is returned when a vertex attribute is not active in a program
var ErrMissingAttribute = errors.New("attribute not found in program")

// CompileError carries the driver's info log for a failed compile or link
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32
}

// NewShader creates a new shader program from vertex and fragment shader source files
func NewShader(vertexPath, fragmentPath string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	return NewShaderFromSource(string(vertexSource), string(fragmentSource))
}

// NewShaderFromSource compiles and links a vertex and fragment stage
func NewShaderFromSource(vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the program
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// AttribLocation looks up a vertex attribute by name
func (s *Shader) AttribLocation(name string) (uint32, error) {
	loc := gl.GetAttribLocation(s.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingAttribute, name)
	}
	return uint32(loc), nil
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(gl.GetUniformLocation(s.ID, gl.Str(name+"\x00")), value)
}

// SetVector2 sets a vec2 uniform
func (s *Shader) SetVector2(name string, x, y float32) {
	gl.Uniform2f(gl.GetUniformLocation(s.ID, gl.Str(name+"\x00")), x, y)
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	// Keep the linked binary available to Binary
	gl.ProgramParameteri(program, gl.PROGRAM_BINARY_RETRIEVABLE_HINT, gl.TRUE)
	gl.LinkProgram(program)

	// shaders can be deleted after linking
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	if err := linkStatus(program); err != nil {
		gl.DeleteProgram(program)
		return 0, err
	}
	return program, nil
}

func linkStatus(program uint32) error {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return &CompileError{Stage: "link", Log: strings.TrimRight(log, "\x00")}
	}
	return nil
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

		return 0, &CompileError{Stage: render.StageName(shaderType), Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}
