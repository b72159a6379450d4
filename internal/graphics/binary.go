package graphics

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrNoBinary is returned when the driver exposes no binary for a program
var ErrNoBinary = errors.New("driver returned no program binary")

// Binary returns the driver-specific binary of the linked program and its format
func (s *Shader) Binary() (uint32, []byte, error) {
	var length int32
	gl.GetProgramiv(s.ID, gl.PROGRAM_BINARY_LENGTH, &length)
	if length <= 0 {
		return 0, nil, ErrNoBinary
	}

	data := make([]byte, length)
	var written int32
	var format uint32
	gl.GetProgramBinary(s.ID, length, &written, &format, gl.Ptr(data))
	if written <= 0 {
		return 0, nil, ErrNoBinary
	}
	return format, data[:written], nil
}

// NewShaderFromBinary loads a program saved by Binary. Drivers reject binaries
// from another driver or version with a link error.
func NewShaderFromBinary(format uint32, data []byte) (*Shader, error) {
	if len(data) == 0 {
		return nil, ErrNoBinary
	}
	program := gl.CreateProgram()
	gl.ProgramBinary(program, format, gl.Ptr(data), int32(len(data)))
	if err := linkStatus(program); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	return &Shader{ID: program}, nil
}
