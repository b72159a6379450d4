package compute

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Feedback runs a vertex-only program over input as points with rasterization
// disabled and returns one float per point captured from varying.
func Feedback(source, inputAttr, varying string, input []float32) ([]float32, error) {
	if len(input) == 0 {
		return nil, nil
	}

	shader, err := compileShader(source, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(shader)

	program := gl.CreateProgram()
	defer gl.DeleteProgram(program)
	gl.AttachShader(program, shader)

	varyings, free := gl.Strs(varying + "\x00")
	gl.TransformFeedbackVaryings(program, 1, varyings, gl.INTERLEAVED_ATTRIBS)
	free()

	gl.LinkProgram(program)
	if err := linkStatus(program); err != nil {
		return nil, err
	}
	gl.UseProgram(program)
	defer gl.UseProgram(0)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	defer gl.DeleteVertexArrays(1, &vao)
	defer gl.BindVertexArray(0)

	size := len(input) * 4

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	defer gl.DeleteBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(input), gl.STATIC_DRAW)

	loc := gl.GetAttribLocation(program, gl.Str(inputAttr+"\x00"))
	if loc < 0 {
		return nil, fmt.Errorf("attribute %q not found in feedback program", inputAttr)
	}
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointer(uint32(loc), 1, gl.FLOAT, false, 0, gl.PtrOffset(0))

	var tbo uint32
	gl.GenBuffers(1, &tbo)
	defer gl.DeleteBuffers(1, &tbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tbo)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.STATIC_READ)

	gl.Enable(gl.RASTERIZER_DISCARD)
	gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, 0, tbo)

	gl.BeginTransformFeedback(gl.POINTS)
	gl.DrawArrays(gl.POINTS, 0, int32(len(input)))
	gl.EndTransformFeedback()

	gl.Disable(gl.RASTERIZER_DISCARD)
	gl.Flush()

	out := make([]float32, len(input))
	gl.GetBufferSubData(gl.TRANSFORM_FEEDBACK_BUFFER, 0, size, gl.Ptr(out))
	if err := checkError("transform feedback"); err != nil {
		return nil, err
	}
	return out, nil
}
