package render

import (
	"errors"
	"fmt"
)

var (
	ErrNoProgram = errors.New("render: no shader program")
	ErrNoBuffer  = errors.New("render: empty vertex buffer")
)

// DrawCall describes one DrawArrays invocation
type DrawCall struct {
	Mode  uint32
	First int32
	Count int32
}

// Context owns the handles a frame needs. Build it with NewContext once the
// program is linked and the vertices are uploaded.
type Context struct {
	program    uint32
	vao        uint32
	draw       DrawCall
	clearColor [4]float32
}

// NewContext creates a render context drawing count vertices from vao as triangles
func NewContext(program, vao uint32, count int32, clearColor [4]float32) (*Context, error) {
	if program == 0 {
		return nil, ErrNoProgram
	}
	if vao == 0 || count <= 0 {
		return nil, fmt.Errorf("%w: vao=%d count=%d", ErrNoBuffer, vao, count)
	}
	return &Context{
		program:    program,
		vao:        vao,
		draw:       DrawCall{Mode: Triangles, First: 0, Count: count},
		clearColor: clearColor,
	}, nil
}

// Program returns the bound shader program handle
func (c *Context) Program() uint32 { return c.program }

// Draw returns the draw call issued each frame
func (c *Context) Draw() DrawCall { return c.draw }

// Render issues the frame's GL commands without presenting it
func (c *Context) Render(cmd Commands) {
	cc := c.clearColor
	cmd.ClearColor(cc[0], cc[1], cc[2], cc[3])
	cmd.Clear(ColorBufferBit | DepthBufferBit)

	cmd.UseProgram(c.program)
	cmd.BindVertexArray(c.vao)
	cmd.DrawArrays(c.draw.Mode, c.draw.First, c.draw.Count)
	cmd.BindVertexArray(0)
	cmd.UseProgram(0)
}

// Frame renders and presents one frame
func (c *Context) Frame(cmd Commands, s Surface) {
	c.Render(cmd)
	s.SwapBuffers()
}
