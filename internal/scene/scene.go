// Package scene holds the fixed geometry and projection math shared by the demos.
// Nothing here touches a GL context.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a flat vertex array with a fixed number of components per vertex
type Mesh struct {
	Positions  []float32
	Components int
}

// VertexCount returns the number of whole vertices in the mesh
func (m Mesh) VertexCount() int {
	if m.Components <= 0 {
		return 0
	}
	return len(m.Positions) / m.Components
}

// SizeBytes returns the buffer size needed to upload the positions
func (m Mesh) SizeBytes() int {
	return len(m.Positions) * 4
}

// Triangle returns the clip-space triangle: top, left, right
func Triangle() Mesh {
	return Mesh{
		Positions: []float32{
			0.0, 0.5, 0.0,
			-0.5, -0.5, 0.0,
			0.5, -0.5, 0.0,
		},
		Components: 3,
	}
}

// FullscreenQuad returns a strip covering clip space with matching texture coordinates.
// Layout per vertex: x, y, u, v.
func FullscreenQuad() Mesh {
	return Mesh{
		Positions: []float32{
			-1.0, 1.0, 0, 0,
			1.0, 1.0, 1, 0,
			-1.0, -1.0, 0, 1,
			1.0, -1.0, 1, 1,
		},
		Components: 4,
	}
}

// ColoredVertex is a 2D position with an RGB color
type ColoredVertex struct {
	X, Y    float32
	R, G, B float32
}

// ScreenTriangle returns the immediate-mode triangle in window pixel coordinates
func ScreenTriangle() []ColoredVertex {
	return []ColoredVertex{
		{X: 110, Y: 20, R: 0, G: 0, B: 1},
		{X: 200, Y: 200, R: 0, G: 1, B: 0},
		{X: 20, Y: 200, R: 1, G: 0, B: 0},
	}
}

// SpinTriangle returns the clip-space triangle used by the spinning screenshot demo
func SpinTriangle() []ColoredVertex {
	return []ColoredVertex{
		{X: 0, Y: 0.5, R: 1, G: 0, B: 0},
		{X: -0.5, Y: -0.5, R: 0, G: 1, B: 0},
		{X: 0.5, Y: -0.5, R: 0, G: 0, B: 1},
	}
}

// ScreenOrtho maps window pixels to clip space with the origin at the top left.
// (0,0) lands on (-1,1) and (w,h) on (1,-1).
func ScreenOrtho(w, h int) mgl32.Mat4 {
	fw, fh := float32(w), float32(h)
	return mgl32.Ortho(0, fw, 0, fh, -1, 1).
		Mul4(mgl32.Scale3D(1, -1, 1)).
		Mul4(mgl32.Translate3D(0, -fh, 0))
}

// Spin tracks a rotation angle advancing at a fixed rate
type Spin struct {
	// Degrees per second
	Speed float64
	Angle float64
}

// NewSpin creates a spin at the given degrees per second
func NewSpin(speed float64) *Spin {
	return &Spin{Speed: speed}
}

// Advance moves the angle forward by dt seconds, wrapping at 360
func (s *Spin) Advance(dt float64) {
	s.Angle = math.Mod(s.Angle+s.Speed*dt, 360)
	if s.Angle < 0 {
		s.Angle += 360
	}
}

// Matrix returns the modelview rotation about -z for the current angle
func (s *Spin) Matrix() mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(float32(s.Angle)), mgl32.Vec3{0, 0, -1})
}
