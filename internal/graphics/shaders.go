package graphics

import _ "embed"

// Built-in shader sources
var (
	//go:embed shaders/triangle.vert
	TriangleVertex string
	//go:embed shaders/triangle.frag
	TriangleFragment string
	//go:embed shaders/capture.frag
	CaptureFragment string
	//go:embed shaders/quad.vert
	QuadVertex string
	//go:embed shaders/image.frag
	ImageFragment string
	//go:embed shaders/boxblur.frag
	BoxBlurFragment string
)

// TrianglePositionAttrib is the vertex position input of TriangleVertex
const TrianglePositionAttrib = "vp"
