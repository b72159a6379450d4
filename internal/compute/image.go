package compute

import "github.com/go-gl/gl/v4.3-core/gl"

// ImageTexture is an RGBA32F texture bound as a write-only image for compute programs
type ImageTexture struct {
	ID     uint32
	Unit   uint32
	Width  int
	Height int
}

// NewImageTexture allocates a width x height float texture and binds it at image unit
func NewImageTexture(width, height int, unit uint32) *ImageTexture {
	t := &ImageTexture{Unit: unit, Width: width, Height: height}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, int32(width), int32(height), 0, gl.RGBA, gl.FLOAT, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindImageTexture(unit, t.ID, 0, false, 0, gl.WRITE_ONLY, gl.RGBA32F)
	return t
}

// Bind makes the texture current for sampling on the given texture unit
func (t *ImageTexture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture
func (t *ImageTexture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
