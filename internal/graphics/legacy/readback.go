package legacy

import (
	"image"

	"github.com/go-gl/gl/v2.1/gl"
)

// ReadBack reads the back buffer bottom row first, the way GL stores it
func ReadBack(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.ReadBuffer(gl.BACK)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return img
}
