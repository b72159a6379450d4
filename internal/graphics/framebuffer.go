package graphics

import (
	"errors"
	"fmt"
	"image"

	"glplayground/internal/imageio"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrIncompleteFramebuffer is returned when the driver rejects an attachment setup
var ErrIncompleteFramebuffer = errors.New("framebuffer incomplete")

// Framebuffer renders into an RGBA color texture
type Framebuffer struct {
	ID    uint32
	Color *Texture
}

// NewFramebuffer creates an FBO with a width x height color attachment
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{Color: newEmptyTexture(width, height)}

	gl.GenFramebuffers(1, &fb.ID)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.Color.ID, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Delete()
		return nil, fmt.Errorf("%w: status 0x%x", ErrIncompleteFramebuffer, status)
	}
	return fb, nil
}

// Bind directs rendering into the framebuffer and sets the viewport to its size
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	gl.Viewport(0, 0, int32(fb.Color.Width), int32(fb.Color.Height))
}

// Unbind restores the default framebuffer
func (fb *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Read returns the color attachment top-down
func (fb *Framebuffer) Read() *image.RGBA {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	img := ReadImage(0, 0, fb.Color.Width, fb.Color.Height)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return img
}

// Delete releases the FBO and its texture
func (fb *Framebuffer) Delete() {
	if fb.ID != 0 {
		gl.DeleteFramebuffers(1, &fb.ID)
		fb.ID = 0
	}
	if fb.Color != nil {
		fb.Color.Delete()
	}
}

// ReadPixels reads a block of the current read buffer as GL returns it, bottom row first
func ReadPixels(x, y, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return img
}

// ReadImage reads a block of the current read buffer top row first
func ReadImage(x, y, width, height int) *image.RGBA {
	img := ReadPixels(x, y, width, height)
	imageio.FlipVertical(img)
	return img
}
