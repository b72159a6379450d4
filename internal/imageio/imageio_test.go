package imageio

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 7, A: 255})
		}
	}
	return img
}

func TestFlipVertical(t *testing.T) {
	img := gradient(3, 4)
	FlipVertical(img)
	assert.Equal(t, color.RGBA{R: 0, G: 30, B: 7, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 20, G: 0, B: 7, A: 255}, img.RGBAAt(2, 3))

	FlipVertical(img)
	assert.Equal(t, gradient(3, 4).Pix, img.Pix, "flipping twice restores the image")
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := gradient(2, 3)
	FlipVertical(img)
	assert.Equal(t, uint8(10), img.RGBAAt(0, 1).G, "middle row stays put")
}

func TestWritePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 1, B: 20, A: 255})

	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, img))
	assert.Equal(t, "P3\n2 1\n255\n255   0   0   0   1  20 \n", buf.String())
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	src := gradient(5, 4)

	for _, name := range []string{"out.png", "out.bmp", "out.tiff", "OUT.TIF"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, src), name)

		got, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, src.Bounds(), got.Bounds(), name)
		assert.Equal(t, src.RGBAAt(4, 3), got.RGBAAt(4, 3), name)
	}
}

func TestSavePPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmp0.ppm")
	require.NoError(t, Save(path, gradient(2, 2)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P3\n2 2\n255\n"))
}

func TestSaveUnsupported(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.gif"), gradient(1, 1))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := gradient(4, 4).SubImage(image.Rect(1, 1, 3, 3))
	got := ToRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 2), got.Bounds())
	assert.Equal(t, color.RGBA{R: 10, G: 10, B: 7, A: 255}, got.RGBAAt(0, 0))
}

func TestBoxBlur(t *testing.T) {
	// uniform image is unchanged
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for i := range img.Pix {
		img.Pix[i] = 90
	}
	out := BoxBlur(img)
	assert.Equal(t, img.Pix, out.Pix)

	// a single bright center pixel spreads to its neighbours
	img = image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(1, 1, color.RGBA{R: 180, G: 90, B: 9, A: 200})
	out = BoxBlur(img)
	assert.Equal(t, color.RGBA{R: 20, G: 10, B: 1, A: 200}, out.RGBAAt(1, 1))
	assert.Equal(t, uint8(20), out.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(0), out.RGBAAt(0, 0).A, "alpha comes from the center sample")
}
