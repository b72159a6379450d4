// Package imageio loads and saves images for the capture and filter tools.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when a file extension has no encoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Load decodes an image file and converts it to RGBA
func Load(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img as an RGBA image with its origin at (0,0)
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Save encodes img to path, picking the format from the extension
func Save(path string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := enc(w, img); err != nil {
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return w.Flush()
}

var encoders = map[string]func(io.Writer, image.Image) error{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".ppm":  WritePPM,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// WritePPM writes img as an ASCII (P3) pixmap with a max value of 255
func WritePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n%d\n", b.Dx(), b.Dy(), 255); err != nil {
		return err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if _, err := fmt.Fprintf(w, "%3d %3d %3d ", c.R, c.G, c.B); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// FlipVertical reverses the row order in place. GL reads framebuffers bottom-up.
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// BoxBlur applies the 3x3 mean filter used by the GPU filter, clamping at the edges.
// Alpha is taken from the center pixel.
func BoxBlur(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var r, g, bl int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					c := src.RGBAAt(clamp(x+dx, b.Min.X, b.Max.X-1), clamp(y+dy, b.Min.Y, b.Max.Y-1))
					r += int(c.R)
					g += int(c.G)
					bl += int(c.B)
				}
			}
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8((r + 4) / 9),
				G: uint8((g + 4) / 9),
				B: uint8((bl + 4) / 9),
				A: src.RGBAAt(x, y).A,
			})
		}
	}
	return dst
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
