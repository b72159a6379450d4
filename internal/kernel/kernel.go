// Package kernel holds the compute and feedback kernels together with the
// host-side data they consume and the checks run on their results.
package kernel

import (
	_ "embed"
	"fmt"
	"math"
	"strings"
)

var (
	//go:embed shaders/hello.comp
	HelloSource string
	//go:embed shaders/add.comp
	AddSource string
	//go:embed shaders/sqrt.vert
	SqrtSource string
	//go:embed shaders/texture.comp
	TextureSource string
)

// Hello kernel layout
const (
	HelloLength        = 16
	HelloStringBinding = 5
	HelloOffsetBinding = 6
	HelloLocalSize     = 16
)

// Add kernel layout
const (
	AddLength        = 8000
	AddLocalSize     = 8
	AddInput0Binding = 0
	AddInput1Binding = 1
	AddOutputBinding = 2
	AddTolerance     = 1e-4
)

// Texture kernel layout
const (
	TextureSize      = 512
	TextureLocalSize = 16
	TextureImageUnit = 0
	TextureFrames    = 1024
	TextureRollStep  = 0.01
	TextureRoll      = "roll"
)

// Sqrt feedback layout
const (
	SqrtInput  = "inValue"
	SqrtOutput = "outValue"
)

// HelloInput returns "Hello " packed as ints and the offsets that turn it into "World!"
func HelloInput() (str, offsets []int32) {
	str = PackString("Hello ", HelloLength)
	offsets = make([]int32, HelloLength)
	copy(offsets, []int32{15, 10, 6, 0, -11, 1})
	return str, offsets
}

// PackString widens each byte of s into an int32, zero-padded to n.
// Compute shaders cannot address bytes.
func PackString(s string, n int) []int32 {
	out := make([]int32, n)
	for i := 0; i < n && i < len(s); i++ {
		out[i] = int32(s[i])
	}
	return out
}

// UnpackString narrows ints back to bytes, stopping at the first zero
func UnpackString(data []int32) string {
	var b strings.Builder
	for _, v := range data {
		if v == 0 {
			break
		}
		b.WriteByte(byte(v))
	}
	return b.String()
}

// AddHost applies the hello kernel on the CPU
func AddHost(str, offsets []int32) []int32 {
	out := make([]int32, len(str))
	for i := range str {
		out[i] = str[i]
		if i < len(offsets) {
			out[i] += offsets[i]
		}
	}
	return out
}

// Sequence returns 0, 1, ... n-1 as floats
func Sequence(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}

// Range returns from, from+1, ... to as floats
func Range(from, to int) []float32 {
	if to < from {
		return nil
	}
	out := make([]float32, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, float32(v))
	}
	return out
}

// WorkGroups returns the number of groups needed to cover n items
func WorkGroups(n, localSize int) uint32 {
	if localSize <= 0 {
		return 0
	}
	return uint32((n + localSize - 1) / localSize)
}

// Roll is the phase uniform of the texture kernel for a frame
func Roll(frame int) float32 {
	return float32(frame) * TextureRollStep
}

// TexturePixel is the red channel the texture kernel writes at (x, y)
func TexturePixel(x, y int, roll float32) float32 {
	lx, ly := x%TextureLocalSize, y%TextureLocalSize
	gx, gy := x/TextureLocalSize, y/TextureLocalSize

	half := float64(TextureLocalSize / 2)
	local := math.Hypot(float64(lx)-half, float64(ly)-half) / half
	global := math.Sin(float64(gx+gy)*0.1+float64(roll)) * 0.5
	return float32(1 - global*local)
}

// MismatchError reports the first output element that disagrees with the host result
type MismatchError struct {
	Index    int
	Actual   float32
	Expected float32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("verification FAILED at array index %d, actual: %f, expected: %f", e.Index, e.Actual, e.Expected)
}

// VerifySum checks out[i] == a[i]+b[i] within tol
func VerifySum(a, b, out []float32, tol float64) error {
	if len(a) != len(b) || len(a) != len(out) {
		return fmt.Errorf("length mismatch: %d + %d -> %d", len(a), len(b), len(out))
	}
	for i := range out {
		expected := a[i] + b[i]
		if math.Abs(float64(out[i]-expected)) > tol {
			return &MismatchError{Index: i, Actual: out[i], Expected: expected}
		}
	}
	return nil
}

// VerifySqrt checks out[i] == sqrt(in[i]) within tol
func VerifySqrt(in, out []float32, tol float64) error {
	if len(in) != len(out) {
		return fmt.Errorf("length mismatch: %d -> %d", len(in), len(out))
	}
	for i := range out {
		expected := float32(math.Sqrt(float64(in[i])))
		if math.Abs(float64(out[i]-expected)) > tol {
			return &MismatchError{Index: i, Actual: out[i], Expected: expected}
		}
	}
	return nil
}
