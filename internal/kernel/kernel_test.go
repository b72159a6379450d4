package kernel

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloWorld(t *testing.T) {
	str, offsets := HelloInput()
	require.Len(t, str, HelloLength)
	require.Len(t, offsets, HelloLength)
	assert.Equal(t, "Hello ", UnpackString(str))
	assert.Equal(t, "World!", UnpackString(AddHost(str, offsets)))
}

func TestPackString(t *testing.T) {
	assert.Equal(t, []int32{'a', 'b', 0, 0}, PackString("ab", 4))
	assert.Equal(t, []int32{'a', 'b'}, PackString("abc", 2), "truncated to n")
	assert.Equal(t, "", UnpackString(nil))
	assert.Equal(t, "ab", UnpackString([]int32{'a', 'b', 0, 'c'}))
}

func TestVerifySum(t *testing.T) {
	a := Sequence(AddLength)
	b := Sequence(AddLength)
	out := make([]float32, AddLength)
	for i := range out {
		out[i] = a[i] + b[i]
	}
	require.NoError(t, VerifySum(a, b, out, AddTolerance))

	out[4321] += 0.5
	err := VerifySum(a, b, out, AddTolerance)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 4321, mismatch.Index)
	assert.Equal(t, float32(8642), mismatch.Expected)
	assert.True(t, strings.HasPrefix(err.Error(), "verification FAILED at array index 4321"))

	assert.Error(t, VerifySum(a, b[:10], out, AddTolerance))
}

func TestVerifySqrt(t *testing.T) {
	in := Range(1, 10)
	require.Len(t, in, 10)
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(math.Sqrt(float64(v)))
	}
	assert.NoError(t, VerifySqrt(in, out, 1e-6))
	out[0] = 2
	assert.Error(t, VerifySqrt(in, out, 1e-6))
}

func TestWorkGroups(t *testing.T) {
	assert.Equal(t, uint32(1000), WorkGroups(AddLength, AddLocalSize))
	assert.Equal(t, uint32(1), WorkGroups(HelloLength, HelloLocalSize))
	assert.Equal(t, uint32(2), WorkGroups(9, 8))
	assert.Equal(t, uint32(0), WorkGroups(9, 0))
}

func TestRange(t *testing.T) {
	assert.Equal(t, []float32{3, 4, 5}, Range(3, 5))
	assert.Nil(t, Range(5, 3))
}

func TestSources(t *testing.T) {
	assert.Contains(t, HelloSource, "binding = 5")
	assert.Contains(t, HelloSource, "binding = 6")
	assert.Contains(t, AddSource, "local_size_x = 8")
	assert.Contains(t, SqrtSource, SqrtInput)
	assert.Contains(t, SqrtSource, SqrtOutput)
}

func TestTextureDispatch(t *testing.T) {
	groups := WorkGroups(TextureSize, TextureLocalSize)
	assert.Equal(t, uint32(32), groups)
	assert.Equal(t, TextureSize*TextureSize, int(groups*groups)*TextureLocalSize*TextureLocalSize)
}

func TestRoll(t *testing.T) {
	assert.Equal(t, float32(0), Roll(0))
	assert.InDelta(t, 10.23, Roll(TextureFrames-1), 1e-4)
}

func TestTexturePixel(t *testing.T) {
	// the center of every group ignores the global term
	assert.InDelta(t, 1, TexturePixel(8, 8, 0), 1e-6)
	assert.InDelta(t, 1, TexturePixel(8+16*5, 8+16*7, 3), 1e-6)

	// first group with roll 0 has no global term either
	assert.InDelta(t, 1, TexturePixel(0, 0, 0), 1e-6)

	// corner of group (1,0): local = sqrt(2), global = sin(0.1)/2
	want := 1 - math.Sin(0.1)*0.5*math.Sqrt2
	assert.InDelta(t, want, TexturePixel(16, 0, 0), 1e-6)

	for _, p := range [][2]int{{0, 0}, {511, 511}, {100, 300}} {
		v := TexturePixel(p[0], p[1], Roll(500))
		assert.True(t, v >= 1-math.Sqrt2*0.5 && v <= 1+math.Sqrt2*0.5, "value %v out of range", v)
	}
}
