package vkprobe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVersion(t *testing.T) {
	// VK_MAKE_VERSION(1, 3, 250)
	v := DecodeVersion(1<<22 | 3<<12 | 250)
	assert.Equal(t, Version{Major: 1, Minor: 3, Patch: 250}, v)
	assert.Equal(t, "1.3.250", v.String())
	assert.Equal(t, uint32(1<<22|3<<12|250), v.Pack())

	assert.Equal(t, Version{}, DecodeVersion(0))
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Format(&buf, []DeviceInfo{{
		Name:                     "llvmpipe",
		Type:                     "CPU",
		VendorID:                 0x10005,
		APIVersion:               Version{1, 3, 0},
		MaxComputeWorkGroupCount: [3]uint32{65535, 65535, 65535},
	}})
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "GPU0:", strings.TrimSpace(lines[0]))
	assert.Contains(t, out, "llvmpipe")
	assert.Contains(t, out, "0x10005")
	assert.Contains(t, out, "1.3.0")
	assert.Contains(t, out, "65535, 65535, 65535")
}

func TestFormatEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, nil))
	assert.Equal(t, "no Vulkan physical devices found\n", buf.String())
}
