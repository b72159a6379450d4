package vkprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	vk "github.com/vulkan-go/vulkan"
)

func TestDeviceTypeName(t *testing.T) {
	cases := map[vk.PhysicalDeviceType]string{
		vk.PhysicalDeviceTypeDiscreteGpu:   "discrete GPU",
		vk.PhysicalDeviceTypeIntegratedGpu: "integrated GPU",
		vk.PhysicalDeviceTypeVirtualGpu:    "virtual GPU",
		vk.PhysicalDeviceTypeCpu:           "CPU",
		vk.PhysicalDeviceTypeOther:         "other",
	}
	for in, want := range cases {
		assert.Equal(t, want, deviceTypeName(in))
	}
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "vkinfo\x00", safeString("vkinfo"))
}
