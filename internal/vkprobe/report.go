// Package vkprobe formats what a Vulkan instance reports about its physical devices.
package vkprobe

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Version is a decoded Vulkan packed version
type Version struct {
	Major, Minor, Patch uint32
}

// DecodeVersion unpacks a VK_MAKE_VERSION value
func DecodeVersion(v uint32) Version {
	return Version{
		Major: v >> 22,
		Minor: (v >> 12) & 0x3ff,
		Patch: v & 0xfff,
	}
}

// Pack is the inverse of DecodeVersion
func (v Version) Pack() uint32 {
	return v.Major<<22 | v.Minor<<12 | v.Patch
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// DeviceInfo is the subset of VkPhysicalDeviceProperties printed by the probe
type DeviceInfo struct {
	Name          string
	Type          string
	VendorID      uint32
	DeviceID      uint32
	APIVersion    Version
	DriverVersion uint32

	MaxImageDimension2D      uint32
	MaxComputeWorkGroupCount [3]uint32
	MaxComputeWorkGroupSize  [3]uint32
	MaxComputeInvocations    uint32
}

// Format writes one block per device
func Format(w io.Writer, devices []DeviceInfo) error {
	if len(devices) == 0 {
		_, err := fmt.Fprintln(w, "no Vulkan physical devices found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for i, d := range devices {
		fmt.Fprintf(tw, "GPU%d:\t\n", i)
		fmt.Fprintf(tw, "  deviceName\t%s\n", d.Name)
		fmt.Fprintf(tw, "  deviceType\t%s\n", d.Type)
		fmt.Fprintf(tw, "  vendorID\t0x%04x\n", d.VendorID)
		fmt.Fprintf(tw, "  deviceID\t0x%04x\n", d.DeviceID)
		fmt.Fprintf(tw, "  apiVersion\t%s\n", d.APIVersion)
		fmt.Fprintf(tw, "  driverVersion\t%d\n", d.DriverVersion)
		fmt.Fprintf(tw, "  maxImageDimension2D\t%d\n", d.MaxImageDimension2D)
		fmt.Fprintf(tw, "  maxComputeWorkGroupCount\t%d, %d, %d\n",
			d.MaxComputeWorkGroupCount[0], d.MaxComputeWorkGroupCount[1], d.MaxComputeWorkGroupCount[2])
		fmt.Fprintf(tw, "  maxComputeWorkGroupSize\t%d, %d, %d\n",
			d.MaxComputeWorkGroupSize[0], d.MaxComputeWorkGroupSize[1], d.MaxComputeWorkGroupSize[2])
		fmt.Fprintf(tw, "  maxComputeWorkGroupInvocations\t%d\n", d.MaxComputeInvocations)
	}
	return tw.Flush()
}
