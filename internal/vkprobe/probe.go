package vkprobe

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Probe loads the Vulkan loader, creates a bare instance and describes every
// physical device it enumerates.
func Probe(appName string) ([]DeviceInfo, error) {
	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		return nil, fmt.Errorf("could not load the Vulkan loader: %w", err)
	}
	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("vk.Init failed: %w", err)
	}

	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(appName),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PEngineName:        safeString("glplayground"),
		ApiVersion:         vk.MakeVersion(1, 0, 0),
	}

	var instance vk.Instance
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: appInfo,
	}, nil, &instance)
	if err := vk.Error(ret); err != nil {
		return nil, fmt.Errorf("vkCreateInstance failed: %w", err)
	}
	defer vk.DestroyInstance(instance, nil)

	if err := vk.InitInstance(instance); err != nil {
		return nil, fmt.Errorf("could not load instance functions: %w", err)
	}

	var count uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &count, nil)); err != nil {
		return nil, fmt.Errorf("vkEnumeratePhysicalDevices failed: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	gpus := make([]vk.PhysicalDevice, count)
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &count, gpus)); err != nil {
		return nil, fmt.Errorf("vkEnumeratePhysicalDevices failed: %w", err)
	}

	devices := make([]DeviceInfo, 0, count)
	for _, gpu := range gpus[:count] {
		var props vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(gpu, &props)
		props.Deref()
		props.Limits.Deref()

		devices = append(devices, DeviceInfo{
			Name:                     vk.ToString(props.DeviceName[:]),
			Type:                     deviceTypeName(props.DeviceType),
			VendorID:                 props.VendorID,
			DeviceID:                 props.DeviceID,
			APIVersion:               DecodeVersion(props.ApiVersion),
			DriverVersion:            props.DriverVersion,
			MaxImageDimension2D:      props.Limits.MaxImageDimension2D,
			MaxComputeWorkGroupCount: props.Limits.MaxComputeWorkGroupCount,
			MaxComputeWorkGroupSize:  props.Limits.MaxComputeWorkGroupSize,
			MaxComputeInvocations:    props.Limits.MaxComputeWorkGroupInvocations,
		})
	}
	return devices, nil
}

func deviceTypeName(t vk.PhysicalDeviceType) string {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "integrated GPU"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "discrete GPU"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "virtual GPU"
	case vk.PhysicalDeviceTypeCpu:
		return "CPU"
	default:
		return "other"
	}
}

// Vulkan strings cross into C as-is
func safeString(s string) string {
	return s + "\x00"
}
