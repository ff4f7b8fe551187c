package wobble

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
)

type GpuState struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
}

// GpuModule acquires the wgpu device for the shared window. Acquisition
// failure is fatal; there is no fallback at this layer.
type GpuModule struct{}

func (mod GpuModule) Install(app *App, cmd *Commands) {
	ws := resource[WindowState](app)
	if ws == nil {
		panic("GpuModule requires a WindowState resource (install WindowModule first)")
	}

	cmd.AddResources(createGpuState(ws))
	app.Logger().Infof("GPU device acquired")
}

func createGpuState(s *WindowState) *GpuState {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()
	// wraps the GLFW window into a wgpu surface
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(s.windowGlfw))
	// finds a suitable GPU (discrete GPU preferred)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		panic(err)
	}
	// allocates the device and command queue
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Main Device",
		RequiredFeatures: nil,
		RequiredLimits:   nil,
	})
	if err != nil {
		panic(err)
	}
	queue := device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	// defines how the swapchain behaves (size, format, vsync)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(s.WindowWidth),
		Height:      uint32(s.WindowHeight),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}

	surface.Configure(adapter, device, &surfaceConfig)

	return &GpuState{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         queue,
		surfaceConfig: &surfaceConfig,
	}
}

// reconfigure resizes the swapchain. Idempotent for equal dimensions.
func (gpu *GpuState) reconfigure(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if gpu.surfaceConfig.Width == uint32(width) && gpu.surfaceConfig.Height == uint32(height) {
		return
	}
	gpu.surfaceConfig.Width = uint32(width)
	gpu.surfaceConfig.Height = uint32(height)
	gpu.surface.Configure(gpu.adapter, gpu.device, gpu.surfaceConfig)
}
