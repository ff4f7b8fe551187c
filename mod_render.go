package wobble

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

type RenderModule struct{}

// globalsUniform is bound at group(0) binding(0) in every material shader.
type globalsUniform struct {
	ViewProjMx mgl32.Mat4
	ModelMx    mgl32.Mat4
}

type meshBuffers struct {
	version    uint
	vertexBuf  *wgpu.Buffer
	indexBuf   *wgpu.Buffer
	indexCount uint32
}

type materialPipeline struct {
	version    uint
	pipeline   *wgpu.RenderPipeline
	globalsBuf *wgpu.Buffer
	uniformBuf *wgpu.Buffer
	bindGroup  *wgpu.BindGroup
}

type renderState struct {
	depthView   *wgpu.TextureView
	meshBuffers map[AssetId]*meshBuffers
	pipelines   map[AssetId]*materialPipeline
	globals     globalsUniform
}

func (mod RenderModule) Install(app *App, cmd *Commands) {
	if resource[GpuState](app) == nil {
		panic("RenderModule requires a GpuState resource (install GpuModule first)")
	}

	cmd.AddResources(&renderState{
		meshBuffers: map[AssetId]*meshBuffers{},
		pipelines:   map[AssetId]*materialPipeline{},
	})

	app.UseSystem(
		System(renderSystem).
			InStage(Render),
	)
}

// renderSystem draws every entity carrying a transform, a mesh and a material.
// GPU-side caches are keyed by asset id and rebuilt when the asset version
// moves, which is how shader hot reload reaches the pipeline.
func renderSystem(cmd *Commands, ws *WindowState, gpuState *GpuState, assets *AssetServer, rs *renderState) {
	if ws.Resized {
		gpuState.reconfigure(ws.WindowWidth, ws.WindowHeight)
		if rs.depthView != nil {
			rs.depthView.Release()
			rs.depthView = nil
		}
	}
	if rs.depthView == nil {
		rs.depthView = createDepthTexture(gpuState)
	}

	updateGlobalsViewProj(cmd, rs)

	nextTexture, err := gpuState.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := gpuState.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            rs.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})
	defer renderPass.Release()

	MakeQuery3[TransformComponent, MeshComponent, MaterialComponent](cmd).Map(
		func(_ EntityId, transform *TransformComponent, mesh *MeshComponent, material *MaterialComponent) bool {
			meshAsset := assets.Mesh(mesh.Mesh)
			matAsset := assets.Material(material.Material)
			if meshAsset == nil || matAsset == nil {
				return true
			}

			buffers := rs.meshGpuBuffers(mesh.Mesh, meshAsset, gpuState)
			pipeline := rs.materialGpuPipeline(material.Material, matAsset, gpuState)

			rs.globals.ModelMx = buildModelMatrix(transform)
			mustWriteBuffer(gpuState, pipeline.globalsBuf, rs.globals)
			mustWriteBuffer(gpuState, pipeline.uniformBuf, matAsset.uniforms)

			renderPass.SetPipeline(pipeline.pipeline)
			renderPass.SetBindGroup(0, pipeline.bindGroup, nil)
			renderPass.SetVertexBuffer(0, buffers.vertexBuf, 0, wgpu.WholeSize)
			renderPass.SetIndexBuffer(buffers.indexBuf, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
			renderPass.DrawIndexed(buffers.indexCount, 1, 0, 0, 0)
			return true
		})

	err = renderPass.End()
	if err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	gpuState.queue.Submit(cmdBuffer)
	gpuState.surface.Present()
}

func updateGlobalsViewProj(cmd *Commands, rs *renderState) {
	MakeQuery1[CameraComponent](cmd).Map(
		func(_ EntityId, camera *CameraComponent) bool {
			rs.globals.ViewProjMx = buildCameraMatrix(camera)
			// TODO add support of multiple cameras
			return false
		})
}

func (rs *renderState) meshGpuBuffers(id AssetId, asset *MeshAsset, gpuState *GpuState) *meshBuffers {
	if cached, ok := rs.meshBuffers[id]; ok && cached.version == asset.version {
		return cached
	}

	if stale, ok := rs.meshBuffers[id]; ok {
		stale.vertexBuf.Release()
		stale.indexBuf.Release()
	}

	vertexBuf, indexBuf := createVertexIndexBuffers(asset.Vertices, asset.Indices, gpuState.device)
	buffers := &meshBuffers{
		version:    asset.version,
		vertexBuf:  vertexBuf,
		indexBuf:   indexBuf,
		indexCount: uint32(len(asset.Indices)),
	}
	rs.meshBuffers[id] = buffers
	return buffers
}

func (rs *renderState) materialGpuPipeline(id AssetId, asset *MaterialAsset, gpuState *GpuState) *materialPipeline {
	if cached, ok := rs.pipelines[id]; ok && cached.version == asset.version {
		return cached
	}

	if stale, ok := rs.pipelines[id]; ok {
		stale.bindGroup.Release()
		stale.globalsBuf.Release()
		stale.uniformBuf.Release()
		stale.pipeline.Release()
	}

	pipeline := createRenderPipeline(asset.shaderName, asset.shaderListing, Vertex{}, asset.transparent, gpuState)

	globalsBuf := createUniformBuffer("Globals Buffer", globalsUniform{}, gpuState)
	uniformBuf := createUniformBuffer("Material Buffer", asset.uniforms, gpuState)

	layout := pipeline.GetBindGroupLayout(0)
	defer layout.Release()

	bindGroup, err := gpuState.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: globalsBuf, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: uniformBuf, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}

	cached := &materialPipeline{
		version:    asset.version,
		pipeline:   pipeline,
		globalsBuf: globalsBuf,
		uniformBuf: uniformBuf,
		bindGroup:  bindGroup,
	}
	rs.pipelines[id] = cached
	return cached
}

func mustWriteBuffer(gpuState *GpuState, buffer *wgpu.Buffer, data any) {
	if err := gpuState.queue.WriteBuffer(buffer, 0, toBufferBytes(data)); err != nil {
		panic(err)
	}
}
