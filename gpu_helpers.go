package wobble

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"

	"github.com/cogentcore/webgpu/wgpu"
)

const depthTextureFormat = wgpu.TextureFormatDepth24Plus

func parseFormat(name string) wgpu.VertexFormat {
	switch name {
	case "float2":
		return wgpu.VertexFormatFloat32x2
	case "float3":
		return wgpu.VertexFormatFloat32x3
	case "float4":
		return wgpu.VertexFormatFloat32x4
	default:
		panic("unsupported vertex layout format: " + name)
	}
}

func createVertexBufferLayout(vertexType any) wgpu.VertexBufferLayout {
	t := reflect.TypeOf(vertexType)
	if t.Kind() != reflect.Struct {
		panic("Vertex must be a struct")
	}

	var attributes []wgpu.VertexAttribute
	var offset uint64 = 0

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if "layout" == field.Tag.Get("wobble") {
			format := parseFormat(field.Tag.Get("format"))
			location, err := strconv.Atoi(field.Tag.Get("location"))
			if nil != err {
				panic(err)
			}

			attributes = append(attributes, wgpu.VertexAttribute{
				ShaderLocation: uint32(location),
				Offset:         offset,
				Format:         format,
			})
		}

		offset += uint64(field.Type.Size())
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attributes,
	}
}

// createRenderPipeline compiles a shader module and builds the pipeline for
// it. Bind group layout 0 is derived from the shader (auto layout).
// Transparent materials get standard alpha blending; opaque materials write
// depth, transparent ones only test it.
func createRenderPipeline(name string, shaderCode string, vertexType any, transparent bool, gpuState *GpuState) *wgpu.RenderPipeline {
	shader, err := gpuState.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderCode},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	vertexBufferLayout := createVertexBufferLayout(vertexType)

	var blend *wgpu.BlendState
	if transparent {
		blend = &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		}
	}

	pipeline, err := gpuState.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: name,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vertexBufferLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    gpuState.surfaceConfig.Format,
					Blend:     blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthTextureFormat,
			DepthWriteEnabled: !transparent,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		panic(err)
	}
	return pipeline
}

func createVertexIndexBuffers(vertices []Vertex, indices []uint32, device *wgpu.Device) (vertexBuf *wgpu.Buffer, indexBuf *wgpu.Buffer) {
	vertexBuf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Vertex Buffer",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		panic(err)
	}
	indexBuf, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Index Buffer",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		panic(err)
	}
	return vertexBuf, indexBuf
}

func createDepthTexture(gpuState *GpuState) *wgpu.TextureView {
	texture, err := gpuState.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              gpuState.surfaceConfig.Width,
			Height:             gpuState.surfaceConfig.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        depthTextureFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	defer texture.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	return view
}

func createUniformBuffer(name string, data any, gpuState *GpuState) *wgpu.Buffer {
	buffer, err := gpuState.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: toBufferBytes(data),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	return buffer
}

func toBufferBytes(data any) []byte {
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	buf := new(bytes.Buffer)
	readUniformsBytes(val, buf)
	return buf.Bytes()
}

// readUniformsBytes serializes a uniform value little-endian in field order.
// Blank struct fields are alignment padding and serialize as zeroes.
func readUniformsBytes(field reflect.Value, buf *bytes.Buffer) {
	switch field.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < field.Len(); i++ {
			elem := field.Index(i)
			if elem.Kind() == reflect.Ptr {
				elem = elem.Elem()
			}
			if elem.Kind() == reflect.Struct {
				readUniformsBytes(elem, buf)
			} else {
				if err := binary.Write(buf, binary.LittleEndian, elem.Interface()); err != nil {
					panic(fmt.Errorf("failed to write slice element: %w", err))
				}
			}
		}

	case reflect.Struct:
		t := field.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				buf.Write(make([]byte, t.Field(i).Type.Size()))
				continue
			}
			readUniformsBytes(field.Field(i), buf)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Float32:
		if err := binary.Write(buf, binary.LittleEndian, field.Interface()); err != nil {
			panic(fmt.Errorf("failed to write scalar field: %w", err))
		}

	default:
		panic(fmt.Errorf("unsupported uniform type: %v", field))
	}
}
