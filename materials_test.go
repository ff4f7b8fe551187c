package wobble

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// WGSL uniform blocks are padded to 16-byte rows; the Go structs must
// serialize to the exact byte size the shader declares.
func TestUniformByteSizes(t *testing.T) {
	assert.Len(t, toBufferBytes(NewWaveUniforms()), 80)
	assert.Len(t, toBufferBytes(NewCreativeUniforms()), 64)
	assert.Len(t, toBufferBytes(globalsUniform{}), 128)
}

func TestUniformPaddingSerializesAsZero(t *testing.T) {
	u := NewCreativeUniforms()
	raw := toBufferBytes(u)
	require.Len(t, raw, 64)

	// bytes 8..16 pad time/inflate up to the vec3 row
	for i := 8; i < 16; i++ {
		assert.Zero(t, raw[i], "padding byte %d", i)
	}
	// bytes 28..32 pad the vec3 light direction
	for i := 28; i < 32; i++ {
		assert.Zero(t, raw[i], "padding byte %d", i)
	}
}

func TestWaveUniformFieldOffsets(t *testing.T) {
	u := NewWaveUniforms()
	u.Time = 1
	u.ClickPosition = [3]float32{2, 3, 4}
	raw := toBufferBytes(u)
	require.Len(t, raw, 80)

	readF32 := func(off int) float32 {
		bits := binary.LittleEndian.Uint32(raw[off : off+4])
		return math.Float32frombits(bits)
	}

	assert.Equal(t, float32(1), readF32(0))   // time
	assert.Equal(t, float32(-1), readF32(8))  // click_time sentinel
	assert.Equal(t, float32(32), readF32(12)) // shininess
	assert.Equal(t, float32(2), readF32(16))  // click_position.x
	assert.Equal(t, float32(4), readF32(24))  // click_position.z
	assert.Equal(t, float32(0.6), readF32(28))
}

func TestVertexBufferLayout(t *testing.T) {
	layout := createVertexBufferLayout(Vertex{})

	assert.Equal(t, uint64(24), layout.ArrayStride)
	require.Len(t, layout.Attributes, 2)

	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)

	assert.Equal(t, uint32(1), layout.Attributes[1].ShaderLocation)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[1].Format)
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	assert.Panics(t, func() { parseFormat("double7") })
}
