package wobble

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssetServer() *AssetServer {
	return &AssetServer{
		meshes:    map[AssetId]*MeshAsset{},
		materials: map[AssetId]*MaterialAsset{},
	}
}

func TestAssetServer_LoadMesh(t *testing.T) {
	server := newTestAssetServer()

	id := server.LoadMesh(GenerateSphereMesh(1, 4, 6))
	require.NotEmpty(t, id)

	mesh := server.Mesh(id)
	require.NotNil(t, mesh)
	assert.NotEmpty(t, mesh.Vertices)

	assert.Nil(t, server.Mesh("missing"))
}

func TestAssetServer_LoadMaterialSource(t *testing.T) {
	server := newTestAssetServer()
	uniforms := NewWaveUniforms()

	id := server.LoadMaterialSource("wave.wgsl", "// wgsl", uniforms, true)

	mat := server.Material(id)
	require.NotNil(t, mat)
	assert.Equal(t, "wave.wgsl", mat.shaderName)
	assert.Equal(t, "// wgsl", mat.shaderListing)
	assert.True(t, mat.transparent)
	assert.Same(t, uniforms, mat.uniforms)
	assert.Equal(t, uint(0), mat.version)
}

func TestAssetServer_LoadMaterialFile(t *testing.T) {
	server := newTestAssetServer()
	path := filepath.Join(t.TempDir(), "test.wgsl")
	require.NoError(t, os.WriteFile(path, []byte("// v1"), 0o644))

	id, err := server.LoadMaterialFile(path, NewCreativeUniforms(), false)
	require.NoError(t, err)
	assert.Equal(t, "// v1", server.Material(id).shaderListing)

	_, err = server.LoadMaterialFile(filepath.Join(t.TempDir(), "nope.wgsl"), nil, false)
	assert.Error(t, err)
}

func TestAssetServer_ReloadMaterialsFromFile(t *testing.T) {
	server := newTestAssetServer()
	path := filepath.Join(t.TempDir(), "test.wgsl")
	require.NoError(t, os.WriteFile(path, []byte("// v1"), 0o644))

	id, err := server.LoadMaterialFile(path, NewWaveUniforms(), true)
	require.NoError(t, err)

	// unrelated materials are left alone
	embedded := server.LoadMaterialSource("embedded.wgsl", "// embedded", NewCreativeUniforms(), false)

	require.NoError(t, os.WriteFile(path, []byte("// v2"), 0o644))
	n, err := server.ReloadMaterialsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	mat := server.Material(id)
	assert.Equal(t, "// v2", mat.shaderListing)
	assert.Equal(t, uint(1), mat.version)

	assert.Equal(t, uint(0), server.Material(embedded).version)
}
