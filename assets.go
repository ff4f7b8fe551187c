package wobble

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type AssetId string

// AssetServer owns mesh and material assets. Handles are opaque ids; the
// render module resolves them each frame, so a reload only has to bump the
// asset version.
type AssetServer struct {
	meshes    map[AssetId]*MeshAsset
	materials map[AssetId]*MaterialAsset
}

type AssetServerModule struct{}

type MeshComponent struct {
	Mesh AssetId
}

type MaterialComponent struct {
	Material AssetId
}

type MaterialAsset struct {
	version       uint
	shaderName    string
	shaderListing string
	uniforms      any
	transparent   bool
}

func (mod AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&AssetServer{
		meshes:    map[AssetId]*MeshAsset{},
		materials: map[AssetId]*MaterialAsset{},
	})
}

func (server *AssetServer) LoadMesh(mesh MeshAsset) AssetId {
	id := makeAssetId()
	server.meshes[id] = &mesh
	return id
}

// LoadMaterialSource registers a material from in-memory WGSL. uniforms must
// be a pointer to the uniform struct bound at group(0) binding(1); the render
// module serializes it every frame.
func (server *AssetServer) LoadMaterialSource(name string, source string, uniforms any, transparent bool) AssetId {
	id := makeAssetId()
	server.materials[id] = &MaterialAsset{
		shaderName:    name,
		shaderListing: source,
		uniforms:      uniforms,
		transparent:   transparent,
	}
	return id
}

// LoadMaterialFile registers a material backed by a WGSL file on disk, which
// makes it eligible for hot reload.
func (server *AssetServer) LoadMaterialFile(filename string, uniforms any, transparent bool) (AssetId, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("load material %q: %w", filename, err)
	}

	id := makeAssetId()
	server.materials[id] = &MaterialAsset{
		shaderName:    filename,
		shaderListing: string(source),
		uniforms:      uniforms,
		transparent:   transparent,
	}
	return id, nil
}

func (server *AssetServer) Mesh(id AssetId) *MeshAsset {
	return server.meshes[id]
}

func (server *AssetServer) Material(id AssetId) *MaterialAsset {
	return server.materials[id]
}

// ReloadMaterialsFromFile re-reads every file-backed material whose shader
// path matches filename and bumps its version. Returns the number of
// materials updated.
func (server *AssetServer) ReloadMaterialsFromFile(filename string) (int, error) {
	reloaded := 0
	for _, mat := range server.materials {
		if !sameFile(mat.shaderName, filename) {
			continue
		}
		source, err := os.ReadFile(mat.shaderName)
		if err != nil {
			return reloaded, fmt.Errorf("reload material %q: %w", mat.shaderName, err)
		}
		mat.shaderListing = string(source)
		mat.version++
		reloaded++
	}
	return reloaded, nil
}

func sameFile(a, b string) bool {
	if a == b {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

func makeAssetId() AssetId {
	return AssetId(uuid.New().String())
}
