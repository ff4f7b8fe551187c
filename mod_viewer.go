package wobble

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/wobble3d/wobble/shaders"
)

// ViewerModule spawns the camera and the wobbling sphere and wires the three
// interactions: click ripple, material toggle, resize.
type ViewerModule struct {
	CameraFov  float32 // radians; zero means the 75 degree default
	CameraNear float32
	CameraFar  float32

	// ShaderDir, when set, loads the material WGSL from disk instead of the
	// embedded copies. File-backed materials can hot reload.
	ShaderDir string
}

func (mod ViewerModule) Install(app *App, cmd *Commands) {
	ws := resource[WindowState](app)
	if ws == nil {
		panic("ViewerModule requires a WindowState resource (install WindowModule first)")
	}
	assets := resource[AssetServer](app)
	if assets == nil {
		panic("ViewerModule requires an AssetServer resource (install AssetServerModule first)")
	}

	if mod.CameraFov == 0 {
		mod.CameraFov = mgl32.DegToRad(75)
	}
	if mod.CameraNear == 0 {
		mod.CameraNear = 0.1
	}
	if mod.CameraFar == 0 {
		mod.CameraFar = 1000
	}

	wave := NewWaveUniforms()
	creative := NewCreativeUniforms()

	waveId := mod.loadMaterial(app, assets, "wave.wgsl", shaders.WaveWGSL, wave, true)
	creativeId := mod.loadMaterial(app, assets, "creative.wgsl", shaders.CreativeWGSL, creative, false)

	meshId := assets.LoadMesh(GenerateSphereMesh(1, 48, 64))

	cmd.AddEntity(CameraComponent{
		Position: mgl32.Vec3{0, 0, 5},
		LookAt:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		Fov:      mod.CameraFov,
		Aspect:   float32(ws.WindowWidth) / float32(ws.WindowHeight),
		Near:     mod.CameraNear,
		Far:      mod.CameraFar,
	})

	meshEntity := cmd.AddEntity(
		NewTransform(),
		MeshComponent{Mesh: meshId},
		MaterialComponent{Material: waveId},
	)

	cmd.AddResources(&ViewerState{
		LastClickTime:  NoClick,
		LastClickPos:   mgl32.Vec3{-1, -1, -1},
		ActiveMaterial: 0,
		Materials:      []AssetId{waveId, creativeId},
		Wave:           wave,
		Creative:       creative,
		MeshEntity:     meshEntity,
	})

	app.UseSystem(System(viewerFrameSystem).InStage(Update))
	app.UseSystem(System(viewerClickSystem).InStage(Update))
	app.UseSystem(System(viewerKeySystem).InStage(Update))
	app.UseSystem(System(viewerResizeSystem).InStage(Update))
}

// loadMaterial prefers the on-disk shader when a shader dir is configured and
// falls back to the embedded source.
func (mod ViewerModule) loadMaterial(app *App, assets *AssetServer, name string, embedded string, uniforms any, transparent bool) AssetId {
	if mod.ShaderDir != "" {
		path := filepath.Join(mod.ShaderDir, name)
		if id, err := assets.LoadMaterialFile(path, uniforms, transparent); err == nil {
			app.Logger().Infof("loaded shader from %s", path)
			return id
		} else {
			app.Logger().Warnf("falling back to embedded shader %s: %v", name, err)
		}
	}
	return assets.LoadMaterialSource(name, embedded, uniforms, transparent)
}

func viewerFrameSystem(t *Time, vs *ViewerState) {
	vs.TickViewer(float32(t.Elapsed))
}

func viewerClickSystem(input *Input, t *Time, vs *ViewerState, assets *AssetServer, cmd *Commands) {
	if !input.JustPressed[MouseButtonLeft] {
		return
	}
	if input.WindowWidth <= 0 || input.WindowHeight <= 0 {
		return
	}

	var camera *CameraComponent
	MakeQuery1[CameraComponent](cmd).Map(func(_ EntityId, cam *CameraComponent) bool {
		camera = cam
		return false
	})
	if camera == nil {
		return
	}

	ray := camera.ScreenRay(input.MouseX, input.MouseY, input.WindowWidth, input.WindowHeight)

	MakeQuery2[TransformComponent, MeshComponent](cmd).Map(
		func(_ EntityId, tr *TransformComponent, mc *MeshComponent) bool {
			mesh := assets.Mesh(mc.Mesh)
			if mesh == nil {
				return true
			}
			vs.ApplyClick(RaycastMesh(mesh, buildModelMatrix(tr), ray), float32(t.Elapsed))
			return false
		})
}

func viewerKeySystem(input *Input, vs *ViewerState, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Quit()
		return
	}
	if !input.JustPressed[KeyM] {
		return
	}

	active := vs.ToggleMaterial()
	MakeQuery1[MaterialComponent](cmd).Map(func(eid EntityId, mat *MaterialComponent) bool {
		if eid == vs.MeshEntity {
			mat.Material = active
			return false
		}
		return true
	})
}

func viewerResizeSystem(ws *WindowState, cmd *Commands) {
	if !ws.Resized || ws.WindowHeight <= 0 {
		return
	}
	aspect := float32(ws.WindowWidth) / float32(ws.WindowHeight)
	MakeQuery1[CameraComponent](cmd).Map(func(_ EntityId, cam *CameraComponent) bool {
		cam.Aspect = aspect
		return true
	})
}
