package wobble

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestViewerState() *ViewerState {
	return &ViewerState{
		LastClickTime: NoClick,
		LastClickPos:  mgl32.Vec3{-1, -1, -1},
		Materials:     []AssetId{"wave", "creative"},
		Wave:          NewWaveUniforms(),
		Creative:      NewCreativeUniforms(),
	}
}

func TestUniformDefaults(t *testing.T) {
	wave := NewWaveUniforms()
	assert.Equal(t, float32(0), wave.Time)
	assert.Equal(t, float32(0), wave.Elasticity)
	assert.Equal(t, float32(-1), wave.ClickTime)
	assert.Equal(t, [3]float32{-1, -1, -1}, wave.ClickPosition)
	assert.Equal(t, float32(32), wave.Shininess)
	assert.Equal(t, float32(0.6), wave.Transparency)
	assert.Equal(t, float32(0.05), wave.JiggleIntensity)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, wave.LightColor)
	assert.Equal(t, [4]float32{1, 0, 1, 1}, wave.ObjectColor)

	creative := NewCreativeUniforms()
	assert.Equal(t, float32(0), creative.Time)
	assert.Equal(t, float32(0.2), creative.InflateAmount)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, creative.LightColor)
	assert.Equal(t, [4]float32{1, 0, 1, 1}, creative.ObjectColor)

	// light direction is normalize(1,1,1) for both materials
	for _, dir := range [][3]float32{wave.LightDirection, creative.LightDirection} {
		v := mgl32.Vec3{dir[0], dir[1], dir[2]}
		assert.InDelta(t, 1.0, v.Len(), 1e-6)
		assert.InDelta(t, dir[0], dir[1], 1e-6)
		assert.InDelta(t, dir[1], dir[2], 1e-6)
	}
}

func TestTickWritesTimeToBothMaterials(t *testing.T) {
	vs := makeTestViewerState()

	vs.TickViewer(0.5)

	assert.Equal(t, float32(0.5), vs.Wave.Time)
	assert.Equal(t, float32(0.5), vs.Creative.Time)
	assert.Equal(t, float32(0), vs.Elasticity)
	assert.Equal(t, float32(0), vs.Wave.Elasticity)
}

func TestDecayElasticitySnapsToZero(t *testing.T) {
	// at or below the floor the value snaps to exactly zero
	assert.Equal(t, float32(0), DecayElasticity(0.001))
	assert.Equal(t, float32(0), DecayElasticity(0.0005))
	assert.Equal(t, float32(0), DecayElasticity(0))

	// above the floor it decays by 2% per step
	assert.InDelta(t, 0.98, DecayElasticity(1), 1e-6)
}

func TestDecayElasticityMonotonicAndTerminates(t *testing.T) {
	e := float32(1)
	steps := 0
	for e > 0 {
		next := DecayElasticity(e)
		if next > e {
			t.Fatalf("elasticity increased from %v to %v", e, next)
		}
		e = next
		steps++
		require.Less(t, steps, 1000, "decay never reached zero")
	}
	assert.Equal(t, float32(0), e)
}

func TestClickHitRestartsRipple(t *testing.T) {
	vs := makeTestViewerState()

	hit := RaycastHit{Hit: true, T: 4, Point: mgl32.Vec3{1, 2, 3}}
	vs.ApplyClick(hit, 2.0)

	assert.Equal(t, float32(1), vs.Elasticity)
	assert.Equal(t, float32(1), vs.Wave.Elasticity)
	assert.Equal(t, float32(2.0), vs.Wave.ClickTime)
	assert.Equal(t, [3]float32{1, 2, 3}, vs.Wave.ClickPosition)
	assert.Equal(t, float32(2.0), vs.LastClickTime)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, vs.LastClickPos)
}

func TestClickMissClearsOnlyClickTime(t *testing.T) {
	vs := makeTestViewerState()
	vs.ApplyClick(RaycastHit{Hit: true, T: 4, Point: mgl32.Vec3{1, 2, 3}}, 2.0)
	vs.TickViewer(2.1)
	elasticityBefore := vs.Elasticity
	positionBefore := vs.Wave.ClickPosition

	vs.ApplyClick(RaycastHit{}, 3.0)

	// a miss cancels the ripple trigger but lets the decay finish
	assert.Equal(t, NoClick, vs.Wave.ClickTime)
	assert.Equal(t, elasticityBefore, vs.Elasticity)
	assert.Equal(t, positionBefore, vs.Wave.ClickPosition)
}

func TestClickThenDecayReachesExactZero(t *testing.T) {
	vs := makeTestViewerState()
	vs.ApplyClick(RaycastHit{Hit: true, T: 1, Point: mgl32.Vec3{1, 2, 3}}, 2.0)
	require.Equal(t, float32(1), vs.Elasticity)

	// 2% per tick needs roughly 350 ticks to cross the 0.001 floor
	for i := 0; i < 400; i++ {
		vs.TickViewer(2.0 + float32(i)*0.016)
	}

	assert.Equal(t, float32(0), vs.Elasticity)
	assert.Equal(t, float32(0), vs.Wave.Elasticity)
}

func TestToggleMaterialCycles(t *testing.T) {
	vs := makeTestViewerState()
	require.Equal(t, 0, vs.ActiveMaterial)

	first := vs.ToggleMaterial()
	assert.Equal(t, 1, vs.ActiveMaterial)
	assert.Equal(t, AssetId("creative"), first)

	second := vs.ToggleMaterial()
	assert.Equal(t, 0, vs.ActiveMaterial)
	assert.Equal(t, AssetId("wave"), second)
}

func TestViewerResizeSystemUpdatesCameraAspect(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()
	ws := &WindowState{WindowWidth: 800, WindowHeight: 400, Resized: true}
	cmd.AddResources(ws)
	cmd.AddEntity(CameraComponent{Aspect: 1})
	app.FlushCommands()

	viewerResizeSystem(ws, app.Commands())

	MakeQuery1[CameraComponent](app.Commands()).Map(func(_ EntityId, cam *CameraComponent) bool {
		assert.Equal(t, float32(2), cam.Aspect)
		return true
	})
}

func TestViewerKeySystemTogglesMeshMaterial(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	vs := makeTestViewerState()
	eid := cmd.AddEntity(MaterialComponent{Material: vs.Materials[0]})
	vs.MeshEntity = eid
	cmd.AddResources(vs)
	app.FlushCommands()

	input := &Input{}
	input.JustPressed[KeyM] = true
	viewerKeySystem(input, vs, app.Commands())

	assert.Equal(t, 1, vs.ActiveMaterial)
	MakeQuery1[MaterialComponent](app.Commands()).Map(func(_ EntityId, mat *MaterialComponent) bool {
		assert.Equal(t, vs.Materials[1], mat.Material)
		return true
	})

	// any other key leaves the index unchanged
	other := &Input{}
	other.JustPressed[KeySpace] = true
	viewerKeySystem(other, vs, app.Commands())
	assert.Equal(t, 1, vs.ActiveMaterial)
}
