package wobble

import (
	"github.com/go-gl/mathgl/mgl32"
)

// NoClick is the click-time sentinel a shader reads as "no ripple active".
const NoClick float32 = -1

const (
	elasticityImpulse   float32 = 1.0
	elasticityDecayRate float32 = 0.02
	elasticityFloor     float32 = 0.001
)

// ViewerState is the per-frame interaction state of the viewer. It is kept
// separate from the uniform blocks so the update logic can run without a
// live GPU.
type ViewerState struct {
	Elasticity    float32
	LastClickTime float32
	LastClickPos  mgl32.Vec3

	ActiveMaterial int
	Materials      []AssetId
	Wave           *WaveUniforms
	Creative       *CreativeUniforms

	MeshEntity EntityId
}

// DecayElasticity applies one frame of exponential decay. Below the floor
// the value snaps to exactly zero so the ripple has a definite end instead
// of an asymptotic tail of float noise.
func DecayElasticity(e float32) float32 {
	if e > elasticityFloor {
		return e - elasticityDecayRate*e
	}
	return 0
}

// TickViewer advances the animation clock and the elasticity decay.
// Elapsed time goes to every material; elasticity only feeds the wave
// material, the inflate material has no such uniform.
func (vs *ViewerState) TickViewer(elapsed float32) {
	for _, sink := range vs.timeSinks() {
		sink.SetTime(elapsed)
	}

	vs.Elasticity = DecayElasticity(vs.Elasticity)
	vs.Wave.Elasticity = vs.Elasticity
}

// ApplyClick handles a raycast result. A hit restarts the ripple; a miss
// clears only the wave click-time uniform. A mid-decay ripple survives a
// miss so it can finish playing out.
func (vs *ViewerState) ApplyClick(hit RaycastHit, elapsed float32) {
	if hit.Hit {
		vs.Elasticity = elasticityImpulse
		vs.LastClickTime = elapsed
		vs.LastClickPos = hit.Point

		vs.Wave.Elasticity = vs.Elasticity
		vs.Wave.ClickTime = elapsed
		vs.Wave.ClickPosition = [3]float32{hit.Point.X(), hit.Point.Y(), hit.Point.Z()}
		return
	}

	vs.Wave.ClickTime = NoClick
}

// ToggleMaterial cycles the active material and returns its asset id.
func (vs *ViewerState) ToggleMaterial() AssetId {
	vs.ActiveMaterial = (vs.ActiveMaterial + 1) % len(vs.Materials)
	return vs.Materials[vs.ActiveMaterial]
}

func (vs *ViewerState) timeSinks() []TimeSink {
	return []TimeSink{vs.Wave, vs.Creative}
}
