package wobble

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type OrbitCameraModule struct{}

// OrbitCameraComponent keeps the camera on a sphere around Target. Yaw and
// Pitch are in degrees; right-drag orbits, scroll zooms.
type OrbitCameraComponent struct {
	Target      mgl32.Vec3
	Distance    float32
	Yaw         float32
	Pitch       float32
	Sensitivity float32
	ZoomSpeed   float32
}

func (m OrbitCameraModule) Install(app *App, cmd *Commands) {
	attached := false
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent) bool {
		cmd.AddComponents(eid, OrbitCameraComponent{
			Target:      cam.LookAt,
			Distance:    cam.Position.Sub(cam.LookAt).Len(),
			Sensitivity: 0.3,
			ZoomSpeed:   0.5,
		})
		attached = true
		return false
	})
	if !attached {
		app.Logger().Warnf("orbit camera installed before any camera entity; no controller attached")
	}

	app.UseSystem(
		System(orbitCameraSystem).
			InStage(Update),
	)
}

func orbitCameraSystem(input *Input, cmd *Commands) {
	MakeQuery2[CameraComponent, OrbitCameraComponent](cmd).Map(
		func(eid EntityId, cam *CameraComponent, orbit *OrbitCameraComponent) bool {
			if input.Pressed[MouseButtonRight] {
				orbit.Yaw += float32(input.MouseDeltaX) * orbit.Sensitivity
				orbit.Pitch += float32(input.MouseDeltaY) * orbit.Sensitivity
			}

			// Clamp pitch to keep the view matrix away from the poles.
			if orbit.Pitch > 89 {
				orbit.Pitch = 89
			}
			if orbit.Pitch < -89 {
				orbit.Pitch = -89
			}

			orbit.Distance -= float32(input.ConsumeScroll()) * orbit.ZoomSpeed
			if orbit.Distance < 0.5 {
				orbit.Distance = 0.5
			}

			yawRad := mgl32.DegToRad(orbit.Yaw)
			pitchRad := mgl32.DegToRad(orbit.Pitch)

			offset := mgl32.Vec3{
				math32.Cos(pitchRad) * math32.Sin(yawRad),
				math32.Sin(pitchRad),
				math32.Cos(pitchRad) * math32.Cos(yawRad),
			}.Mul(orbit.Distance)

			cam.Position = orbit.Target.Add(offset)
			cam.LookAt = orbit.Target
			return true
		})
}
