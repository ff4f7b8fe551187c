package wobble

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraComponent is a perspective camera. Fov is in radians.
type CameraComponent struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3
	Fov      float32
	Aspect   float32
	Near     float32
	Far      float32
}

func buildCameraMatrix(c *CameraComponent) mgl32.Mat4 {
	view := mgl32.LookAtV(
		c.Position,
		c.LookAt,
		c.Up,
	)
	projection := mgl32.Perspective(
		c.Fov,
		c.Aspect,
		c.Near,
		c.Far,
	)
	return projection.Mul4(view)
}

// ScreenRay converts a cursor position to a world-space ray through the
// camera. Screen origin is top-left; NDC is [-1,1] with +Y up, hence the
// Y flip.
func (c *CameraComponent) ScreenRay(x, y float64, width, height int) Ray {
	ndcX := float32(x)/float32(width)*2 - 1
	ndcY := -float32(y)/float32(height)*2 + 1

	inv := buildCameraMatrix(c).Inv()

	nearClip := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	farClip := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})

	nearPt := nearClip.Vec3().Mul(1 / nearClip.W())
	farPt := farClip.Vec3().Mul(1 / farClip.W())

	return Ray{
		Origin: c.Position,
		Dir:    farPt.Sub(nearPt).Normalize(),
	}
}
