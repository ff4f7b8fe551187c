package wobble

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

type RaycastHit struct {
	Hit   bool
	T     float32
	Point mgl32.Vec3
}

const raycastEpsilon = 1e-7

// RaycastMesh intersects a ray with every triangle of the mesh transformed by
// the model matrix and returns the nearest hit. Back faces count: a ripple
// started on the far side of a transparent surface is still a ripple.
func RaycastMesh(mesh *MeshAsset, model mgl32.Mat4, ray Ray) RaycastHit {
	best := RaycastHit{T: math32.MaxFloat32}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		v0 := transformPoint(model, mesh.Vertices[mesh.Indices[i]].Position)
		v1 := transformPoint(model, mesh.Vertices[mesh.Indices[i+1]].Position)
		v2 := transformPoint(model, mesh.Vertices[mesh.Indices[i+2]].Position)

		if t, ok := intersectTriangle(ray, v0, v1, v2); ok && t < best.T {
			best.Hit = true
			best.T = t
		}
	}

	if best.Hit {
		best.Point = ray.Origin.Add(ray.Dir.Mul(best.T))
	} else {
		best.T = 0
	}
	return best
}

// intersectTriangle is the Moller-Trumbore test. Returns the ray parameter t
// for hits in front of the origin.
func intersectTriangle(ray Ray, v0, v1, v2 mgl32.Vec3) (float32, bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	pvec := ray.Dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -raycastEpsilon && det < raycastEpsilon {
		return 0, false // ray parallel to triangle plane
	}

	invDet := 1 / det
	tvec := ray.Origin.Sub(v0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(qvec) * invDet
	if t <= raycastEpsilon {
		return 0, false
	}
	return t, true
}

func transformPoint(m mgl32.Mat4, p [3]float32) mgl32.Vec3 {
	v := m.Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1})
	return v.Vec3()
}
