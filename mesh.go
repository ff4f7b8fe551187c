package wobble

import (
	"github.com/chewxy/math32"
)

// Vertex is the interleaved vertex layout shared by every material. Fields
// tagged wobble:"layout" become vertex attributes in declaration order.
type Vertex struct {
	Position [3]float32 `wobble:"layout" format:"float3" location:"0"`
	Normal   [3]float32 `wobble:"layout" format:"float3" location:"1"`
}

type MeshAsset struct {
	version  uint
	Vertices []Vertex
	Indices  []uint32
}

// GenerateSphereMesh builds a UV sphere. Normals point outward, so for a
// unit sphere centered at the origin they equal the normalized position.
func GenerateSphereMesh(radius float32, rings, segments int) MeshAsset {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	vertices := make([]Vertex, 0, (rings+1)*(segments+1))
	for ring := 0; ring <= rings; ring++ {
		phi := math32.Pi * float32(ring) / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)
			sinTheta, cosTheta := math32.Sincos(theta)

			nx := sinPhi * cosTheta
			ny := cosPhi
			nz := sinPhi * sinTheta

			vertices = append(vertices, Vertex{
				Position: [3]float32{nx * radius, ny * radius, nz * radius},
				Normal:   [3]float32{nx, ny, nz},
			})
		}
	}

	indices := make([]uint32, 0, rings*segments*6)
	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride

			// CCW winding viewed from outside
			indices = append(indices,
				a, a+1, b,
				b, a+1, b+1,
			)
		}
	}

	return MeshAsset{
		Vertices: vertices,
		Indices:  indices,
	}
}
