package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tessellation of every body sphere and ring
const (
	SphereSlices = 50
	SphereStacks = 50
	RingSlices   = 50
	RingLoops    = 1
)

// Vertex is a mesh vertex
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is an indexed triangle list
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Triangles returns the number of triangles in the mesh
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// NewSphere builds a unit sphere with poles on the Y axis. U runs with
// longitude, V from the north pole (0) to the south pole (1).
func NewSphere(slices, stacks int) *Mesh {
	mesh := &Mesh{Name: "sphere"}

	for stack := 0; stack <= stacks; stack++ {
		theta := float64(stack) * math.Pi / float64(stacks)
		sinTheta, cosTheta := math.Sincos(theta)

		for slice := 0; slice <= slices; slice++ {
			phi := float64(slice) * 2 * math.Pi / float64(slices)
			sinPhi, cosPhi := math.Sincos(phi)

			n := mgl32.Vec3{
				float32(cosPhi * sinTheta),
				float32(cosTheta),
				float32(sinPhi * sinTheta),
			}
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: n,
				Normal:   n,
				UV:       mgl32.Vec2{float32(slice) / float32(slices), float32(stack) / float32(stacks)},
			})
		}
	}

	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			current := uint32(stack*(slices+1) + slice)
			next := current + uint32(slices) + 1

			mesh.Indices = append(mesh.Indices, current, next, current+1)
			mesh.Indices = append(mesh.Indices, current+1, next, next+1)
		}
	}

	return mesh
}

// NewDisk builds a flat annulus in the XY plane facing +Z, with texture
// coordinates mapped linearly across the outer square.
func NewDisk(inner, outer float32, slices, loops int) *Mesh {
	mesh := &Mesh{Name: "disk"}
	normal := mgl32.Vec3{0, 0, 1}

	for loop := 0; loop <= loops; loop++ {
		r := inner + (outer-inner)*float32(loop)/float32(loops)
		for slice := 0; slice <= slices; slice++ {
			phi := float64(slice) * 2 * math.Pi / float64(slices)
			sinPhi, cosPhi := math.Sincos(phi)
			x := r * float32(cosPhi)
			y := r * float32(sinPhi)
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: mgl32.Vec3{x, y, 0},
				Normal:   normal,
				UV:       mgl32.Vec2{x/(2*outer) + 0.5, y/(2*outer) + 0.5},
			})
		}
	}

	for loop := 0; loop < loops; loop++ {
		for slice := 0; slice < slices; slice++ {
			current := uint32(loop*(slices+1) + slice)
			outerIdx := current + uint32(slices) + 1

			mesh.Indices = append(mesh.Indices, current, current+1, outerIdx)
			mesh.Indices = append(mesh.Indices, current+1, outerIdx+1, outerIdx)
		}
	}

	return mesh
}

// NewSkybox builds a cube of the given half size, each face carrying the
// full texture.
func NewSkybox(halfSize float32) *Mesh {
	s := halfSize
	faces := [6][4]mgl32.Vec3{
		{{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s}}, // front
		{{s, -s, s}, {-s, -s, s}, {-s, s, s}, {s, s, s}},     // back
		{{-s, s, -s}, {s, s, -s}, {s, s, s}, {-s, s, s}},     // top
		{{-s, -s, s}, {s, -s, s}, {s, -s, -s}, {-s, -s, -s}}, // bottom
		{{s, -s, -s}, {s, -s, s}, {s, s, s}, {s, s, -s}},     // right
		{{-s, -s, s}, {-s, -s, -s}, {-s, s, -s}, {-s, s, s}}, // left
	}
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	mesh := &Mesh{Name: "skybox"}
	for _, face := range faces {
		base := uint32(len(mesh.Vertices))
		// Normals point into the cube, toward the viewer.
		normal := face[0].Add(face[2]).Mul(-0.5).Normalize()
		for i, p := range face {
			mesh.Vertices = append(mesh.Vertices, Vertex{Position: p, Normal: normal, UV: uvs[i]})
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return mesh
}
