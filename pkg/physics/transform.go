// pkg/physics/transform.go
package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitTransform places a child in its parent's frame: rotate by the orbit
// angle about the vertical axis, then move out along the orbit radius.
func OrbitTransform(angleDegrees, orbitRadius float32) mgl32.Mat4 {
	rotation := mgl32.HomogRotate3DY(mgl32.DegToRad(angleDegrees))
	return rotation.Mul4(mgl32.Translate3D(orbitRadius, 0, 0))
}

// Compose returns the world transform of a frame given its parent's world
// transform and its own local transform.
func Compose(parent, local mgl32.Mat4) mgl32.Mat4 {
	return parent.Mul4(local)
}

// ViewTransform builds the camera transform: translate by zoom along Z,
// then rotate about X, then about Y.
func ViewTransform(zoom, rotationX, rotationY float32) mgl32.Mat4 {
	view := mgl32.Translate3D(0, 0, zoom)
	view = view.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotationX)))
	return view.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotationY)))
}

// Perspective builds a projection matrix from a vertical field of view in
// degrees. A zero height is treated as one pixel.
func Perspective(fovDegrees float32, width, height int, near, far float32) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, near, far)
}

// Position extracts the translation of a transform
func Position(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}
