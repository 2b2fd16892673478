// pkg/entity/entity.go
package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-orrery/pkg/physics"
)

// ID is a unique identifier for a body, assigned in table order
type ID uint64

// TextureHandle is an opaque GPU texture id
type TextureHandle uint32

// NoTexture is the sentinel handle selecting the flat-colour draw path
const NoTexture TextureHandle = 0

// Valid reports whether h refers to an uploaded texture
func (h TextureHandle) Valid() bool {
	return h != NoTexture
}

// Ring is a flat annulus drawn around a body in its orbital plane
type Ring struct {
	TextureFile string
	Texture     TextureHandle
	InnerFactor float32
	OuterFactor float32
}

// InnerRadius returns the ring's inner radius for a body of radius r
func (r *Ring) InnerRadius(bodyRadius float32) float32 {
	return r.InnerFactor * bodyRadius
}

// OuterRadius returns the ring's outer radius for a body of radius r
func (r *Ring) OuterRadius(bodyRadius float32) float32 {
	return r.OuterFactor * bodyRadius
}

// Body is a celestial body orbiting its parent, or the root of the scene
type Body struct {
	ID          ID
	Name        string
	TextureFile string
	Texture     TextureHandle
	Radius      float32
	OrbitRadius float32

	// Angle is the orbit phase in degrees, always in [0,360).
	Angle float32
	Speed float32

	// SpinAngle is the self-rotation in degrees, always in [0,360).
	SpinAngle float32
	Spin      float32

	Parent   *Body
	Children []*Body
	Ring     *Ring
}

// Advance applies one tick's orbit and spin increments
func (b *Body) Advance() {
	b.Angle = physics.AdvanceAngle(b.Angle, b.Speed)
	b.SpinAngle = physics.AdvanceAngle(b.SpinAngle, b.Spin)
}

// Local returns the body's frame relative to its parent's frame
func (b *Body) Local() mgl32.Mat4 {
	return physics.OrbitTransform(b.Angle, b.OrbitRadius)
}

// SphereModel returns the model matrix of the body's sphere within frame:
// the body's own spin and a uniform scale to its radius.
func (b *Body) SphereModel(frame mgl32.Mat4) mgl32.Mat4 {
	spin := mgl32.HomogRotate3DY(mgl32.DegToRad(b.SpinAngle))
	return frame.Mul4(spin).Mul4(mgl32.Scale3D(b.Radius, b.Radius, b.Radius))
}

// IsRoot reports whether the body has no parent
func (b *Body) IsRoot() bool {
	return b.Parent == nil
}
