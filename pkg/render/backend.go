// Package render composes a frame of the orrery from the body table and the
// camera, and submits it to a graphics backend.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/resource"
)

// DrawKind classifies a draw call
type DrawKind int

const (
	KindSkybox DrawKind = iota
	KindSphere
	KindRing
)

func (k DrawKind) String() string {
	switch k {
	case KindSkybox:
		return "skybox"
	case KindSphere:
		return "sphere"
	case KindRing:
		return "ring"
	default:
		return "unknown"
	}
}

// Material selects how a mesh is shaded
type Material struct {
	Texture entity.TextureHandle
	Color   mgl32.Vec4
	Blend   bool // alpha blending for this call only
	Lit     bool
}

// Textured reports whether the material samples a texture
func (m Material) Textured() bool {
	return m.Texture.Valid()
}

// DrawCall is one mesh submission. Model is the mesh's world transform.
type DrawCall struct {
	Label    string
	Kind     DrawKind
	Mesh     *Mesh
	Model    mgl32.Mat4
	Material Material
}

// Backend submits draw calls to a graphics API. Calls arrive on one
// goroutine, in frame order: BeginFrame, SetView, Draw..., EndFrame.
type Backend interface {
	// CreateTexture uploads decoded pixels and returns a non-zero handle.
	CreateTexture(img *resource.Image) (entity.TextureHandle, error)
	SetViewport(width, height int)
	SetProjection(m mgl32.Mat4)
	// BeginFrame clears the colour and depth buffers.
	BeginFrame()
	SetView(m mgl32.Mat4)
	Draw(call DrawCall)
	// Err returns and clears any error raised by the graphics API.
	Err() error
	// EndFrame finishes the frame. Buffer swapping belongs to the host.
	EndFrame()
}
