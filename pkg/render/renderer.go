// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-orrery/pkg/camera"
	"github.com/opd-ai/go-orrery/pkg/config"
	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/event"
	"github.com/opd-ai/go-orrery/pkg/logging"
	"github.com/opd-ai/go-orrery/pkg/physics"
)

// Colours used by the draw paths
var (
	TexturedColor = mgl32.Vec4{1, 1, 1, 1}
	FallbackColor = mgl32.Vec4{1, 1, 0, 1}
)

// FrameRenderer draws the skybox and every body of a system each frame.
type FrameRenderer struct {
	backend    Backend
	logger     *logging.Logger
	bus        *event.Bus
	projection config.ProjectionConfig

	sphere *Mesh
	skybox *Mesh
	rings  map[[2]float32]*Mesh

	SkyboxTexture entity.TextureHandle

	width, height int
	frames        uint64
}

// NewFrameRenderer creates a renderer. bus may be nil.
func NewFrameRenderer(backend Backend, cfg *config.SceneConfig, logger *logging.Logger, bus *event.Bus) *FrameRenderer {
	return &FrameRenderer{
		backend:    backend,
		logger:     logger,
		bus:        bus,
		projection: cfg.Projection,
		sphere:     NewSphere(SphereSlices, SphereStacks),
		skybox:     NewSkybox(cfg.Skybox.HalfSize),
		rings:      make(map[[2]float32]*Mesh),
	}
}

// Reshape sets the viewport and recomputes the projection for a new
// framebuffer size.
func (r *FrameRenderer) Reshape(width, height int) {
	if height <= 0 {
		height = 1
	}
	r.width, r.height = width, height
	r.backend.SetViewport(width, height)
	r.backend.SetProjection(r.Projection())

	if r.bus != nil {
		r.bus.Publish(event.NewViewportEvent(r, width, height))
	}
}

// Projection returns the current projection matrix
func (r *FrameRenderer) Projection() mgl32.Mat4 {
	p := r.projection
	return physics.Perspective(p.FieldOfView, r.width, r.height, p.Near, p.Far)
}

// Size returns the last framebuffer size passed to Reshape
func (r *FrameRenderer) Size() (int, int) {
	return r.width, r.height
}

// Frames returns the number of frames rendered
func (r *FrameRenderer) Frames() uint64 {
	return r.frames
}

// RenderFrame clears the buffers, applies the camera, draws the skybox and
// then each body in draw order. Graphics errors are logged and the frame
// always runs to completion.
func (r *FrameRenderer) RenderFrame(ctx context.Context, cam *camera.State, system *entity.System) {
	r.backend.BeginFrame()
	r.backend.SetView(cam.ViewMatrix())

	if r.SkyboxTexture.Valid() {
		r.backend.Draw(DrawCall{
			Label: "skybox",
			Kind:  KindSkybox,
			Mesh:  r.skybox,
			Model: mgl32.Ident4(),
			Material: Material{
				Texture: r.SkyboxTexture,
				Color:   TexturedColor,
			},
		})
	}

	system.Walk(func(b *entity.Body, frame mgl32.Mat4) {
		r.drawBody(b, frame)
		if b.Ring != nil {
			r.drawRing(b, frame)
			r.checkErrors(ctx, b.Name)
		}
	})

	r.backend.EndFrame()
	r.frames++
}

func (r *FrameRenderer) drawBody(b *entity.Body, frame mgl32.Mat4) {
	r.backend.Draw(DrawCall{
		Label:    b.Name,
		Kind:     KindSphere,
		Mesh:     r.sphere,
		Model:    b.SphereModel(frame),
		Material: surface(b.Texture),
	})
}

// drawRing lays the annulus in the orbital plane. A ring without a texture
// is not drawn.
func (r *FrameRenderer) drawRing(b *entity.Body, frame mgl32.Mat4) {
	if !b.Ring.Texture.Valid() {
		return
	}

	model := frame.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90)))
	model = model.Mul4(mgl32.Scale3D(b.Radius, b.Radius, b.Radius))

	r.backend.Draw(DrawCall{
		Label: b.Name + " ring",
		Kind:  KindRing,
		Mesh:  r.ringMesh(b.Ring),
		Model: model,
		Material: Material{
			Texture: b.Ring.Texture,
			Color:   TexturedColor,
			Blend:   true,
			Lit:     true,
		},
	})
}

func (r *FrameRenderer) ringMesh(ring *entity.Ring) *Mesh {
	key := [2]float32{ring.InnerFactor, ring.OuterFactor}
	mesh, ok := r.rings[key]
	if !ok {
		mesh = NewDisk(ring.InnerFactor, ring.OuterFactor, RingSlices, RingLoops)
		r.rings[key] = mesh
	}
	return mesh
}

func (r *FrameRenderer) checkErrors(ctx context.Context, subject string) {
	err := r.backend.Err()
	if err == nil {
		return
	}
	r.logger.Error(ctx, "Graphics error", err, "body", subject, "frame", r.frames)
	if r.bus != nil {
		r.bus.Publish(event.NewFailureEvent(event.GraphicsError, r, subject, err))
	}
}

// surface picks the textured path for a valid handle and the flat
// fallback colour otherwise.
func surface(tex entity.TextureHandle) Material {
	if tex.Valid() {
		return Material{Texture: tex, Color: TexturedColor, Lit: true}
	}
	return Material{Texture: entity.NoTexture, Color: FallbackColor, Lit: true}
}
