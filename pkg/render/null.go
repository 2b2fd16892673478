package render

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/logging"
	"github.com/opd-ai/go-orrery/pkg/resource"
)

// NullBackend discards draw calls, logging each at debug level.
type NullBackend struct {
	logger   *logging.Logger
	nextID   entity.TextureHandle
	calls    int
	Rendered uint64
}

// NewNullBackend creates a NullBackend
func NewNullBackend(logger *logging.Logger) *NullBackend {
	return &NullBackend{logger: logger, nextID: 1}
}

// CreateTexture implements Backend
func (d *NullBackend) CreateTexture(img *resource.Image) (entity.TextureHandle, error) {
	h := d.nextID
	d.nextID++
	d.logger.Debug(context.Background(), "CreateTexture called", "width", img.Width, "height", img.Height, "handle", uint32(h))
	return h, nil
}

// SetViewport implements Backend
func (d *NullBackend) SetViewport(width, height int) {
	d.logger.Debug(context.Background(), "SetViewport called", "width", width, "height", height)
}

// SetProjection implements Backend
func (d *NullBackend) SetProjection(mgl32.Mat4) {}

// BeginFrame implements Backend
func (d *NullBackend) BeginFrame() {
	d.calls = 0
}

// SetView implements Backend
func (d *NullBackend) SetView(mgl32.Mat4) {}

// Draw implements Backend
func (d *NullBackend) Draw(call DrawCall) {
	d.calls++
	d.logger.Debug(context.Background(), "Draw called",
		"label", call.Label,
		"kind", call.Kind.String(),
		"textured", call.Material.Textured(),
		"triangles", call.Mesh.Triangles(),
	)
}

// Err implements Backend
func (d *NullBackend) Err() error {
	return nil
}

// EndFrame implements Backend
func (d *NullBackend) EndFrame() {
	d.Rendered++
	d.logger.Debug(context.Background(), "Frame complete", "frame", d.Rendered, "draw_calls", d.calls)
}
