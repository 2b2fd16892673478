// pkg/render/engo/renderer.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-orrery/pkg/camera"
	"github.com/opd-ai/go-orrery/pkg/engine"
	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/render"
)

// FrameSystem draws the scene once per engo frame. The window is double
// buffered, so every frame is drawn in full even without a pending redraw.
type FrameSystem struct {
	ctx      context.Context
	renderer *render.FrameRenderer
	camera   *camera.State
	system   *entity.System
	animator *engine.Animator
}

// NewFrameSystem creates a new frame system
func NewFrameSystem(ctx context.Context, fr *render.FrameRenderer, cam *camera.State, system *entity.System, animator *engine.Animator) *FrameSystem {
	return &FrameSystem{
		ctx:      ctx,
		renderer: fr,
		camera:   cam,
		system:   system,
		animator: animator,
	}
}

// Priority draws after every other system
func (fs *FrameSystem) Priority() int {
	return -100
}

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(basic ecs.BasicEntity) {}

// Update renders the current frame
func (fs *FrameSystem) Update(dt float32) {
	fs.animator.ConsumeRedraw()
	fs.renderer.RenderFrame(fs.ctx, fs.camera, fs.system)
}
