package main

import (
	"context"
	"time"

	"github.com/opd-ai/go-orrery/pkg/camera"
	"github.com/opd-ai/go-orrery/pkg/config"
	"github.com/opd-ai/go-orrery/pkg/engine"
	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/event"
	"github.com/opd-ai/go-orrery/pkg/logging"
	"github.com/opd-ai/go-orrery/pkg/render"
)

// headless runs the animation against a backend without a window. Frames
// are drawn only when a tick has requested a redraw.
type headless struct {
	cfg      *config.SceneConfig
	system   *entity.System
	camera   *camera.State
	animator *engine.Animator
	ticker   *engine.Ticker
	renderer *render.FrameRenderer
	bus      *event.Bus
}

func newHeadless(ctx context.Context, backend render.Backend, cfg *config.SceneConfig, system *entity.System, logger *logging.Logger, bus *event.Bus) *headless {
	h := &headless{
		cfg:      cfg,
		system:   system,
		camera:   camera.NewState(cfg.Camera),
		animator: engine.NewAnimator(system, bus),
		ticker:   engine.NewTicker(cfg.Timing.FirstTickDelay(), cfg.Timing.TickInterval()).Limit(engine.DefaultMaxCatchUp),
		renderer: render.NewFrameRenderer(backend, cfg, logger, bus),
		bus:      bus,
	}

	render.NewTextureLibrary(backend, logger, bus).LoadScene(ctx, cfg, system, h.renderer)
	h.renderer.Reshape(cfg.Window.Width, cfg.Window.Height)
	h.animator.RequestRedraw()
	return h
}

// step advances the clock by elapsed and draws if anything changed.
// It reports whether a frame was drawn.
func (h *headless) step(ctx context.Context, elapsed time.Duration) bool {
	h.animator.Run(h.ticker.Advance(elapsed))
	if !h.animator.ConsumeRedraw() {
		return false
	}
	h.renderer.RenderFrame(ctx, h.camera, h.system)
	return true
}

// run steps once per tick interval until ctx is done
func (h *headless) run(ctx context.Context, now func() time.Time) {
	t := time.NewTicker(h.ticker.Interval())
	defer t.Stop()

	last := now()
	h.step(ctx, 0)
	for {
		select {
		case <-ctx.Done():
			if h.bus != nil {
				h.bus.Publish(&event.BaseEvent{EventType: event.QuitRequested, Source: h})
			}
			return
		case <-t.C:
			current := now()
			h.step(ctx, current.Sub(last))
			last = current
		}
	}
}
