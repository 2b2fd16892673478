// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orrery/pkg/camera"
	"github.com/opd-ai/go-orrery/pkg/event"
	"github.com/opd-ai/go-orrery/pkg/render"
)

// CameraSystem owns the orbit camera. It applies input, keeps the
// projection in step with the window and reports every change on the bus.
type CameraSystem struct {
	state    *camera.State
	renderer *render.FrameRenderer
	bus      *event.Bus
}

// NewCameraSystem creates a new camera system. bus may be nil.
func NewCameraSystem(state *camera.State, renderer *render.FrameRenderer, bus *event.Bus) *CameraSystem {
	return &CameraSystem{
		state:    state,
		renderer: renderer,
		bus:      bus,
	}
}

// Priority runs the camera after input and before drawing
func (cs *CameraSystem) Priority() int {
	return 90
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update applies mouse wheel zoom
func (cs *CameraSystem) Update(dt float32) {
	if scrollY := engo.Input.Mouse.ScrollY; scrollY != 0 {
		cs.Scroll(scrollY)
	}
}

// Listen subscribes to window resizes
func (cs *CameraSystem) Listen(mailbox *engo.MessageManager) {
	mailbox.Listen("WindowResizeMessage", func(msg engo.Message) {
		resize, ok := msg.(engo.WindowResizeMessage)
		if !ok {
			return
		}
		cs.Reshape(resize.NewWidth, resize.NewHeight)
	})
}

// Reshape forwards a new framebuffer size to the renderer
func (cs *CameraSystem) Reshape(width, height int) {
	cs.renderer.Reshape(width, height)
}

// Key applies a keyboard command
func (cs *CameraSystem) Key(key camera.Key) camera.Result {
	return cs.publish(cs.state.HandleKey(key))
}

// Press starts a drag
func (cs *CameraSystem) Press(button camera.Button, x, y float32) {
	cs.state.Press(button, x, y)
}

// Release ends a drag
func (cs *CameraSystem) Release(button camera.Button) {
	cs.state.Release(button)
}

// Motion rotates the camera while dragging. A repeated position is not a
// change.
func (cs *CameraSystem) Motion(x, y float32) camera.Result {
	if x == cs.state.LastX && y == cs.state.LastY {
		return camera.Result{}
	}
	return cs.publish(cs.state.Motion(x, y))
}

// Scroll zooms by wheel notches
func (cs *CameraSystem) Scroll(notches float32) camera.Result {
	return cs.publish(cs.state.Scroll(notches))
}

// State returns the camera state
func (cs *CameraSystem) State() *camera.State {
	return cs.state
}

func (cs *CameraSystem) publish(res camera.Result) camera.Result {
	if cs.bus == nil {
		return res
	}
	if res.Changed {
		s := cs.state
		cs.bus.Publish(event.NewCameraEvent(cs, s.Zoom, s.RotationX, s.RotationY))
	}
	if res.Quit {
		cs.bus.Publish(&event.BaseEvent{EventType: event.QuitRequested, Source: cs})
	}
	return res
}
