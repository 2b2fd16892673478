// Package camera holds the orbit camera state and the input operations
// that mutate it.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-orrery/pkg/config"
	"github.com/opd-ai/go-orrery/pkg/physics"
)

// Key is a single-character command
type Key rune

// Recognised keys
const (
	KeyTiltUp    Key = 'w'
	KeyTiltDown  Key = 's'
	KeyTurnLeft  Key = 'a'
	KeyTurnRight Key = 'd'
	KeyZoomIn    Key = '='
	KeyZoomOut   Key = '-'
	KeyEscape    Key = 27
)

// Button identifies a mouse button
type Button int

// Mouse buttons. Only ButtonPrimary starts a drag.
const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
	ButtonOther
)

// Result describes the effect of an input operation
type Result struct {
	Changed bool // camera orientation or zoom changed; redraw
	Quit    bool // terminate the process
}

// State is the camera: zoom distance, orientation and drag tracking
type State struct {
	Zoom      float32
	RotationX float32
	RotationY float32

	LastX    float32
	LastY    float32
	Dragging bool

	rotateStep float32
	zoomStep   float32
	dragScale  float32
}

// NewState creates a camera at the configured initial zoom
func NewState(cfg config.CameraConfig) *State {
	return &State{
		Zoom:       cfg.InitialZoom,
		rotateStep: cfg.RotateStep,
		zoomStep:   cfg.ZoomStep,
		dragScale:  cfg.DragScale,
	}
}

// HandleKey applies a keyboard command. Unknown keys are ignored.
func (s *State) HandleKey(key Key) Result {
	switch key {
	case KeyEscape:
		return Result{Quit: true}
	case KeyTiltUp:
		s.RotationX -= s.rotateStep
	case KeyTiltDown:
		s.RotationX += s.rotateStep
	case KeyTurnLeft:
		s.RotationY -= s.rotateStep
	case KeyTurnRight:
		s.RotationY += s.rotateStep
	case KeyZoomIn:
		s.Zoom += s.zoomStep
	case KeyZoomOut:
		s.Zoom -= s.zoomStep
	default:
		return Result{}
	}
	return Result{Changed: true}
}

// Press starts a drag at (x, y) when the primary button goes down
func (s *State) Press(button Button, x, y float32) {
	if button != ButtonPrimary {
		return
	}
	s.Dragging = true
	s.LastX = x
	s.LastY = y
}

// Release ends the drag when the primary button comes up
func (s *State) Release(button Button) {
	if button != ButtonPrimary {
		return
	}
	s.Dragging = false
}

// Motion rotates the camera by the cursor delta since the last motion
// event while a drag is active, and moves the anchor to (x, y).
func (s *State) Motion(x, y float32) Result {
	if !s.Dragging {
		return Result{}
	}
	s.RotationY += (x - s.LastX) * s.dragScale
	s.RotationX += (y - s.LastY) * s.dragScale
	s.LastX = x
	s.LastY = y
	return Result{Changed: true}
}

// Scroll zooms by one zoom step per wheel notch
func (s *State) Scroll(notches float32) Result {
	if notches == 0 {
		return Result{}
	}
	s.Zoom += notches * s.zoomStep
	return Result{Changed: true}
}

// ViewMatrix returns the camera transform applied to the whole scene
func (s *State) ViewMatrix() mgl32.Mat4 {
	return physics.ViewTransform(s.Zoom, s.RotationX, s.RotationY)
}
