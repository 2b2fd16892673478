// pkg/render/engo/input.go
package engo

import (
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orrery/pkg/camera"
)

// Held keys repeat after keyRepeatDelay, then every keyRepeatInterval.
const (
	keyRepeatDelay    = 500 * time.Millisecond
	keyRepeatInterval = 33 * time.Millisecond
)

// binding ties an engo button name to a camera command
type binding struct {
	name    string
	command camera.Key
	keys    []engo.Key
	repeat  bool
}

var bindings = []binding{
	{"tiltUp", camera.KeyTiltUp, []engo.Key{engo.KeyW, engo.KeyArrowUp}, true},
	{"tiltDown", camera.KeyTiltDown, []engo.Key{engo.KeyS, engo.KeyArrowDown}, true},
	{"turnLeft", camera.KeyTurnLeft, []engo.Key{engo.KeyA, engo.KeyArrowLeft}, true},
	{"turnRight", camera.KeyTurnRight, []engo.Key{engo.KeyD, engo.KeyArrowRight}, true},
	{"zoomIn", camera.KeyZoomIn, []engo.Key{engo.KeyEquals}, true},
	{"zoomOut", camera.KeyZoomOut, []engo.Key{engo.KeyDash}, true},
	{"quit", camera.KeyEscape, []engo.Key{engo.KeyEscape}, false},
}

// keyRepeat tracks how long one binding has been held
type keyRepeat struct {
	held     bool
	untilRep time.Duration
}

// update returns true when the binding should fire this frame. A press fires
// at once; a held key fires again after the delay and then once per interval,
// at most once per frame.
func (r *keyRepeat) update(pressed, down, repeat bool, dt time.Duration) bool {
	switch {
	case pressed:
		r.held = true
		r.untilRep = keyRepeatDelay
		return true
	case !down:
		r.held = false
		return false
	case !r.held || !repeat:
		return false
	}

	r.untilRep -= dt
	if r.untilRep > 0 {
		return false
	}
	r.untilRep += keyRepeatInterval
	if r.untilRep <= 0 {
		r.untilRep = keyRepeatInterval
	}
	return true
}

// InputSystem turns keyboard and mouse input into camera commands
type InputSystem struct {
	camera  *CameraSystem
	quit    func()
	repeats []keyRepeat
}

// NewInputSystem creates a new input system. quit is called when the user
// asks to leave.
func NewInputSystem(cs *CameraSystem, quit func()) *InputSystem {
	return &InputSystem{
		camera:  cs,
		quit:    quit,
		repeats: make([]keyRepeat, len(bindings)),
	}
}

// Priority runs input before every other system
func (is *InputSystem) Priority() int {
	return 100
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update processes input for this frame
func (is *InputSystem) Update(dt float32) {
	elapsed := seconds(dt)
	for i, b := range bindings {
		btn := engo.Input.Button(b.name)
		is.handleButton(i, btn.JustPressed(), btn.Down(), elapsed)
	}

	m := engo.Input.Mouse
	is.HandleMouse(m.Action, m.Button, m.X, m.Y)
}

// handleButton feeds the state of bindings[i] through its repeater
func (is *InputSystem) handleButton(i int, pressed, down bool, dt time.Duration) {
	if is.repeats[i].update(pressed, down, bindings[i].repeat, dt) {
		is.HandleKey(bindings[i].command)
	}
}

// HandleKey applies one keyboard command
func (is *InputSystem) HandleKey(key camera.Key) {
	if res := is.camera.Key(key); res.Quit {
		is.quit()
	}
}

// HandleMouse applies one mouse event
func (is *InputSystem) HandleMouse(action engo.Action, button engo.MouseButton, x, y float32) {
	switch action {
	case engo.Press:
		is.camera.Press(mouseButton(button), x, y)
	case engo.Release:
		is.camera.Release(mouseButton(button))
	case engo.Move:
		is.camera.Motion(x, y)
	}
}

func mouseButton(b engo.MouseButton) camera.Button {
	switch b {
	case engo.MouseButtonLeft:
		return camera.ButtonPrimary
	case engo.MouseButtonRight:
		return camera.ButtonSecondary
	case engo.MouseButtonMiddle:
		return camera.ButtonMiddle
	default:
		return camera.ButtonOther
	}
}

// SetupInputBindings sets up the key bindings for the camera
func SetupInputBindings() {
	for _, b := range bindings {
		engo.Input.RegisterButton(b.name, b.keys...)
	}
}
