// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Orrery event types
const (
	TickAdvanced    Type = "tick_advanced"
	RedrawRequested Type = "redraw_requested"
	CameraMoved     Type = "camera_moved"
	ViewportResized Type = "viewport_resized"
	TextureFallback Type = "texture_fallback"
	GraphicsError   Type = "graphics_error"
	QuitRequested   Type = "quit_requested"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publisher's goroutine.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:   id,
		Type: eventType,
		Cancel: func() {
			b.Unsubscribe(eventType, id)
		},
	}
}

// Unsubscribe removes the handler registered under id.
func (b *Bus) Unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := append([]subscriber(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// TickEvent is published after every animation tick.
type TickEvent struct {
	BaseEvent
	Tick uint64
}

// NewTickEvent creates a new tick event
func NewTickEvent(source interface{}, tick uint64) *TickEvent {
	return &TickEvent{
		BaseEvent: BaseEvent{EventType: TickAdvanced, Source: source},
		Tick:      tick,
	}
}

// CameraEvent carries the camera orientation after an input handler changed it.
type CameraEvent struct {
	BaseEvent
	Zoom      float32
	RotationX float32
	RotationY float32
}

// NewCameraEvent creates a new camera event
func NewCameraEvent(source interface{}, zoom, rotationX, rotationY float32) *CameraEvent {
	return &CameraEvent{
		BaseEvent: BaseEvent{EventType: CameraMoved, Source: source},
		Zoom:      zoom,
		RotationX: rotationX,
		RotationY: rotationY,
	}
}

// ViewportEvent reports a new framebuffer size.
type ViewportEvent struct {
	BaseEvent
	Width  int
	Height int
}

// NewViewportEvent creates a new viewport event
func NewViewportEvent(source interface{}, width, height int) *ViewportEvent {
	return &ViewportEvent{
		BaseEvent: BaseEvent{EventType: ViewportResized, Source: source},
		Width:     width,
		Height:    height,
	}
}

// FailureEvent reports a recovered failure: a texture that fell back to
// flat colour or a graphics error raised during a draw.
type FailureEvent struct {
	BaseEvent
	Subject string
	Err     error
}

// NewFailureEvent creates a new failure event of the given type
func NewFailureEvent(eventType Type, source interface{}, subject string, err error) *FailureEvent {
	return &FailureEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		Subject:   subject,
		Err:       err,
	}
}
