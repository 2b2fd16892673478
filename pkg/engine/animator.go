// pkg/engine/animator.go
package engine

import (
	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/event"
)

// Animator owns the orbital phase of every body and advances it one fixed
// tick at a time. It is driven from the host loop's goroutine only.
type Animator struct {
	System      *entity.System
	EventBus    *event.Bus
	CurrentTick uint64

	redraw bool
}

// NewAnimator creates an animator over system. bus may be nil.
func NewAnimator(system *entity.System, bus *event.Bus) *Animator {
	return &Animator{
		System:   system,
		EventBus: bus,
	}
}

// AdvanceTick adds each body's per-tick increment to its angles, wraps them
// into [0,360) and marks the frame dirty.
func (a *Animator) AdvanceTick() {
	a.System.Advance()
	a.CurrentTick++
	a.RequestRedraw()

	if a.EventBus != nil {
		a.EventBus.Publish(event.NewTickEvent(a, a.CurrentTick))
	}
}

// Run applies n ticks
func (a *Animator) Run(n int) {
	for i := 0; i < n; i++ {
		a.AdvanceTick()
	}
}

// RequestRedraw marks the frame dirty. RedrawRequested is published when
// the frame was clean.
func (a *Animator) RequestRedraw() {
	if a.redraw {
		return
	}
	a.redraw = true

	if a.EventBus != nil {
		a.EventBus.Publish(&event.BaseEvent{EventType: event.RedrawRequested, Source: a})
	}
}

// ConsumeRedraw reports whether a redraw was requested since the last call
// and clears the request.
func (a *Animator) ConsumeRedraw() bool {
	dirty := a.redraw
	a.redraw = false
	return dirty
}
